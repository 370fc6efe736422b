package interp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/orlp/pyth5/ast"
)

// debugDump writes the "-d" banner, the preprocessed source, and the
// parsed tree (rendered as its canonical CBOR-decoded structure) to out.
func debugDump(out *strings.Builder, src []byte, preprocessed []byte, root *ast.Node) {
	fmt.Fprintln(out, centerBanner(fmt.Sprintf("%d bytes", len(src)), 50))
	out.Write(preprocessed)
	if len(preprocessed) == 0 || preprocessed[len(preprocessed)-1] != '\n' {
		out.WriteByte('\n')
	}
	fmt.Fprintln(out, strings.Repeat("=", 4))
	if dump, err := CanonicalDump(root); err == nil {
		out.WriteString(dump)
		out.WriteByte('\n')
	}
	fmt.Fprintln(out, strings.Repeat("=", 4))
}

// centerBanner mirrors Python's str.center: pads s with spaces on both
// sides (extra padding goes to the right) so "text" surrounded by "
// ====== " reads like "====== N bytes ======" centered in width columns.
func centerBanner(s string, width int) string {
	text := "====== " + s + " ======"
	if len(text) >= width {
		return text
	}
	pad := width - len(text)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// dumpValue renders a generic CBOR-decoded tree (maps, slices, scalars)
// as indented text for the debug dump's generated-code section.
func dumpValue(v any, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, "%s%s:\n%s", indent, k, dumpValue(x[k], depth+1))
		}
		return b.String()
	case map[any]any:
		keys := make([]string, 0, len(x))
		byKey := make(map[string]any, len(x))
		for k, el := range x {
			ks := fmt.Sprintf("%v", k)
			keys = append(keys, ks)
			byKey[ks] = el
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, "%s%s:\n%s", indent, k, dumpValue(byKey[k], depth+1))
		}
		return b.String()
	case []any:
		var b strings.Builder
		for i, el := range x {
			fmt.Fprintf(&b, "%s[%d]:\n%s", indent, i, dumpValue(el, depth+1))
		}
		return b.String()
	case nil:
		return indent + "nil\n"
	default:
		return fmt.Sprintf("%s%v\n", indent, x)
	}
}
