package value

import "strings"

// ReprString renders a Go string as a single-quoted, Python-repr-style
// literal: embedded backslashes and single quotes are escaped, and a
// literal newline is rendered as the two-character escape "\n". Repr
// (and so the "`" operator and list rendering) uses it; the lexer does
// not, since string tokens hold decoded content.
func ReprString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// FormatNum renders a Num the way auto-print does: integers print as
// plain decimal with no trailing ".0"; non-integer reals print as
// decimal with trailing zeros and a trailing "." stripped; the two
// infinities print as "inf"/"-inf".
func FormatNum(n Num) string {
	if n.IsInf() {
		if n.InfSign() > 0 {
			return "inf"
		}
		return "-inf"
	}
	if n.IsInteger() {
		return n.Rat().Num().String() // Denom() == 1
	}
	s := n.Rat().FloatString(20)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Repr renders v the way the "`" operator and nested list elements do:
// strings single-quoted, numbers bare, lists bracketed and recursive.
func Repr(v Value) string {
	switch x := v.(type) {
	case Str:
		return ReprString(string(x))
	case Num:
		return FormatNum(x)
	case List:
		parts := make([]string, len(x))
		for i, el := range x {
			parts[i] = Repr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Lambda:
		return "<lambda>"
	case NilValue:
		return ""
	default:
		return ""
	}
}

// AutoPrint renders v the way a top-level auto-printed or explicitly
// "p"-printed expression does: strings print bare (no quotes), numbers
// and lists render exactly as Repr does.
func AutoPrint(v Value) string {
	if s, ok := v.(Str); ok {
		return string(s)
	}
	return Repr(v)
}
