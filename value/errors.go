package value

import (
	"fmt"
	"strings"
)

// BadTypeCombinationError is raised when an operator's dispatch table
// has no rule matching the runtime types of its arguments. Its string
// form lists every argument's repr and type name, one per line.
type BadTypeCombinationError struct {
	Func string
	Args []Value
}

func (e *BadTypeCombinationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n    function '%s'", e.Func)
	for i, a := range e.Args {
		fmt.Fprintf(&b, "\n    arg %d: %s, type %s.", i+1, Repr(a), TypeName(a))
	}
	return b.String()
}

// TypeName returns the value variant's display name, used both by
// BadTypeCombinationError and by Compare's cross-variant ordering.
func TypeName(v Value) string {
	switch v.(type) {
	case Num:
		return "Num"
	case Str:
		return "str"
	case List:
		return "list"
	case *Lambda:
		return "Lambda"
	case NilValue:
		return "NoneType"
	default:
		return "unknown"
	}
}

// LookupError is raised when an expression references a variable name
// that has no binding in the environment.
type LookupError struct {
	Name string
	Hint string // "did you mean '...'", empty if no close match was found
}

func (e *LookupError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("name '%s' is not defined", e.Name)
	}
	return fmt.Sprintf("name '%s' is not defined (did you mean '%s'?)", e.Name, e.Hint)
}

// IndexError is raised by sequence subscripting/indexing operators
// when the computed index falls outside the sequence's bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for sequence of length %d", e.Index, e.Len)
}
