// Package value implements the Pyth runtime's closed value-variant model:
// Num, Str, List, Lambda and Nil. A Value is never silently converted to
// another variant; coercions only happen inside the operator runtime
// (package ops).
package value

import "github.com/orlp/pyth5/ast"

// Value is the sealed interface implemented by the five value variants.
// The unexported method keeps the set closed to this package.
type Value interface {
	isValue()
}

// Str is an ordered sequence of Unicode scalar values.
type Str string

func (Str) isValue() {}

// List is an ordered, heterogeneous sequence of Values.
type List []Value

func (List) isValue() {}

// Lambda is a callable: a captured parameter name, captured body AST node
// and captured environment reference.
type Lambda struct {
	Param string
	Body  *ast.Node
	Env   *Env
}

func (*Lambda) isValue() {}

// NilValue is the absence of a value, produced only by operators invoked
// with zero actual arguments. Auto-print suppresses it. It is not a
// first-class literal.
type NilValue struct{}

func (NilValue) isValue() {}

// Nil is the single NilValue instance.
var Nil = NilValue{}

// Seq is implemented by the two sequence variants, Str and List, so
// operators documented with the "q" signature code can share logic.
type Seq interface {
	Value
	Len() int
}

func (s Str) Len() int  { return len([]rune(s)) }
func (l List) Len() int { return len(l) }

// IsNil reports whether v is the Nil sentinel.
func IsNil(v Value) bool {
	_, ok := v.(NilValue)
	return ok
}

// Truthy implements the runtime's truthiness rule: numbers are falsy iff
// equal to zero; strings and lists are falsy iff empty; Nil is falsy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Num:
		return x.Sign() != 0
	case Str:
		return len(x) != 0
	case List:
		return len(x) != 0
	case NilValue:
		return false
	case *Lambda:
		return true
	default:
		return false
	}
}
