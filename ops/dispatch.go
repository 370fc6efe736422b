package ops

import "github.com/orlp/pyth5/value"

// Func is one operator's implementation: given its already-evaluated
// arguments (only those the parser filled; a shorter slice is not
// padded, and implementations read a missing one as value.Nil via arg),
// it returns the result or the dispatch-table miss/index error.
type Func func(args []value.Value) (value.Value, error)

// Table maps an operator symbol to its implementation, covering every
// operator whose evaluation order is "evaluate all arguments eagerly,
// then dispatch on type." The short-circuiting, environment-mutating,
// lambda-calling and I/O operators are not here; package interp handles
// those directly.
var Table = map[string]Func{
	"!":  Not,
	"[":  Bracket,
	"]":  OneList,
	",":  Pair,
	"_":  Neg,
	"+":  Plus,
	"-":  Minus,
	"*":  Times,
	"^":  Pow,
	"<":  Lt,
	">":  Gt,
	"`":  Repr,
	"{":  Unique,
	"}":  In,
	"@":  At,
	"h":  Head,
	"H":  Last,
	"t":  Tail,
	"l":  Len,
	"q":  Eq,
	"n":  Ne,
	"s":  StrOp,
	"U":  Unary,
	"S":  Sort,
	".!": Factorial,
	".<": Shl,
	".>": Shr,
}

// Dispatch looks up and runs op's implementation. ok is false if op
// names no known eager operator (a caller should then check whether it
// is one of the special forms interp handles itself).
func Dispatch(op string, args []value.Value) (value.Value, error, bool) {
	fn, ok := Table[op]
	if !ok {
		return nil, nil, false
	}
	v, err := fn(args)
	return v, err, true
}
