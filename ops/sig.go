// Package ops implements the polymorphic operator runtime: the
// signature-dispatch functions a fully-evaluated operator application
// reduces to. Operators whose evaluation order is not "evaluate every
// argument, then dispatch on type" — the short-circuiting "&"/"|"/"?",
// the assignment forms "="/"~", the lambda forms "m"/"f"/"o"/"L", the
// I/O operator "p", and the block heads "F"/"I"/"E"/"#"/"B" — live in
// package interp instead, since they need the environment, the lambda
// call mechanism, or the output sink that this package deliberately has
// no access to.
package ops

import "github.com/orlp/pyth5/value"

// matches reports whether v satisfies one signature-code letter:
// '_' nil, 'a' any non-nil, 'r' real, 's' str, 'l' list, 'q' seq
// (str or list).
func matches(code byte, v value.Value) bool {
	switch code {
	case '_':
		return value.IsNil(v)
	case 'a':
		return !value.IsNil(v)
	case 'r':
		_, ok := v.(value.Num)
		return ok
	case 's':
		_, ok := v.(value.Str)
		return ok
	case 'l':
		_, ok := v.(value.List)
		return ok
	case 'q':
		_, ok := v.(value.Seq)
		return ok
	default:
		return false
	}
}

// sig reports whether args matches pattern letter-for-letter, the same
// "first matching rule wins" signature dispatch every operator below
// runs through.
func sig(pattern string, args ...value.Value) bool {
	if len(pattern) != len(args) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if !matches(pattern[i], args[i]) {
			return false
		}
	}
	return true
}

// arg returns args[i], or value.Nil if the call was made with fewer
// actual arguments than the operator's declared arity (the parser
// closes early at EOF rather than erroring, per the grammar's "missing
// args become Nil" rule).
func arg(args []value.Value, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Nil
	}
	return args[i]
}
