package ops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/orlp/pyth5/value"
)

// stringify renders a value the way mixed-type string concatenation and
// substring tests do: a Str passes through; anything else uses the same
// rendering auto-print would give it.
func stringify(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}
	return value.AutoPrint(v)
}

// Not implements "!": any value maps to 1 if falsy, 0 if truthy.
func Not(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if value.Truthy(a) {
		return value.Int(0), nil
	}
	return value.Int(1), nil
}

// Bracket implements "[", the variadic list-literal operator: it simply
// packs its already-evaluated arguments into a List.
func Bracket(args []value.Value) (value.Value, error) {
	out := make(value.List, len(args))
	copy(out, args)
	return out, nil
}

// OneList implements "]": wrap a single value in a one-element list, or
// produce an empty list when called with no argument.
func OneList(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if value.IsNil(a) {
		return value.List{}, nil
	}
	return value.List{a}, nil
}

// Pair implements ",": zero args -> [], one -> [a], two -> [a, b].
func Pair(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	switch {
	case value.IsNil(a) && value.IsNil(b):
		return value.List{}, nil
	case !value.IsNil(a) && value.IsNil(b):
		return value.List{a}, nil
	default:
		return value.List{a, b}, nil
	}
}

// Neg implements "_": negate a real, or reverse a seq.
func Neg(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if n, ok := a.(value.Num); ok {
		return n.Neg(), nil
	}
	if elems := seqElems(a); elems != nil {
		rev := make([]value.Value, len(elems))
		for i, e := range elems {
			rev[len(elems)-1-i] = e
		}
		return rebuildSeq(a, rev), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "neg", Args: args}
}

// Plus implements "+".
func Plus(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	switch {
	case sig("__", a, b):
		return value.PosInf(), nil
	case sig("r_", a, b):
		return a.(value.Num).Abs(), nil
	case sig("rr", a, b):
		return a.(value.Num).Add(b.(value.Num)), nil
	case sig("ss", a, b):
		return a.(value.Str) + b.(value.Str), nil
	case sig("ll", a, b):
		out := append(value.List{}, a.(value.List)...)
		return append(out, b.(value.List)...), nil
	case sig("al", a, b):
		return append(value.List{a}, b.(value.List)...), nil
	case sig("la", a, b):
		out := append(value.List{}, a.(value.List)...)
		return append(out, b), nil
	case sig("rs", a, b), sig("sr", a, b):
		return value.Str(stringify(a) + stringify(b)), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "plus", Args: args}
}

// Minus implements "-".
func Minus(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	switch {
	case sig("__", a, b):
		return value.NegInf(), nil
	case sig("r_", a, b):
		return a.(value.Num).Abs().Neg(), nil
	case sig("rr", a, b):
		return a.(value.Num).Sub(b.(value.Num)), nil
	case sig("rl", a, b):
		rng := realRange(a.(value.Num))
		out := value.List{}
		for _, el := range rng {
			if !listContains(b.(value.List), el) {
				out = append(out, el)
			}
		}
		return out, nil
	case sig("lq", a, b), sig("ls", a, b), sig("ll", a, b):
		out := value.List{}
		for _, el := range a.(value.List) {
			if !seqContainsValue(b, el) {
				out = append(out, el)
			}
		}
		return out, nil
	case sig("ss", a, b), sig("rs", a, b), sig("sr", a, b):
		return value.Str(strings.ReplaceAll(stringify(a), stringify(b), "")), nil
	case sig("sl", a, b):
		s := string(a.(value.Str))
		for _, el := range b.(value.List) {
			s = strings.ReplaceAll(s, stringify(el), "")
		}
		return value.Str(s), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "minus", Args: args}
}

func listContains(l value.List, v value.Value) bool {
	for _, el := range l {
		if value.Equal(el, v) {
			return true
		}
	}
	return false
}

func seqContainsValue(seq value.Value, v value.Value) bool {
	for _, el := range seqElems(seq) {
		if value.Equal(el, v) {
			return true
		}
	}
	return false
}

// Times implements "*".
func Times(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	switch {
	case sig("rr", a, b):
		return a.(value.Num).Mul(b.(value.Num)), nil
	case sig("rq", a, b):
		return repeatSeq(b, a.(value.Num)), nil
	case sig("qr", a, b):
		return repeatSeq(a, b.(value.Num)), nil
	case sig("ss", a, b):
		var out strings.Builder
		as, bs := []rune(string(a.(value.Str))), []rune(string(b.(value.Str)))
		for _, p := range as {
			for _, q := range bs {
				out.WriteRune(p)
				out.WriteRune(q)
			}
		}
		return value.Str(out.String()), nil
	case sig("qq", a, b):
		ae, be := seqElems(a), seqElems(b)
		out := make(value.List, 0, len(ae)*len(be))
		for _, p := range ae {
			for _, q := range be {
				out = append(out, value.List{p, q})
			}
		}
		return out, nil
	}
	return nil, &value.BadTypeCombinationError{Func: "times", Args: args}
}

func repeatSeq(seq value.Value, n value.Num) value.Value {
	count := n.FloorInt64()
	if count < 0 {
		count = 0
	}
	elems := seqElems(seq)
	out := make([]value.Value, 0, int64(len(elems))*count)
	for i := int64(0); i < count; i++ {
		out = append(out, elems...)
	}
	return rebuildSeq(seq, out)
}

// Pow implements "^".
func Pow(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	switch {
	case sig("rr", a, b):
		return a.(value.Num).Pow(b.(value.Num)), nil
	case sig("sr", a, b), sig("qr", a, b):
		count := int(b.(value.Num).FloorInt64())
		if count < 0 {
			count = 0
		}
		elems := seqElems(a)
		return cartesianPower(a, elems, count), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "power", Args: args}
}

func cartesianPower(like value.Value, elems []value.Value, n int) value.Value {
	combos := [][]value.Value{{}}
	for i := 0; i < n; i++ {
		next := make([][]value.Value, 0, len(combos)*len(elems))
		for _, c := range combos {
			for _, e := range elems {
				entry := append(append([]value.Value{}, c...), e)
				next = append(next, entry)
			}
		}
		combos = next
	}
	out := make(value.List, len(combos))
	for i, c := range combos {
		out[i] = rebuildSeq(like, c)
	}
	return out
}

// Lt implements "<": ordering on matched types, or a prefix slice for
// qr/rq.
func Lt(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	if v, ok := sliceOp(a, b, true); ok {
		return v, nil
	}
	if ordComparable(a, b) {
		return boolNum(value.Compare(a, b) < 0), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "less_than", Args: args}
}

// Gt implements ">": ordering on matched types, or a suffix slice for
// qr/rq.
func Gt(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	if v, ok := sliceOp(a, b, false); ok {
		return v, nil
	}
	if ordComparable(a, b) {
		return boolNum(value.Compare(a, b) > 0), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "greater_than", Args: args}
}

func ordComparable(a, b value.Value) bool {
	switch a.(type) {
	case value.Num:
		_, ok := b.(value.Num)
		return ok
	case value.Str:
		_, ok := b.(value.Str)
		return ok
	case value.List:
		_, ok := b.(value.List)
		return ok
	}
	return false
}

// sliceOp handles the qr/rq cases shared by "<" (prefix) and ">"
// (suffix): the seq operand is sliced to floor(real) elements from the
// matching end.
func sliceOp(a, b value.Value, prefix bool) (value.Value, bool) {
	var seq value.Value
	var n int
	switch {
	case sig("qr", a, b):
		seq, n = a, int(b.(value.Num).FloorInt64())
	case sig("rq", a, b):
		seq, n = b, int(a.(value.Num).FloorInt64())
	default:
		return nil, false
	}
	elems := seqElems(seq)
	if n < 0 {
		n = 0
	}
	if n > len(elems) {
		n = len(elems)
	}
	if prefix {
		return rebuildSeq(seq, elems[:n]), true
	}
	return rebuildSeq(seq, elems[len(elems)-n:]), true
}

func boolNum(b bool) value.Num {
	if b {
		return value.Int(1)
	}
	return value.Int(0)
}

// Unique implements "{": a seq's elements deduplicated in first-
// occurrence order, always as a list; any other non-nil value is
// wrapped in a one-element list.
func Unique(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if value.IsNil(a) {
		return nil, &value.BadTypeCombinationError{Func: "unique", Args: args}
	}
	elems := seqElems(a)
	if elems == nil {
		return value.List{a}, nil
	}
	out := value.List{}
	for _, el := range elems {
		if !listContains(out, el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// At implements "@": sequence subscript with the real operand floored to
// an integer index. Negative indices count from the end; an index
// outside the sequence's bounds is an error.
func At(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	var seq value.Value
	var idx int
	switch {
	case sig("qr", a, b):
		seq, idx = a, int(b.(value.Num).FloorInt64())
	case sig("rq", a, b):
		seq, idx = b, int(a.(value.Num).FloorInt64())
	default:
		return nil, &value.BadTypeCombinationError{Func: "at", Args: args}
	}
	elems := seqElems(seq)
	i := idx
	if i < 0 {
		i += len(elems)
	}
	if i < 0 || i >= len(elems) {
		return nil, &value.IndexError{Index: idx, Len: len(elems)}
	}
	return elems[i], nil
}

// Repr implements "`": a string renders to its single-quoted repr form;
// anything else renders the way auto-print would.
func Repr(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if s, ok := a.(value.Str); ok {
		return value.Str(value.ReprString(string(s))), nil
	}
	return value.Str(value.AutoPrint(a)), nil
}

// In implements "}": membership. al -> a is an element of list b;
// otherwise a substring test on the stringified forms.
func In(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	if sig("al", a, b) {
		return boolNum(listContains(b.(value.List), a)), nil
	}
	return boolNum(strings.Contains(stringify(b), stringify(a))), nil
}

// Head implements "h": a seq's first element, or num+1.
func Head(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if n, ok := a.(value.Num); ok {
		return n.Add(value.Int(1)), nil
	}
	elems := seqElems(a)
	if elems == nil {
		return nil, &value.BadTypeCombinationError{Func: "head", Args: args}
	}
	if len(elems) == 0 {
		return nil, &value.IndexError{Index: 0, Len: 0}
	}
	return elems[0], nil
}

// Last implements "H": a seq's last element.
func Last(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	elems := seqElems(a)
	if elems == nil {
		return nil, &value.BadTypeCombinationError{Func: "last", Args: args}
	}
	if len(elems) == 0 {
		return nil, &value.IndexError{Index: -1, Len: 0}
	}
	return elems[len(elems)-1], nil
}

// Tail implements "t": a seq with its first element dropped, or num-1.
func Tail(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if n, ok := a.(value.Num); ok {
		return n.Sub(value.Int(1)), nil
	}
	elems := seqElems(a)
	if elems == nil {
		return nil, &value.BadTypeCombinationError{Func: "tail", Args: args}
	}
	if len(elems) == 0 {
		return rebuildSeq(a, elems), nil
	}
	return rebuildSeq(a, elems[1:]), nil
}

// Len implements "l": a seq's length, or log2 of a number.
func Len(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if elems := seqElems(a); elems != nil {
		return value.Int(int64(len(elems))), nil
	}
	if n, ok := a.(value.Num); ok {
		return n.Log2(), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "len", Args: args}
}

// Eq implements "q": structural equality, rendered as 0/1.
func Eq(args []value.Value) (value.Value, error) {
	return boolNum(value.Equal(arg(args, 0), arg(args, 1))), nil
}

// Ne implements "n": structural inequality, rendered as 0/1.
func Ne(args []value.Value) (value.Value, error) {
	return boolNum(!value.Equal(arg(args, 0), arg(args, 1))), nil
}

// StrOp implements "s": parse a string as a number (empty -> 0), left-fold
// a list with "+", or floor a number.
func StrOp(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	switch x := a.(type) {
	case value.Str:
		if string(x) == "" {
			return value.Int(0), nil
		}
		return parseNum(string(x))
	case value.List:
		if len(x) == 0 {
			return value.Int(0), nil
		}
		acc := x[0]
		for _, el := range x[1:] {
			sum, err := Plus([]value.Value{acc, el})
			if err != nil {
				return nil, err
			}
			acc = sum
		}
		return acc, nil
	case value.Num:
		return value.FromBigInt(x.Floor()), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "str", Args: args}
}

func parseNum(s string) (value.Value, error) {
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return value.Int(i), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, &value.BadTypeCombinationError{Func: "str", Args: []value.Value{value.Str(s)}}
	}
	return value.FromFloat64(f), nil
}

// Unary implements "U": a real becomes its makeiter expansion as a list;
// a seq becomes its list of indices.
func Unary(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if n, ok := a.(value.Num); ok {
		return realRange(n), nil
	}
	if elems := seqElems(a); elems != nil {
		out := make(value.List, len(elems))
		for i := range elems {
			out[i] = value.Int(int64(i))
		}
		return out, nil
	}
	return nil, &value.BadTypeCombinationError{Func: "unary_range", Args: args}
}

// Sort implements "S": a real becomes the sorted range 1..=a (a negative
// real gives the ascending range floor(a)..=-1); a seq sorts ascending.
func Sort(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	if n, ok := a.(value.Num); ok {
		f := n.Floor().Int64()
		out := value.List{}
		if f >= 0 {
			for i := int64(1); i <= f; i++ {
				out = append(out, value.Int(i))
			}
		} else {
			for i := f; i <= -1; i++ {
				out = append(out, value.Int(i))
			}
		}
		return out, nil
	}
	elems := seqElems(a)
	if elems == nil {
		return nil, &value.BadTypeCombinationError{Func: "sort", Args: args}
	}
	sorted := append([]value.Value{}, elems...)
	sort.SliceStable(sorted, func(i, j int) bool { return value.Less(sorted[i], sorted[j]) })
	return rebuildSeq(a, sorted), nil
}

// Factorial implements ".!": factorial of a non-negative integer, or
// Gamma(n+1) for a non-integer real.
func Factorial(args []value.Value) (value.Value, error) {
	a := arg(args, 0)
	n, ok := a.(value.Num)
	if !ok {
		return nil, &value.BadTypeCombinationError{Func: "factorial", Args: args}
	}
	f, ok := n.Factorial()
	if !ok {
		return nil, &value.BadTypeCombinationError{Func: "factorial", Args: args}
	}
	return f, nil
}

// Shl implements ".<": an integer bit-shift on rr, or a left rotation on
// qr.
func Shl(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	if sig("rr", a, b) {
		return a.(value.Num).Shl(b.(value.Num)), nil
	}
	if sig("qr", a, b) {
		return rotate(a, int(b.(value.Num).FloorInt64()), true), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "leftshift", Args: args}
}

// Shr implements ".>": an integer bit-shift on rr, or a right rotation
// on qr.
func Shr(args []value.Value) (value.Value, error) {
	a, b := arg(args, 0), arg(args, 1)
	if sig("rr", a, b) {
		return a.(value.Num).Shr(b.(value.Num)), nil
	}
	if sig("qr", a, b) {
		return rotate(a, int(b.(value.Num).FloorInt64()), false), nil
	}
	return nil, &value.BadTypeCombinationError{Func: "rightshift", Args: args}
}

func rotate(seq value.Value, n int, left bool) value.Value {
	elems := seqElems(seq)
	if len(elems) == 0 {
		return rebuildSeq(seq, elems)
	}
	n = ((n % len(elems)) + len(elems)) % len(elems)
	if !left {
		n = len(elems) - n
	}
	out := append(append([]value.Value{}, elems[n:]...), elems[:n]...)
	return rebuildSeq(seq, out)
}
