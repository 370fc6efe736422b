package ops

import "github.com/orlp/pyth5/value"

// MakeIter implements makeiter(x): a number becomes the integer range
// [0, floor(x)) for x >= 0, or [floor(x), 0) for x < 0, stepping by 1;
// a string or list is returned unchanged as a Seq (iterated by rune or
// by element).
func MakeIter(v value.Value) value.Value {
	if n, ok := v.(value.Num); ok {
		return realRange(n)
	}
	return v
}

func realRange(n value.Num) value.List {
	f := n.Floor().Int64()
	if f >= 0 {
		out := make(value.List, 0, f)
		for i := int64(0); i < f; i++ {
			out = append(out, value.Int(i))
		}
		return out
	}
	out := make(value.List, 0, -f)
	for i := f; i < 0; i++ {
		out = append(out, value.Int(i))
	}
	return out
}

// Elements is the exported form of seqElems: a Seq's elements as a
// []value.Value, or nil if v is not a Seq. Package interp uses this to
// drive F-loops and the m/f/o lambda operators over the result of
// MakeIter.
func Elements(v value.Value) []value.Value { return seqElems(v) }

// RebuildSeq is the exported form of rebuildSeq: packs elems back into
// the same Seq variant as like. Package interp uses this to give f/o's
// filtered/reordered result the same type (Str or List) as its input.
func RebuildSeq(like value.Value, elems []value.Value) value.Value {
	return rebuildSeq(like, elems)
}

// seqElems returns a Seq's elements as a []value.Value: a string's
// Unicode scalar values wrapped as one-rune Str values, or a list's
// elements verbatim.
func seqElems(v value.Value) []value.Value {
	switch x := v.(type) {
	case value.Str:
		runes := []rune(string(x))
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.Str(string(r))
		}
		return out
	case value.List:
		out := make([]value.Value, len(x))
		copy(out, x)
		return out
	default:
		return nil
	}
}

// rebuildSeq packs elems back into the same Seq variant as like, joining
// one-rune Str elements back into a single Str when like is a Str.
func rebuildSeq(like value.Value, elems []value.Value) value.Value {
	if _, ok := like.(value.Str); ok {
		var b []byte
		for _, e := range elems {
			if s, ok := e.(value.Str); ok {
				b = append(b, []byte(s)...)
			}
		}
		return value.Str(b)
	}
	out := make(value.List, len(elems))
	copy(out, elems)
	return out
}
