package value

// Compare orders two values, returning -1, 0 or 1. Num compares
// numerically, Str lexicographically by rune, List lexicographically by
// element (shorter-is-smaller on a common prefix). Comparing values of
// different variants falls back to ordering by TypeName, since the
// dispatch tables never call Compare across variants except where "S"
// (sort) or "o" (order-by) is handed a deliberately heterogeneous list.
func Compare(a, b Value) int {
	switch x := a.(type) {
	case Num:
		if y, ok := b.(Num); ok {
			return x.Cmp(y)
		}
	case Str:
		if y, ok := b.(Str); ok {
			return compareRunes(string(x), string(y))
		}
	case List:
		if y, ok := b.(List); ok {
			return compareLists(x, y)
		}
	}
	ta, tb := TypeName(a), TypeName(b)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

func compareRunes(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			if ra[i] < rb[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ra) < len(rb):
		return -1
	case len(ra) > len(rb):
		return 1
	default:
		return 0
	}
}

func compareLists(a, b List) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Equal reports deep value equality across all variants, used by the
// "q"/"n" equality operators.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Num:
		y, ok := b.(Num)
		return ok && x.Equal(y)
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && x == y
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	default:
		return false
	}
}
