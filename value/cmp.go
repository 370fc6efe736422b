package value

import "github.com/google/go-cmp/cmp"

// CmpOptions returns the cmp.Option set tests should pass to cmp.Diff /
// cmp.Equal when comparing Values: Num embeds a *big.Rat, which
// reflect.DeepEqual (and so plain go-cmp) compares by pointer-reachable
// structure rather than by value, so a dedicated Comparer is required.
func CmpOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(a, b Num) bool { return a.Equal(b) }),
	}
}
