package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlp/pyth5/ops"
	"github.com/orlp/pyth5/value"
)

func dispatch(t *testing.T, op string, args ...value.Value) value.Value {
	t.Helper()
	v, err, ok := ops.Dispatch(op, args)
	require.True(t, ok, "operator %q not found in dispatch table", op)
	require.NoError(t, err)
	return v
}

func TestPlus_NumAndNil(t *testing.T) {
	// The "r_" signature: a missing second argument takes the absolute
	// value of the first, so "+_42)" gives 42.
	got := dispatch(t, "+", value.Int(-42), value.Nil)
	assert.Equal(t, "42", value.FormatNum(got.(value.Num)))
}

func TestPlus_Strings(t *testing.T) {
	got := dispatch(t, "+", value.Str("hello"), value.Str(", world"))
	assert.Equal(t, value.Str("hello, world"), got)
}

func TestTimes_StringRepeat(t *testing.T) {
	got := dispatch(t, "*", value.Int(3), value.Str("ni"))
	assert.Equal(t, value.Str("ninini"), got)
}

func TestTimes_ListCartesianProduct(t *testing.T) {
	a := value.List{value.Int(10), value.Int(20)}
	b := value.List{value.Int(40), value.Int(10)}
	got := dispatch(t, "*", a, b)
	list, ok := got.(value.List)
	require.True(t, ok)
	assert.Equal(t, 4, len(list))
}

func TestFactorial(t *testing.T) {
	got := dispatch(t, ".!", value.Int(5))
	assert.Equal(t, "120", value.FormatNum(got.(value.Num)))
}

func TestSort_Strings(t *testing.T) {
	got := dispatch(t, "S", value.List{value.Str("foo"), value.Str("bar")})
	assert.Equal(t, "['bar', 'foo']", value.Repr(got))
}

func TestUnique_PreservesFirstOccurrenceOrder(t *testing.T) {
	got := dispatch(t, "{", value.List{value.Int(3), value.Int(1), value.Int(3), value.Int(2), value.Int(1)})
	assert.Equal(t, "[3, 1, 2]", value.Repr(got))
}

func TestUnique_StringDeduplicatesCharacters(t *testing.T) {
	got := dispatch(t, "{", value.Str("abca"))
	assert.Equal(t, "['a', 'b', 'c']", value.Repr(got))
}

func TestAt_IndexesSequence(t *testing.T) {
	got := dispatch(t, "@", value.Str("abc"), value.Int(1))
	assert.Equal(t, value.Str("b"), got)
}

func TestAt_NegativeIndexCountsFromEnd(t *testing.T) {
	got := dispatch(t, "@", value.List{value.Int(10), value.Int(20)}, value.Int(-1))
	assert.True(t, value.Equal(got, value.Int(20)))
}

func TestAt_OutOfRangeErrors(t *testing.T) {
	_, err, ok := ops.Dispatch("@", []value.Value{value.Str("ab"), value.Int(5)})
	require.True(t, ok)
	var idxErr *value.IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestHead_EmptyStringErrors(t *testing.T) {
	_, err, ok := ops.Dispatch("h", []value.Value{value.Str("")})
	require.True(t, ok)
	assert.Error(t, err)
	var idxErr *value.IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestDispatch_UnknownOperatorNotOK(t *testing.T) {
	_, _, ok := ops.Dispatch("not-an-operator", nil)
	assert.False(t, ok)
}

func TestMakeIter_NonNegativeIntegerIsZeroBasedRange(t *testing.T) {
	// For any non-negative integer n, U n equals [0,1,...,n-1].
	got := ops.Elements(ops.MakeIter(value.Int(5)))
	require.Len(t, got, 5)
	for i, v := range got {
		assert.True(t, value.Equal(v, value.Int(int64(i))))
	}
}

func TestMakeIter_NegativeIntegerCountsUpToZero(t *testing.T) {
	// For negative n, the list [n, n+1, ..., -1].
	got := ops.Elements(ops.MakeIter(value.Int(-3)))
	want := []int64{-3, -2, -1}
	require.Len(t, got, len(want))
	for i, v := range got {
		assert.True(t, value.Equal(v, value.Int(want[i])))
	}
}

func TestMakeIter_SeqPassesThroughUnchanged(t *testing.T) {
	l := value.List{value.Int(1), value.Int(2)}
	got := ops.MakeIter(l)
	assert.Equal(t, l, got)
}
