package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orlp/pyth5/value"
)

func TestTruthy(t *testing.T) {
	assert.False(t, value.Truthy(value.Int(0)))
	assert.True(t, value.Truthy(value.Int(1)))
	assert.False(t, value.Truthy(value.Str("")))
	assert.True(t, value.Truthy(value.Str("x")))
	assert.False(t, value.Truthy(value.List{}))
	assert.True(t, value.Truthy(value.List{value.Int(0)}))
	assert.False(t, value.Truthy(value.Nil))
}

func TestEqualityInequalityDuality(t *testing.T) {
	// For all a,b: q a b + n a b == 1. Equal and its negation must
	// always disagree, never both true or both false.
	pairs := [][2]value.Value{
		{value.Int(1), value.Int(1)},
		{value.Int(1), value.Int(2)},
		{value.Str("a"), value.Str("a")},
		{value.Str("a"), value.Str("b")},
		{value.List{value.Int(1)}, value.List{value.Int(1)}},
		{value.List{value.Int(1)}, value.Int(1)},
		{value.Nil, value.Nil},
		{value.Nil, value.Int(0)},
	}
	for _, p := range pairs {
		eq := value.Equal(p[0], p[1])
		q := boolToInt(eq)
		n := boolToInt(!eq)
		assert.Equal(t, 1, q+n)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestCompareOrdersListsLexicographically(t *testing.T) {
	short := value.List{value.Int(1)}
	long := value.List{value.Int(1), value.Int(2)}
	assert.True(t, value.Less(short, long))
	assert.False(t, value.Less(long, short))
}

func TestEnv_NamesIncludesPresets(t *testing.T) {
	env := value.NewEnv()
	names := env.Names()
	assert.Contains(t, names, "Z")
	assert.Contains(t, names, "$A")
}

func TestEnv_SetOverwrites(t *testing.T) {
	env := value.NewEnv()
	env.Set("Z", value.Int(99))
	got, ok := env.Get("Z")
	assert.True(t, ok)
	assert.True(t, value.Equal(got, value.Int(99)))
}

func TestFindClosestMatch(t *testing.T) {
	got := value.FindClosestMatch("pint", []string{"print", "plus", "times"})
	assert.Equal(t, "print", got)
}
