package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/orlp/pyth5/value"
)

func TestNum_ExactHalf(t *testing.T) {
	half, ok := value.Int(1).Div(value.Int(2))
	assert.True(t, ok)
	assert.Equal(t, "0.5", value.FormatNum(half))
}

func TestNum_DivByZeroNotOK(t *testing.T) {
	_, ok := value.Int(1).Div(value.Int(0))
	assert.False(t, ok)
}

func TestNum_FactorialExactForIntegers(t *testing.T) {
	f, ok := value.Int(5).Factorial()
	assert.True(t, ok)
	assert.Equal(t, "120", value.FormatNum(f))
}

func TestNum_FactorialNegativeIntegerFails(t *testing.T) {
	_, ok := value.Int(-1).Factorial()
	assert.False(t, ok)
}

func TestNum_PowFractionalExponent(t *testing.T) {
	// ^.04 .5 -> 0.2: the float64 bridge is lossless here.
	base, _ := value.Int(4).Div(value.Int(100))
	half, _ := value.Int(1).Div(value.Int(2))
	got := base.Pow(half)
	assert.Equal(t, "0.2", value.FormatNum(got))
}

func TestNum_PowIntegerExponentStaysExact(t *testing.T) {
	got := value.Int(2).Pow(value.Int(10))
	assert.Equal(t, "1024", value.FormatNum(got))
}

func TestNum_InfinityFormatting(t *testing.T) {
	assert.Equal(t, "inf", value.FormatNum(value.PosInf()))
	assert.Equal(t, "-inf", value.FormatNum(value.NegInf()))
}

func TestNum_CmpOrdersInfinitiesOutside(t *testing.T) {
	assert.Equal(t, -1, value.NegInf().Cmp(value.Int(0)))
	assert.Equal(t, 1, value.PosInf().Cmp(value.Int(1000000)))
	assert.Equal(t, 0, value.PosInf().Cmp(value.PosInf()))
}

func TestNum_EqualUsesGoCmpComparer(t *testing.T) {
	a, _ := value.Int(1).Div(value.Int(3))
	b, _ := value.Int(2).Div(value.Int(6))
	if diff := cmp.Diff(a, b, value.CmpOptions()...); diff != "" {
		t.Errorf("expected 1/3 == 2/6 under the Num comparer, got diff:\n%s", diff)
	}
}

func TestNum_ShiftOperatesOnFlooredIntegers(t *testing.T) {
	got := value.Int(1).Shl(value.Int(4))
	assert.Equal(t, "16", value.FormatNum(got))
}
