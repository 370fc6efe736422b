package value

import (
	"math"
	"math/big"
	"strconv"
)

// Num is a rational or integer number, plus the two
// infinities +inf/-inf. Internally every finite value is an exact
// arbitrary-precision rational (*big.Rat) — even results that originated
// from a floating-point computation are converted to a rational (Gamma
// and Log2 to the exact dyadic rational that float64 actually holds, via
// (*big.Rat).SetFloat64; fractional powers to the shortest decimal that
// round-trips the float64, see Pow), so the rest of the runtime never has
// to special-case "inexact" numbers.
type Num struct {
	inf int8    // 0 = finite, +1 = +inf, -1 = -inf
	r   *big.Rat
}

// Int builds an exact integer Num.
func Int(i int64) Num { return Num{r: big.NewRat(i, 1)} }

// FromBigInt builds an exact integer Num from a *big.Int.
func FromBigInt(i *big.Int) Num { return Num{r: new(big.Rat).SetInt(i)} }

// FromRat builds an exact Num from a *big.Rat.
func FromRat(r *big.Rat) Num { return Num{r: new(big.Rat).Set(r)} }

// FromFloat64 builds a Num holding the exact dyadic rational a float64
// bit pattern represents. Used as the bridge for inherently
// floating-point computations (Gamma, Log2, arithmetic on infinities).
func FromFloat64(f float64) Num {
	if math.IsInf(f, 1) {
		return PosInf()
	}
	if math.IsInf(f, -1) {
		return NegInf()
	}
	if math.IsNaN(f) {
		// Indeterminate forms (inf - inf, 0 * inf) collapse to 0.
		return Int(0)
	}
	r := new(big.Rat)
	r.SetFloat64(f)
	return Num{r: r}
}

// PosInf and NegInf build the two infinities.
func PosInf() Num { return Num{inf: 1} }
func NegInf() Num { return Num{inf: -1} }

func (Num) isValue() {}

// IsInf reports whether n is one of the two infinities.
func (n Num) IsInf() bool { return n.inf != 0 }

// InfSign returns +1/-1 for an infinity, 0 for a finite number.
func (n Num) InfSign() int { return int(n.inf) }

// Sign returns -1, 0 or +1. Infinities have the sign of their direction.
func (n Num) Sign() int {
	if n.inf != 0 {
		return int(n.inf)
	}
	return n.r.Sign()
}

// IsInteger is the "real-integer" predicate used by several operators to
// floor inputs.
func (n Num) IsInteger() bool {
	if n.inf != 0 {
		return false
	}
	return n.r.IsInt()
}

// Rat returns the underlying exact rational. Panics on an infinity;
// callers must check IsInf first.
func (n Num) Rat() *big.Rat {
	if n.inf != 0 {
		panic("value: Rat() called on an infinity")
	}
	return n.r
}

// Float64 returns the nearest float64 approximation.
func (n Num) Float64() float64 {
	if n.inf > 0 {
		return math.Inf(1)
	}
	if n.inf < 0 {
		return math.Inf(-1)
	}
	f, _ := n.r.Float64()
	return f
}

// Floor returns floor(n) as a *big.Int. Panics on an infinity.
func (n Num) Floor() *big.Int {
	r := n.Rat()
	q := new(big.Int)
	m := new(big.Int)
	// Denom() is always positive, so Euclidean DivMod's quotient is
	// exactly the floor division.
	q.DivMod(r.Num(), r.Denom(), m)
	return q
}

// FloorInt64 is a convenience wrapper around Floor for operators that
// only ever see small ranges/shift counts.
func (n Num) FloorInt64() int64 {
	return n.Floor().Int64()
}

// Equal reports exact equality, used by the "q"/"n" operators and by
// go-cmp in tests (registered as a cmp.Comparer, see value/cmp.go).
func (n Num) Equal(o Num) bool {
	if n.inf != 0 || o.inf != 0 {
		return n.inf == o.inf
	}
	return n.r.Cmp(o.r) == 0
}

// Cmp orders two finite-or-infinite numbers; infinities compare as more
// extreme than any finite value.
func (n Num) Cmp(o Num) int {
	switch {
	case n.inf != 0 || o.inf != 0:
		nv, ov := n.rankInf(), o.rankInf()
		if nv == ov {
			return 0
		}
		if nv < ov {
			return -1
		}
		return 1
	default:
		return n.r.Cmp(o.r)
	}
}

// rankInf maps a (possibly infinite) Num to a totally ordered rank:
// -inf < any finite < +inf, and finite values compare via a large but
// sentinel-free path (only used when at least one side is infinite).
func (n Num) rankInf() float64 {
	if n.inf > 0 {
		return math.Inf(1)
	}
	if n.inf < 0 {
		return math.Inf(-1)
	}
	return n.Float64()
}

// Neg returns -n.
func (n Num) Neg() Num {
	if n.inf != 0 {
		return Num{inf: -n.inf}
	}
	return Num{r: new(big.Rat).Neg(n.r)}
}

// Abs returns |n|.
func (n Num) Abs() Num {
	if n.inf != 0 {
		return PosInf()
	}
	return Num{r: new(big.Rat).Abs(n.r)}
}

// Add, Sub and Mul are exact on finite operands; an infinite operand
// routes through float64 arithmetic, which gives the expected saturating
// behavior (inf + finite = inf, and so on).
func (n Num) Add(o Num) Num {
	if n.inf != 0 || o.inf != 0 {
		return FromFloat64(n.Float64() + o.Float64())
	}
	return Num{r: new(big.Rat).Add(n.r, o.r)}
}

func (n Num) Sub(o Num) Num {
	if n.inf != 0 || o.inf != 0 {
		return FromFloat64(n.Float64() - o.Float64())
	}
	return Num{r: new(big.Rat).Sub(n.r, o.r)}
}

func (n Num) Mul(o Num) Num {
	if n.inf != 0 || o.inf != 0 {
		return FromFloat64(n.Float64() * o.Float64())
	}
	return Num{r: new(big.Rat).Mul(n.r, o.r)}
}

// Div returns n/o, exact. ok is false on division by zero.
func (n Num) Div(o Num) (Num, bool) {
	if o.r.Sign() == 0 {
		return Num{}, false
	}
	return Num{r: new(big.Rat).Quo(n.r, o.r)}, true
}

// Pow computes n^exp. Integer exponents on a finite base stay exact
// (repeated squaring over big.Rat); everything else bridges through
// float64, keeping the shortest decimal that round-trips the float64
// result ("^.04 .5 -> 0.2" rather than the dyadic 0.2000000000000000111).
func (n Num) Pow(exp Num) Num {
	if !exp.IsInf() && exp.IsInteger() && !n.IsInf() {
		if n.Sign() == 0 && exp.Sign() < 0 {
			return PosInf()
		}
		e := exp.Floor() // exact since IsInteger
		return Num{r: ratPowInt(n.r, e)}
	}
	f := math.Pow(n.Float64(), exp.Float64())
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return FromFloat64(f)
	}
	r, _ := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	return Num{r: r}
}

func ratPowInt(base *big.Rat, e *big.Int) *big.Rat {
	if e.Sign() == 0 {
		return big.NewRat(1, 1)
	}
	neg := e.Sign() < 0
	abs := new(big.Int).Abs(e)
	num := new(big.Int).Exp(base.Num(), abs, nil)
	den := new(big.Int).Exp(base.Denom(), abs, nil)
	r := new(big.Rat).SetFrac(num, den)
	if neg {
		r.Inv(r)
	}
	return r
}

// Factorial implements ".!": factorial of a non-negative integer exactly,
// or Gamma(n+1) for a non-integer real.
func (n Num) Factorial() (Num, bool) {
	if n.IsInteger() {
		i := n.Floor()
		if i.Sign() < 0 {
			return Num{}, false
		}
		f := big.NewInt(1)
		one := big.NewInt(1)
		for c := big.NewInt(1); c.Cmp(i) <= 0; c.Add(c, one) {
			f.Mul(f, c)
		}
		return FromBigInt(f), true
	}
	return FromFloat64(math.Gamma(n.Float64() + 1)), true
}

// Shl and Shr implement ".<"/".>" on two numbers: both operands are
// floored to integers first.
func (n Num) Shl(by Num) Num {
	i := n.Floor()
	shift := uint(by.FloorInt64())
	return FromBigInt(new(big.Int).Lsh(i, shift))
}

func (n Num) Shr(by Num) Num {
	i := n.Floor()
	shift := uint(by.FloorInt64())
	return FromBigInt(new(big.Int).Rsh(i, shift))
}

// Log2 implements the real branch of "l" (length/log operator).
func (n Num) Log2() Num {
	return FromFloat64(math.Log2(n.Float64()))
}
