package solver

import "fmt"

// Coef is an exact signed rational with 32-bit numerator and denominator,
// used for the coefficients of a LinExpr. Rationals are always stored
// normalized: reduced to lowest terms, with a strictly positive
// denominator. Exact arithmetic (no floating point) lets propagators
// divide by a coefficient and test the result for integrality without
// ever inventing a false contradiction from rounding error.
//
// Adapted from the teacher's Rational type (gitrdm/gokanlogic rational.go),
// narrowed to int32 per spec and extended with the floor/ceiling/compare
// operations bounds propagation (equality.go) requires.
type Coef struct {
	Num int32
	Den int32
}

// CoefFromInt builds the coefficient equal to the integer v.
func CoefFromInt(v int32) Coef {
	return Coef{Num: v, Den: 1}
}

// NewCoef builds num/den in normalized form. Panics if den is zero.
func NewCoef(num, den int32) Coef {
	if den == 0 {
		panic("solver: coefficient with zero denominator")
	}
	if num == 0 {
		return Coef{Num: 0, Den: 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd32(abs32(num), den)
	return Coef{Num: num / g, Den: den / g}
}

var (
	coefZero = CoefFromInt(0)
	coefOne  = CoefFromInt(1)
)

// Add returns c + other.
func (c Coef) Add(other Coef) Coef {
	return NewCoef(c.Num*other.Den+other.Num*c.Den, c.Den*other.Den)
}

// Sub returns c - other.
func (c Coef) Sub(other Coef) Coef {
	return NewCoef(c.Num*other.Den-other.Num*c.Den, c.Den*other.Den)
}

// Mul returns c * other.
func (c Coef) Mul(other Coef) Coef {
	return NewCoef(c.Num*other.Num, c.Den*other.Den)
}

// Div returns c / other. Panics if other is zero.
func (c Coef) Div(other Coef) Coef {
	if other.Num == 0 {
		panic("solver: division of coefficient by zero")
	}
	return NewCoef(c.Num*other.Den, c.Den*other.Num)
}

// Neg returns -c.
func (c Coef) Neg() Coef {
	return Coef{Num: -c.Num, Den: c.Den}
}

// IsZero reports whether c is zero.
func (c Coef) IsZero() bool { return c.Num == 0 }

// IsOne reports whether c is exactly one.
func (c Coef) IsOne() bool { return c.Num == c.Den }

// Sign returns -1, 0 or 1 according to the sign of c.
func (c Coef) Sign() int {
	switch {
	case c.Num < 0:
		return -1
	case c.Num > 0:
		return 1
	default:
		return 0
	}
}

// Cmp returns -1, 0 or 1 according to whether c is less than, equal to, or
// greater than other.
func (c Coef) Cmp(other Coef) int {
	lhs := int64(c.Num) * int64(other.Den)
	rhs := int64(other.Num) * int64(c.Den)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// IsInteger reports whether c has no fractional part.
func (c Coef) IsInteger() bool { return c.Den == 1 }

// ToInt returns c as an integer. Behavior is undefined if !c.IsInteger().
func (c Coef) ToInt() Val { return Val(c.Num / c.Den) }

// Floor returns the greatest integer <= c.
func (c Coef) Floor() Val {
	q := c.Num / c.Den
	if c.Num%c.Den != 0 && (c.Num < 0) != (c.Den < 0) {
		q--
	}
	return Val(q)
}

// Ceil returns the least integer >= c.
func (c Coef) Ceil() Val {
	q := c.Num / c.Den
	if c.Num%c.Den != 0 && (c.Num < 0) == (c.Den < 0) {
		q++
	}
	return Val(q)
}

// String renders "num/den", or just "num" when the coefficient is integral.
func (c Coef) String() string {
	if c.Den == 1 {
		return fmt.Sprintf("%d", c.Num)
	}
	return fmt.Sprintf("%d/%d", c.Num, c.Den)
}

func gcd32(a, b int32) int32 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
