package bigint

import (
	"errors"

	mu "github.com/avdva/bigint/internal/mathutil"
)

var (
	// ErrDivisionByZero is returned by division and modulo, if the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Div returns the floor of x/y, i.e. the quotient rounded toward negative infinity.
// If y == 0, Div returns ErrDivisionByZero.
func (x Int) Div(y Int) (Int, error) {
	a, b := x.mag(), y.mag()
	if b.isZero() {
		return zero, ErrDivisionByZero
	}
	neg := x.neg != y.neg
	if cmpNat(a, b) < 0 {
		// the exact quotient is in (-1, 1).
		if neg && !a.isZero() {
			return New(-1), nil
		}
		return zero, nil
	}
	q, r := divNat(a, b)
	if neg && !r.isZero() {
		// truncation rounded toward zero, move one step down.
		q = addNat(q, oneNat)
	}
	return makeInt(q, neg), nil
}

// Mod returns x - y*floor(x/y). A non-zero result has the sign of y.
// If y == 0, Mod returns ErrDivisionByZero.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivMod returns the floor quotient and the remainder, so that
// x = y*quo + rem and 0 <= |rem| < |y|.
// If y == 0, DivMod returns ErrDivisionByZero.
func (x Int) DivMod(y Int) (quo, rem Int, err error) {
	quo, err = x.Div(y)
	if err != nil {
		return zero, zero, err
	}
	return quo, x.Sub(quo.Mul(y)), nil
}

// MustDiv is like Div, but panics if y == 0.
func (x Int) MustDiv(y Int) Int {
	q, err := x.Div(y)
	if err != nil {
		panic(err)
	}
	return q
}

// MustMod is like Mod, but panics if y == 0.
func (x Int) MustMod(y Int) Int {
	r, err := x.Mod(y)
	if err != nil {
		panic(err)
	}
	return r
}

// DivAssign sets z to floor(z/y) and returns z.
// On error z is left unchanged.
func (z *Int) DivAssign(y Int) (*Int, error) {
	q, err := z.Div(y)
	if err != nil {
		return z, err
	}
	*z = q
	return z, nil
}

// ModAssign sets z to z mod y and returns z.
// On error z is left unchanged.
func (z *Int) ModAssign(y Int) (*Int, error) {
	r, err := z.Mod(y)
	if err != nil {
		return z, err
	}
	*z = r
	return z, nil
}

// divNat performs the long division of magnitudes, |a| >= |b| > 0.
// Every quotient limb is found with a binary search over [0, base).
// Returns the truncated quotient and the remainder.
func divNat(a, b nat) (q, r nat) {
	q = make(nat, len(a))
	var current nat
	for i := len(a) - 1; i >= 0; i-- {
		// current = current*base + a[i]
		current = append(nat{a[i]}, current...).norm()
		d := searchQuotientLimb(current, b)
		q[i] = d
		if d > 0 {
			current = subNat(current, mulLimb(b, d))
		}
	}
	return q.norm(), current.norm()
}

// searchQuotientLimb returns the largest d in [0, base), such that d*b <= current.
func searchQuotientLimb(current, b nat) uint32 {
	if cmpNat(current, b) < 0 {
		return 0
	}
	left, right := uint32(0), uint32(base-1)
	for left < right {
		mid := left + (right-left+1)/2
		if cmpNat(mulLimb(b, mid), current) <= 0 {
			left = mid
		} else {
			right = mid - 1
		}
	}
	return left
}

// mulLimb returns n*d for a single limb d.
func mulLimb(n nat, d uint32) nat {
	result := make(nat, len(n), len(n)+1)
	var carry uint32
	for i, ni := range n {
		carry, result[i] = mu.MulAddLimb(ni, d, 0, carry)
	}
	if carry > 0 {
		result = append(result, carry)
	}
	return result.norm()
}
