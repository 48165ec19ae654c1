package bigint

import (
	mu "github.com/avdva/bigint/internal/mathutil"
)

// cmpNat compares two normalized magnitudes.
// Returns -1 if |a| < |b|, 0 if |a| == |b|, 1 if |a| > |b|
func cmpNat(a, b nat) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addNat returns a+b. The result may be one limb longer than the longest operand.
func addNat(a, b nat) nat {
	if len(a) < len(b) {
		a, b = b, a
	}
	result := make(nat, len(a), len(a)+1)
	var carry uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		result[i], carry = mu.AddLimb(a[i], bi, carry)
	}
	if carry > 0 {
		result = append(result, carry)
	}
	return result.norm()
}

// subNat returns a-b. The caller guarantees |a| >= |b|.
func subNat(a, b nat) nat {
	result := make(nat, len(a))
	var borrow uint32
	for i := range a {
		var bi uint32
		if i < len(b) {
			bi = b[i]
		}
		result[i], borrow = mu.SubLimb(a[i], bi, borrow)
	}
	if borrow != 0 {
		panic("bigint: subtrahend is greater than minuend")
	}
	return result.norm()
}

// shiftNat returns n*base^k.
func shiftNat(n nat, k int) nat {
	if n.isZero() || k == 0 {
		return n
	}
	result := make(nat, k+len(n))
	copy(result[k:], n)
	return result
}

// Plus returns a copy of x.
func (x Int) Plus() Int {
	return x.Clone()
}

// Neg returns -x. Zero stays non-negative.
func (x Int) Neg() Int {
	return makeInt(x.mag(), !x.neg)
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	a, b := x.mag(), y.mag()
	if x.neg == y.neg {
		// x+y
		// or -x+(-y) = -(x+y)
		return makeInt(addNat(a, b), x.neg)
	}
	switch cmpNat(a, b) {
	case 0:
		return zero
	case 1: // the sign of the larger magnitude wins.
		return makeInt(subNat(a, b), x.neg)
	default:
		return makeInt(subNat(b, a), y.neg)
	}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg()) // x-y = x+(-y)
}

// AddAssign sets z to z+y and returns z.
func (z *Int) AddAssign(y Int) *Int {
	*z = z.Add(y)
	return z
}

// SubAssign sets z to z-y and returns z.
func (z *Int) SubAssign(y Int) *Int {
	*z = z.Sub(y)
	return z
}
