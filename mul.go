package bigint

import (
	mu "github.com/avdva/bigint/internal/mathutil"
)

// DefaultKaratsubaThreshold is the default value of KaratsubaThreshold.
const DefaultKaratsubaThreshold = 50

var (
	// KaratsubaThreshold is the operand size in limbs, at or below which
	// multiplication falls back to the schoolbook algorithm.
	// It is a tuning knob, not a correctness parameter: any value >= 1 gives
	// the same products. Values below 1 are treated as 1.
	// This variable is not thread-safe, so this should be changed on program start.
	KaratsubaThreshold = DefaultKaratsubaThreshold
)

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(mulNat(x.mag(), y.mag(), KaratsubaThreshold), x.neg != y.neg)
}

// MulAssign sets z to z*y and returns z.
func (z *Int) MulAssign(y Int) *Int {
	*z = z.Mul(y)
	return z
}

func mulNat(a, b nat, threshold int) nat {
	if threshold < 1 {
		threshold = 1
	}
	return karatsuba(a, b, threshold)
}

// basicMul is the O(len(a)*len(b)) schoolbook multiplication.
func basicMul(a, b nat) nat {
	result := make(nat, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint32
		for j, bj := range b {
			carry, result[i+j] = mu.MulAddLimb(ai, bj, result[i+j], carry)
		}
		// earlier rows never reach result[i+len(b)].
		result[i+len(b)] = carry
	}
	return result.norm()
}

// karatsuba multiplies a and b splitting both at the middle of the longer one:
//	a = a1*B^mid + a0, b = b1*B^mid + b0
//	a*b = z2*B^(2*mid) + z1*B^mid + z0, where
//	z0 = a0*b0, z2 = a1*b1, z1 = (a0+a1)*(b0+b1) - z0 - z2
func karatsuba(a, b nat, threshold int) nat {
	if len(a) <= threshold || len(b) <= threshold {
		return basicMul(a, b)
	}
	mid := len(a)
	if len(b) > mid {
		mid = len(b)
	}
	mid /= 2

	a0, a1 := split(a, mid)
	b0, b1 := split(b, mid)

	z0 := karatsuba(a0, b0, threshold)
	z2 := karatsuba(a1, b1, threshold)
	z1 := karatsuba(addNat(a0, a1), addNat(b0, b1), threshold)
	z1 = subNat(subNat(z1, z0), z2)

	result := z0
	if !z1.isZero() {
		result = addNat(result, shiftNat(z1, mid))
	}
	if !z2.isZero() {
		result = addNat(result, shiftNat(z2, 2*mid))
	}
	return result.norm()
}

// split returns the low and the high parts of n, so that n = hi*B^mid + lo.
// Both parts are normalized. They alias n, so they must not be modified.
func split(n nat, mid int) (lo, hi nat) {
	if mid >= len(n) {
		return n.norm(), zeroNat
	}
	return n[:mid].norm(), n[mid:].norm()
}
