// Package mathutil contains single-limb arithmetic for base 10^9 numbers
// and a few decimal digit helpers.
package mathutil

import (
	"math/bits"
	"unsafe"
)

const (
	// Base is the radix of a single limb.
	Base = 1000000000
	// BaseDigits is the number of decimal digits stored in a limb.
	BaseDigits = 9
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// AddLimb returns a+b+carry split into a limb and the outgoing carry.
// carry must be 0 or 1.
func AddLimb(a, b, carry uint32) (sum, carryOut uint32) {
	s := a + b + carry // < 2*Base, fits uint32
	if s >= Base {
		return s - Base, 1
	}
	return s, 0
}

// SubLimb returns a-b-borrow as a limb and the outgoing borrow.
// borrow must be 0 or 1.
func SubLimb(a, b, borrow uint32) (diff, borrowOut uint32) {
	d := int64(a) - int64(b) - int64(borrow)
	if d < 0 {
		return uint32(d + Base), 1
	}
	return uint32(d), 0
}

// MulAddLimb returns a*b+c+carry as (hi, lo), where lo < Base.
// With all inputs below Base the result never overflows and hi < Base.
func MulAddLimb(a, b, c, carry uint32) (hi, lo uint32) {
	t := uint64(a)*uint64(b) + uint64(c) + uint64(carry)
	return uint32(t / Base), uint32(t % Base)
}

// SplitUint64 returns u in base 10^9 limbs, least significant first.
func SplitUint64(u uint64) []uint32 {
	if u == 0 {
		return []uint32{0}
	}
	limbs := make([]uint32, 0, 3)
	for u > 0 {
		limbs = append(limbs, uint32(u%Base))
		u /= Base
	}
	return limbs
}

// JoinUint64 reverses SplitUint64.
// ok is false if the value does not fit 64 bits.
func JoinUint64(limbs []uint32) (u uint64, ok bool) {
	for i := len(limbs) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(u, Base)
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, uint64(limbs[i]), 0)
		if carry != 0 {
			return 0, false
		}
		u = sum
	}
	return u, true
}
