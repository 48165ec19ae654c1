// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigint implements an arbitrary-precision signed integer
// with floor division and decimal string I/O.
//
// Values are stored as base 10^9 limbs, so conversion to and from decimal
// strings never requires a division of the whole number.
package bigint

import (
	"fortio.org/safecast"

	mu "github.com/avdva/bigint/internal/mathutil"
)

const (
	base       = mu.Base
	baseDigits = mu.BaseDigits
)

// nat is a magnitude: base 10^9 limbs, least significant first.
type nat []uint32

var (
	zeroNat = nat{0}
	oneNat  = nat{1}

	zero = Int{abs: zeroNat}
)

// Int is an arbitrary-precision signed integer.
// The zero value is a ready to use 0.
//
// Int has value semantics: methods with a value receiver never modify
// their operands, methods with a pointer receiver replace the receiver.
// Concurrent use of a single *Int must be synchronized by the caller.
type Int struct {
	neg bool
	abs nat
}

// New returns an Int for the given int64.
func New(v int64) Int {
	if v >= 0 {
		return Int{abs: mu.SplitUint64(uint64(v))}
	}
	// -(v+1) does not overflow for math.MinInt64.
	u := uint64(-(v + 1)) + 1
	return Int{neg: true, abs: mu.SplitUint64(u)}
}

// NewFromUint64 returns an Int for the given uint64.
func NewFromUint64(v uint64) Int {
	return Int{abs: mu.SplitUint64(v)}
}

// makeInt builds an Int in the canonical form.
func makeInt(abs nat, neg bool) Int {
	abs = abs.norm()
	if abs.isZero() {
		neg = false
	}
	return Int{neg: neg, abs: abs}
}

// norm strips most significant zero limbs, leaving at least one limb.
func (n nat) norm() nat {
	i := len(n)
	for i > 1 && n[i-1] == 0 {
		i--
	}
	if i == 0 {
		return zeroNat
	}
	return n[:i]
}

func (n nat) isZero() bool {
	return len(n) == 0 || len(n) == 1 && n[0] == 0
}

func (n nat) clone() nat {
	if len(n) == 0 {
		return zeroNat
	}
	return append(nat(nil), n...)
}

// mag returns x's magnitude, mapping the zero value to canonical zero.
func (x Int) mag() nat {
	if len(x.abs) == 0 {
		return zeroNat
	}
	return x.abs
}

// Clone returns a copy of x that shares no memory with it.
func (x Int) Clone() Int {
	return makeInt(x.mag().clone(), x.neg)
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.mag().isZero()
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: x.mag()}
}

// Int64 returns x as an int64.
// ok is false, if x does not fit into an int64.
func (x Int) Int64() (v int64, ok bool) {
	u, ok := mu.JoinUint64(x.mag())
	if !ok {
		return 0, false
	}
	if !x.neg || u == 0 {
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	// the magnitude of math.MinInt64 is one more than math.MaxInt64.
	v, err := safecast.Conv[int64](u - 1)
	if err != nil {
		return 0, false
	}
	return -v - 1, true
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (x Int) Cmp(y Int) int {
	switch {
	case x.Less(y):
		return -1
	case x.Eq(y):
		return 0
	default:
		return 1
	}
}

// Eq returns x == y.
func (x Int) Eq(y Int) bool {
	if x.neg != y.neg {
		return x.IsZero() && y.IsZero()
	}
	a, b := x.mag(), y.mag()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Less returns x < y.
func (x Int) Less(y Int) bool {
	xneg, yneg := x.Sign() < 0, y.Sign() < 0
	if xneg != yneg {
		return xneg
	}
	cmp := cmpNat(x.mag(), y.mag())
	if xneg {
		return cmp > 0
	}
	return cmp < 0
}

// Ne returns x != y.
func (x Int) Ne(y Int) bool {
	return !x.Eq(y)
}

// Greater returns x > y.
func (x Int) Greater(y Int) bool {
	return y.Less(x)
}

// LessOrEqual returns x <= y.
func (x Int) LessOrEqual(y Int) bool {
	return !y.Less(x)
}

// GreaterOrEqual returns x >= y.
func (x Int) GreaterOrEqual(y Int) bool {
	return !x.Less(y)
}
