// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		abs nat
		neg bool
	}{
		{0, nat{0}, false},
		{1, nat{1}, false},
		{-1, nat{1}, true},
		{999999999, nat{999999999}, false},
		{1000000000, nat{0, 1}, false},
		{-1000000001, nat{1, 1}, true},
		{math.MaxInt64, nat{854775807, 223372036, 9}, false},
		{math.MinInt64, nat{854775808, 223372036, 9}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := New(test.v)
			a.Equal(test.abs, v.abs)
			a.Equal(test.neg, v.neg)
		})
	}
	a.Equal(nat{709551615, 446744073, 18}, NewFromUint64(math.MaxUint64).abs)
}

func TestNormalize(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		abs    nat
		neg    bool
		result Int
	}{
		{nil, true, Int{abs: nat{0}}},
		{nat{}, false, Int{abs: nat{0}}},
		{nat{0, 0, 0}, true, Int{abs: nat{0}}},
		{nat{5, 0, 0}, true, Int{neg: true, abs: nat{5}}},
		{nat{0, 7, 0}, false, Int{abs: nat{0, 7}}},
		{nat{1, 2, 3}, false, Int{abs: nat{1, 2, 3}}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, makeInt(test.abs, test.neg))
		})
	}
}

func TestZeroValue(t *testing.T) {
	a := assert.New(t)
	var z Int
	a.True(z.IsZero())
	a.Equal(0, z.Sign())
	a.Equal("0", z.String())
	a.True(z.Eq(New(0)))
	a.True(z.Neg().Eq(zero))
	a.Equal("5", z.Add(New(5)).String())
	a.Equal("0", z.Mul(New(5)).String())
}

func TestClone(t *testing.T) {
	a := assert.New(t)
	x := MustFromString("-123456789012345678901234567890")
	c := x.Clone()
	a.True(x.Eq(c))
	c.abs[0] = 1
	a.Equal("-123456789012345678901234567890", x.String())
	a.Equal("0", Int{}.Clone().String())
}

func TestSignAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		sign int
		abs  string
	}{
		{"0", 0, "0"},
		{"-0", 0, "0"},
		{"17", 1, "17"},
		{"-17", -1, "17"},
		{"-1000000000000", -1, "1000000000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustFromString(test.s)
			a.Equal(test.sign, v.Sign())
			a.Equal(test.abs, v.Abs().String())
		})
	}
}

func TestInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s  string
		v  int64
		ok bool
	}{
		{"0", 0, true},
		{"-5", -5, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"18446744073709551615", 0, false},
		{"100000000000000000000000000", 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := MustFromString(test.s).Int64()
			a.Equal(test.ok, ok)
			a.Equal(test.v, v)
		})
	}
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b string
		cmp  int
	}{
		{"0", "0", 0},
		{"-0", "0", 0},
		{"1", "0", 1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"123", "456", -1},
		{"-123", "-456", 1},
		{"1000000000", "999999999", 1},
		{"-1000000000", "-999999999", -1},
		{"123456789123456789", "123456789123456789", 0},
		{"-123456789123456789", "123456789123456789", -1},
		{"123456789123456788", "123456789123456789", -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := MustFromString(test.a), MustFromString(test.b)
			a.Equal(test.cmp, x.Cmp(y))
			a.Equal(-test.cmp, y.Cmp(x))
			a.Equal(test.cmp == 0, x.Eq(y))
			a.Equal(test.cmp != 0, x.Ne(y))
			a.Equal(test.cmp < 0, x.Less(y))
			a.Equal(test.cmp > 0, x.Greater(y))
			a.Equal(test.cmp <= 0, x.LessOrEqual(y))
			a.Equal(test.cmp >= 0, x.GreaterOrEqual(y))
		})
	}
}

func TestOrderingTotality(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		x, xb := randInt(rnd, 4)
		y, yb := randInt(rnd, 4)
		if i%5 == 0 {
			y, yb = x.Clone(), new(big.Int).Set(xb)
		}
		holds := 0
		for _, b := range []bool{x.Less(y), x.Eq(y), x.Greater(y)} {
			if b {
				holds++
			}
		}
		a.Equal(1, holds, "%s vs %s", x, y)
		a.Equal(xb.Cmp(yb), x.Cmp(y), "%s vs %s", x, y)
	}
}

// randInt returns a random value with up to maxLimbs limbs and its math/big twin.
func randInt(rnd *rand.Rand, maxLimbs int) (Int, *big.Int) {
	limbs := 1 + rnd.Intn(maxLimbs)
	digits := make([]byte, 0, limbs*baseDigits+1)
	if rnd.Intn(2) == 0 {
		digits = append(digits, '-')
	}
	for i := 0; i < limbs; i++ {
		digits = append(digits, fmt.Sprintf("%09d", rnd.Int63n(base))...)
	}
	s := string(digits)
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test number " + s)
	}
	return MustFromString(s), b
}

func BenchmarkCmp(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	x, _ := randInt(rnd, 10)
	y, _ := randInt(rnd, 10)
	for i := 0; i < b.N; i++ {
		x.Cmp(y)
	}
}
