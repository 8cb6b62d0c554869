// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomDigits builds a pseudo-random, non-negative decimal digit string of
// the given length from seed, reproducibly (gopter re-runs a shrunk seed
// deterministically to minimize a failing case).
func randomDigits(seed int64, n int) string {
	if n <= 0 {
		n = 1
	}
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	b[0] = byte('1' + r.Intn(9)) // no leading zero, so the length is exact
	for i := 1; i < n; i++ {
		b[i] = byte('0' + r.Intn(10))
	}
	return string(b)
}

// randomBigInt builds a random signed BigInt with the given approximate
// digit count, spanning every tier of the multiplication dispatcher as n
// grows.
func randomBigInt(seed int64, n int, neg bool) *BigInt {
	r := rand.New(rand.NewSource(seed))
	x, err := NewBigIntFromString(randomDigits(seed, n), true)
	if err != nil {
		panic(err)
	}
	if neg && r.Intn(2) == 0 {
		x = x.Neg()
	}
	return x
}

func defaultProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	return gopter.NewProperties(parameters)
}

// TestRingLaws_PropertyBased checks the ring laws across a size-stratified
// sample of operand digit counts.
func TestRingLaws_PropertyBased(t *testing.T) {
	properties := defaultProperties()

	properties.Property("+ is commutative", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, true)
			y := randomBigInt(seed+1, n, true)
			return x.Add(y).Cmp(y.Add(x)) == 0
		},
		gen.Int64(), gen.IntRange(1, 400),
	))

	properties.Property("* is commutative", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, true)
			y := randomBigInt(seed+1, n, true)
			return x.Mul(y).Cmp(y.Mul(x)) == 0
		},
		gen.Int64(), gen.IntRange(1, 400),
	))

	properties.Property("* distributes over +", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, true)
			y := randomBigInt(seed+1, n, true)
			z := randomBigInt(seed+2, n, true)
			lhs := x.Mul(y.Add(z))
			rhs := x.Mul(y).Add(x.Mul(z))
			return lhs.Cmp(rhs) == 0
		},
		gen.Int64(), gen.IntRange(1, 200),
	))

	properties.Property("x*(-y) == -(x*y)", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, true)
			y := randomBigInt(seed+1, n, true)
			return x.Mul(y.Neg()).Cmp(x.Mul(y).Neg()) == 0
		},
		gen.Int64(), gen.IntRange(1, 200),
	))

	properties.Property("x - x == 0", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, true)
			return x.Sub(x).Sign() == 0
		},
		gen.Int64(), gen.IntRange(1, 400),
	))

	properties.TestingRun(t)
}

// TestDispatcherAgreement_PropertyBased checks that every multiplication
// and squaring path the dispatcher can select agrees.
func TestDispatcherAgreement_PropertyBased(t *testing.T) {
	properties := defaultProperties()

	properties.Property("all multiplication paths agree", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, false)
			y := randomBigInt(seed+1, n, false)
			want := mulSchool(x.mag, y.mag)
			paths := []limbs{
				mulUnsigned(x.mag, y.mag),
				mulKaratsuba(x.mag, y.mag),
				mulToom(x.mag, y.mag, 3),
				mulToom(x.mag, y.mag, 4),
				mulToom(x.mag, y.mag, 6),
			}
			for _, got := range paths {
				if cmp(got, want) != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 350),
	))

	properties.Property("all squaring paths agree", prop.ForAll(
		func(seed int64, n int) bool {
			x := randomBigInt(seed, n, false)
			want := sqrSchool(x.mag)
			paths := []limbs{
				sqrUnsigned(x.mag),
				sqrKaratsuba(x.mag),
				sqrToom(x.mag, 3),
				sqrToom(x.mag, 4),
				sqrToom(x.mag, 6),
			}
			for _, got := range paths {
				if cmp(got, want) != 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 350),
	))

	properties.TestingRun(t)
}

// TestDivModIdentity_PropertyBased checks the division identity and the
// remainder bound over random operand pairs.
func TestDivModIdentity_PropertyBased(t *testing.T) {
	properties := defaultProperties()

	properties.Property("x == (x div y)*y + (x mod y), |x mod y| < |y|", prop.ForAll(
		func(seed int64, nx, ny int) bool {
			x := randomBigInt(seed, nx, true)
			y := randomBigInt(seed+1, ny, true)
			if y.isZero() {
				y = NewBigIntInt64(1)
			}
			q, r, err := x.DivMod(y)
			if err != nil {
				return false
			}
			if q.Mul(y).Add(r).Cmp(x) != 0 {
				return false
			}
			if r.Abs().Cmp(y.Abs()) >= 0 {
				return false
			}
			if !r.isZero() && r.neg != x.neg {
				return false
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 300), gen.IntRange(1, 250),
	))

	properties.TestingRun(t)
}

// TestToomInterpolation_PropertyBased checks that the interpolation
// recovers the unique polynomial agreeing with the pointwise products at
// the chosen evaluation points, by comparing against a direct
// coefficient-wise convolution of the same operands (the textbook
// definition of polynomial multiplication).
func TestToomInterpolation_PropertyBased(t *testing.T) {
	properties := defaultProperties()

	properties.Property("Toom interpolation matches direct convolution", prop.ForAll(
		func(seed int64, n int, parts int) bool {
			x := randomBigInt(seed, n, false)
			y := randomBigInt(seed+1, n, false)
			got := mulToom(x.mag, y.mag, parts)
			want := mulSchool(x.mag, y.mag)
			return cmp(got, want) == 0
		},
		gen.Int64(), gen.IntRange(1, 200), gen.IntRange(2, 7),
	))

	properties.TestingRun(t)
}
