// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

// mulWord returns x*k for a magnitude x and a word-sized multiplier k,
// using math/bits' 128-bit intrinsics to keep each per-limb product exact
// without overflowing a uint64 accumulator.
func mulWord(x limbs, k uint64) limbs {
	if k == 0 || len(x) == 0 {
		return nil
	}
	z := make(limbs, len(x)+1)
	var carry uint64
	for i, xi := range x {
		hi, lo := bits.Mul64(uint64(xi), k)
		lo2, c := bits.Add64(lo, carry, 0)
		hi2 := hi + c
		q, r := bits.Div64(hi2, lo2, _B)
		z[i] = Word(r)
		carry = q
	}
	z[len(x)] = Word(carry)
	return norm(z)
}

// divWord returns (x/d, x%d) for a magnitude x and word-sized divisor d>0.
func divWord(x limbs, d uint64) (limbs, uint64) {
	if len(x) == 0 {
		return nil, 0
	}
	z := make(limbs, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(rem, _B)
		lo2, c := bits.Add64(lo, uint64(x[i]), 0)
		hi2 := hi + c
		q, r := bits.Div64(hi2, lo2, d)
		z[i] = Word(q)
		rem = r
	}
	return norm(z), rem
}

// mulSmallSigned returns x*k for a signed BigInt x and a (possibly
// negative) small int64 multiplier k.
func mulSmallSigned(x *BigInt, k int64) *BigInt {
	if k == 0 || x.isZero() {
		return &BigInt{}
	}
	neg := x.neg
	uk := uint64(k)
	if k < 0 {
		neg = !neg
		uk = uint64(-k)
	}
	return &BigInt{neg: neg, mag: mulWord(x.mag, uk)}
}

// divSmallExact returns x/d for a signed BigInt x and a positive int64
// divisor d, asserting the division is exact. This backs Toom-Cook
// interpolation, where every quotient is guaranteed exact by construction;
// a non-zero remainder indicates an internal bug, not a user-facing error.
func divSmallExact(x *BigInt, d int64) *BigInt {
	if x.isZero() {
		return &BigInt{}
	}
	q, r := divWord(x.mag, uint64(d))
	if r != 0 {
		panic("bignum: inexact division in Toom interpolation")
	}
	return &BigInt{neg: x.neg, mag: q}
}
