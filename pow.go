// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// Pow returns x**n. n must be non-negative unless x is exactly ±1; a
// negative exponent on any other base is outside BigInt's domain (only
// BigFloat supports fractional results).
func (x *BigInt) Pow(n int64) (*BigInt, error) {
	if n < 0 {
		switch {
		case x.isZero():
			return nil, &DomainError{Op: "Pow", Msg: "zero raised to a negative exponent"}
		case cmp(x.mag, limbs{1}) == 0:
			if x.neg && n%2 != 0 {
				return NewBigIntInt64(-1), nil
			}
			return NewBigIntInt64(1), nil
		default:
			return nil, &DomainError{Op: "Pow", Msg: "negative exponent on a non-unit BigInt"}
		}
	}
	if n == 0 {
		return NewBigIntInt64(1), nil
	}
	if x.isZero() {
		return &BigInt{}, nil
	}

	// binary exponentiation by squaring, using the dispatcher's dedicated
	// squaring path for every repeated-operand multiply.
	result := &BigInt{mag: limbs{1}}
	base := x.Abs()
	e := n
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}
	if x.neg && n%2 != 0 {
		result.neg = true
	}
	return result, nil
}

// PowBig returns x**n for a BigInt exponent. An exponent that does not fit
// in 64 bits is rejected with an overflow error before any arithmetic.
func (x *BigInt) PowBig(n *BigInt) (*BigInt, error) {
	v, ok := n.toInt64()
	if !ok {
		return nil, &OverflowError{Op: "PowBig", Msg: "exponent does not fit in 64 bits"}
	}
	return x.Pow(v)
}

// toInt64 reports x's value as an int64, when it fits.
func (x *BigInt) toInt64() (int64, bool) {
	if x.isZero() {
		return 0, true
	}
	if len(x.mag) > 2 {
		return 0, false
	}
	v := uint64(x.mag[0])
	if len(x.mag) == 2 {
		hi := uint64(x.mag[1])
		if hi > math.MaxUint64/uint64(_B) || hi*uint64(_B) > math.MaxUint64-v {
			return 0, false
		}
		v += hi * uint64(_B)
	}
	if x.neg {
		if v > 1<<63 {
			return 0, false
		}
		if v == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Mul returns x*y, dispatched across the multiplication algorithm tiers by
// operand size.
func (x *BigInt) Mul(y *BigInt) *BigInt {
	if x.isZero() || y.isZero() {
		return &BigInt{}
	}
	return &BigInt{neg: x.neg != y.neg, mag: mulUnsigned(x.mag, y.mag)}
}
