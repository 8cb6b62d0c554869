// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// BigInt is an arbitrary-precision signed integer in sign-magnitude form.
// The zero value represents 0. Arithmetic methods never mutate their
// receiver or arguments; each returns a freshly owned result.
type BigInt struct {
	neg bool
	mag limbs
}

// NewBigIntInt64 returns a new BigInt with the value of x.
func NewBigIntInt64(x int64) *BigInt {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return &BigInt{neg: neg, mag: setUint64(u)}
}

// NewBigIntUint64 returns a new BigInt with the value of x.
func NewBigIntUint64(x uint64) *BigInt {
	return &BigInt{mag: setUint64(x)}
}

// isZero reports whether x is the canonical zero.
func (x *BigInt) isZero() bool { return x == nil || len(x.mag) == 0 }

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *BigInt) Sign() int {
	if x.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Abs returns |x|.
func (x *BigInt) Abs() *BigInt {
	if x.isZero() {
		return &BigInt{}
	}
	return &BigInt{mag: x.mag.clone()}
}

// Neg returns -x.
func (x *BigInt) Neg() *BigInt {
	if x.isZero() {
		return &BigInt{}
	}
	return &BigInt{neg: !x.neg, mag: x.mag.clone()}
}

// Cmp compares x and y and returns -1, 0, or +1 depending on whether
// x < y, x == y, or x > y.
func (x *BigInt) Cmp(y *BigInt) int {
	xz, yz := x.isZero(), y.isZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		if y.neg {
			return 1
		}
		return -1
	case yz:
		if x.neg {
			return -1
		}
		return 1
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmp(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x *BigInt) CmpAbs(y *BigInt) int { return cmp(x.mag, y.mag) }

// BigIntMin returns the smaller of x and y.
func BigIntMin(x, y *BigInt) *BigInt {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// BigIntMax returns the larger of x and y.
func BigIntMax(x, y *BigInt) *BigInt {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Add returns x+y.
func (x *BigInt) Add(y *BigInt) *BigInt {
	switch {
	case x.isZero():
		return y.Abs().signAs(y)
	case y.isZero():
		return x.Abs().signAs(x)
	case x.neg == y.neg:
		return &BigInt{neg: x.neg, mag: uadd(x.mag, y.mag)}
	}
	// opposite signs: subtract smaller magnitude from larger
	switch cmp(x.mag, y.mag) {
	case 0:
		return &BigInt{}
	case 1:
		return &BigInt{neg: x.neg, mag: usub(x.mag, y.mag)}
	default:
		return &BigInt{neg: y.neg, mag: usub(y.mag, x.mag)}
	}
}

// Sub returns x-y.
func (x *BigInt) Sub(y *BigInt) *BigInt {
	return x.Add(y.Neg())
}

// signAs returns x with the sign of y copied onto it (y must be non-zero;
// used only when x is already a fresh, owned value).
func (x *BigInt) signAs(y *BigInt) *BigInt {
	x.neg = y.neg
	return x
}
