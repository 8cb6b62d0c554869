// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// divRecipThreshold is the divisor size, in limbs, above which BigInt
// division switches from classical schoolbook long division to the
// BigFloat-reciprocal path. Carrying the schoolbook path for smaller
// operands gives every division below this size an
// easy-to-verify-by-hand implementation, and the two paths are
// cross-checked against each other by a property test.
const divRecipThreshold = 200

// divModSchool computes (q, r) = (x/y, x%y) for non-negative magnitudes x,
// y (y != 0) via digit-at-a-time long division: at each step the next
// quotient limb is the largest q in [0, _B) with q*y <= the running
// remainder, found by binary search and confirmed by exact multiplication.
func divModSchool(x, y limbs) (q, r limbs) {
	if cmp(x, y) < 0 {
		return nil, x.clone()
	}
	quotient := make(limbs, len(x))
	rem := limbs(nil)
	for i := len(x) - 1; i >= 0; i-- {
		rem = prependLimb(rem, x[i])
		lo, hi := uint64(0), uint64(_B-1)
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			if cmp(mulWord(y, mid), rem) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		quotient[i] = Word(lo)
		if lo > 0 {
			rem = usub(rem, mulWord(y, lo))
		}
	}
	return norm(quotient), rem
}

// prependLimb returns a value equal to mag*_B + limb, i.e. mag shifted up
// by one limb position with limb as the new least significant limb.
func prependLimb(mag limbs, limb Word) limbs {
	z := make(limbs, len(mag)+1)
	z[0] = limb
	copy(z[1:], mag)
	return norm(z)
}

// divModRecip computes (q, r) = (x/y, x%y) for non-negative magnitudes via
// the BigFloat reciprocal path: convert both operands
// exactly, raise precision enough to resolve every quotient digit, multiply
// by the reciprocal of y, truncate to an integer, then correct the at-most
// one-limb error a truncated floating quotient can introduce.
func divModRecip(x, y limbs) (q, r limbs) {
	digits := numDigits(x) + _LOG_B
	var qBig *BigInt
	withPrec(digits+8, func() {
		xf := NewBigFloatFromBigInt(&BigInt{mag: x})
		yf := NewBigFloatFromBigInt(&BigInt{mag: y})
		// y is guaranteed non-zero here: BigInt.DivMod validates before
		// calling into divModUnsigned.
		quo, _ := xf.Quo(yf)
		qBig = quo.floorMag()
	})
	// correct a possible off-by-one from floating truncation
	for {
		prod := mulUnsigned(qBig.mag, y)
		if cmp(prod, x) > 0 {
			qBig = &BigInt{mag: usub(qBig.mag, limbs{1})}
			continue
		}
		rem := usub(x, prod)
		if cmp(rem, y) >= 0 {
			qBig = &BigInt{mag: uadd(qBig.mag, limbs{1})}
			continue
		}
		return qBig.mag, rem
	}
}

// floorMag returns the integer part of a non-negative BigFloat as a
// magnitude, truncating toward zero.
func (z *BigFloat) floorMag() *BigInt {
	if z.isZero() {
		return &BigInt{}
	}
	if z.exp < 0 {
		return &BigInt{}
	}
	digits := z.exp + 1
	nd := numDigits(z.mant.mag)
	if digits >= nd {
		return &BigInt{mag: mulByPow10(z.mant.mag, digits-nd)}
	}
	drop := nd - digits
	return &BigInt{mag: divByPow10(z.mant.mag, drop)}
}

// divByPow10 returns mag/10^n (n >= 0), truncated.
func divByPow10(mag limbs, n int) limbs {
	for n >= _LOG_B {
		q, _ := divWord(mag, pow10Word(_LOG_B))
		mag = q
		n -= _LOG_B
	}
	if n > 0 {
		q, _ := divWord(mag, pow10Word(n))
		mag = q
	}
	return mag
}

func divModUnsigned(x, y limbs) (q, r limbs) {
	if len(y) >= divRecipThreshold {
		return divModRecip(x, y)
	}
	return divModSchool(x, y)
}

// Div returns the truncated (toward zero) quotient x/y.
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x/y, with the sign of x (truncated
// division), satisfying x == (x.Div(y)).Mul(y).Add(x.Mod(y)).
func (x *BigInt) Mod(y *BigInt) (*BigInt, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivMod returns both the truncated quotient and remainder of x/y.
func (x *BigInt) DivMod(y *BigInt) (*BigInt, *BigInt, error) {
	if y.isZero() {
		return nil, nil, &DomainError{Op: "DivMod", Msg: "division by zero"}
	}
	if x.isZero() {
		return &BigInt{}, &BigInt{}, nil
	}
	qm, rm := divModUnsigned(x.mag, y.mag)
	// a zero quotient or remainder keeps the canonical positive sign
	q := &BigInt{neg: x.neg != y.neg && len(qm) > 0, mag: qm}
	r := &BigInt{neg: x.neg && len(rm) > 0, mag: rm}
	return q, r, nil
}
