// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// BigFloat is a variable-precision decimal real: mant * 10^(exp -
// digits(mant) + 1), i.e. exp is the decimal exponent of the most
// significant digit of mant. mant.neg carries the BigFloat's sign; mant is
// never nil (a zero BigFloat has an empty-magnitude mant and exp 0).
type BigFloat struct {
	mant *BigInt
	exp  int
}

// NewBigFloatInt64 returns a BigFloat with the value of x.
func NewBigFloatInt64(x int64) *BigFloat {
	return NewBigFloatFromBigInt(NewBigIntInt64(x))
}

// NewBigFloatFromBigInt returns a BigFloat with the value of x, truncated
// toward zero to the current precision's limb budget (exact when x fits in
// it).
func NewBigFloatFromBigInt(x *BigInt) *BigFloat {
	if x.isZero() {
		return &BigFloat{mant: &BigInt{}}
	}
	m := x.Abs()
	m.neg = x.neg
	return (&BigFloat{mant: m, exp: numDigits(m.mag) - 1}).truncate()
}

func (z *BigFloat) isZero() bool { return z == nil || z.mant.isZero() }

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *BigFloat) Sign() int { return z.mant.Sign() }

// Abs returns |z|.
func (z *BigFloat) Abs() *BigFloat {
	if z.isZero() {
		return &BigFloat{mant: &BigInt{}}
	}
	return &BigFloat{mant: z.mant.Abs(), exp: z.exp}
}

// Neg returns -z.
func (z *BigFloat) Neg() *BigFloat {
	if z.isZero() {
		return &BigFloat{mant: &BigInt{}}
	}
	return &BigFloat{mant: z.mant.Neg(), exp: z.exp}
}

// truncate enforces the mandatory post-operation limb budget ⌈P/16⌉+2 for
// the current process-wide precision, truncating toward zero. There is no
// banker's/nearest rounding anywhere: a hard cut.
func (z *BigFloat) truncate() *BigFloat {
	budget := precLimbs(prec)
	if len(z.mant.mag) <= budget {
		return z
	}
	drop := len(z.mant.mag) - budget
	trimmed := z.mant.mag[drop:].clone()
	z.mant = &BigInt{neg: z.mant.neg, mag: norm(trimmed)}
	return z
}

// alignMant returns the magnitudes of x and y scaled to a common implicit
// decimal point, i.e. shifted so that the least significant digit of each
// result corresponds to the same power of 10, by multiplying the operand
// with the higher least-significant-digit exponent by a power of 10. It
// returns the scaled magnitudes and that common least-significant-digit
// exponent, from which the caller derives the result's exponent.
func alignMant(x, y *BigFloat) (xm, ym limbs, shiftExp int) {
	// exp is a digit-granularity exponent of the most significant digit;
	// convert it to the exponent of the least significant digit via the
	// decimal length of each mantissa.
	xLen := numDigits(x.mant.mag)
	yLen := numDigits(y.mant.mag)
	xLSD := x.exp - xLen + 1 // decimal exponent of the least significant digit of x
	yLSD := y.exp - yLen + 1
	lsd := xLSD
	if yLSD < lsd {
		lsd = yLSD
	}
	xm = scaleToLSD(x.mant.mag, xLSD, lsd)
	ym = scaleToLSD(y.mant.mag, yLSD, lsd)
	return xm, ym, lsd
}

// scaleToLSD scales mag (whose least significant digit has decimal
// exponent atLSD) up so that its least significant digit instead sits at
// decimal exponent targetLSD (<= atLSD), by multiplying by 10^(atLSD-target).
func scaleToLSD(mag limbs, atLSD, targetLSD int) limbs {
	shift := atLSD - targetLSD
	if shift == 0 {
		return mag
	}
	return mulByPow10(mag, shift)
}

func mulByPow10(mag limbs, n int) limbs {
	for n >= _LOG_B {
		z := make(limbs, len(mag)+1)
		copy(z[1:], mag)
		mag = norm(z)
		n -= _LOG_B
	}
	if n > 0 {
		mag = mulWord(mag, pow10Word(n))
	}
	return mag
}

func pow10Word(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Add returns x+y, truncated to the current precision.
func (x *BigFloat) Add(y *BigFloat) *BigFloat {
	if x.isZero() {
		return y.Abs().signAsFloat(y).truncate()
	}
	if y.isZero() {
		return x.Abs().signAsFloat(x).truncate()
	}
	// once one operand's leading digit sits more than prec digits above the
	// other's, the smaller one is entirely below the precision floor and
	// vanishes from the sum.
	if x.exp-y.exp > prec {
		return x.Abs().signAsFloat(x).truncate()
	}
	if y.exp-x.exp > prec {
		return y.Abs().signAsFloat(y).truncate()
	}
	xm, ym, lsd := alignMant(x, y)
	var resMag limbs
	var neg bool
	if x.mant.neg == y.mant.neg {
		resMag = uadd(xm, ym)
		neg = x.mant.neg
	} else {
		switch cmp(xm, ym) {
		case 0:
			return &BigFloat{mant: &BigInt{}}
		case 1:
			resMag = usub(xm, ym)
			neg = x.mant.neg
		default:
			resMag = usub(ym, xm)
			neg = y.mant.neg
		}
	}
	resLen := numDigits(resMag)
	z := &BigFloat{mant: &BigInt{neg: neg, mag: resMag}, exp: lsd + resLen - 1}
	return z.truncate()
}

// Sub returns x-y, truncated to the current precision.
func (x *BigFloat) Sub(y *BigFloat) *BigFloat { return x.Add(y.Neg()) }

func (z *BigFloat) signAsFloat(y *BigFloat) *BigFloat {
	z.mant.neg = y.mant.neg
	return z
}

// Mul returns x*y, truncated to the current precision.
func (x *BigFloat) Mul(y *BigFloat) *BigFloat {
	if x.isZero() || y.isZero() {
		return &BigFloat{mant: &BigInt{}}
	}
	mag := mulUnsigned(x.mant.mag, y.mant.mag)
	// the decimal exponent of a product's least-significant digit is the
	// sum of the two operands' least-significant-digit exponents; its
	// most-significant-digit exponent follows from the product's own
	// digit count.
	lsd := (x.exp - numDigits(x.mant.mag) + 1) + (y.exp - numDigits(y.mant.mag) + 1)
	exp := lsd + numDigits(mag) - 1
	z := &BigFloat{mant: &BigInt{neg: x.mant.neg != y.mant.neg, mag: mag}, exp: exp}
	return z.truncate()
}

// Cmp compares x and y.
func (x *BigFloat) Cmp(y *BigFloat) int {
	xz, yz := x.isZero(), y.isZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		if y.mant.neg {
			return 1
		}
		return -1
	case yz:
		if x.mant.neg {
			return -1
		}
		return 1
	case x.mant.neg != y.mant.neg:
		if x.mant.neg {
			return -1
		}
		return 1
	}
	c := x.cmpAbs(y)
	if x.mant.neg {
		return -c
	}
	return c
}

func (x *BigFloat) cmpAbs(y *BigFloat) int {
	if x.exp != y.exp {
		if x.exp < y.exp {
			return -1
		}
		return 1
	}
	xm, ym, _ := alignMant(x, y)
	return cmp(xm, ym)
}

// CmpAbs compares |x| and |y|.
func (x *BigFloat) CmpAbs(y *BigFloat) int { return x.cmpAbs(y) }

// BigFloatMin returns the smaller of x and y.
func BigFloatMin(x, y *BigFloat) *BigFloat {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// BigFloatMax returns the larger of x and y.
func BigFloatMax(x, y *BigFloat) *BigFloat {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Pow returns x**n at the current precision, by binary exponentiation with
// truncation after every multiply. A negative exponent inverts the result
// via Reciprocal; raising zero to a negative exponent is a domain error.
func (x *BigFloat) Pow(n int64) (*BigFloat, error) {
	if n == 0 {
		return NewBigFloatInt64(1), nil
	}
	if x.isZero() {
		if n < 0 {
			return nil, &DomainError{Op: "Pow", Msg: "zero raised to a negative exponent"}
		}
		return &BigFloat{mant: &BigInt{}}, nil
	}
	inv := n < 0
	e := uint64(n)
	if inv {
		e = -e // two's-complement wrap yields |n| even for MinInt64
	}
	result := NewBigFloatInt64(1)
	base := x
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}
	if inv {
		return result.Reciprocal()
	}
	return result, nil
}
