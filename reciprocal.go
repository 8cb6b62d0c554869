// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// seedPrec is the number of correct decimal digits a float64-seeded guess
// reliably provides; the doubling schedule below never asks for less.
const seedPrec = 15

// precSchedule returns an increasing sequence of precisions, starting near
// seedPrec and doubling until it reaches target, ending with target itself.
func precSchedule(target int) []int {
	if target <= seedPrec {
		return []int{target}
	}
	var rungs []int
	for p := target; p > seedPrec; p = (p + 1) / 2 {
		rungs = append(rungs, p)
	}
	rungs = append(rungs, seedPrec)
	// reverse into increasing order
	for i, j := 0, len(rungs)-1; i < j; i, j = i+1, j-1 {
		rungs[i], rungs[j] = rungs[j], rungs[i]
	}
	return rungs
}

// mantFloat returns z's mantissa as a float64 M in [1, 10) such that
// |z| = M * 10^z.exp. Only the leading digits feed the conversion, so it
// stays finite no matter how large z.exp grows; the exponent itself is
// tracked separately in integer arithmetic by the callers.
func (z *BigFloat) mantFloat() float64 {
	d := leadingDigits(z.mant.mag, seedPrec+2)
	v, _ := parseFloatDigits([]byte(d))
	return v / math.Pow10(len(d)-1)
}

func leadingDigits(mag limbs, n int) string {
	var b []byte
	top := len(mag) - 1
	appendDigits := func(v uint64, pad bool) {
		s := formatUint(v)
		if pad {
			for p := _LOG_B - len(s); p > 0; p-- {
				b = append(b, '0')
			}
		}
		b = append(b, s...)
	}
	appendDigits(uint64(mag[top]), false)
	for i := top - 1; i >= 0 && len(b) < n; i-- {
		appendDigits(uint64(mag[i]), true)
	}
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}

func formatUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func parseFloatDigits(b []byte) (float64, error) {
	var v float64
	for _, c := range b {
		v = v*10 + float64(c-'0')
	}
	return v, nil
}

// bigFloatFromFloat64 returns an exact-enough BigFloat seed from f (f is
// never asked to carry more than seedPrec significant digits).
func bigFloatFromFloat64(f float64) *BigFloat {
	if f == 0 {
		return &BigFloat{mant: &BigInt{}}
	}
	neg := f < 0
	if neg {
		f = -f
	}
	e := int(math.Floor(math.Log10(f)))
	mant := f / math.Pow10(e-seedPrec+1)
	iv := uint64(mant + 0.5)
	s := formatUint(iv)
	for len(s) > seedPrec {
		s = s[:len(s)-1]
		e++
	}
	mag := digitsToLimbs(s)
	exp := e
	return &BigFloat{mant: &BigInt{neg: neg, mag: mag}, exp: exp}
}

// Reciprocal returns 1/x via Newton-Raphson: y <- y + y*(1 - x*y), doubling
// the working precision at each rung (precSchedule) starting from a
// float64-seeded guess, so the inner loop never performs a division.
func (x *BigFloat) Reciprocal() (*BigFloat, error) {
	if x.isZero() {
		return nil, &DomainError{Op: "Reciprocal", Msg: "division by zero"}
	}
	target := prec
	// seed: |x| = M*10^exp with M in [1,10), so 1/x = (1/M)*10^(-exp). The
	// float64 path only ever sees M; the exponent shifts over in integer
	// arithmetic, immune to float64 range limits.
	y := bigFloatFromFloat64(1 / x.mantFloat())
	y.exp -= x.exp
	y.mant.neg = x.mant.neg
	one := NewBigFloatFromBigInt(NewBigIntInt64(1))
	for _, p := range precSchedule(target) {
		withPrec(p+16, func() {
			xy := x.Mul(y)
			resid := one.Sub(xy)
			y = y.Add(y.Mul(resid))
		})
	}
	withPrec(target, func() { y = y.truncate() })
	return y, nil
}

// Quo returns x/y, computed as x * (1/y).
func (x *BigFloat) Quo(y *BigFloat) (*BigFloat, error) {
	r, err := y.Reciprocal()
	if err != nil {
		return nil, err
	}
	return x.Mul(r), nil
}
