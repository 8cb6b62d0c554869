// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// Sqrt returns the square root of x, computed without any division in its
// inner loop: Newton-Raphson solves 1/t^2 - x = 0 for t via
// t <- t*(3 - x*t^2)/2 (the /2 is a multiply by the constant 0.5, never a
// division), then recovers sqrt(x) = x*t once t has converged.
func (x *BigFloat) Sqrt() (*BigFloat, error) {
	if x.mant.neg {
		return nil, &DomainError{Op: "Sqrt", Msg: "square root of a negative number"}
	}
	if x.isZero() {
		return &BigFloat{mant: &BigInt{}}, nil
	}

	target := prec
	half := bigFloatFromFloat64(0.5)
	three := NewBigFloatFromBigInt(NewBigIntInt64(3))

	// seed: x = m*10^e with m in [1,10); fold one factor of 10 into m when e
	// is odd so the exponent halves exactly, then 1/sqrt(x) =
	// (1/sqrt(m))*10^(-e/2) with only m crossing the float64 boundary.
	e := x.exp
	m := x.mantFloat()
	if e%2 != 0 {
		if e > 0 {
			m *= 10
			e--
		} else {
			m /= 10
			e++
		}
	}
	t := bigFloatFromFloat64(1 / math.Sqrt(m))
	t.exp -= e / 2

	for _, p := range precSchedule(target) {
		withPrec(p+16, func() {
			t2 := t.Mul(t)
			inner := three.Sub(x.Mul(t2))
			t = t.Mul(inner).Mul(half)
		})
	}

	var result *BigFloat
	withPrec(target, func() {
		result = x.Mul(t).truncate()
	})
	return result, nil
}
