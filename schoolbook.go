// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// mulSchool computes the unsigned product x*y using long multiplication
// with carries deferred across a full limb's worth of partial products, by
// splitting each base-_B limb into two base-_B2 half-limbs. This keeps each
// accumulator below 2^64 without per-digit carry propagation.
func mulSchool(x, y limbs) limbs {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x)+len(y))
	// acc[k] accumulates the base-_B2 coefficient of position k in a
	// base-_B2 polynomial of length 2*(len(x)+len(y)).
	acc := make([]uint64, 2*len(z))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		y0, y1 := yi%_B2, yi/_B2
		for j, xj := range x {
			if xj == 0 {
				continue
			}
			x0, x1 := xj%_B2, xj/_B2
			k := 2 * (i + j)
			acc[k] += x0 * y0
			acc[k+1] += x0*y1 + x1*y0
			acc[k+2] += x1 * y1
		}
	}
	// propagate carries through the base-_B2 digits, then fold pairs of
	// base-_B2 digits back into base-_B limbs.
	var c uint64
	for k := 0; k < len(acc); k++ {
		v := acc[k] + c
		acc[k] = v % _B2
		c = v / _B2
	}
	for i := range z {
		lo := acc[2*i]
		hi := uint64(0)
		if 2*i+1 < len(acc) {
			hi = acc[2*i+1]
		}
		z[i] = Word(lo + hi*_B2)
	}
	return norm(z)
}

// sqrSchool computes the unsigned square x*x, exploiting the symmetry
// x[i]*x[j] == x[j]*x[i] to halve the number of cross terms.
func sqrSchool(x limbs) limbs {
	if len(x) == 0 {
		return nil
	}
	z := make(limbs, 2*len(x))
	acc := make([]uint64, 2*len(z))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		x0, x1 := xi%_B2, xi/_B2
		// diagonal term x[i]*x[i]
		k := 4 * i
		acc[k] += x0 * x0
		acc[k+1] += 2 * x0 * x1
		acc[k+2] += x1 * x1
		for j := i + 1; j < len(x); j++ {
			xj := x[j]
			if xj == 0 {
				continue
			}
			y0, y1 := xj%_B2, xj/_B2
			k := 2 * (i + j)
			// factor of 2 for the symmetric pair (i,j) and (j,i)
			acc[k] += 2 * x0 * y0
			acc[k+1] += 2 * (x0*y1 + x1*y0)
			acc[k+2] += 2 * x1 * y1
		}
	}
	var c uint64
	for k := 0; k < len(acc); k++ {
		v := acc[k] + c
		acc[k] = v % _B2
		c = v / _B2
	}
	for i := range z {
		lo := acc[2*i]
		hi := uint64(0)
		if 2*i+1 < len(acc) {
			hi = acc[2*i+1]
		}
		z[i] = Word(lo + hi*_B2)
	}
	return norm(z)
}
