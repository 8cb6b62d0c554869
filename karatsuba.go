// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// mulKaratsuba computes x*y via one level of Karatsuba splitting, recursing
// back into the dispatcher (mulUnsigned) for the three half-size products.
// The middle term (x1-x0)*(y1-y0) is built destructively: x1-x0 and y1-y0
// are computed with the destructive subtract primitives since they are
// scratch values with no other owner.
func mulKaratsuba(x, y limbs) limbs {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	m := n / 2
	if m == 0 {
		return mulUnsigned(x, y)
	}

	x0, x1 := splitAt(x, m)
	y0, y1 := splitAt(y, m)

	z0 := mulUnsigned(x0, y0)
	z2 := mulUnsigned(x1, y1)

	// destructive middle-term construction: dx = x1-x0 (or x0-x1), same for
	// y, tracking the sign of each difference so the cross sign can be
	// recovered.
	dx, dxNeg := absDiffDestructive(x1.clone(), x0)
	dy, dyNeg := absDiffDestructive(y1.clone(), y0)
	mid := mulUnsigned(dx, dy)
	midNeg := dxNeg != dyNeg

	// z1 = z0 + z2 - (x1-x0)*(y1-y0), with the sign of the cross term
	// folded in.
	sum := uadd(z0.clone(), z2)
	var z1 limbs
	if midNeg {
		z1 = uadd(sum, mid)
	} else {
		z1 = usub(sum, mid)
	}

	return assemble(z0, z1, z2, m)
}

// sqrKaratsuba computes x*x via the same one-level split; its three
// recursive products are all squarings, and the cross term becomes
// (x1-x0)^2, always non-negative, so no sign needs tracking.
func sqrKaratsuba(x limbs) limbs {
	n := len(x)
	m := n / 2
	if m == 0 {
		return sqrUnsigned(x)
	}
	x0, x1 := splitAt(x, m)

	z0 := sqrUnsigned(x0)
	z2 := sqrUnsigned(x1)

	dx, _ := absDiffDestructive(x1.clone(), x0)
	mid := sqrUnsigned(dx)

	sum := uadd(z0.clone(), z2)
	z1 := usub(sum, mid)

	return assemble(z0, z1, z2, m)
}

// splitAt splits z into (low m limbs, high remainder), each normalized.
func splitAt(z limbs, m int) (lo, hi limbs) {
	if len(z) <= m {
		return norm(z.clone()), nil
	}
	lo = norm(z[:m].clone())
	hi = norm(z[m:].clone())
	return lo, hi
}

// absDiffDestructive destructively computes |a-b|, consuming a, and reports
// whether the true difference a-b was negative.
func absDiffDestructive(a, b limbs) (limbs, bool) {
	switch cmp(a, b) {
	case 0:
		return nil, false
	case 1:
		return udsub(a, b), false
	default:
		return usub(b, a), true
	}
}

// assemble folds z0 + z1*_B^m + z2*_B^(2m) into a single limbs value.
func assemble(z0, z1, z2 limbs, m int) limbs {
	n := 2*m + len(z2)
	if t := m + len(z1); t > n {
		n = t
	}
	if n < len(z0) {
		n = len(z0)
	}
	z := make(limbs, n+1)
	copy(z, z0)
	addShifted(z, z1, m)
	addShifted(z, z2, 2*m)
	return norm(z)
}

// addShifted adds src, shifted left by sh limbs, into dst in place,
// propagating any resulting carry.
func addShifted(dst, src limbs, sh int) {
	var c Word
	for i, v := range src {
		idx := sh + i
		s := dst[idx] + v + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		dst[idx] = s
	}
	for idx := sh + len(src); c != 0 && idx < len(dst); idx++ {
		s := dst[idx] + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		dst[idx] = s
	}
}
