// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// udaddTo computes z[:len(x)] = x+y (len(x) >= len(y)) and returns the
// carry out of the top limb (0 or 1). z must have length >= len(x); z may
// alias x (element-wise, same indices).
func udaddTo(z, x, y limbs) Word {
	var c Word
	n := len(y)
	for i := 0; i < n; i++ {
		s := x[i] + y[i] + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
	for i := n; i < len(x); i++ {
		s := x[i] + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
	return c
}

// uadd returns x+y for unsigned magnitudes x, y, allocating a fresh result.
func uadd(x, y limbs) limbs {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x)+1)
	c := udaddTo(z, x, y)
	z[len(x)] = c
	return norm(z)
}

// udsubTo computes z[:len(x)] = x-y (x >= y, len(x) >= len(y)). z may alias
// x (element-wise, same indices).
func udsubTo(z, x, y limbs) {
	var b Word
	n := len(y)
	for i := 0; i < n; i++ {
		d := x[i] - y[i] - b
		if x[i] < y[i]+b {
			d += _B
			b = 1
		} else {
			b = 0
		}
		z[i] = d
	}
	for i := n; i < len(x); i++ {
		d := x[i] - b
		if x[i] < b {
			d += _B
			b = 1
		} else {
			b = 0
		}
		z[i] = d
	}
}

// usub returns x-y for unsigned magnitudes, requiring x >= y.
func usub(x, y limbs) limbs {
	z := make(limbs, len(x))
	udsubTo(z, x, y)
	return norm(z)
}

// udadd destructively adds y into x, reusing x's storage when it has spare
// capacity and returning the (possibly reallocated) result. Nothing in the
// package calls it at present; Toom-Cook interpolation sums its terms with
// BigInt.Add.
func udadd(x, y limbs) limbs {
	if len(x) < len(y) {
		x, y = y, x
	}
	n := len(x)
	if cap(x) < n+1 {
		nx := make(limbs, n, n+1)
		copy(nx, x)
		x = nx
	}
	x = x[:n+1]
	c := udaddTo(x, x[:n], y)
	x[n] = c
	return norm(x)
}

// udsub destructively subtracts y from x in place (requires x >= y).
func udsub(x, y limbs) limbs {
	udsubTo(x, x, y)
	return norm(x)
}
