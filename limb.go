// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// limbs is an unsigned magnitude: a little-endian sequence of base-_B
// limbs, normalized so that the most significant limb is non-zero (the
// empty slice denotes 0).
type limbs []Word

// norm trims leading (most significant) zero limbs.
func norm(z limbs) limbs {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// setUint64 converts u into base-_B limbs.
func setUint64(u uint64) limbs {
	if u == 0 {
		return nil
	}
	var z limbs
	for u > 0 {
		z = append(z, Word(u%_B))
		u /= _B
	}
	return z
}

// cmp compares the magnitudes x and y: -1 if x<y, 0 if x==y, +1 if x>y.
func cmp(x, y limbs) int {
	lx, ly := len(x), len(y)
	switch {
	case lx != ly:
		if lx < ly {
			return -1
		}
		return 1
	}
	for i := lx - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// isZero reports whether z is the canonical zero magnitude.
func (z limbs) isZero() bool { return len(z) == 0 }

// clone returns an independent copy of z, never aliasing z's storage.
func (z limbs) clone() limbs {
	if len(z) == 0 {
		return nil
	}
	c := make(limbs, len(z))
	copy(c, z)
	return c
}

// numDigits returns the number of decimal digits in the magnitude z,
// treating a leading zero magnitude as having a single digit "0".
func numDigits(z limbs) int {
	if len(z) == 0 {
		return 1
	}
	n := (len(z) - 1) * _LOG_B
	top := z[len(z)-1]
	for top > 0 {
		n++
		top /= 10
	}
	return n
}
