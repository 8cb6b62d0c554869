// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Dispatch thresholds, in limbs of the smaller operand. Tunable: the
// crossover points depend on how fast the schoolbook base case is on the
// host, and nothing else in the package assumes particular values.
const (
	karatsubaThreshold = 32
	toom3Threshold     = 110
	toom4Threshold     = 300
	toom6hThreshold    = 900
)

// mulUnsigned dispatches x*y across schoolbook, Karatsuba, and the Toom-Cook
// family, keyed on the limb count of the smaller operand. It also detects x
// and y holding equal magnitudes (by value, never by pointer identity) and
// routes to the dedicated squaring path, whose schoolbook base case
// (sqrSchool) computes each cross term once instead of twice.
func mulUnsigned(x, y limbs) limbs {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if cmp(x, y) == 0 {
		return sqrUnsigned(x)
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		return mulSchool(x, y)
	}
	// Karatsuba and Toom-Cook degrade on strongly unequal operands: pad the
	// shorter one with low-order zero limbs (scaling it by a power of _B),
	// run the balanced algorithm, and strip the same number of known-zero
	// limbs back off the low end of the product.
	if d := len(x) - len(y); d > 0 {
		py := make(limbs, len(x))
		copy(py[d:], y)
		return mulBalanced(x, py, len(y))[d:]
	}
	return mulBalanced(x, y, len(y))
}

// mulBalanced multiplies two equal-length magnitudes, selecting the
// algorithm tier from n, the pre-padding limb count of the smaller operand.
func mulBalanced(x, y limbs, n int) limbs {
	switch {
	case n < toom3Threshold:
		return mulKaratsuba(x, y)
	case n < toom4Threshold:
		return mulToom(x, y, 3)
	case n < toom6hThreshold:
		// the Toom-4.5 tier: both operands are split into 4 parts of the
		// same limb count; mulToom has no 4-vs-5-part split.
		return mulToom(x, y, 4)
	default:
		return mulToom(x, y, 6)
	}
}

// sqrUnsigned dispatches x*x across the same family, using the squaring
// variant of each algorithm: sqrSchool, sqrKaratsuba, and sqrToom (which
// feeds the same split of x to both sides of the Toom-Cook core) for the
// Toom-Cook tiers.
func sqrUnsigned(x limbs) limbs {
	if len(x) == 0 {
		return nil
	}
	n := len(x)
	switch {
	case n < karatsubaThreshold:
		return sqrSchool(x)
	case n < toom3Threshold:
		return sqrKaratsuba(x)
	case n < toom4Threshold:
		return sqrToom(x, 3)
	case n < toom6hThreshold:
		return sqrToom(x, 4)
	default:
		// Toom-Cook-6.5-half: a 6-way split.
		return sqrToom(x, 6)
	}
}
