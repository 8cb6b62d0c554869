// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision signed integer and
variable-precision decimal floating-point arithmetic.

BigInt represents an arbitrary-precision signed integer in sign-magnitude
form. Its magnitude is stored as a little-endian slice of base-1e16 limbs, so
all arithmetic is performed directly in base 10**16 without conversion
to/from binary.

BigFloat represents a variable-precision decimal real as a BigInt mantissa
scaled by a power of ten. The process-wide precision context (see SetPrec and
GetPrec) bounds the mantissa length that every BigFloat operation truncates
to after computing an exact intermediate result.

The zero value for a BigInt corresponds to 0:

	var x BigInt // x is a BigInt of value 0

New values are more commonly produced by the constructors:

	x, err := NewBigIntFromString("123456789012345678901234567890", true)
	y := NewBigIntInt64(42)

Unlike *big.Int, arithmetic methods on BigInt and BigFloat do not mutate the
receiver and do not take a destination operand: they return a freshly owned
result, e.g.

	z := x.Add(y) // z = x + y; x and y are unchanged

This avoids aliasing hazards during the deeply recursive Karatsuba and
Toom-Cook multiplication paths, where inputs and intermediate values would
otherwise be easy to corrupt in place.
*/
package bignum
