// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/big"

// mulToom computes x*y by splitting each operand into `parts` pieces of m
// limbs (the most significant piece may be shorter), evaluating the two
// resulting degree-(parts-1) integer polynomials at the points 0..2*parts-2,
// multiplying pointwise through the dispatcher, and recovering the exact
// monomial coefficients of the product polynomial by integer interpolation
// before reassembling the result. The Toom-Cook-3, -4/-4.5 and -6.5-half
// tiers named by the dispatcher are all instances of this one routine with
// `parts` = 3, 4 and 6, for multiplication and squaring alike. Both
// operands are always split with the same `parts` and m; there is no
// asymmetric (4-vs-5-part) split.
func mulToom(x, y limbs, parts int) limbs {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	m := (n + parts - 1) / parts
	if m == 0 {
		return mulUnsigned(x, y)
	}
	xp := splitParts(x, m, parts)
	yp := splitParts(y, m, parts)
	return toomCore(xp, yp, m)
}

// sqrToom computes x*x via the same splitting and interpolation scheme.
func sqrToom(x limbs, parts int) limbs {
	m := (len(x) + parts - 1) / parts
	if m == 0 {
		return sqrUnsigned(x)
	}
	xp := splitParts(x, m, parts)
	return toomCore(xp, xp, m)
}

func toomCore(xp, yp []limbs, m int) limbs {
	npoints := 2*maxInt(len(xp), len(yp)) - 1
	values := make([]*BigInt, npoints)
	for i := 0; i < npoints; i++ {
		vx := evalAt(xp, int64(i))
		vy := evalAt(yp, int64(i))
		values[i] = &BigInt{mag: mulUnsigned(vx.mag, vy.mag)}
	}
	coeffs := interpolate(values)
	return assembleCoeffs(coeffs, m)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// splitParts splits z into `parts` little-endian pieces of m limbs each
// (the last piece may be shorter, or absent if z is exhausted).
func splitParts(z limbs, m, parts int) []limbs {
	out := make([]limbs, 0, parts)
	for i := 0; i < parts && i*m < len(z)+1; i++ {
		lo := i * m
		if lo >= len(z) {
			break
		}
		hi := lo + m
		if hi > len(z) {
			hi = len(z)
		}
		out = append(out, norm(z[lo:hi].clone()))
	}
	if len(out) == 0 {
		out = append(out, nil)
	}
	return out
}

// evalAt evaluates the polynomial whose coefficients are parts[0], parts[1],
// ... (each a non-negative magnitude) at the non-negative integer point t,
// via Horner's method.
func evalAt(parts []limbs, t int64) *BigInt {
	acc := &BigInt{}
	for i := len(parts) - 1; i >= 0; i-- {
		acc = mulSmallSigned(acc, t)
		acc = &BigInt{mag: uadd(acc.mag, parts[i])}
	}
	return acc
}

// interpMatrixCache memoizes the inverse Vandermonde matrix for n points
// 0..n-1, since it depends only on n, never on the operands being
// multiplied.
var interpMatrixCache = map[int][][]*big.Rat{}

// interpolate recovers the monomial coefficients of the unique polynomial
// of degree len(values)-1 taking the given values at points 0..len(values)-1.
func interpolate(values []*BigInt) []*BigInt {
	n := len(values)
	inv, ok := interpMatrixCache[n]
	if !ok {
		inv = invertVandermonde(n)
		interpMatrixCache[n] = inv
	}
	coeffs := make([]*BigInt, n)
	for j := 0; j < n; j++ {
		coeffs[j] = combineRow(inv[j], values)
	}
	return coeffs
}

// invertVandermonde returns the inverse of the n x n Vandermonde matrix
// V[i][j] = i^j, via exact rational Gauss-Jordan elimination. n is always
// small (the number of Toom evaluation points), so this costs nothing
// relative to the big-integer work it unlocks.
func invertVandermonde(n int) [][]*big.Rat {
	aug := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]*big.Rat, 2*n)
		p := big.NewRat(1, 1)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).Set(p)
			p = new(big.Rat).Mul(p, big.NewRat(int64(i), 1))
		}
		for j := 0; j < n; j++ {
			if j == i {
				aug[i][n+j] = big.NewRat(1, 1)
			} else {
				aug[i][n+j] = big.NewRat(0, 1)
			}
		}
	}
	for col := 0; col < n; col++ {
		piv := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				piv = r
				break
			}
		}
		if piv < 0 {
			panic("bignum: singular Toom interpolation matrix")
		}
		aug[col], aug[piv] = aug[piv], aug[col]
		inv := new(big.Rat).Inv(aug[col][col])
		for j := 0; j < 2*n; j++ {
			aug[col][j] = new(big.Rat).Mul(aug[col][j], inv)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				t := new(big.Rat).Mul(factor, aug[col][j])
				aug[r][j] = new(big.Rat).Sub(aug[r][j], t)
			}
		}
	}
	out := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = aug[i][n : 2*n]
	}
	return out
}

// combineRow computes Σ row[i]*values[i] exactly, where row holds small
// rational constants (independent of operand size) and values holds the
// big-integer point evaluations of the product polynomial.
func combineRow(row []*big.Rat, values []*BigInt) *BigInt {
	den := big.NewInt(1)
	for _, r := range row {
		den = lcmInt(den, r.Denom())
	}
	denI64 := den.Int64()
	total := &BigInt{}
	for i, r := range row {
		if r.Sign() == 0 {
			continue
		}
		scale := new(big.Int).Div(den, r.Denom())
		scale.Mul(scale, r.Num())
		total = total.Add(mulSmallSigned(values[i], scale.Int64()))
	}
	return divSmallExact(total, denI64)
}

func lcmInt(a, b *big.Int) *big.Int {
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	l := new(big.Int).Div(a, g)
	l.Mul(l, b)
	return new(big.Int).Abs(l)
}

// assembleCoeffs folds Σ coeffs[i] * _B^(i*m) into a single non-negative
// magnitude. Intermediate coefficients may be negative (the interpolation
// combination can produce them transiently) but the final sum, being the
// product of two non-negative operands, is always non-negative.
func assembleCoeffs(coeffs []*BigInt, m int) limbs {
	total := &BigInt{}
	for i, c := range coeffs {
		total = total.Add(c.shiftLimbs(i * m))
	}
	if total.neg && !total.isZero() {
		panic("bignum: negative result from Toom interpolation")
	}
	return total.mag
}

// shiftLimbs returns x * _B^k.
func (x *BigInt) shiftLimbs(k int) *BigInt {
	if x.isZero() || k == 0 {
		return x
	}
	z := make(limbs, k+len(x.mag))
	copy(z[k:], x.mag)
	return &BigInt{neg: x.neg, mag: z}
}
