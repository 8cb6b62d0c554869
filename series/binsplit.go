// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series implements the binary-splitting recursion shared by the
// example programs (cmd/pi, cmd/e): a divide-and-conquer technique for
// evaluating rapidly-converging hypergeometric series without ever forming
// an explicit intermediate BigFloat, trading many small BigInt operations
// for the few, enormous ones a naive term-by-term accumulation would need.
package series

import "github.com/dconrad/bignum"

// Term supplies the per-index coefficients of a binary-splittable series
// Σ a(k) * p(0)*p(1)*...*p(k) / (b(0)*b(1)*...*b(k)), such as Chudnovsky's
// series for pi or the factorial series for e.
type Term interface {
	// P and Q return the numerator and denominator term contributed at
	// index k.
	P(k int64) *bignum.BigInt
	Q(k int64) *bignum.BigInt
	// A returns the linear numerator coefficient at index k (1 for series,
	// such as e's, with no such factor).
	A(k int64) *bignum.BigInt
}

// Result is the binary-split accumulation (P, Q, T) over an index range,
// where T/Q converges to the series' partial sum as the range widens: P is
// the product of all P(k), Q the product of all Q(k), and T the
// numerator sum Σ A(k)*P(lo)*...*P(k)*Q(k+1)*...*Q(hi-1) over [lo, hi),
// so that T/Q is the range's partial sum and splitting can resume one
// level up.
type Result struct {
	P, Q, T *bignum.BigInt
}

// Split evaluates the series term t over the half-open index range
// [lo, hi) via binary splitting: a single term is computed directly, and a
// wider range is split at its midpoint and the two halves combined.
func Split(t Term, lo, hi int64) Result {
	if hi-lo == 1 {
		p := t.P(lo)
		q := t.Q(lo)
		a := t.A(lo)
		return Result{P: p, Q: q, T: a.Mul(p)}
	}
	mid := lo + (hi-lo)/2
	left := Split(t, lo, mid)
	right := Split(t, mid, hi)
	return Result{
		P: left.P.Mul(right.P),
		Q: left.Q.Mul(right.Q),
		T: left.T.Mul(right.Q).Add(right.T.Mul(left.P)),
	}
}
