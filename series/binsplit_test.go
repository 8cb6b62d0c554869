// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"strings"
	"testing"

	"github.com/dconrad/bignum"
)

// factorialTerm computes n! via binary splitting: P(k) contributes the
// factor k (P(0)=1), Q is unused (fixed at 1), and A is unused (fixed at
// 1), so Result.P after Split(t, 0, n+1) is exactly n!.
type factorialTerm struct{}

func (factorialTerm) P(k int64) *bignum.BigInt {
	if k == 0 {
		return bignum.NewBigIntInt64(1)
	}
	return bignum.NewBigIntInt64(k)
}
func (factorialTerm) Q(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }
func (factorialTerm) A(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }

func factorial(n int64) *bignum.BigInt {
	return Split(factorialTerm{}, 0, n+1).P
}

// S3: factorial via binary splitting.
func TestSplit_S3_Factorial(t *testing.T) {
	f20 := factorial(20)
	if f20.String() != "2432902008176640000" {
		t.Fatalf("20! = %s, want 2432902008176640000", f20.String())
	}

	f50 := factorial(50)
	s := f50.String()
	if len(s) != 65 {
		t.Fatalf("50! has %d digits, want 65", len(s))
	}
	// floor(50/5) + floor(50/25) = 10 + 2 = 12 trailing zeros.
	if !strings.HasSuffix(s, strings.Repeat("0", 12)) {
		t.Fatalf("50! = %s, want it to end in 12 trailing zeros", s)
	}
}

// expTerm supplies e's series Sum_n 1/n! in the (P, Q, A) form: p(k)=1,
// q(k)=k+1, a(k)=1. Term n contributes a(n)*Numer(n)/Denom(n), where
// Denom(n) is the cumulative product of q(0)..q(n) Split's combine step
// builds up, here (n+1)!, so T(0,N)/Q(0,N) is the partial sum of
// Sum_{m=1}^{N} 1/m!.
type expTerm struct{}

func (expTerm) P(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }
func (expTerm) Q(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(k + 1) }
func (expTerm) A(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }

func TestSplit_PartialSumOfE(t *testing.T) {
	// Sum_{m=1}^{4} 1/m! = 1/1! + 1/2! + 1/3! + 1/4! = 41/24.
	res := Split(expTerm{}, 0, 4)
	if res.Q.String() != "24" {
		t.Fatalf("Q(0,4) = %s, want 24", res.Q.String())
	}
	if res.T.String() != "41" {
		t.Fatalf("T(0,4) = %s, want 41", res.T.String())
	}
}

func TestSplit_SingleTerm(t *testing.T) {
	res := Split(factorialTerm{}, 5, 6)
	if res.P.String() != "5" {
		t.Fatalf("single-term split P = %s, want 5", res.P.String())
	}
}
