// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"testing"

	"github.com/dconrad/bignum"
)

func TestContext_RestoresPackagePrecision(t *testing.T) {
	bignum.SetPrec(34)
	c := New(10)
	x := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(22))
	y := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(7))
	_ = c.Quo(x, y)
	if got := bignum.GetPrec(); got != 34 {
		t.Fatalf("package precision leaked out of Context.apply: got %d, want 34", got)
	}
}

func TestContext_AccumulatesFirstError(t *testing.T) {
	c := New(20)
	zero := bignum.NewBigFloatFromBigInt(&bignum.BigInt{})
	one := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(1))
	c.Quo(one, zero)
	if c.Err() == nil {
		t.Fatal("expected Quo by zero to set Context.Err")
	}
	first := c.Err()
	c.Quo(one, zero)
	if c.Err() != first {
		t.Fatal("Context should only retain the first error")
	}
}

func TestContext_ArithmeticAtBoundPrecision(t *testing.T) {
	bignum.SetPrec(34)
	c := New(5)
	x := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(1))
	three := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(3))
	got := c.Quo(x, three)
	if got.Sign() <= 0 {
		t.Fatalf("1/3 at precision 5 should be positive, got %s", got.String())
	}
}
