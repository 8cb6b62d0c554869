// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a scoped, non-global wrapper around bignum's
// process-wide precision context. Callers that want to avoid mutating
// shared package state, or that want several independent precisions live
// at once, can use a Context instead of calling bignum.SetPrec directly.
// It also accumulates the first error encountered across a sequence of
// operations, so a chain of calls doesn't need to be checked after every
// step.
package context

import "github.com/dconrad/bignum"

// Context binds a fixed precision to a sequence of BigFloat operations and
// accumulates the first error any of them produces.
type Context struct {
	prec int
	err  error
}

// New returns a Context with the given precision, in decimal digits.
func New(prec int) *Context {
	return &Context{prec: prec}
}

// Err returns the first error encountered by a call on c, or nil.
func (c *Context) Err() error { return c.err }

// Prec returns c's precision.
func (c *Context) Prec() int { return c.prec }

// apply swaps the package-level precision in for the duration of fn,
// restoring the previous value on every exit path, and records err into
// c.err if it is c's first failure.
func (c *Context) apply(fn func() (*bignum.BigFloat, error)) *bignum.BigFloat {
	saved := bignum.GetPrec()
	bignum.SetPrec(c.prec)
	defer bignum.SetPrec(saved)
	z, err := fn()
	if err != nil && c.err == nil {
		c.err = err
	}
	return z
}

// Add returns x+y at c's precision.
func (c *Context) Add(x, y *bignum.BigFloat) *bignum.BigFloat {
	return c.apply(func() (*bignum.BigFloat, error) { return x.Add(y), nil })
}

// Sub returns x-y at c's precision.
func (c *Context) Sub(x, y *bignum.BigFloat) *bignum.BigFloat {
	return c.apply(func() (*bignum.BigFloat, error) { return x.Sub(y), nil })
}

// Mul returns x*y at c's precision.
func (c *Context) Mul(x, y *bignum.BigFloat) *bignum.BigFloat {
	return c.apply(func() (*bignum.BigFloat, error) { return x.Mul(y), nil })
}

// Quo returns x/y at c's precision.
func (c *Context) Quo(x, y *bignum.BigFloat) *bignum.BigFloat {
	return c.apply(func() (*bignum.BigFloat, error) { return x.Quo(y) })
}

// Sqrt returns sqrt(x) at c's precision.
func (c *Context) Sqrt(x *bignum.BigFloat) *bignum.BigFloat {
	return c.apply(func() (*bignum.BigFloat, error) { return x.Sqrt() })
}
