// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// InvalidInputError reports a malformed numeric literal passed to one of
// the NewBigInt.../NewBigFloat... constructors.
type InvalidInputError struct {
	Input string
	Op    string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("bignum: %s: invalid input %q", e.Op, e.Input)
}

// DomainError reports an operation applied outside its mathematical domain:
// square root of a negative number, division or modulo by zero, or a zero
// base raised to a negative exponent.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("bignum: %s: %s", e.Op, e.Msg)
}

// OverflowError reports a value that exceeds what the kernel can
// represent, such as a PowBig exponent wider than 64 bits.
type OverflowError struct {
	Op  string
	Msg string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bignum: %s: overflow: %s", e.Op, e.Msg)
}
