// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// DefaultPrec is the precision (in decimal digits) new BigFloat values use
// when no scope has called SetPrec.
const DefaultPrec = 34

// prec is the process-wide precision, in decimal digits, that every
// BigFloat operation truncates its result to. Mutated only by SetPrec;
// the kernel is single-threaded and never touches it concurrently.
var prec = DefaultPrec

// SetPrec sets the process-wide precision, in decimal digits, used by all
// subsequent BigFloat operations. p must be positive.
func SetPrec(p int) {
	if p <= 0 {
		panic("bignum: SetPrec requires a positive precision")
	}
	prec = p
}

// GetPrec returns the current process-wide precision.
func GetPrec() int { return prec }

// precLimbs returns the limb budget ⌈P/16⌉+2 that every BigFloat
// arithmetic result is truncated to, for precision P digits.
func precLimbs(p int) int {
	return (p+_LOG_B-1)/_LOG_B + 2
}

// strLimbs returns the tighter limb budget ⌈P/16⌉+1 applied when rendering
// a BigFloat: one limb less than arithmetic results carry, so printed
// output never exposes the guard limb.
func strLimbs(p int) int {
	return (p+_LOG_B-1)/_LOG_B + 1
}

// withPrec temporarily overrides the package-level precision for the
// duration of fn, restoring the previous value on every exit path
// (including a panic).
func withPrec(p int, fn func()) {
	saved := prec
	defer func() { prec = saved }()
	prec = p
	fn()
}
