// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Word is a single decimal limb. Limbs are stored least-significant first
// and hold values in [0, _B).
type Word = uint64

const (
	// _LOG_B is the number of decimal digits per limb.
	_LOG_B = 16
	// _B is the limb radix, 1e16.
	_B = 1e16
	// _LOG_B2 is the number of decimal digits per half-limb, used to defer
	// carries during schoolbook multiplication.
	_LOG_B2 = 8
	// _B2 is the half-limb radix, 1e8. _B2*_B2 == _B.
	_B2 = 1e8
)
