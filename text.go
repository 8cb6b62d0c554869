// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"strconv"
	"strings"
)

// NewBigIntFromString parses s as a signed, plain base-10 integer literal
// (optional leading '+'/'-', digits only: no scientific notation, no
// underscores, no alternate bases). When checkInput is false, s is trusted
// to already be a valid digit run (used internally once a caller has
// already validated the string), skipping the scan.
func NewBigIntFromString(s string, checkInput bool) (*BigInt, error) {
	neg := false
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if checkInput {
		if digits == "" {
			return nil, &InvalidInputError{Input: s, Op: "NewBigIntFromString"}
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return nil, &InvalidInputError{Input: s, Op: "NewBigIntFromString"}
			}
		}
	}
	mag := digitsToLimbs(digits)
	if len(mag) == 0 {
		neg = false
	}
	return &BigInt{neg: neg, mag: mag}, nil
}

// digitsToLimbs converts a run of base-10 digits (most significant first)
// into little-endian base-_B limbs.
func digitsToLimbs(digits string) limbs {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return nil
	}
	n := len(digits)
	nLimbs := (n + _LOG_B - 1) / _LOG_B
	z := make(limbs, nLimbs)
	// chunk from the least significant end
	end := n
	for i := 0; i < nLimbs; i++ {
		start := end - _LOG_B
		if start < 0 {
			start = 0
		}
		v, _ := strconv.ParseUint(digits[start:end], 10, 64)
		z[i] = Word(v)
		end = start
	}
	return norm(z)
}

// String renders x in plain base-10, with a leading '-' for negative
// values and no leading zeros (canonical zero renders as "0").
func (x *BigInt) String() string {
	if x.isZero() {
		return "0"
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	limbsToDigits(&b, x.mag)
	return b.String()
}

func limbsToDigits(b *strings.Builder, mag limbs) {
	top := len(mag) - 1
	b.WriteString(strconv.FormatUint(uint64(mag[top]), 10))
	for i := top - 1; i >= 0; i-- {
		s := strconv.FormatUint(uint64(mag[i]), 10)
		for pad := _LOG_B - len(s); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
}

// sciLowExp is the smallest decimal exponent BigFloat.String renders in
// plain notation; below it (and at or above the rendered mantissa's digit
// count) it switches to scientific notation. The asymmetry of plain-only input and
// scientific-capable output is deliberate (see DESIGN.md).
const sciLowExp = -10

// NewBigFloatFromString parses s as a signed plain decimal literal: an
// optional sign, digits, an optional single '.', and more digits.
// Scientific notation ('e'/'E') is rejected: input is plain decimal only,
// even though String emits scientific notation for extreme exponents.
func NewBigFloatFromString(s string) (*BigFloat, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, &InvalidInputError{Input: orig, Op: "NewBigFloatFromString"}
	}
	for _, r := range s {
		if r == 'e' || r == 'E' {
			return nil, &InvalidInputError{Input: orig, Op: "NewBigFloatFromString"}
		}
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, &InvalidInputError{Input: orig, Op: "NewBigFloatFromString"}
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return nil, &InvalidInputError{Input: orig, Op: "NewBigFloatFromString"}
		}
	}
	digits := intPart + fracPart
	mag := digitsToLimbs(digits)
	if len(mag) == 0 {
		return &BigFloat{mant: &BigInt{}}, nil
	}
	// least-significant digit of the literal sits at decimal exponent
	// -len(fracPart); most-significant digit is numDigits(mag)-1 above it.
	lsd := -len(fracPart)
	exp := lsd + numDigits(mag) - 1
	z := &BigFloat{mant: &BigInt{neg: neg, mag: mag}, exp: exp}
	return z.truncate(), nil
}

// String renders z as a decimal literal: plain notation (always with an
// explicit decimal point) when its decimal exponent falls within
// [sciLowExp, D-1] for a D-digit mantissa, scientific "d.dddde<exp>"
// notation otherwise. Zero renders as a bare "0".
func (z *BigFloat) String() string {
	if z.isZero() {
		return "0"
	}
	// stringification keeps one limb less than arithmetic results carry;
	// the low limb is a guard whose digits are not warranted correct.
	mag := z.mant.mag
	if budget := strLimbs(prec); len(mag) > budget {
		mag = mag[len(mag)-budget:]
	}
	var digits strings.Builder
	limbsToDigits(&digits, mag)
	ds := digits.String()
	sign := ""
	if z.mant.neg {
		sign = "-"
	}
	if z.exp >= sciLowExp && z.exp < len(ds) {
		return sign + plainForm(ds, z.exp)
	}
	return sign + sciForm(ds, z.exp)
}

// plainForm places the decimal point so that the first digit of ds sits at
// decimal exponent topExp, appending a "0" fraction when no stored digit
// falls below the point.
func plainForm(ds string, topExp int) string {
	// value = ds (as an integer) * 10^(topExp - len(ds) + 1)
	shift := topExp - len(ds) + 1
	if shift >= 0 {
		return ds + strings.Repeat("0", shift) + ".0"
	}
	point := len(ds) + shift // position of the decimal point within ds, from the left
	if point <= 0 {
		return "0." + strings.Repeat("0", -point) + ds
	}
	return ds[:point] + "." + ds[point:]
}

func sciForm(ds string, topExp int) string {
	frac := "0"
	if len(ds) > 1 {
		frac = ds[1:]
	}
	return ds[:1] + "." + frac + "e" + strconv.Itoa(topExp)
}
