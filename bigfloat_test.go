// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"strings"
	"testing"
)

func mustBigFloat(t *testing.T, s string) *BigFloat {
	t.Helper()
	z, err := NewBigFloatFromString(s)
	if err != nil {
		t.Fatalf("NewBigFloatFromString(%q): %v", s, err)
	}
	return z
}

func withTestPrec(t *testing.T, p int, fn func()) {
	t.Helper()
	saved := GetPrec()
	SetPrec(p)
	defer SetPrec(saved)
	fn()
}

// sqrt(2) at precision 50 must begin with the first 50 known digits.
func TestBigFloat_S4_Sqrt2(t *testing.T) {
	withTestPrec(t, 50, func() {
		two := NewBigFloatFromBigInt(NewBigIntInt64(2))
		s, err := two.Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		want := "1.41421356237309504880168872420969807856967187537694"
		got := s.String()
		if !strings.HasPrefix(got, want) {
			t.Fatalf("sqrt(2) = %s, want a value starting with %s", got, want)
		}
	})
}

func TestBigFloat_SqrtNegative(t *testing.T) {
	x := mustBigFloat(t, "-4")
	if _, err := x.Sqrt(); err == nil {
		t.Fatal("expected an error for sqrt of a negative number")
	} else if _, ok := err.(*DomainError); !ok {
		t.Fatalf("expected a *DomainError, got %T", err)
	}
}

func TestBigFloat_SqrtZero(t *testing.T) {
	withTestPrec(t, 30, func() {
		z, err := (&BigFloat{mant: &BigInt{}}).Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		if !z.isZero() {
			t.Fatalf("sqrt(0) = %s, want 0", z.String())
		}
	})
}

// TestBigFloat_SqrtCorrectness checks that |sqrt(x)^2-x| has at least P-4
// leading zero decimal digits relative to x's magnitude.
func TestBigFloat_SqrtCorrectness(t *testing.T) {
	const p = 40
	withTestPrec(t, p, func() {
		for _, s := range []string{"2", "3", "10005", "123456789.987654321", "0.00001234"} {
			x := mustBigFloat(t, s)
			sq, err := x.Sqrt()
			if err != nil {
				t.Fatal(err)
			}
			sq2 := sq.Mul(sq)
			diff := sq2.Sub(x).Abs()
			if diff.isZero() {
				continue
			}
			// relative error exponent should trail x's by roughly -p.
			if diff.exp > x.exp-(p-4) {
				t.Fatalf("sqrt(%s)^2 not accurate to precision %d: diff exponent %d, x exponent %d",
					s, p, diff.exp, x.exp)
			}
		}
	})
}

// TestBigFloat_ReciprocalCorrectness checks that |x*(1/x) - 1| stays below
// 10^-(P-4).
func TestBigFloat_ReciprocalCorrectness(t *testing.T) {
	const p = 40
	withTestPrec(t, p, func() {
		one := NewBigFloatFromBigInt(NewBigIntInt64(1))
		for _, s := range []string{"7", "3.14159", "123456789.987654321", "0.00001234", "-42"} {
			x := mustBigFloat(t, s)
			inv, err := x.Reciprocal()
			if err != nil {
				t.Fatal(err)
			}
			residual := x.Mul(inv).Sub(one).Abs()
			if residual.isZero() {
				continue
			}
			if residual.exp > -(p - 4) {
				t.Fatalf("reciprocal of %s not accurate to precision %d: residual exponent %d", s, p, residual.exp)
			}
		}
	})
}

func TestBigFloat_ReciprocalOfZero(t *testing.T) {
	if _, err := (&BigFloat{mant: &BigInt{}}).Reciprocal(); err == nil {
		t.Fatal("expected an error for the reciprocal of zero")
	}
}

// TestBigFloat_MonotonicPrecision checks that raising the precision never
// reduces the number of leading digits that agree with a higher-precision
// oracle.
func TestBigFloat_MonotonicPrecision(t *testing.T) {
	var oracle string
	withTestPrec(t, 80, func() {
		two := NewBigFloatFromBigInt(NewBigIntInt64(2))
		s, err := two.Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		oracle = s.String()
	})
	prevMatch := 0
	for _, p := range []int{10, 20, 40, 60} {
		withTestPrec(t, p, func() {
			two := NewBigFloatFromBigInt(NewBigIntInt64(2))
			s, err := two.Sqrt()
			if err != nil {
				t.Fatal(err)
			}
			match := commonPrefixLen(s.String(), oracle)
			if match < prevMatch {
				t.Fatalf("precision %d matched fewer leading digits (%d) than a lower precision (%d)", p, match, prevMatch)
			}
			prevMatch = match
		})
	}
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func TestBigFloat_ParseInvalid(t *testing.T) {
	for _, s := range []string{"", "+", "-", "1.2.3", "1e5", "1E5", "abc", "++1"} {
		if _, err := NewBigFloatFromString(s); err == nil {
			t.Fatalf("NewBigFloatFromString(%q) should have failed", s)
		}
	}
}

func TestBigFloat_RoundTrip(t *testing.T) {
	withTestPrec(t, 40, func() {
		for _, s := range []string{"0", "1", "-1", "3.14159", "0.001", "-123456789.0001", "100000000000000000000"} {
			x := mustBigFloat(t, s)
			y := mustBigFloat(t, x.String())
			if x.Cmp(y) != 0 {
				t.Fatalf("round trip %q -> %q -> %q lost value", s, x.String(), y.String())
			}
		}
	})
}

func TestBigFloat_ScientificNotationOutput(t *testing.T) {
	withTestPrec(t, 20, func() {
		x := mustBigFloat(t, "123")
		x.exp = 25 // a decimal exponent beyond the mantissa's digit span
		if got := x.String(); got != "1.23e25" {
			t.Fatalf("expected scientific notation for exp=25, got %s", got)
		}
		y := mustBigFloat(t, "5")
		y.exp = -12
		if got := y.String(); got != "5.0e-12" {
			t.Fatalf("expected scientific notation for exp=-12, got %s", got)
		}
	})
}

func TestBigFloat_PlainNotationOutput(t *testing.T) {
	withTestPrec(t, 30, func() {
		cases := []struct{ in, want string }{
			{"1", "1.0"},
			{"123000", "123000.0"},
			{"3.14159", "3.14159"},
			{"0.001", "0.001"},
			{"-42.5", "-42.5"},
		}
		for _, c := range cases {
			if got := mustBigFloat(t, c.in).String(); got != c.want {
				t.Fatalf("String(%s) = %s, want %s", c.in, got, c.want)
			}
		}
	})
}

// Values whose decimal exponents sit far outside float64 range must still
// seed correctly: the exponent is carried in integer arithmetic, only the
// mantissa crosses the float64 boundary.
func TestBigFloat_HugeExponentReciprocal(t *testing.T) {
	withTestPrec(t, 40, func() {
		pow, err := NewBigIntInt64(10).Pow(400)
		if err != nil {
			t.Fatal(err)
		}
		x := NewBigFloatFromBigInt(pow) // 10^400, beyond float64 range
		inv, err := x.Reciprocal()
		if err != nil {
			t.Fatal(err)
		}
		if inv.exp != -400 {
			t.Fatalf("1/10^400 has exponent %d, want -400", inv.exp)
		}
		one := NewBigFloatInt64(1)
		residual := x.Mul(inv).Sub(one).Abs()
		if !residual.isZero() && residual.exp > -(40-4) {
			t.Fatalf("1/10^400 residual exponent %d too large", residual.exp)
		}
	})
}

func TestBigFloat_HugeExponentSqrt(t *testing.T) {
	withTestPrec(t, 40, func() {
		two := mustBigFloat(t, "2"+strings.Repeat("0", 601)) // 2*10^601, odd exponent
		s, err := two.Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		diff := s.Mul(s).Sub(two).Abs()
		if !diff.isZero() && diff.exp > two.exp-(40-4) {
			t.Fatalf("sqrt(2e601)^2 off by exponent %d vs operand exponent %d", diff.exp, two.exp)
		}
	})
}

func TestBigFloat_Pow(t *testing.T) {
	withTestPrec(t, 30, func() {
		x := mustBigFloat(t, "1.5")
		sq, err := x.Pow(2)
		if err != nil {
			t.Fatal(err)
		}
		if got := sq.String(); got != "2.25" {
			t.Fatalf("1.5^2 = %s, want 2.25", got)
		}
		half, err := mustBigFloat(t, "2").Pow(-1)
		if err != nil {
			t.Fatal(err)
		}
		if half.Cmp(mustBigFloat(t, "0.5")) != 0 {
			t.Fatalf("2^-1 = %s, want 0.5", half.String())
		}
		if _, err := (&BigFloat{mant: &BigInt{}}).Pow(-2); err == nil {
			t.Fatal("expected a domain error for 0^-2")
		}
	})
}

// An addend whose leading digit sits more than prec digits below the other
// operand's vanishes from the sum entirely.
func TestBigFloat_AddBelowPrecisionFloor(t *testing.T) {
	withTestPrec(t, 20, func() {
		big := mustBigFloat(t, "1"+strings.Repeat("0", 30)) // 10^30
		tiny := mustBigFloat(t, "1")
		sum := big.Add(tiny)
		if sum.Cmp(big) != 0 {
			t.Fatalf("10^30 + 1 at prec 20 = %s, want 10^30 unchanged", sum.String())
		}
	})
}

func TestBigFloat_Absorbing(t *testing.T) {
	x := mustBigFloat(t, "42.5")
	zero := &BigFloat{mant: &BigInt{}}
	if !x.Mul(zero).isZero() {
		t.Fatal("x * 0 should be 0 for BigFloat")
	}
}
