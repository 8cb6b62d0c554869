// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pi computes pi to a requested number of decimal digits using the
// Chudnovsky series, evaluated by binary splitting, and the bignum kernel's
// Sqrt and Quo operations to finish the series. It is an external
// collaborator of the bignum kernel, not part of it: all CLI parsing,
// timing, and reporting lives here.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dconrad/bignum"
	"github.com/dconrad/bignum/series"
)

// chudnovskyTerm supplies the P/Q/A coefficients of the Chudnovsky series
//
//	1/pi = 12 * Sum_k (-1)^k (6k)! (13591409 + 545140134k) / ((3k)! (k!)^3 640320^(3k+3/2))
//
// in the binary-splittable P(k)/Q(k)/A(k) form series.Split expects.
type chudnovskyTerm struct {
	c3 *bignum.BigInt // 640320^3
}

func (t chudnovskyTerm) P(k int64) *bignum.BigInt {
	if k == 0 {
		return bignum.NewBigIntInt64(1)
	}
	a := bignum.NewBigIntInt64(6*k - 5)
	b := bignum.NewBigIntInt64(2*k - 1)
	c := bignum.NewBigIntInt64(6*k - 1)
	p := a.Mul(b).Mul(c)
	return p.Neg()
}

func (t chudnovskyTerm) Q(k int64) *bignum.BigInt {
	if k == 0 {
		return bignum.NewBigIntInt64(1)
	}
	k3, err := bignum.NewBigIntInt64(k).Pow(3)
	if err != nil {
		log.Fatal().Err(err).Msg("computing k^3")
	}
	num := k3.Mul(t.c3)
	q, err := num.Div(bignum.NewBigIntInt64(24))
	if err != nil {
		log.Fatal().Err(err).Msg("dividing by 24")
	}
	return q
}

func (t chudnovskyTerm) A(k int64) *bignum.BigInt {
	return bignum.NewBigIntInt64(13591409).Add(bignum.NewBigIntInt64(545140134).Mul(bignum.NewBigIntInt64(k)))
}

func main() {
	digits := flag.Int("digits", 100, "number of decimal digits of pi to compute")
	verbose := flag.Bool("v", false, "verbose timing output")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	start := time.Now()

	prec := *digits + 20
	bignum.SetPrec(prec)

	// terms needed: each binary-split term contributes roughly 14.18
	// decimal digits of precision.
	n := int64(*digits)/14 + 2

	c640320, err := bignum.NewBigIntInt64(640320).Pow(3)
	if err != nil {
		log.Fatal().Err(err).Msg("computing 640320^3")
	}
	term := chudnovskyTerm{c3: c640320}

	log.Info().Int64("terms", n).Int("digits", *digits).Msg("starting Chudnovsky binary split")
	res := series.Split(term, 0, n)
	log.Info().Dur("split_elapsed", time.Since(start)).Msg("binary split complete")

	sqrtStart := time.Now()
	c10005 := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(10005))
	s10005, err := c10005.Sqrt()
	if err != nil {
		log.Fatal().Err(err).Msg("computing sqrt(10005)")
	}
	log.Info().Dur("sqrt_elapsed", time.Since(sqrtStart)).Msg("sqrt(10005) complete")

	numF := bignum.NewBigFloatFromBigInt(bignum.NewBigIntInt64(426880)).Mul(s10005).Mul(bignum.NewBigFloatFromBigInt(res.Q))
	denF := bignum.NewBigFloatFromBigInt(res.T)

	quoStart := time.Now()
	piVal, err := numF.Quo(denF)
	if err != nil {
		log.Fatal().Err(err).Msg("dividing to finish the series")
	}
	log.Info().Dur("quo_elapsed", time.Since(quoStart)).Dur("total_elapsed", time.Since(start)).Msg("pi computed")

	os.Stdout.WriteString(piVal.String() + "\n")
}
