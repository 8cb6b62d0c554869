// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command e computes Euler's number to a requested number of decimal
// digits by binary splitting the series e = Sum_k 1/k!, reusing the same
// series.Split recursion as cmd/pi. It is an external collaborator of the
// bignum kernel, not part of it: all CLI parsing, timing, and reporting
// lives here.
package main

import (
	"flag"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dconrad/bignum"
	"github.com/dconrad/bignum/series"
)

// factorialTerm supplies the P/Q/A coefficients of e = Sum_k 1/k! in the
// binary-splittable P(k)/Q(k)/A(k) form series.Split expects: P(k) is
// always 1 (there is no running numerator product), Q(k) contributes the
// factor k to the denominator factorial (Q(0)=1), and A(k)=1 since every
// term has coefficient 1.
type factorialTerm struct{}

func (factorialTerm) P(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }

func (factorialTerm) Q(k int64) *bignum.BigInt {
	if k == 0 {
		return bignum.NewBigIntInt64(1)
	}
	return bignum.NewBigIntInt64(k)
}

func (factorialTerm) A(k int64) *bignum.BigInt { return bignum.NewBigIntInt64(1) }

// neededTerms estimates how many leading terms of Sum 1/k! are needed to
// resolve `digits` decimal digits, by accumulating log10(k!) until it
// exceeds the target with a small guard margin.
func neededTerms(digits int) int64 {
	target := float64(digits) + 10
	sum := 0.0
	var k int64
	for sum < target {
		k++
		sum += math.Log10(float64(k))
	}
	return k + 1
}

func main() {
	digits := flag.Int("digits", 100, "number of decimal digits of e to compute")
	verbose := flag.Bool("v", false, "verbose timing output")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	start := time.Now()

	bignum.SetPrec(*digits + 20)

	n := neededTerms(*digits)
	log.Info().Int64("terms", n).Int("digits", *digits).Msg("starting factorial binary split")

	res := series.Split(factorialTerm{}, 0, n)
	log.Info().Dur("split_elapsed", time.Since(start)).Msg("binary split complete")

	quoStart := time.Now()
	tF := bignum.NewBigFloatFromBigInt(res.T)
	qF := bignum.NewBigFloatFromBigInt(res.Q)
	eVal, err := tF.Quo(qF)
	if err != nil {
		log.Fatal().Err(err).Msg("dividing to finish the series")
	}
	log.Info().Dur("quo_elapsed", time.Since(quoStart)).Dur("total_elapsed", time.Since(start)).Msg("e computed")

	os.Stdout.WriteString(eVal.String() + "\n")
}
