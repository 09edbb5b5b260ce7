// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCirclePerimeter(tst *testing.T) {
	chk.PrintTitle("circle perimeter")

	desc := CirclePerimeter()
	eq := desc.Instantiate(nil)
	res := eq.Evaluate([]float64{3.0})
	chk.Scalar(tst, "perimeter", 1e-15, res[0], 2.0*math.Pi*3.0)
}

func TestCircleArea(tst *testing.T) {
	chk.PrintTitle("circle area")

	desc := CircleArea()
	eq := desc.Instantiate(nil)
	res := eq.Evaluate([]float64{3.0})
	chk.Scalar(tst, "area", 1e-15, res[0], math.Pi*3.0*3.0)
}

func TestCirclePerimeterSignature(tst *testing.T) {
	chk.PrintTitle("circle perimeter signature")

	sig := CirclePerimeterSignature()
	if len(sig.Out) != 1 || len(sig.Cns) != 0 || len(sig.Inp) != 1 {
		tst.Errorf("unexpected arities: %+v", sig)
	}
	// signature() must return identical sequences across calls (spec
	// property 1: catalog stability).
	sig2 := CirclePerimeterSignature()
	if sig.Out[0] != sig2.Out[0] || sig.Inp[0] != sig2.Inp[0] {
		tst.Errorf("signature is not stable across calls")
	}
}
