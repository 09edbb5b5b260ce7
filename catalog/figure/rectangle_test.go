// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSquarePerimeter(tst *testing.T) {
	chk.PrintTitle("square perimeter")

	desc := SquarePerimeter()
	eq := desc.Instantiate(nil)
	res := eq.Evaluate([]float64{3.0})
	chk.Scalar(tst, "perimeter", 1e-15, res[0], 4.0*3.0)
}

func TestSquareArea(tst *testing.T) {
	chk.PrintTitle("square area")

	desc := SquareArea()
	eq := desc.Instantiate(nil)
	res := eq.Evaluate([]float64{3.0})
	chk.Scalar(tst, "area", 1e-15, res[0], 3.0*3.0)
}
