// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
)

// squarePerimeter computes `P = 4*side`. No free constants.
type squarePerimeter struct {
	side      float64
	perimeter float64
}

func (o *squarePerimeter) Evaluate(inp []float64) []float64 {
	o.side = inp[0]
	o.perimeter = 4.0 * o.side
	return []float64{o.perimeter}
}

// SquarePerimeterSignature is the factory-identity anchor for "square perimeter".
func SquarePerimeterSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.DistanceUnit},
		Cns: nil,
		Inp: []mks.MksUnit{mks.DistanceUnit},
	}
}

// SquarePerimeter returns the catalog descriptor for `P = 4*side`.
func SquarePerimeter() equation.Descriptor {
	return equation.Descriptor{
		Name:      "square_perimeter",
		Desc:      "Perimeter of square `P = 4*side`",
		Signature: SquarePerimeterSignature,
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 0 {
				panic("square_perimeter: instantiate takes no constants")
			}
			return &squarePerimeter{}
		},
	}
}

// squareArea computes `A = side*side`. No free constants.
type squareArea struct {
	side float64
	area float64
}

func (o *squareArea) Evaluate(inp []float64) []float64 {
	o.side = inp[0]
	o.area = o.side * o.side
	return []float64{o.area}
}

// SquareAreaSignature is the factory-identity anchor for "square area".
func SquareAreaSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.AreaUnit},
		Cns: nil,
		Inp: []mks.MksUnit{mks.DistanceUnit},
	}
}

// SquareArea returns the catalog descriptor for `A = side*side`.
func SquareArea() equation.Descriptor {
	return equation.Descriptor{
		Name:      "square_area",
		Desc:      "Area of square `A = side*side`",
		Signature: SquareAreaSignature,
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 0 {
				panic("square_area: instantiate takes no constants")
			}
			return &squareArea{}
		},
	}
}
