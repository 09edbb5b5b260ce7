// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package figure implements the geometry equations of the catalog: circle
// and square perimeter/area.
package figure

import (
	"math"

	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
)

// circlePerimeter computes the perimeter (circumference) of a circle
// `C = 2*Pi*r`. It has no free constants.
type circlePerimeter struct {
	radius    float64
	perimeter float64
}

func (o *circlePerimeter) Evaluate(inp []float64) []float64 {
	o.radius = inp[0]
	o.perimeter = 2.0 * math.Pi * o.radius
	return []float64{o.perimeter}
}

// CirclePerimeterSignature is the factory-identity anchor for the
// "circle circumference" equation.
func CirclePerimeterSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.DistanceUnit},
		Cns: nil,
		Inp: []mks.MksUnit{mks.DistanceUnit},
	}
}

// CirclePerimeter returns the catalog descriptor for `C = 2*Pi*r`.
func CirclePerimeter() equation.Descriptor {
	return equation.Descriptor{
		Name:      "circle_perimeter",
		Desc:      "Circumference of circle `C = 2*Pi*r`",
		Signature: CirclePerimeterSignature,
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 0 {
				panic("circle_perimeter: instantiate takes no constants")
			}
			return &circlePerimeter{}
		},
	}
}

// circleArea computes the area of a circle `A = Pi*r^2`. No free constants.
type circleArea struct {
	radius float64
	area   float64
}

func (o *circleArea) Evaluate(inp []float64) []float64 {
	o.radius = inp[0]
	o.area = math.Pi * o.radius * o.radius
	return []float64{o.area}
}

// CircleAreaSignature is the factory-identity anchor for "circle area".
func CircleAreaSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.AreaUnit},
		Cns: nil,
		Inp: []mks.MksUnit{mks.DistanceUnit},
	}
}

// CircleArea returns the catalog descriptor for `A = Pi*r^2`.
func CircleArea() equation.Descriptor {
	return equation.Descriptor{
		Name:      "circle_area",
		Desc:      "Area of circle `A = Pi*r^2`",
		Signature: CircleAreaSignature,
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 0 {
				panic("circle_area: instantiate takes no constants")
			}
			return &circleArea{}
		},
	}
}
