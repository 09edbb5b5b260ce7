// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wave implements unit-less wave and trigonometry equations: sine
// and sawtooth.
package wave

import (
	"math"

	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
)

// sine computes `v = A*sin(speed*t + phase) + shift`.
type sine struct {
	amplitude, speed, phase, shift float64
	angle, output                  float64
}

func (o *sine) Evaluate(inp []float64) []float64 {
	o.angle = inp[0]
	o.output = math.Sin(o.angle*o.speed+o.phase)*o.amplitude + o.shift
	return []float64{o.output}
}

// SineSignature is the factory-identity anchor for the sine-wave equation.
func SineSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.ScalarUnit},
		Cns: []mks.MksUnit{mks.ScalarUnit, mks.ScalarUnit, mks.ScalarUnit, mks.ScalarUnit},
		Inp: []mks.MksUnit{mks.ScalarUnit},
	}
}

// Sine returns the catalog descriptor for `v = A*sin(speed*t + phase) + shift`.
func Sine() equation.Descriptor {
	return equation.Descriptor{
		Name:          "sine_wave",
		Desc:          "Sine wave `v = A*sin(Speed*t + Phase) + Offset`",
		Signature:     SineSignature,
		ConstantNames: []string{"amplitude", "speed", "phase", "shift"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 4 {
				panic("sine_wave: instantiate requires 4 constants")
			}
			return &sine{amplitude: constants[0], speed: constants[1], phase: constants[2], shift: constants[3]}
		},
	}
}

// sawtooth computes, with θ' = (speed*t + phase) mod 2π (Euclidean
// remainder): output = A*(θ' if θ'<π else θ'-2π) + shift.
type sawtooth struct {
	amplitude, speed, phase, shift float64
	angle, output                  float64
}

func (o *sawtooth) Evaluate(inp []float64) []float64 {
	o.angle = inp[0]
	theta := math.Mod(o.angle*o.speed+o.phase, 2.0*math.Pi)
	if theta < 0 {
		theta += 2.0 * math.Pi
	}
	tooth := theta
	if theta >= math.Pi {
		tooth = theta - 2.0*math.Pi
	}
	o.output = tooth*o.amplitude + o.shift
	return []float64{o.output}
}

// SawtoothSignature is the factory-identity anchor for the sawtooth equation.
func SawtoothSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.ScalarUnit},
		Cns: []mks.MksUnit{mks.ScalarUnit, mks.ScalarUnit, mks.ScalarUnit, mks.ScalarUnit},
		Inp: []mks.MksUnit{mks.ScalarUnit},
	}
}

// Sawtooth returns the catalog descriptor for the sawtooth wave. It is an
// additional equation beyond the original nine (spec.md §6 permits this);
// its index must stay after the original nine.
func Sawtooth() equation.Descriptor {
	return equation.Descriptor{
		Name:          "sawtooth_wave",
		Desc:          "Sawtooth wave `v = A*sawtooth(Speed*t + Phase) + Offset`",
		Signature:     SawtoothSignature,
		ConstantNames: []string{"amplitude", "speed", "phase", "shift"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 4 {
				panic("sawtooth_wave: instantiate requires 4 constants")
			}
			return &sawtooth{amplitude: constants[0], speed: constants[1], phase: constants[2], shift: constants[3]}
		},
	}
}
