// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kinematics implements the classical-mechanics linear-motion
// equations with constant acceleration.
//
// References:
//   - https://en.wikipedia.org/wiki/List_of_equations_in_classical_mechanics
package kinematics

import (
	"math"

	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
)

// velocity computes `v = v0 + a*t`.
type velocity struct {
	v0, a float64
	t, v  float64
}

func (o *velocity) Evaluate(inp []float64) []float64 {
	o.t = inp[0]
	o.v = o.v0 + o.a*o.t
	return []float64{o.v}
}

// VelocitySignature is the factory-identity anchor for "velocity vs time".
func VelocitySignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.VelocityUnit},
		Cns: []mks.MksUnit{mks.VelocityUnit, mks.AccelerationUnit},
		Inp: []mks.MksUnit{mks.TimeUnit},
	}
}

// Velocity returns the catalog descriptor for `v = v0 + a*t`.
func Velocity() equation.Descriptor {
	return equation.Descriptor{
		Name:          "velocity_vs_time",
		Desc:          "Linear motion const accel velocity `v = v0 + a*t`",
		Signature:     VelocitySignature,
		ConstantNames: []string{"v0", "a"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 2 {
				panic("velocity_vs_time: instantiate requires 2 constants")
			}
			return &velocity{v0: constants[0], a: constants[1]}
		},
	}
}

// velocityByDist computes `v = sqrt(v0^2 + 2*a*s)`.
type velocityByDist struct {
	v0, a float64
	s, v  float64
}

func (o *velocityByDist) Evaluate(inp []float64) []float64 {
	o.s = inp[0]
	o.v = math.Sqrt(o.v0*o.v0 + 2.0*o.a*o.s)
	return []float64{o.v}
}

// VelocityByDistSignature is the factory-identity anchor for "velocity vs distance".
func VelocityByDistSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.VelocityUnit},
		Cns: []mks.MksUnit{mks.VelocityUnit, mks.AccelerationUnit},
		Inp: []mks.MksUnit{mks.DistanceUnit},
	}
}

// VelocityByDist returns the catalog descriptor for `v = sqrt(v0^2 + 2*a*s)`.
func VelocityByDist() equation.Descriptor {
	return equation.Descriptor{
		Name:          "velocity_vs_distance",
		Desc:          "Linear motion const accel velocity `v = sqrt(v0^2 + 2*a*s)`",
		Signature:     VelocityByDistSignature,
		ConstantNames: []string{"v0", "a"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 2 {
				panic("velocity_vs_distance: instantiate requires 2 constants")
			}
			return &velocityByDist{v0: constants[0], a: constants[1]}
		},
	}
}

// distance computes `s = v0*t + (a*t^2)/2`.
type distance struct {
	v0, a float64
	t, s  float64
}

func (o *distance) Evaluate(inp []float64) []float64 {
	o.t = inp[0]
	o.s = o.v0*o.t + (o.a*o.t*o.t)/2.0
	return []float64{o.s}
}

// DistanceSignature is the factory-identity anchor for "distance vs time".
func DistanceSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.DistanceUnit},
		Cns: []mks.MksUnit{mks.VelocityUnit, mks.AccelerationUnit},
		Inp: []mks.MksUnit{mks.TimeUnit},
	}
}

// Distance returns the catalog descriptor for `s = v0*t + (a*t^2)/2`.
func Distance() equation.Descriptor {
	return equation.Descriptor{
		Name:          "distance_vs_time",
		Desc:          "Linear motion const accel distance `s = v0*t + (a*t^2)/2`",
		Signature:     DistanceSignature,
		ConstantNames: []string{"v0", "a"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 2 {
				panic("distance_vs_time: instantiate requires 2 constants")
			}
			return &distance{v0: constants[0], a: constants[1]}
		},
	}
}

// distanceByVel computes `s = t*(v0 + v)/2`.
type distanceByVel struct {
	v0, v float64
	t, s  float64
}

func (o *distanceByVel) Evaluate(inp []float64) []float64 {
	o.t = inp[0]
	o.s = o.t * (o.v0 + o.v) / 2.0
	return []float64{o.s}
}

// DistanceByVelSignature is the factory-identity anchor for "distance vs velocities".
func DistanceByVelSignature() equation.Signature {
	return equation.Signature{
		Out: []mks.MksUnit{mks.DistanceUnit},
		Cns: []mks.MksUnit{mks.VelocityUnit, mks.VelocityUnit},
		Inp: []mks.MksUnit{mks.TimeUnit},
	}
}

// DistanceByVel returns the catalog descriptor for `s = t*(v0 + v)/2`.
func DistanceByVel() equation.Descriptor {
	return equation.Descriptor{
		Name:          "distance_vs_velocities",
		Desc:          "Linear motion const accel distance `s = t*(v0 + v)/2`",
		Signature:     DistanceByVelSignature,
		ConstantNames: []string{"v0", "v"},
		Instantiate: func(constants []float64) equation.Instance {
			if len(constants) != 2 {
				panic("distance_vs_velocities: instantiate requires 2 constants")
			}
			return &distanceByVel{v0: constants[0], v: constants[1]}
		},
	}
}
