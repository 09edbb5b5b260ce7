// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestVelocityVsTime mirrors scenario S1: v0=3, a=2, t=10 -> v=23.
func TestVelocityVsTime(tst *testing.T) {
	chk.PrintTitle("velocity vs time (S1)")

	desc := Velocity()
	eq := desc.Instantiate([]float64{3.0, 2.0})
	res := eq.Evaluate([]float64{10.0})
	chk.Scalar(tst, "v", 1e-14, res[0], 23.0)
}

func TestVelocityByDist(tst *testing.T) {
	chk.PrintTitle("velocity vs distance")

	desc := VelocityByDist()
	eq := desc.Instantiate([]float64{3.0, 4.0})
	res := eq.Evaluate([]float64{2.0})
	chk.Scalar(tst, "v", 1e-14, res[0], math.Sqrt(3.0*3.0+2.0*4.0*2.0))
}

func TestDistanceVsTime(tst *testing.T) {
	chk.PrintTitle("distance vs time")

	desc := Distance()
	eq := desc.Instantiate([]float64{2.0, 3.0})
	res := eq.Evaluate([]float64{10.0})
	chk.Scalar(tst, "s", 1e-14, res[0], 2.0*10.0+3.0*100.0/2.0)
}

// TestDistanceByVel mirrors scenario S6: v0=2, v=3, t=10 -> s=25.
func TestDistanceByVel(tst *testing.T) {
	chk.PrintTitle("distance vs velocities (S6)")

	desc := DistanceByVel()
	eq := desc.Instantiate([]float64{2.0, 3.0})
	res := eq.Evaluate([]float64{10.0})
	chk.Scalar(tst, "s", 1e-14, res[0], 25.0)
}
