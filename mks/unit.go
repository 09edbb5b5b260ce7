// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mks implements MKS (metre-kilogram-second) unit tags used to
// describe the input/output/constant signature of an equation.
package mks

// MksUnit is an opaque physical-dimension tag compared by equality. It is
// represented as an exponent vector over the base MKS dimensions so that
// two units denote the same dimension if and only if their exponents match.
type MksUnit struct {
	Name   string // human-readable name; not used in equality checks callers rely on
	Mass   int8   // exponent of kilogram
	Length int8   // exponent of metre
	Time   int8   // exponent of second
}

// SameDim returns true when o and other carry the same physical dimension,
// ignoring Name. Equation signatures are compared this way.
func (o MksUnit) SameDim(other MksUnit) bool {
	return o.Mass == other.Mass && o.Length == other.Length && o.Time == other.Time
}

// Predefined unit tags used by the equation catalog.
var (
	ScalarUnit       = MksUnit{Name: "scalar"}
	DistanceUnit     = MksUnit{Name: "distance", Length: 1}
	AreaUnit         = MksUnit{Name: "area", Length: 2}
	TimeUnit         = MksUnit{Name: "time", Time: 1}
	VelocityUnit     = MksUnit{Name: "velocity", Length: 1, Time: -1}
	AccelerationUnit = MksUnit{Name: "acceleration", Length: 1, Time: -2}
	MassUnit         = MksUnit{Name: "mass", Mass: 1}
)

// EqualSeq compares two unit-tag sequences by dimension, in order.
func EqualSeq(a, b []MksUnit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameDim(b[i]) {
			return false
		}
	}
	return true
}
