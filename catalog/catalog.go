// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package catalog holds the process-wide, read-only list of candidate
// equations and the unit-directed filter over it. The registry mirrors the
// allocator-map registration style of gofem's msolid/mreten packages, but
// uses an ordered slice instead of a map because catalog indices are the
// external identity of an equation (stable across the process lifetime);
// a map iteration order would not give that guarantee.
package catalog

import (
	"reflect"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/physym/catalog/figure"
	"github.com/cpmech/physym/catalog/kinematics"
	"github.com/cpmech/physym/catalog/wave"
	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
)

// registry is the fixed, ordered list of equations. Indices 0-8 match
// spec.md's table exactly; index 9 onward are additional equations
// (spec.md §6 permits registering more without perturbing existing
// indices).
var registry = []equation.Descriptor{
	figure.CirclePerimeter(),        // 0
	figure.CircleArea(),             // 1
	figure.SquarePerimeter(),        // 2
	figure.SquareArea(),             // 3
	wave.Sine(),                     // 4
	kinematics.Velocity(),           // 5
	kinematics.VelocityByDist(),     // 6
	kinematics.Distance(),           // 7
	kinematics.DistanceByVel(),      // 8
	wave.Sawtooth(),                 // 9 (additional)
}

// All returns every catalog descriptor with its stable index.
func All() []equation.Descriptor {
	return registry
}

// Get returns the descriptor at index i.
func Get(i int) equation.Descriptor {
	return registry[i]
}

// Len returns the number of catalog entries.
func Len() int {
	return len(registry)
}

// FindByUnits returns every catalog index whose signature's Out equals
// outputs and Inp equals inputs, compared as ordered sequences under
// unit-dimension equality. The returned order follows catalog order.
func FindByUnits(inputs, outputs []mks.MksUnit) []int {
	var ids []int
	for i, eq := range registry {
		sig := eq.Signature()
		if mks.EqualSeq(sig.Out, outputs) && mks.EqualSeq(sig.Inp, inputs) {
			ids = append(ids, i)
		}
	}
	return ids
}

// FindByName returns the index of the descriptor registered under name.
// This is the robust factory-identity mechanism recommended by spec.md §9
// in place of function-pointer equality.
func FindByName(name string) (int, bool) {
	for i, eq := range registry {
		if eq.Name == name {
			return i, true
		}
	}
	return 0, false
}

// FindByFactoryIdentity returns the index of the descriptor whose
// Signature function is fn, compared by code pointer via reflection. Kept
// for parity with the original source's typeid-by-function-pointer trick;
// prefer FindByName since Go, like most targets, does not guarantee
// pointer-stable function values across inlining.
func FindByFactoryIdentity(fn equation.SignatureFunc) (int, bool) {
	want := reflect.ValueOf(fn).Pointer()
	for i, eq := range registry {
		if reflect.ValueOf(eq.Signature).Pointer() == want {
			return i, true
		}
	}
	return 0, false
}

// LogCatalog prints the registered equations, mirroring msolid.LogModels.
func LogCatalog() {
	l := "catalog: registered:"
	for _, eq := range registry {
		l += " " + eq.Name
	}
	io.Pf("%s\n", l)
}
