// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equation defines the contract every catalog entry implements:
// a static unit signature, a factory that builds an instance from a
// constants vector, and an instance that evaluates on inputs.
package equation

import "github.com/cpmech/physym/mks"

// Signature is the triple (out, cns, inp) of unit-tag sequences that
// describes an equation's shape. Lengths are fixed per equation and known
// at registration time; signature() must return the same lengths on every
// call.
type Signature struct {
	Out []mks.MksUnit // output units, len == 1 under the current single-output restriction
	Cns []mks.MksUnit // constant (free parameter) units
	Inp []mks.MksUnit // input units
}

// SignatureFunc is the shape of a descriptor's signature accessor. Two
// equations are considered the same factory only when reflect-comparing
// the function values' code pointers equal (see catalog.FindByFactoryIdentity);
// this is inherently fragile across compilers/inlining, so prefer
// catalog.FindByName for anything that must be robust.
type SignatureFunc func() Signature

// Instance is produced by a Descriptor's Instantiate. Instances are
// single-threaded: one instance per worker. Evaluate must be safe to call
// repeatedly with different inputs but need not be reentrant.
type Instance interface {
	// Evaluate computes a single forward pass. len(inputs) must equal
	// len(signature.Inp); the returned slice has len == len(signature.Out).
	Evaluate(inputs []float64) []float64
}

// Descriptor is an immutable catalog entry.
type Descriptor struct {
	// Name is the stable identity used by catalog.FindByName; it never
	// changes once an equation is registered.
	Name string

	// Desc is a human-readable description of the formula.
	Desc string

	// Signature returns the equation's unit-tag triple. Pure and cheap;
	// called once per candidate per query.
	Signature SignatureFunc

	// ConstantNames optionally labels each constant slot for reporting
	// (e.g. ["v0", "a"]); nil or a shorter slice is tolerated by callers.
	ConstantNames []string

	// Instantiate builds an evaluator from a constants vector.
	// Precondition: len(constants) == len(signature().Cns); violating it
	// is a programmer error (see catalog package for the panic policy).
	Instantiate func(constants []float64) Instance
}
