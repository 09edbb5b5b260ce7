// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package regression implements the candidate filter -> per-candidate fit
// -> chi-squared scoring -> parallel dispatch -> ranked result pipeline:
// the driver that orchestrates catalog, equation and simplex to answer
// "which equation(s) reproduce this data".
package regression

import (
	"math"
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/google/uuid"

	"github.com/cpmech/physym/catalog"
	"github.com/cpmech/physym/equation"
	"github.com/cpmech/physym/mks"
	"github.com/cpmech/physym/simplex"
)

// Result pairs a catalog index with its reduced chi-squared goodness of fit.
type Result struct {
	Index            int
	ReducedChiSquare float64
}

// FindEquation is the primary entry point. It filters the catalog by unit
// signature, fits each candidate's free constants against the measurements
// on its own goroutine, and returns the candidates ranked ascending by
// reduced chi-squared (ties broken by catalog index ascending, NaN last).
//
// Workers are spawned within the call and all joined before it returns
// (the scoped-lifetime guarantee spec.md §5 requires); they share
// read-only access to inputs/outputs/catalog and mutate no shared state.
// A precondition violation in any worker aborts the whole call; partial
// results are discarded.
func FindEquation(inpUnits, outUnits []mks.MksUnit, inputs, outputs []float64) []Result {
	ids := catalog.FindByUnits(inpUnits, outUnits)
	runID := uuid.NewString()
	io.Pf("regression[%s]: %d candidate(s) match the query units\n", runID, len(ids))

	results := make([]Result, len(ids))
	failures := make([]error, len(ids))

	var wg sync.WaitGroup
	for slot, id := range ids {
		wg.Add(1)
		go func(slot, id int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[slot] = chk.Err("regression[%s]: candidate %d failed: %v", runID, id, r)
				}
			}()
			chi2 := GoodnessOfFit(id, inputs, outputs, nil)
			results[slot] = Result{Index: id, ReducedChiSquare: chi2}
		}(slot, id)
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			chk.Panic("%v", err)
		}
	}

	sort.Slice(results, func(a, b int) bool {
		return less(results[a], results[b])
	})
	io.Pf("regression[%s]: ranked %d result(s)\n", runID, len(results))
	return results
}

// less implements the total order required by spec.md §5/§8: ascending
// reduced chi-squared, NaN sorts last, ties broken by index ascending.
func less(a, b Result) bool {
	aNaN, bNaN := math.IsNaN(a.ReducedChiSquare), math.IsNaN(b.ReducedChiSquare)
	if aNaN != bNaN {
		return bNaN
	}
	if aNaN && bNaN {
		return a.Index < b.Index
	}
	if a.ReducedChiSquare != b.ReducedChiSquare {
		return a.ReducedChiSquare < b.ReducedChiSquare
	}
	return a.Index < b.Index
}

// GoodnessOfFit returns the reduced chi-squared of candidate id against
// the given measurements. When sigmas is empty, unweighted data (all
// sigma=1) is assumed. Precondition violations (arity mismatches, a
// multi-output candidate reaching this restricted driver) are fatal and
// abort via panic; a non-finite chi-squared is returned as-is (the caller
// ranks it via the NaN-last total order in less/FindEquation).
func GoodnessOfFit(id int, inputs, outputs, sigmas []float64) float64 {
	desc := catalog.Get(id)
	sig := desc.Signature()
	no, k, ni := len(sig.Out), len(sig.Cns), len(sig.Inp)

	if no != 1 {
		chk.Panic("goodness_of_fit: candidate %d has %d outputs; multi-output equations are not supported yet", id, no)
	}
	if ni == 0 {
		chk.Panic("goodness_of_fit: candidate %d declares zero inputs", id)
	}
	if len(sigmas) != 0 && len(sigmas) != len(outputs) {
		chk.Panic("goodness_of_fit: sigmas length %d does not match outputs length %d", len(sigmas), len(outputs))
	}
	if len(inputs)%ni != 0 {
		chk.Panic("goodness_of_fit: inputs length %d is not a multiple of arity %d", len(inputs), ni)
	}
	if len(outputs)%no != 0 {
		chk.Panic("goodness_of_fit: outputs length %d is not a multiple of arity %d", len(outputs), no)
	}
	m := len(inputs) / ni
	if len(outputs)/no != m {
		chk.Panic("goodness_of_fit: inputs imply %d measurements but outputs imply %d", m, len(outputs)/no)
	}
	if m == 0 {
		chk.Panic("goodness_of_fit: candidate %d has zero measurements", id)
	}

	constants := make([]float64, k)
	for i := range constants {
		constants[i] = 1.0
	}
	if k > 0 && m >= k {
		fitConstants(desc, inputs, outputs, constants, m, ni)
	}

	inst := desc.Instantiate(constants)
	predictions := make([]float64, 0, len(outputs))
	for i := 0; i < m; i++ {
		row := inputs[i*ni : (i+1)*ni]
		predictions = append(predictions, inst.Evaluate(row)...)
	}

	var chi2 float64
	for i := 0; i < m; i++ {
		for j := 0; j < no; j++ {
			idx := i*no + j
			diff := outputs[idx] - predictions[idx]
			sigma := 1.0
			if len(sigmas) != 0 {
				sigma = sigmas[idx]
			}
			chi2 += (diff * diff) / (sigma * sigma)
		}
	}

	// dof clamp follows out.go's bounding-box utl.Min/utl.Max idiom, here
	// keeping the degrees-of-freedom floor at 1 per spec.md's dof rule.
	dof := int(utl.Max(float64(m-k), 1))
	return chi2 / float64(dof)
}

// fitConstants runs the Nelder-Mead simplex search over the objective
// f(c) = sum_i (outputs[i] - instantiate(c).evaluate(inputs[i])[0])^2,
// writing the result back into constants. A fresh instance is built per
// objective evaluation, which keeps the objective safe to hand to the
// simplex's worker without any shared mutable state.
func fitConstants(desc equation.Descriptor, inputs, outputs, constants []float64, m, ni int) {
	objective := func(c []float64) float64 {
		var sum float64
		inst := desc.Instantiate(c)
		for i := 0; i < m; i++ {
			row := inputs[i*ni : (i+1)*ni]
			pred := inst.Evaluate(row)[0]
			diff := outputs[i] - pred
			sum += diff * diff
		}
		return sum
	}
	res := simplex.Minimize(objective, constants, simplex.DefaultParams())
	copy(constants, res.Xmin)
}
