// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regression

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/physym/catalog"
	"github.com/cpmech/physym/mks"
)

// TestCircleVsSquare mirrors scenario S2/S3: a single distance->distance
// measurement should rank circle circumference first when the value is
// close to 2*pi*r, and square perimeter first when it's close to 4*r.
func TestCircleVsSquare(tst *testing.T) {
	chk.PrintTitle("regression: circle vs square (S2/S3)")

	inp := []mks.MksUnit{mks.DistanceUnit}
	out := []mks.MksUnit{mks.DistanceUnit}

	results := FindEquation(inp, out, []float64{3.0}, []float64{18.0})
	if len(results) == 0 || results[0].Index != 0 {
		tst.Fatalf("S2: expected circle_perimeter (0) ranked first, got %+v", results)
	}

	results = FindEquation(inp, out, []float64{3.0}, []float64{12.1})
	if len(results) == 0 || results[0].Index != 2 {
		tst.Fatalf("S3: expected square_perimeter (2) ranked first, got %+v", results)
	}
}

// TestSineRecovery mirrors scenario S4: data generated from a sine wave
// should rank the sine-wave equation first among scalar->scalar candidates.
func TestSineRecovery(tst *testing.T) {
	chk.PrintTitle("regression: sine wave recovery (S4)")

	inputs := []float64{0.1, 0.2, 0.3, 0.5, 1.0, 1.1, 1.2, 1.3, 1.4, 1.6, 2.0, 2.4, 2.8, 3.2, 3.6, 4.0, 4.2, 4.4}
	outputs := make([]float64, len(inputs))
	for i, t := range inputs {
		outputs[i] = 10.5*math.Sin(t*2.0+1.5) + 3.3
	}

	results := FindEquation([]mks.MksUnit{mks.ScalarUnit}, []mks.MksUnit{mks.ScalarUnit}, inputs, outputs)
	if len(results) == 0 {
		tst.Fatalf("expected at least one scalar->scalar candidate")
	}
	sineIdx, ok := catalog.FindByName("sine_wave")
	if !ok {
		tst.Fatalf("sine_wave not registered")
	}
	if results[0].Index != sineIdx {
		tst.Errorf("expected sine_wave ranked first, got %+v", results)
	}
}

// TestZeroResidual covers spec.md property 5: fitting an equation against
// data it generated itself should drive reduced chi-squared to ~0.
func TestZeroResidual(tst *testing.T) {
	chk.PrintTitle("regression: zero residual for self-generated data")

	id, _ := catalog.FindByName("velocity_vs_time")
	desc := catalog.Get(id)
	cStar := []float64{4.0, -1.5}
	times := []float64{0.0, 1.0, 2.0, 3.0, 4.0, 5.0}

	inst := desc.Instantiate(cStar)
	outputs := make([]float64, len(times))
	for i, t := range times {
		outputs[i] = inst.Evaluate([]float64{t})[0]
	}

	chi2 := GoodnessOfFit(id, times, outputs, nil)
	if chi2 > 1e-6 {
		tst.Errorf("expected near-zero reduced chi2, got %v", chi2)
	}
}

// TestReducedChiSquareIdentity covers spec.md property 7: with empty
// sigmas, the reduced chi2 equals the raw sum of squares divided by
// max(M-K,1).
func TestReducedChiSquareIdentity(tst *testing.T) {
	chk.PrintTitle("regression: reduced chi2 identity, unweighted")

	id, _ := catalog.FindByName("circle_perimeter") // K=0, so no fitting noise
	inputs := []float64{1.0, 2.0, 3.0}
	outputs := []float64{6.0, 12.0, 20.0} // not exactly 2*pi*r, on purpose

	chi2 := GoodnessOfFit(id, inputs, outputs, nil)

	desc := catalog.Get(id)
	inst := desc.Instantiate(nil)
	var raw float64
	for i, x := range inputs {
		pred := inst.Evaluate([]float64{x})[0]
		diff := outputs[i] - pred
		raw += diff * diff
	}
	m, k := len(inputs), 0
	dof := m - k
	if dof < 1 {
		dof = 1
	}
	chk.Scalar(tst, "chi2", 1e-12, chi2, raw/float64(dof))
}

// TestResultOrdering covers spec.md property 4: ascending chi2, NaN last,
// ties broken by index ascending.
func TestResultOrdering(tst *testing.T) {
	chk.PrintTitle("regression: result ordering")

	in := []Result{
		{Index: 3, ReducedChiSquare: math.NaN()},
		{Index: 1, ReducedChiSquare: 2.0},
		{Index: 0, ReducedChiSquare: 2.0},
		{Index: 2, ReducedChiSquare: 0.5},
	}
	want := []Result{
		{Index: 2, ReducedChiSquare: 0.5},
		{Index: 0, ReducedChiSquare: 2.0},
		{Index: 1, ReducedChiSquare: 2.0},
		{Index: 3, ReducedChiSquare: math.NaN()},
	}
	sorted := append([]Result(nil), in...)
	// simple insertion sort using the package's comparator, mirroring what
	// sort.Slice does in FindEquation.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	for i := range want {
		if sorted[i].Index != want[i].Index {
			tst.Errorf("position %d: expected index %d, got %d", i, want[i].Index, sorted[i].Index)
		}
	}
}

// TestUnitFilterEmptyQuery covers spec.md property 6 end-to-end: no
// matching candidates means find_equation returns an empty list.
func TestUnitFilterEmptyQuery(tst *testing.T) {
	chk.PrintTitle("regression: empty result for unmatched units")

	mass := mks.MksUnit{Name: "mass", Mass: 1}
	results := FindEquation([]mks.MksUnit{mass}, []mks.MksUnit{mass}, []float64{1.0}, []float64{1.0})
	if len(results) != 0 {
		tst.Errorf("expected no results, got %+v", results)
	}
}
