// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package simplex implements the Nelder-Mead (downhill simplex)
// unconstrained minimizer, following the amoeba algorithm of
// Press, Teukolsky, Vetterling & Flannery, Numerical Recipes, 3rd ed.
package simplex

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Objective is a scalar function of K free parameters.
type Objective func(x []float64) float64

// Params configures the search. Zero values are replaced by the
// gofem-equivalent defaults (Delta=0.1, Ftol=1e-3, Nmax=150).
type Params struct {
	Delta float64 // initial step used to build the other K simplex vertices
	Ftol  float64 // fractional convergence tolerance on the spread of f over the simplex
	Nmax  int     // iteration budget
}

// DefaultParams returns Delta=0.1, Ftol=1e-3, Nmax=150.
func DefaultParams() Params {
	return Params{Delta: 0.1, Ftol: 1e-3, Nmax: 150}
}

func (p Params) withDefaults() Params {
	if p.Delta == 0 {
		p.Delta = 0.1
	}
	if p.Ftol == 0 {
		p.Ftol = 1e-3
	}
	if p.Nmax == 0 {
		p.Nmax = 150
	}
	return p
}

// Result holds the outcome of Minimize. Exhausting Nmax iterations without
// reaching Ftol is a normal outcome (not an error): Xmin is the best vertex
// found so far.
type Result struct {
	Xmin  []float64
	Fmin  float64
	Niter int
}

// epsFloor keeps the convergence test's denominator away from zero.
const epsFloor = 1e-10

// Minimize finds x minimizing f starting from x0, building the K+1 vertex
// simplex x0, x0+delta*e_1, ..., x0+delta*e_k and applying reflection
// (alpha=1), expansion (gamma=2), contraction (rho=0.5) and shrink
// (sigma=0.5) in the standard order. It stops when
// 2*|f(high)-f(low)| / (|f(high)|+|f(low)|+epsFloor) < ftol, or when Nmax
// iterations have elapsed.
//
// K == len(x0) == 0 is a no-op: the single vertex x0 is returned unchanged,
// since there is nothing to search over.
func Minimize(f Objective, x0 []float64, p Params) Result {
	p = p.withDefaults()
	k := len(x0)
	if k == 0 {
		return Result{Xmin: []float64{}, Fmin: f(x0), Niter: 0}
	}

	mpts := k + 1
	verts := la.MatAlloc(mpts, k)
	for i := 0; i < mpts; i++ {
		copy(verts[i], x0)
	}
	for j := 0; j < k; j++ {
		verts[j+1][j] += p.Delta
	}

	y := make([]float64, mpts)
	for i := 0; i < mpts; i++ {
		y[i] = f(verts[i])
	}

	psum := rowSums(verts, k)

	niter := 0
	for {
		ilo, ihi, inhi := rankVertices(y)
		rtol := 2.0 * math.Abs(y[ihi]-y[ilo]) / (math.Abs(y[ihi]) + math.Abs(y[ilo]) + epsFloor)
		if rtol < p.Ftol || niter >= p.Nmax {
			break
		}
		niter++

		ytry := tryVertex(verts, y, psum, ihi, -1.0, f) // reflection, alpha=1
		switch {
		case ytry <= y[ilo]:
			tryVertex(verts, y, psum, ihi, 2.0, f) // expansion, gamma=2
		case ytry >= y[inhi]:
			ysave := y[ihi]
			ytry = tryVertex(verts, y, psum, ihi, 0.5, f) // contraction, rho=0.5
			if ytry >= ysave {
				shrinkTowards(verts, y, ilo, f) // sigma=0.5
				psum = rowSums(verts, k)
			}
		}
	}

	ilo, _, _ := rankVertices(y)
	xmin := make([]float64, k)
	copy(xmin, verts[ilo])
	return Result{Xmin: xmin, Fmin: y[ilo], Niter: niter}
}

func rowSums(verts [][]float64, k int) []float64 {
	sums := make([]float64, k)
	for _, row := range verts {
		for j := 0; j < k; j++ {
			sums[j] += row[j]
		}
	}
	return sums
}

// rankVertices returns the indices of the lowest, highest and
// second-highest function values.
func rankVertices(y []float64) (ilo, ihi, inhi int) {
	ilo = 0
	if y[0] > y[1] {
		ihi, inhi = 0, 1
	} else {
		ihi, inhi = 1, 0
	}
	for i, v := range y {
		if v <= y[ilo] {
			ilo = i
		}
		if v > y[ihi] {
			inhi = ihi
			ihi = i
		} else if v > y[inhi] && i != ihi {
			inhi = i
		}
	}
	return
}

// tryVertex extrapolates vertex ihi through the simplex's centroid by
// factor fac, evaluates f there, and replaces vertex ihi if the trial
// point improves on it. Returns the trial function value regardless of
// whether the replacement happened, matching Numerical Recipes' amotry.
func tryVertex(verts [][]float64, y []float64, psum []float64, ihi int, fac float64, f Objective) float64 {
	k := len(psum)
	fac1 := (1.0 - fac) / float64(k)
	fac2 := fac1 - fac
	ptry := make([]float64, k)
	for j := 0; j < k; j++ {
		ptry[j] = psum[j]*fac1 - verts[ihi][j]*fac2
	}
	ytry := f(ptry)
	if ytry < y[ihi] {
		y[ihi] = ytry
		for j := 0; j < k; j++ {
			psum[j] += ptry[j] - verts[ihi][j]
			verts[ihi][j] = ptry[j]
		}
	}
	return ytry
}

// shrinkTowards contracts every vertex except ilo halfway towards it.
func shrinkTowards(verts [][]float64, y []float64, ilo int, f Objective) {
	k := len(verts[ilo])
	for i := range verts {
		if i == ilo {
			continue
		}
		for j := 0; j < k; j++ {
			verts[i][j] = 0.5 * (verts[i][j] + verts[ilo][j])
		}
		y[i] = f(verts[i])
	}
}
