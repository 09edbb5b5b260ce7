// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regression

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/physym/catalog"
)

// FitNamedConstants fits candidate id's free constants against the given
// measurements and returns them as gosl/fun.Prm pairs (N=name, V=value),
// the same N/V shape gofem's own models use in GetPrms, for reporting
// and CLI output. Falls back to "c0", "c1", ... when the descriptor does
// not supply ConstantNames.
func FitNamedConstants(id int, inputs, outputs []float64) fun.Prms {
	desc := catalog.Get(id)
	sig := desc.Signature()
	k, ni := len(sig.Cns), len(sig.Inp)
	if ni == 0 || len(inputs)%ni != 0 {
		return fun.Prms{}
	}
	m := len(inputs) / ni

	constants := make([]float64, k)
	for i := range constants {
		constants[i] = 1.0
	}
	if k > 0 && m >= k {
		fitConstants(desc, inputs, outputs, constants, m, ni)
	}

	prms := make(fun.Prms, k)
	for i := 0; i < k; i++ {
		name := io.Sf("c%d", i)
		if i < len(desc.ConstantNames) {
			name = desc.ConstantNames[i]
		}
		prms[i] = &fun.Prm{N: name, V: constants[i]}
	}
	return prms
}
