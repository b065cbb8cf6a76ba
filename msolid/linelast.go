// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements a purely linear elastic (isotropic Hooke) model over
// small strains. Since the stress is linear in the displacement gradient,
// equilibrium problems built on this model are solved exactly by a single
// Newton iteration
type LinElast struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["linelast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
	o.λ, o.μ = lameFromEν(o.E, o.ν)
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1.0e+04},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// CalcSig computes σ = D·ε for a small-strain Voigt vector ε
func (o *LinElast) CalcSig(σ, ε []float64) {
	tr := ε[0] + ε[1] + ε[2]
	for i := 0; i < 3; i++ {
		σ[i] = o.λ*tr + 2.0*o.μ*ε[i]
		σ[i+3] = o.μ * ε[i+3]
	}
}

// CalcD computes the (constant) consistent modulus
func (o *LinElast) CalcD(D [][]float64) {
	hookeD(D, o.λ, o.μ)
}
