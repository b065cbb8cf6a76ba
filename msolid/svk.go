// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// SVK implements the Saint-Venant-Kirchhoff hyperelastic model: the second
// Piola-Kirchhoff stress is linear in the Green-Lagrange strain
//
//	S = λ·tr(E)·I + 2μ·E,  E = (FᵀF - I)/2
//
// hence the material tangent dS/dE is the constant Hooke modulus
type SVK struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["svk"] = func() Model { return new(SVK) }
}

// Init initialises model
func (o *SVK) Init(prms dbf.Params) (err error) {
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
func (o SVK) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1.0e+04},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// Evaluate computes the second Piola-Kirchhoff stress and the material
// tangent at the deformation gradient F
func (o *SVK) Evaluate(F [][]float64) (S []float64, D [][]float64, err error) {

	// Green-Lagrange strain
	C := la.MatAlloc(3, 3)
	rightCauchyGreen(C, F)
	tr := (C[0][0] + C[1][1] + C[2][2] - 3.0) / 2.0

	// stress
	S = make([]float64, 6)
	for a := 0; a < 6; a++ {
		i, j := voigt[a][0], voigt[a][1]
		e := C[i][j] / 2.0
		if i == j {
			e -= 0.5
			S[a] = o.λ*tr + 2.0*o.μ*e
		} else {
			S[a] = 2.0 * o.μ * e
		}
	}

	// constant tangent
	D = la.MatAlloc(6, 6)
	hookeD(D, o.λ, o.μ)
	return
}
