// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// NeoHooke implements the compressible neo-Hookean model with strain energy
//
//	Ψ = μ/2·(tr(C) - 3) - μ·ln(J) + λ/2·ln²(J)
//
// whose second Piola-Kirchhoff stress and material tangent are
//
//	S = μ·(I - C⁻¹) + λ·ln(J)·C⁻¹
//	D = λ·C⁻¹⊗C⁻¹ + 2·(μ - λ·ln(J))·∂C⁻¹/∂C
type NeoHooke struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["neohooke"] = func() Model { return new(NeoHooke) }
}

// Init initialises model
func (o *NeoHooke) Init(prms dbf.Params) (err error) {
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
func (o NeoHooke) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 3.0e+03},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// Evaluate computes the second Piola-Kirchhoff stress and the material
// tangent at the deformation gradient F
func (o *NeoHooke) Evaluate(F [][]float64) (S []float64, D [][]float64, err error) {

	// Jacobian of the deformation
	J := mat33det(F)
	if J < 1e-14 {
		err = chk.Err("neohooke: inverted or collapsed configuration: det(F) = %g", J)
		return
	}
	lnJ := math.Log(J)

	// inverse of the right Cauchy-Green tensor
	C := la.MatAlloc(3, 3)
	Ci := la.MatAlloc(3, 3)
	rightCauchyGreen(C, F)
	mat33inv(Ci, C, J*J) // det(C) = det(F)²

	// stress
	S = make([]float64, 6)
	for a := 0; a < 6; a++ {
		i, j := voigt[a][0], voigt[a][1]
		if i == j {
			S[a] = o.μ*(1.0-Ci[i][j]) + o.λ*lnJ*Ci[i][j]
		} else {
			S[a] = (o.λ*lnJ - o.μ) * Ci[i][j]
		}
	}

	// tangent
	cof := o.μ - o.λ*lnJ
	D = la.MatAlloc(6, 6)
	for a := 0; a < 6; a++ {
		i, j := voigt[a][0], voigt[a][1]
		for b := 0; b < 6; b++ {
			k, l := voigt[b][0], voigt[b][1]
			D[a][b] = o.λ*Ci[i][j]*Ci[k][l] + cof*(Ci[i][k]*Ci[j][l]+Ci[i][l]*Ci[j][k])
		}
	}
	return
}
