// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// UniaxialElastic computes the solution to uniaxial stress of a linear
// elastic bar: a free lateral surface and a prescribed axial strain
type UniaxialElastic struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *UniaxialElastic) Init(prms dbf.Params) {
	o.E = 1000.0
	o.ν = 0.25
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
}

// Stress computes the axial stress for given axial strain
func (o UniaxialElastic) Stress(ε float64) float64 {
	return o.E * ε
}

// LateralStrain computes the lateral strain for given axial strain
func (o UniaxialElastic) LateralStrain(ε float64) float64 {
	return -o.ν * ε
}

// UniaxialSVK computes the solution to uniaxial stress of a
// Saint-Venant-Kirchhoff bar: the conjugate pair is the second
// Piola-Kirchhoff stress and the Green-Lagrange strain, and the lateral
// contraction is exact in that pair
type UniaxialSVK struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *UniaxialSVK) Init(prms dbf.Params) {
	o.E = 1000.0
	o.ν = 0.25
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
}

// Strain computes the axial Green-Lagrange strain of an axial stretch a
func (o UniaxialSVK) Strain(a float64) float64 {
	return (a*a - 1.0) / 2.0
}

// Stress computes the axial second Piola-Kirchhoff stress of an axial
// stretch a
func (o UniaxialSVK) Stress(a float64) float64 {
	return o.E * o.Strain(a)
}

// LateralStrain computes the lateral Green-Lagrange strain of an axial
// stretch a
func (o UniaxialSVK) LateralStrain(a float64) float64 {
	return -o.ν * o.Strain(a)
}

// UniaxialNeoHooke computes the solution to uniaxial stress of a
// compressible neo-Hookean bar. The lateral stretch has no closed form; it
// is found by a scalar Newton iteration on the zero-lateral-stress condition
type UniaxialNeoHooke struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// Init initialises this structure
func (o *UniaxialNeoHooke) Init(prms dbf.Params) {
	o.E = 1000.0
	o.ν = 0.25
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
	o.λ = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	o.μ = o.E / (2.0 * (1.0 + o.ν))
}

// LateralStretch solves for the lateral stretch b of an axial stretch a
// such that the lateral stress vanishes:
//
//	μ·(1 - 1/b²) + λ·ln(a·b²)/b² = 0
func (o UniaxialNeoHooke) LateralStretch(a float64) (b float64, err error) {
	if a < 1e-8 {
		return 0, chk.Err("axial stretch %g is too small", a)
	}
	b = 1.0
	for it := 0; it < 50; it++ {
		b2 := b * b
		f := o.μ*(1.0-1.0/b2) + o.λ*math.Log(a*b2)/b2
		df := 2.0*o.μ/(b*b2) + o.λ*(2.0/(b*b2)-2.0*math.Log(a*b2)/(b*b2))
		δ := f / df
		b -= δ
		if math.Abs(δ) < 1e-14*b {
			return b, nil
		}
	}
	return 0, chk.Err("lateral stretch iteration did not converge for a = %g", a)
}

// Stress computes the axial second Piola-Kirchhoff stress of an axial
// stretch a
func (o UniaxialNeoHooke) Stress(a float64) (S float64, err error) {
	b, err := o.LateralStretch(a)
	if err != nil {
		return
	}
	a2 := a * a
	S = o.μ*(1.0-1.0/a2) + o.λ*math.Log(a*b*b)/a2
	return
}
