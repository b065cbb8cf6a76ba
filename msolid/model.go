// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for solid mechanics: the
// constitutive response consumed by the hyperelastic forcefield
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface of all material models
type Model interface {
	Init(prms dbf.Params) (err error) // initialises model with given parameters
	GetPrms() dbf.Params              // gets (an example of) parameters
}

// Small defines materials whose response is linear in the small-strain
// tensor. ε and σ are Voigt vectors [xx yy zz xy yz zx] with engineering
// shear
type Small interface {
	CalcSig(σ, ε []float64) // σ := D·ε
	CalcD(D [][]float64)    // D := consistent modulus [6][6]
}

// Large defines hyperelastic materials evaluated at a deformation gradient.
// Evaluate is a pure function of F: it returns the second Piola-Kirchhoff
// stress (Voigt [6]) and the material tangent operator dS/dE (Voigt [6][6])
// and keeps no state across calls
type Large interface {
	Evaluate(F [][]float64) (S []float64, D [][]float64, err error)
}

// allocators holds all available model allocators
var allocators = make(map[string]func() Model)

// New allocates and initialises a material model by name
func New(name string, prms dbf.Params) (mdl Model, err error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find material model named %q", name)
	}
	mdl = alloc()
	err = mdl.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise material model %q:\n%v", name, err)
	}
	return
}
