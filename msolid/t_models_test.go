// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

func eprms(E, ν float64) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "nu", V: ν},
	}
}

func Test_lin01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("lin01. linear elastic stress and modulus")

	mdl, err := New("linelast", eprms(1000, 0.25))
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o := mdl.(Small)

	// modulus
	D := la.MatAlloc(6, 6)
	o.CalcD(D)
	λ, μ := lameFromEν(1000, 0.25)
	chk.Scalar(tst, "lambda", 1e-12, λ, 400)
	chk.Scalar(tst, "mu", 1e-12, μ, 400)
	chk.Scalar(tst, "D00", 1e-12, D[0][0], λ+2*μ)
	chk.Scalar(tst, "D01", 1e-12, D[0][1], λ)
	chk.Scalar(tst, "D33", 1e-12, D[3][3], μ)
	chk.Scalar(tst, "D03", 1e-12, D[0][3], 0)

	// CalcSig must agree with D times strain
	ε := []float64{1e-3, -2e-3, 0.5e-3, 1e-3, -0.5e-3, 2e-3}
	σ := make([]float64, 6)
	σD := make([]float64, 6)
	o.CalcSig(σ, ε)
	la.MatVecMul(σD, 1, D, ε)
	chk.Vector(tst, "sig", 1e-12, σ, σD)
}

func Test_svk01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("svk01. Saint-Venant-Kirchhoff model")

	mdl, err := New("svk", eprms(1000, 0.3))
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o := mdl.(Large)

	// stress-free reference configuration with Hooke tangent
	F := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	S, D, err := o.Evaluate(F)
	if err != nil {
		tst.Fatalf("Evaluate failed:\n%v", err)
	}
	chk.Vector(tst, "S(I)", 1e-14, S, []float64{0, 0, 0, 0, 0, 0})
	λ, μ := lameFromEν(1000, 0.3)
	D0 := la.MatAlloc(6, 6)
	hookeD(D0, λ, μ)
	chk.Matrix(tst, "D(I)", 1e-14, D, D0)

	// uniaxial stretch: E = diag((a²-1)/2, 0, 0)
	a := 1.1
	F = [][]float64{{a, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	S, D, err = o.Evaluate(F)
	if err != nil {
		tst.Fatalf("Evaluate failed:\n%v", err)
	}
	e := (a*a - 1) / 2
	chk.Vector(tst, "S(stretch)", 1e-11, S, []float64{(λ + 2*μ) * e, λ * e, λ * e, 0, 0, 0})
	chk.Matrix(tst, "D(stretch)", 1e-14, D, D0) // tangent is constant

	// simple shear: E has E01 = γ/2 and E11 = γ²/2
	γ := 0.2
	F = [][]float64{{1, γ, 0}, {0, 1, 0}, {0, 0, 1}}
	S, _, err = o.Evaluate(F)
	if err != nil {
		tst.Fatalf("Evaluate failed:\n%v", err)
	}
	e11 := γ * γ / 2
	chk.Vector(tst, "S(shear)", 1e-11, S, []float64{
		λ * e11, (λ + 2*μ) * e11, λ * e11, μ * γ, 0, 0,
	})
}

func Test_neo01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("neo01. compressible neo-Hookean model")

	mdl, err := New("neohooke", eprms(3000, 0.3))
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o := mdl.(Large)
	λ, μ := lameFromEν(3000, 0.3)

	// stress-free reference configuration; tangent reduces to Hooke
	F := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	S, D, err := o.Evaluate(F)
	if err != nil {
		tst.Fatalf("Evaluate failed:\n%v", err)
	}
	chk.Vector(tst, "S(I)", 1e-14, S, []float64{0, 0, 0, 0, 0, 0})
	D0 := la.MatAlloc(6, 6)
	hookeD(D0, λ, μ)
	chk.Matrix(tst, "D(I)", 1e-13, D, D0)

	// triaxial stretch: closed-form stress with diagonal C
	f := []float64{1.2, 0.9, 1.05}
	F = [][]float64{{f[0], 0, 0}, {0, f[1], 0}, {0, 0, f[2]}}
	S, D, err = o.Evaluate(F)
	if err != nil {
		tst.Fatalf("Evaluate failed:\n%v", err)
	}
	lnJ := math.Log(f[0] * f[1] * f[2])
	Sref := make([]float64, 6)
	for i := 0; i < 3; i++ {
		ci := 1.0 / (f[i] * f[i])
		Sref[i] = μ*(1-ci) + λ*lnJ*ci
	}
	chk.Vector(tst, "S(triax)", 1e-12, S, Sref)

	// tangent symmetry
	for a := 0; a < 6; a++ {
		for b := a + 1; b < 6; b++ {
			chk.Scalar(tst, "D symmetry", 1e-12, D[a][b], D[b][a])
		}
	}

	// normal block of the tangent versus central differences of S:
	// for diagonal F, dE_bb = f_b·df_b and the other strains are fixed
	h := 1e-6
	for b := 0; b < 3; b++ {
		Fp := [][]float64{{f[0], 0, 0}, {0, f[1], 0}, {0, 0, f[2]}}
		Fm := [][]float64{{f[0], 0, 0}, {0, f[1], 0}, {0, 0, f[2]}}
		Fp[b][b] += h
		Fm[b][b] -= h
		Sp, _, e1 := o.Evaluate(Fp)
		Sm, _, e2 := o.Evaluate(Fm)
		if e1 != nil || e2 != nil {
			tst.Fatalf("Evaluate failed:\n%v\n%v", e1, e2)
		}
		for a := 0; a < 3; a++ {
			num := (Sp[a] - Sm[a]) / (2 * h * f[b])
			chk.Scalar(tst, "D num-diff", 1e-5*math.Max(1, math.Abs(D[a][b])), D[a][b], num)
		}
	}

	// collapsed configuration must be reported
	F = [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, _, err = o.Evaluate(F)
	if err == nil {
		tst.Errorf("collapsed configuration should return an error")
	}
}

func Test_neo02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("neo02. model factory")

	if _, err := New("unknown-model", nil); err == nil {
		tst.Errorf("unknown model name should return an error")
	}

	mdl, err := New("neohooke", nil)
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	prms := mdl.GetPrms()
	if len(prms) != 2 {
		tst.Errorf("GetPrms: expected 2 parameters, got %d", len(prms))
	}
}
