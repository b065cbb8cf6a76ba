// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/guparan/caribou/inp"
)

func Test_fem01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fem01. analysis from a simulation definition")

	// linear column with ν = 0 under tension: uz = z·σ/E
	sim, err := inp.ParseSim([]byte(`{
		"grid"   : { "lx":1, "ly":1, "lz":2, "nx":1, "ny":1, "nz":2 },
		"mat"    : { "model":"linelast", "E":1000, "nu":0 },
		"fixes"  : [ { "axis":2, "coord":0 },
		             { "axis":0, "coord":0, "comps":[0] },
		             { "axis":1, "coord":0, "comps":[1] } ],
		"loads"  : [ { "axis":2, "coord":2, "comp":2, "total":40 } ],
		"solver" : { "nmaxit":10, "cortol":1e-12, "restol":1e-12, "linsol":"dense" }
	}`))
	if err != nil {
		tst.Fatalf("ParseSim failed:\n%v", err)
	}
	a, err := NewFEM(sim)
	if err != nil {
		tst.Fatalf("NewFEM failed:\n%v", err)
	}
	if err = a.Run(); err != nil {
		tst.Fatalf("Run failed:\n%v", err)
	}
	if !a.Nr.Converged {
		tst.Fatalf("analysis should have converged")
	}
	chk.IntAssert(a.Nr.It, 1)

	// the four top nodes share the load evenly, so the stress is uniform:
	// σ = 40/1 and uz(z) = z·σ/E
	σ, E := 40.0, 1000.0
	msh := a.Msh
	for n := 0; n < msh.NumberOfNodes(); n++ {
		z := msh.Position(n)[2]
		chk.Scalar(tst, "uz", 1e-12, a.Displacement(n, 2), z*σ/E)
		chk.Scalar(tst, "ux", 1e-12, a.Displacement(n, 0), 0)
		chk.Scalar(tst, "uy", 1e-12, a.Displacement(n, 1), 0)
	}
}

func Test_fem02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fem02. configuration errors")

	// a fixed plane holding no nodes is a configuration error
	sim, err := inp.ParseSim([]byte(`{ "fixes": [ { "axis":2, "coord":9 } ] }`))
	if err != nil {
		tst.Fatalf("ParseSim failed:\n%v", err)
	}
	if _, err = NewFEM(sim); err == nil {
		tst.Errorf("an empty fixed plane should return an error")
	}

	// so is an unknown material model
	sim, err = inp.ParseSim([]byte(`{ "mat": { "model":"plastic" }, "fixes": [ { "axis":2, "coord":0 } ] }`))
	if err != nil {
		tst.Fatalf("ParseSim failed:\n%v", err)
	}
	if _, err = NewFEM(sim); err == nil {
		tst.Errorf("an unknown material model should return an error")
	}
}
