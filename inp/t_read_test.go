// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sim01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("sim01. parse a complete simulation")

	sim, err := ParseSim([]byte(`{
		"data"   : { "desc" : "uniaxial compression" },
		"grid"   : { "lx":1, "ly":1, "lz":2, "nx":2, "ny":2, "nz":4 },
		"mat"    : { "model":"neohooke", "E":3000, "nu":0.3 },
		"fixes"  : [ { "axis":2, "coord":0 } ],
		"loads"  : [ { "axis":2, "coord":2, "comp":2, "total":-300 } ],
		"solver" : { "nmaxit":30, "cortol":1e-10, "restol":1e-10, "linsol":"dense" }
	}`))
	if err != nil {
		tst.Fatalf("ParseSim failed:\n%v", err)
	}
	chk.String(tst, sim.Data.Desc, "uniaxial compression")
	chk.String(tst, sim.Mat.Model, "neohooke")
	chk.IntAssert(sim.Grid.Nz, 4)
	chk.Scalar(tst, "lz", 1e-15, sim.Grid.Lz, 2)
	chk.IntAssert(len(sim.Fixes), 1)
	chk.IntAssert(len(sim.Loads), 1)
	chk.Scalar(tst, "total load", 1e-15, sim.Loads[0].Total, -300)
	chk.IntAssert(sim.Solver.NmaxIt, 30)

	// material parameter set
	prms := sim.Mat.Prms()
	chk.IntAssert(len(prms), 2)
	chk.String(tst, prms[0].N, "E")
	chk.Scalar(tst, "E", 1e-15, prms[0].V, 3000)
}

func Test_sim02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("sim02. defaults")

	sim, err := ParseSim([]byte(`{ "fixes": [ { "axis":2, "coord":0 } ] }`))
	if err != nil {
		tst.Fatalf("ParseSim failed:\n%v", err)
	}
	chk.IntAssert(sim.Grid.Nx, 1)
	chk.Scalar(tst, "lx", 1e-15, sim.Grid.Lx, 1)
	chk.String(tst, sim.Mat.Model, "linelast")
	chk.IntAssert(sim.Solver.NmaxIt, 20)
	chk.Scalar(tst, "cortol", 1e-15, sim.Solver.CorTol, 1e-8)
	chk.String(tst, sim.Solver.LinSol, "dense")
}

func Test_sim03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("sim03. invalid definitions")

	if _, err := ParseSim([]byte(`{ not json`)); err == nil {
		tst.Errorf("malformed JSON should return an error")
	}
	if _, err := ParseSim([]byte(`{}`)); err == nil {
		tst.Errorf("a simulation without supports should return an error")
	}
	if _, err := ParseSim([]byte(`{ "fixes": [ { "axis":5, "coord":0 } ] }`)); err == nil {
		tst.Errorf("an out-of-range axis should return an error")
	}
	if _, err := ParseSim([]byte(`{ "fixes": [ { "axis":2, "coord":0 } ], "loads": [ { "axis":2, "coord":1, "comp":7 } ] }`)); err == nil {
		tst.Errorf("an out-of-range component should return an error")
	}
}
