// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/guparan/caribou/fem"
	"github.com/guparan/caribou/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nCaribou -- Nonlinear Mechanics by the Finite Element Method\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation definition
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	sim.Data.Verbose = sim.Data.Verbose || verbose

	// analysis
	analysis, err := fem.NewFEM(sim)
	if err != nil {
		chk.Panic("cannot build analysis:\n%v", err)
	}
	if verbose {
		io.Pf("%s\n", sim.Data.Desc)
		io.Pf("mesh: %d nodes, %d elements, %d equations\n",
			analysis.Msh.NumberOfNodes(), analysis.Dom.NumberOfElements(), analysis.Dm.Ny)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if !analysis.Nr.Converged {
		io.PfRed("did not converge after %d iterations\n", analysis.Nr.It)
		return
	}
	if verbose {
		io.PfGreen("converged after %d iterations\n", analysis.Nr.It)
	}
}
