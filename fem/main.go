// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/guparan/caribou/ele"
	"github.com/guparan/caribou/inp"
	"github.com/guparan/caribou/mesh"
	"github.com/guparan/caribou/msolid"
)

// planeTol is the tolerance used to collect nodes on the fixed and loaded
// planes of a simulation
const planeTol = 1e-10

// FEM holds one complete analysis built from a simulation definition: grid,
// material, forcefield, equation numbering, loads and driver
type FEM struct {

	// problem
	Sim *inp.Simulation // the simulation definition
	Msh *mesh.Mesh      // the structured grid
	Dom *mesh.Domain    // the hexahedron domain
	Ff  *ele.Hyperelastic

	// system
	Dm   *DofMap       // equation numbering
	Fext []float64     // external forces [Ny]
	U    []float64     // displacements [Ny]
	Nr   NewtonRaphson // the driver
}

// NewFEM builds an analysis from a simulation definition
func NewFEM(sim *inp.Simulation) (o *FEM, err error) {
	o = new(FEM)
	o.Sim = sim

	// grid
	g := sim.Grid
	o.Msh, o.Dom, err = mesh.BoxGrid(g.Lx, g.Ly, g.Lz, g.Nx, g.Ny, g.Nz)
	if err != nil {
		return nil, chk.Err("cannot build grid:\n%v", err)
	}

	// material and forcefield
	mdl, err := msolid.New(sim.Mat.Model, sim.Mat.Prms())
	if err != nil {
		return nil, err
	}
	o.Ff, err = ele.NewHyperelastic(o.Dom, mdl)
	if err != nil {
		return nil, err
	}

	// equation numbering
	o.Dm = NewDofMap(o.Msh.NumberOfNodes())
	for _, f := range sim.Fixes {
		nodes := o.Msh.NodesOnPlane(f.Axis, f.Coord, planeTol)
		if len(nodes) == 0 {
			return nil, chk.Err("no nodes on the fixed plane x[%d] = %g", f.Axis, f.Coord)
		}
		if err = o.Dm.FixNodes(nodes, f.Comps...); err != nil {
			return nil, err
		}
	}
	o.Dm.Number()
	if err = o.Ff.SetEqs(o.Dm.Eqs); err != nil {
		return nil, err
	}

	// loads, split evenly over the plane nodes; loaded dofs that are also
	// fixed carry their share into the supports and are skipped
	o.Fext = make([]float64, o.Dm.Ny)
	for _, l := range sim.Loads {
		nodes := o.Msh.NodesOnPlane(l.Axis, l.Coord, planeTol)
		if len(nodes) == 0 {
			return nil, chk.Err("no nodes on the loaded plane x[%d] = %g", l.Axis, l.Coord)
		}
		share := l.Total / float64(len(nodes))
		for _, n := range nodes {
			if eq := o.Dm.Eq(n, l.Comp); eq >= 0 {
				o.Fext[eq] += share
			}
		}
	}

	// driver
	o.U = make([]float64, o.Dm.Ny)
	o.Nr = NewtonRaphson{
		NmaxIt: sim.Solver.NmaxIt,
		CorTol: sim.Solver.CorTol,
		ResTol: sim.Solver.ResTol,
		LinSol: linearSolver(sim.Solver.LinSol),
	}
	if sim.Data.Verbose {
		o.Nr.Diag = LogDiagnostics{}
	}
	return
}

// Run solves the analysis. The numerical outcome is in Nr.Converged and
// Nr.It; the error reports configuration problems only
func (o *FEM) Run() (err error) {
	return o.Nr.Solve(o.Ff, o.Fext, o.U)
}

// Displacement returns the solved displacement of one (node, component)
// pair; fixed dofs report zero
func (o *FEM) Displacement(node, comp int) float64 {
	if eq := o.Dm.Eq(node, comp); eq >= 0 {
		return o.U[eq]
	}
	return 0
}

// linearSolver maps a solver name to its backend
func linearSolver(name string) LinearSolver {
	if name == "dense" {
		return new(DenseLu)
	}
	return &Sparse{Name: name}
}
