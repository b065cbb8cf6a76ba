// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Verbose bool   `json:"verbose"` // print the iteration table
}

// GridData defines a structured box grid of hexahedra
type GridData struct {
	Lx float64 `json:"lx"` // box length along x
	Ly float64 `json:"ly"` // box length along y
	Lz float64 `json:"lz"` // box length along z
	Nx int     `json:"nx"` // number of elements along x
	Ny int     `json:"ny"` // number of elements along y
	Nz int     `json:"nz"` // number of elements along z
}

// MatData holds material data
type MatData struct {
	Model string  `json:"model"` // material model name. ex: linelast, svk, neohooke
	E     float64 `json:"E"`     // Young's modulus
	Nu    float64 `json:"nu"`    // Poisson's coefficient
}

// Prms returns the parameter set of this material
func (o *MatData) Prms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
	}
}

// FaceBc fixes dof components of all nodes on one axis-aligned plane.
// Comps empty means all three components
type FaceBc struct {
	Axis  int     `json:"axis"`  // plane normal: 0, 1 or 2
	Coord float64 `json:"coord"` // plane position along the normal
	Comps []int   `json:"comps"` // fixed components; empty means all
}

// FaceLoad spreads a total force over the nodes of one axis-aligned plane
type FaceLoad struct {
	Axis  int     `json:"axis"`  // plane normal: 0, 1 or 2
	Coord float64 `json:"coord"` // plane position along the normal
	Comp  int     `json:"comp"`  // loaded component
	Total float64 `json:"total"` // total force; split evenly over the nodes
}

// SolverData holds the nonlinear and linear solver settings
type SolverData struct {
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	CorTol float64 `json:"cortol"` // tolerance on the correction ratio
	ResTol float64 `json:"restol"` // tolerance on the residual ratio
	LinSol string  `json:"linsol"` // linear solver: "dense", "umfpack" or "mumps"
}

// Simulation holds one complete problem definition
type Simulation struct {
	Data   Data       `json:"data"`
	Grid   GridData   `json:"grid"`
	Mat    MatData    `json:"mat"`
	Fixes  []FaceBc   `json:"fixes"`
	Loads  []FaceLoad `json:"loads"`
	Solver SolverData `json:"solver"`
}

// ReadSim reads a simulation from a JSON file and fills in the defaults
func ReadSim(path string) (o *Simulation, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", path, err)
	}
	return ParseSim(b)
}

// ParseSim parses a simulation from JSON data and fills in the defaults
func ParseSim(b []byte) (o *Simulation, err error) {
	o = new(Simulation)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse simulation data:\n%v", err)
	}
	o.setDefaults()
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// setDefaults fills in missing values
func (o *Simulation) setDefaults() {
	if o.Grid.Nx == 0 {
		o.Grid.Nx = 1
	}
	if o.Grid.Ny == 0 {
		o.Grid.Ny = 1
	}
	if o.Grid.Nz == 0 {
		o.Grid.Nz = 1
	}
	if o.Grid.Lx == 0 {
		o.Grid.Lx = 1
	}
	if o.Grid.Ly == 0 {
		o.Grid.Ly = 1
	}
	if o.Grid.Lz == 0 {
		o.Grid.Lz = 1
	}
	if o.Mat.Model == "" {
		o.Mat.Model = "linelast"
	}
	if o.Solver.NmaxIt == 0 {
		o.Solver.NmaxIt = 20
	}
	if o.Solver.CorTol == 0 {
		o.Solver.CorTol = 1e-8
	}
	if o.Solver.ResTol == 0 {
		o.Solver.ResTol = 1e-8
	}
	if o.Solver.LinSol == "" {
		o.Solver.LinSol = "dense"
	}
}

// check validates the problem definition
func (o *Simulation) check() (err error) {
	for _, f := range o.Fixes {
		if f.Axis < 0 || f.Axis > 2 {
			return chk.Err("fix axis %d is out of range: axes range from 0 to 2", f.Axis)
		}
		for _, c := range f.Comps {
			if c < 0 || c > 2 {
				return chk.Err("fixed component %d is out of range: components range from 0 to 2", c)
			}
		}
	}
	for _, l := range o.Loads {
		if l.Axis < 0 || l.Axis > 2 {
			return chk.Err("load axis %d is out of range: axes range from 0 to 2", l.Axis)
		}
		if l.Comp < 0 || l.Comp > 2 {
			return chk.Err("loaded component %d is out of range: components range from 0 to 2", l.Comp)
		}
	}
	if len(o.Fixes) == 0 {
		return chk.Err("at least one fixed plane is required to remove the rigid modes")
	}
	return
}
