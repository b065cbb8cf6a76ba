// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem runs the nonlinear solve: equation numbering, the linear
// solver boundary and the Newton-Raphson driver
package fem

import (
	"github.com/cpmech/gosl/chk"
)

// DofMap numbers the free degrees of freedom of a mesh: one equation per
// (node, component) pair that is not fixed. Fixed dofs get no equation and
// are excluded from the global system
type DofMap struct {
	Eqs   [][]int  // [nnodes][3] equation numbers; -1 marks fixed dofs
	Ny    int      // number of free equations
	fixed [][]bool // [nnodes][3] prescribed flags
}

// NewDofMap allocates a map with all dofs free and numbered
func NewDofMap(nnodes int) (o *DofMap) {
	o = new(DofMap)
	o.fixed = make([][]bool, nnodes)
	o.Eqs = make([][]int, nnodes)
	for n := 0; n < nnodes; n++ {
		o.fixed[n] = make([]bool, 3)
		o.Eqs[n] = make([]int, 3)
	}
	o.Number()
	return
}

// Fix prescribes one component of one node
func (o *DofMap) Fix(node, comp int) (err error) {
	if node < 0 || node >= len(o.fixed) {
		return chk.Err("cannot fix node %d: the map only has %d nodes", node, len(o.fixed))
	}
	if comp < 0 || comp >= 3 {
		return chk.Err("cannot fix component %d: components range from 0 to 2", comp)
	}
	o.fixed[node][comp] = true
	return
}

// FixNodes prescribes the given components (all three when none is given) of
// a set of nodes
func (o *DofMap) FixNodes(nodes []int, comps ...int) (err error) {
	if len(comps) == 0 {
		comps = []int{0, 1, 2}
	}
	for _, n := range nodes {
		for _, i := range comps {
			if err = o.Fix(n, i); err != nil {
				return
			}
		}
	}
	return
}

// Number (re)assigns ascending equation numbers to all free dofs and returns
// the number of equations. Call after the last Fix
func (o *DofMap) Number() (ny int) {
	for n := range o.Eqs {
		for i := 0; i < 3; i++ {
			if o.fixed[n][i] {
				o.Eqs[n][i] = -1
				continue
			}
			o.Eqs[n][i] = ny
			ny++
		}
	}
	o.Ny = ny
	return
}

// Eq returns the equation number of one (node, component) pair; -1 when the
// dof is fixed
func (o *DofMap) Eq(node, comp int) int { return o.Eqs[node][comp] }
