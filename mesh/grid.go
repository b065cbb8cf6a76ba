// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/guparan/caribou/geom"
)

// BoxGrid generates a structured hexahedron mesh of a box [0,lx]x[0,ly]x[0,lz]
// with nx, ny, nz cells along each axis, and the corresponding domain. Node
// numbering runs x fastest, then y, then z; cell connectivity follows the
// canonical hexahedron numbering (nodes 1, 3, 4 adjacent to node 0 along
// x, y, z)
func BoxGrid(lx, ly, lz float64, nx, ny, nz int) (msh *Mesh, dom *Domain, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, nil, chk.Err("grid needs at least one cell per axis: nx=%d ny=%d nz=%d", nx, ny, nz)
	}

	// nodes
	xs := utl.LinSpace(0, lx, nx+1)
	ys := utl.LinSpace(0, ly, ny+1)
	zs := utl.LinSpace(0, lz, nz+1)
	X := make([][]float64, (nx+1)*(ny+1)*(nz+1))
	n := 0
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				X[n] = []float64{xs[i], ys[j], zs[k]}
				n++
			}
		}
	}
	msh = NewMesh(X)

	// cells
	node := func(i, j, k int) int { return i + j*(nx+1) + k*(nx+1)*(ny+1) }
	indices := make([][]int, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				indices = append(indices, []int{
					node(i, j, k), node(i+1, j, k), node(i+1, j+1, k), node(i, j+1, k),
					node(i, j, k+1), node(i+1, j, k+1), node(i+1, j+1, k+1), node(i, j+1, k+1),
				})
			}
		}
	}
	dom, err = msh.NewDomain(geom.Hex8, indices)
	return
}

// UnitCubeGrid generates a structured hexahedron mesh of the unit cube
func UnitCubeGrid(nx, ny, nz int) (msh *Mesh, dom *Domain, err error) {
	return BoxGrid(1, 1, 1, nx, ny, nz)
}

// NodesOnPlane returns the indices of the mesh nodes lying on the plane
// {x,y,z}[axis] == val, within tolerance
func (o *Mesh) NodesOnPlane(axis int, val, tol float64) (indices []int) {
	for n, x := range o.X {
		if x[axis] > val-tol && x[axis] < val+tol {
			indices = append(indices, n)
		}
	}
	return
}
