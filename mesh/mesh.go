// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements meshes (node positions) and domains (the
// connectivity of a homogeneous subset of a mesh, without position data)
package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/guparan/caribou/geom"
)

// Mesh holds the world positions of a set of nodes. Domains reference nodes
// by index and never store positions themselves; only a Mesh can create a
// Domain
type Mesh struct {
	X [][]float64 // node positions [nnodes][3]
}

// NewMesh returns a mesh holding the given node positions
func NewMesh(X [][]float64) (o *Mesh) {
	o = new(Mesh)
	o.X = X
	return
}

// NumberOfNodes returns the number of nodes in this mesh
func (o *Mesh) NumberOfNodes() int { return len(o.X) }

// Position returns the world position of one node
func (o *Mesh) Position(n int) []float64 { return o.X[n] }

// NewDomain creates a domain over this mesh by copying the given element
// index table [nelems][nnpe]. The table can be safely modified or discarded
// afterwards
func (o *Mesh) NewDomain(kind geom.Kind, indices [][]int) (dom *Domain, err error) {

	// check homogeneity
	nnpe, err := geom.NumberOfNodes(kind)
	if err != nil {
		return
	}
	for i, row := range indices {
		if len(row) != nnpe {
			return nil, chk.Err("all elements in a domain must have the same number of nodes: element %d has %d nodes instead of %d", i, len(row), nnpe)
		}
	}

	// copy into a dense owned buffer
	buf := make([]int, len(indices)*nnpe)
	for i, row := range indices {
		copy(buf[i*nnpe:], row)
	}

	dom = &Domain{
		msh:         o,
		kind:        kind,
		buffer:      buf,
		data:        buf,
		nelems:      len(indices),
		nnpe:        nnpe,
		outerStride: nnpe,
		innerStride: 1,
	}
	err = dom.checkIndices()
	if err != nil {
		return nil, err
	}
	return
}

// ViewDomain creates a domain over this mesh wrapping an external index
// buffer with explicit strides, WITHOUT copying. The caller must guarantee
// that the external buffer outlives the domain; the behavior is undefined
// otherwise
func (o *Mesh) ViewDomain(kind geom.Kind, data []int, nelems, outerStride, innerStride int) (dom *Domain, err error) {
	nnpe, err := geom.NumberOfNodes(kind)
	if err != nil {
		return
	}
	if nelems > 0 {
		need := (nelems-1)*outerStride + (nnpe-1)*innerStride + 1
		if len(data) < need {
			return nil, chk.Err("external buffer has %d entries: a view over %d elements with strides (%d, %d) needs at least %d", len(data), nelems, outerStride, innerStride, need)
		}
	}
	dom = &Domain{
		msh:         o,
		kind:        kind,
		data:        data,
		nelems:      nelems,
		nnpe:        nnpe,
		outerStride: outerStride,
		innerStride: innerStride,
	}
	err = dom.checkIndices()
	if err != nil {
		return nil, err
	}
	return
}
