// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/guparan/caribou/geom"
)

// Domain holds the connectivity of a homogeneous subset of a mesh: a dense
// table with one row per element, each row holding the indices of the nodes
// forming that element. All elements of one domain are of the same kind.
//
// The index table is either owned (copied at construction, see
// Mesh.NewDomain) or an external read-only view (see Mesh.ViewDomain). Every
// read-only operation behaves identically on both.
//
// A Domain belongs to exactly one Mesh, set at construction and immutable
// thereafter.
type Domain struct {
	msh         *Mesh     // the owning mesh
	kind        geom.Kind // kind of all elements in this domain
	buffer      []int     // owned index storage; nil when viewing an external buffer
	data        []int     // actual index storage: buffer, or the external buffer
	nelems      int       // number of elements
	nnpe        int       // number of nodes per element
	outerStride int       // distance between consecutive element rows in data
	innerStride int       // distance between consecutive node indices in a row
}

// Mesh returns the owning mesh
func (o *Domain) Mesh() *Mesh { return o.msh }

// Kind returns the element kind of this domain
func (o *Domain) Kind() geom.Kind { return o.kind }

// NumberOfElements returns the number of elements in this domain
func (o *Domain) NumberOfElements() int { return o.nelems }

// NumberOfNodesPerElement returns the number of nodes of each element
func (o *Domain) NumberOfNodesPerElement() int { return o.nnpe }

// ElementIndices returns the node indices of the id'th element. When the
// underlying storage is contiguous the returned slice is a view into it and
// must be treated as read-only; repeated calls with the same id return the
// same values and never mutate the domain
func (o *Domain) ElementIndices(id int) (indices []int, err error) {
	if id < 0 || id >= o.nelems {
		return nil, chk.Err("cannot get indices of element %d: the domain only has %d elements", id, o.nelems)
	}
	start := id * o.outerStride
	if o.innerStride == 1 {
		return o.data[start : start+o.nnpe : start+o.nnpe], nil
	}
	indices = make([]int, o.nnpe)
	for k := 0; k < o.nnpe; k++ {
		indices[k] = o.data[start+k*o.innerStride]
	}
	return
}

// Element constructs the id'th element from the supplied position matrix
// X [nnodes][3]. The element is a fresh value; it holds no reference to the
// domain
func (o *Domain) Element(id int, X [][]float64) (e geom.Element, err error) {
	if id < 0 || id >= o.nelems {
		return nil, chk.Err("cannot get element %d: the domain only has %d elements", id, o.nelems)
	}
	indices, err := o.ElementIndices(id)
	if err != nil {
		return
	}
	nodes := make([][]float64, o.nnpe)
	for k, n := range indices {
		nodes[k] = X[n]
	}
	return geom.New(o.kind, nodes)
}

// ElementFromMesh constructs the id'th element using the positions of the
// owning mesh
func (o *Domain) ElementFromMesh(id int) (e geom.Element, err error) {
	return o.Element(id, o.msh.X)
}

// checkIndices validates that every node index is within the mesh bounds
func (o *Domain) checkIndices() (err error) {
	nnodes := o.msh.NumberOfNodes()
	for id := 0; id < o.nelems; id++ {
		start := id * o.outerStride
		for k := 0; k < o.nnpe; k++ {
			n := o.data[start+k*o.innerStride]
			if n < 0 || n >= nnodes {
				return chk.Err("node index %d of element %d is out of range: the mesh only has %d nodes", n, id, nnodes)
			}
		}
	}
	return
}
