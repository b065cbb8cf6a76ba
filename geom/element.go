// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements geometric finite elements: the mapping between a
// canonical reference element and its world-space geometry, including
// Jacobians, volumes and Gauss quadrature
package geom

import (
	"github.com/cpmech/gosl/chk"
)

// Kind identifies one concrete element type. The set is closed: dispatch over
// element types happens through this tag and the allocators map, not through
// open-ended embedding
type Kind int

// element kinds
const (
	Hex8 Kind = iota + 1 // linear rectangular hexahedron (8 nodes)
	Tet4                 // linear tetrahedron (4 nodes)
	Qua4                 // linear quadrilateral surface element (4 nodes)
	Seg2                 // linear segment (2 nodes)
)

// String returns the name of this element kind
func (o Kind) String() string {
	switch o {
	case Hex8:
		return "hex8"
	case Tet4:
		return "tet4"
	case Qua4:
		return "qua4"
	case Seg2:
		return "seg2"
	}
	return "unknown"
}

// Element defines the capability set of all geometric elements.
//
// An Element is an immutable value constructed fresh from node positions each
// time it is needed; it is never persisted independently of its owning
// connectivity and position data.
type Element interface {

	// information
	Nnodes() int // number of nodes
	Ndim() int   // dimension of the local (reference) space

	// mapping between reference and world space
	T(ξ []float64) (x []float64)        // maps local coordinates ξ to world coordinates x
	Tinv(x []float64) (ξ []float64)     // maps world coordinates x back to local coordinates ξ
	Jacobian(ξ []float64) [][]float64   // Jacobian matrix of T at ξ
	Volume() float64                    // volume (or area/length) of this element in world space
	ShapeFuncs(ξ []float64) []float64   // interpolation functions at ξ [nnodes]
	ShapeDerivs(ξ []float64) [][]float64 // local gradients of the interpolation functions at ξ [nnodes][ndim]

	// quadrature
	Ngauss() int                                 // number of Gauss points
	GaussPoint(idx int) (ξ []float64, w float64) // idx'th Gauss point and weight
}

// allocators maps element kinds to functions allocating elements from a
// matrix of node positions X [nnodes][3]
var allocators = make(map[Kind]func(X [][]float64) (Element, error))

// NumberOfNodes returns the number of nodes of elements of given kind
func NumberOfNodes(kind Kind) (nnodes int, err error) {
	switch kind {
	case Hex8:
		return 8, nil
	case Tet4:
		return 4, nil
	case Qua4:
		return 4, nil
	case Seg2:
		return 2, nil
	}
	return 0, chk.Err("unknown element kind %d", kind)
}

// New allocates an element of given kind from a matrix of node positions
// X [nnodes][3]
func New(kind Kind, X [][]float64) (e Element, err error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot find allocator for element kind %q", kind)
	}
	return alloc(X)
}
