// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/guparan/caribou/geom"
)

// embedTol is the tolerance on local coordinates when deciding whether a
// point lies inside an element
const embedTol = 1e-10

// BarycentricLocator binds a set of embedded points (world coordinates) to
// the elements of a domain containing them, to later interpolate nodal field
// values at those points
type BarycentricLocator struct {
	dom    *Domain     // the domain the points are embedded in
	points [][]float64 // embedded points [npoints][3]
	eids   []int       // containing element of each point; -1 when outside
	locs   [][]float64 // local coordinates of each point within its element
}

// Embed binds a set of points (in world coordinates) to this domain and
// returns the locator to interpolate field values at them. Points outside
// every element are flagged and reported by Outside
func (o *Domain) Embed(points [][]float64) (loc *BarycentricLocator, err error) {
	loc = &BarycentricLocator{
		dom:    o,
		points: points,
		eids:   make([]int, len(points)),
		locs:   make([][]float64, len(points)),
	}
	for p, x := range points {
		loc.eids[p] = -1
		for id := 0; id < o.nelems; id++ {
			e, err := o.ElementFromMesh(id)
			if err != nil {
				return nil, err
			}
			ξ := e.Tinv(x)
			if containsLocal(o.kind, ξ) {
				loc.eids[p] = id
				loc.locs[p] = ξ
				break
			}
		}
	}
	return
}

// NumberOfPoints returns the number of embedded points
func (o *BarycentricLocator) NumberOfPoints() int { return len(o.points) }

// Outside returns the indices of the embedded points located outside every
// element of the domain
func (o *BarycentricLocator) Outside() (indices []int) {
	for p, eid := range o.eids {
		if eid < 0 {
			indices = append(indices, p)
		}
	}
	return
}

// Interpolate evaluates a nodal field [nnodes][ncomp] at the embedded points.
// Points outside the domain yield an error
func (o *BarycentricLocator) Interpolate(field [][]float64) (vals [][]float64, err error) {
	ncomp := 0
	if len(field) > 0 {
		ncomp = len(field[0])
	}
	vals = make([][]float64, len(o.points))
	for p := range o.points {
		if o.eids[p] < 0 {
			return nil, chk.Err("cannot interpolate at point %d: it lies outside the domain", p)
		}
		e, err := o.dom.ElementFromMesh(o.eids[p])
		if err != nil {
			return nil, err
		}
		indices, err := o.dom.ElementIndices(o.eids[p])
		if err != nil {
			return nil, err
		}
		S := e.ShapeFuncs(o.locs[p])
		vals[p] = make([]float64, ncomp)
		for k, n := range indices {
			for i := 0; i < ncomp; i++ {
				vals[p][i] += S[k] * field[n][i]
			}
		}
	}
	return
}

// containsLocal tells whether local coordinates lie inside the canonical
// element of given kind
func containsLocal(kind geom.Kind, ξ []float64) bool {
	switch kind {
	case geom.Tet4:
		sum := 0.0
		for _, v := range ξ {
			if v < -embedTol {
				return false
			}
			sum += v
		}
		return sum <= 1.0+embedTol
	default:
		for _, v := range ξ {
			if v < -1.0-embedTol || v > 1.0+embedTol {
				return false
			}
		}
		return true
	}
}
