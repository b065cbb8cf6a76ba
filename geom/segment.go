// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Segment2 implements a 2-node linear segment living in 3D world space. Its
// local space is 1D with ξ ∈ [-1,1]
type Segment2 struct {
	X [][]float64 // node positions [2][3]
}

// register allocator
func init() {
	allocators[Seg2] = func(X [][]float64) (Element, error) {
		return NewSegment(X)
	}
}

// NewSegment returns a segment from the world positions of its 2 nodes
func NewSegment(X [][]float64) (o *Segment2, err error) {
	if len(X) != 2 {
		return nil, chk.Err("segment needs 2 nodes. %d given", len(X))
	}
	o = new(Segment2)
	o.X = X
	return
}

// Nnodes returns the number of nodes
func (o *Segment2) Nnodes() int { return 2 }

// Ndim returns the dimension of the reference space
func (o *Segment2) Ndim() int { return 1 }

// Ngauss returns the number of Gauss points
func (o *Segment2) Ngauss() int { return 2 }

// GaussPoint returns the idx'th Gauss point and its weight
func (o *Segment2) GaussPoint(idx int) (ξ []float64, w float64) {
	g := 1.0 / math.Sqrt(3.0)
	if idx == 0 {
		return []float64{-g}, 1.0
	}
	return []float64{+g}, 1.0
}

// T maps the local coordinate ξ ∈ [-1,1] to world coordinates
func (o *Segment2) T(ξ []float64) (x []float64) {
	S := o.ShapeFuncs(ξ)
	x = make([]float64, 3)
	for m := 0; m < 2; m++ {
		for i := 0; i < 3; i++ {
			x[i] += S[m] * o.X[m][i]
		}
	}
	return
}

// Tinv maps world coordinates back to the local coordinate by projecting
// x onto the segment's axis
func (o *Segment2) Tinv(x []float64) (ξ []float64) {
	var num, den float64
	for i := 0; i < 3; i++ {
		e := o.X[1][i] - o.X[0][i]
		num += (x[i] - o.X[0][i]) * e
		den += e * e
	}
	return []float64{2.0*num/den - 1.0}
}

// Jacobian returns the 3x1 Jacobian matrix of the mapping: half the segment
// vector
func (o *Segment2) Jacobian(ξ []float64) [][]float64 {
	return [][]float64{
		{(o.X[1][0] - o.X[0][0]) / 2.0},
		{(o.X[1][1] - o.X[0][1]) / 2.0},
		{(o.X[1][2] - o.X[0][2]) / 2.0},
	}
}

// Volume returns the length of the segment
func (o *Segment2) Volume() float64 {
	return vecDist(o.X[0], o.X[1])
}

// ShapeFuncs returns the linear interpolation functions at ξ
func (o *Segment2) ShapeFuncs(ξ []float64) []float64 {
	return []float64{(1.0 - ξ[0]) / 2.0, (1.0 + ξ[0]) / 2.0}
}

// ShapeDerivs returns the (constant) local gradients of the interpolation
// functions [2][1]
func (o *Segment2) ShapeDerivs(ξ []float64) [][]float64 {
	return [][]float64{{-0.5}, {+0.5}}
}
