// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Tetrahedron4 implements a 4-node linear tetrahedron. The mapping is affine,
// thus the Jacobian is constant over the element
type Tetrahedron4 struct {
	X [][]float64 // node positions [4][3]
	J [][]float64 // (constant) Jacobian matrix [3][3]
	d float64     // determinant of J
}

// register allocator
func init() {
	allocators[Tet4] = func(X [][]float64) (Element, error) {
		return NewTetrahedron(X)
	}
}

// NewTetrahedron returns a tetrahedron from the world positions of its 4
// nodes
func NewTetrahedron(X [][]float64) (o *Tetrahedron4, err error) {
	if len(X) != 4 {
		return nil, chk.Err("tetrahedron needs 4 nodes. %d given", len(X))
	}
	o = new(Tetrahedron4)
	o.X = X
	o.J = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.J[i][j] = X[j+1][i] - X[0][i]
		}
	}
	o.d = det33(o.J)
	if o.d < 0 {
		return nil, chk.Err("tetrahedron has negative Jacobian determinant = %g; check the node ordering", o.d)
	}
	return
}

// Nnodes returns the number of nodes
func (o *Tetrahedron4) Nnodes() int { return 4 }

// Ndim returns the dimension of the reference space
func (o *Tetrahedron4) Ndim() int { return 3 }

// Ngauss returns the number of Gauss points
func (o *Tetrahedron4) Ngauss() int { return 1 }

// GaussPoint returns the idx'th Gauss point and its weight
func (o *Tetrahedron4) GaussPoint(idx int) (ξ []float64, w float64) {
	return []float64{0.25, 0.25, 0.25}, 1.0 / 6.0
}

// T maps local (barycentric-like) coordinates to world coordinates
func (o *Tetrahedron4) T(ξ []float64) (x []float64) {
	S := o.ShapeFuncs(ξ)
	x = make([]float64, 3)
	for m := 0; m < 4; m++ {
		for i := 0; i < 3; i++ {
			x[i] += S[m] * o.X[m][i]
		}
	}
	return
}

// Tinv maps world coordinates back to local coordinates. The mapping is
// affine, hence the inverse is closed-form: ξ = J⁻¹·(x - x0)
func (o *Tetrahedron4) Tinv(x []float64) (ξ []float64) {
	Ji := inv33(o.J, o.d)
	ξ = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ξ[i] += Ji[i][j] * (x[j] - o.X[0][j])
		}
	}
	return
}

// Jacobian returns the (constant) Jacobian matrix
func (o *Tetrahedron4) Jacobian(ξ []float64) [][]float64 { return o.J }

// Volume returns the volume of the tetrahedron: det(J)/6
func (o *Tetrahedron4) Volume() float64 { return o.d / 6.0 }

// ShapeFuncs returns the linear interpolation functions at ξ
func (o *Tetrahedron4) ShapeFuncs(ξ []float64) []float64 {
	return []float64{1.0 - ξ[0] - ξ[1] - ξ[2], ξ[0], ξ[1], ξ[2]}
}

// ShapeDerivs returns the (constant) local gradients of the interpolation
// functions [4][3]
func (o *Tetrahedron4) ShapeDerivs(ξ []float64) [][]float64 {
	return [][]float64{
		{-1, -1, -1},
		{+1, 0, 0},
		{0, +1, 0},
		{0, 0, +1},
	}
}

// GaussQuadrature approximates the integral of f over the tetrahedron
func (o *Tetrahedron4) GaussQuadrature(f func(e *Tetrahedron4, ξ []float64) float64) (res float64) {
	for idx := 0; idx < o.Ngauss(); idx++ {
		ξ, w := o.GaussPoint(idx)
		res += f(o, ξ) * w * o.d
	}
	return
}

// det33 returns the determinant of a 3x3 matrix
func det33(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// inv33 returns the inverse of a 3x3 matrix given its determinant
func inv33(a [][]float64, det float64) (ai [][]float64) {
	ai = la.MatAlloc(3, 3)
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}
