// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// qua4nodes holds the local coordinates of the canonical quadrilateral nodes
var qua4nodes = [][]float64{
	{-1, -1},
	{+1, -1},
	{+1, +1},
	{-1, +1},
}

// Quad4 implements a 4-node bilinear quadrilateral surface element living in
// 3D world space. Its local space is 2D
type Quad4 struct {
	X [][]float64 // node positions [4][3]
}

// register allocator
func init() {
	allocators[Qua4] = func(X [][]float64) (Element, error) {
		return NewQuad(X)
	}
}

// NewQuad returns a quadrilateral from the world positions of its 4 nodes
func NewQuad(X [][]float64) (o *Quad4, err error) {
	if len(X) != 4 {
		return nil, chk.Err("quadrilateral needs 4 nodes. %d given", len(X))
	}
	o = new(Quad4)
	o.X = X
	return
}

// Nnodes returns the number of nodes
func (o *Quad4) Nnodes() int { return 4 }

// Ndim returns the dimension of the reference space
func (o *Quad4) Ndim() int { return 2 }

// Ngauss returns the number of Gauss points
func (o *Quad4) Ngauss() int { return 4 }

// GaussPoint returns the idx'th Gauss point and its weight
func (o *Quad4) GaussPoint(idx int) (ξ []float64, w float64) {
	g := 1.0 / math.Sqrt(3.0)
	return []float64{g * qua4nodes[idx][0], g * qua4nodes[idx][1]}, 1.0
}

// T maps local coordinates ξ ∈ [-1,1]² to world coordinates
func (o *Quad4) T(ξ []float64) (x []float64) {
	S := o.ShapeFuncs(ξ)
	x = make([]float64, 3)
	for m := 0; m < 4; m++ {
		for i := 0; i < 3; i++ {
			x[i] += S[m] * o.X[m][i]
		}
	}
	return
}

// Tinv maps world coordinates back to local coordinates by Gauss-Newton
// iterations on the residual T(ξ) - x projected onto the surface tangents
func (o *Quad4) Tinv(x []float64) (ξ []float64) {
	ξ = make([]float64, 2)
	for it := 0; it < 10; it++ {
		r := o.T(ξ)
		for i := 0; i < 3; i++ {
			r[i] -= x[i]
		}
		J := o.Jacobian(ξ) // [3][2]
		// normal equations: (JᵀJ)·δ = -Jᵀr
		var a, b, c, p, q float64
		for i := 0; i < 3; i++ {
			a += J[i][0] * J[i][0]
			b += J[i][0] * J[i][1]
			c += J[i][1] * J[i][1]
			p -= J[i][0] * r[i]
			q -= J[i][1] * r[i]
		}
		det := a*c - b*b
		δ0 := (c*p - b*q) / det
		δ1 := (a*q - b*p) / det
		ξ[0] += δ0
		ξ[1] += δ1
		if δ0*δ0+δ1*δ1 < 1e-28 {
			break
		}
	}
	return
}

// Jacobian returns the 3x2 Jacobian matrix of the surface mapping at ξ
func (o *Quad4) Jacobian(ξ []float64) [][]float64 {
	G := o.ShapeDerivs(ξ)
	J := la.MatAlloc(3, 2)
	for m := 0; m < 4; m++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				J[i][j] += o.X[m][i] * G[m][j]
			}
		}
	}
	return J
}

// Volume returns the area of the quadrilateral, integrating the norm of the
// cross product of the surface tangents over the Gauss points
func (o *Quad4) Volume() (res float64) {
	for idx := 0; idx < o.Ngauss(); idx++ {
		ξ, w := o.GaussPoint(idx)
		J := o.Jacobian(ξ)
		t1 := []float64{J[0][0], J[1][0], J[2][0]}
		t2 := []float64{J[0][1], J[1][1], J[2][1]}
		n := make([]float64, 3)
		utl.Cross3d(n, t1, t2)
		res += la.VecNorm(n) * w
	}
	return
}

// ShapeFuncs returns the bilinear interpolation functions at ξ
func (o *Quad4) ShapeFuncs(ξ []float64) (S []float64) {
	S = make([]float64, 4)
	for m := 0; m < 4; m++ {
		n := qua4nodes[m]
		S[m] = (1.0 + ξ[0]*n[0]) * (1.0 + ξ[1]*n[1]) / 4.0
	}
	return
}

// ShapeDerivs returns the local gradients of the interpolation functions
// at ξ [4][2]
func (o *Quad4) ShapeDerivs(ξ []float64) (G [][]float64) {
	G = la.MatAlloc(4, 2)
	for m := 0; m < 4; m++ {
		n := qua4nodes[m]
		G[m][0] = n[0] * (1.0 + ξ[1]*n[1]) / 4.0
		G[m][1] = n[1] * (1.0 + ξ[0]*n[0]) / 4.0
	}
	return
}
