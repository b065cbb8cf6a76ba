// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// hex8nodes holds the local coordinates of the canonical hexahedron nodes.
// Node 1, 3 and 4 are the neighbours of node 0 along x, y and z
var hex8nodes = [][]float64{
	{-1, -1, -1},
	{+1, -1, -1},
	{+1, +1, -1},
	{-1, +1, -1},
	{-1, -1, +1},
	{+1, -1, +1},
	{+1, +1, +1},
	{-1, +1, +1},
}

// hex8gauss holds the 2x2x2 Gauss points of the canonical hexahedron. All
// weights are 1
var hex8gauss = func() (pts [][]float64) {
	g := 1.0 / math.Sqrt(3.0)
	for _, n := range hex8nodes {
		pts = append(pts, []float64{g * n[0], g * n[1], g * n[2]})
	}
	return
}()

// intersectionEps is the tolerance applied to each inequality of the
// segment-cube separating-axis test to avoid false results at boundaries
const intersectionEps = 1e-10

// RectangularHexahedron implements an 8-node hexahedron whose edges are
// mutually orthogonal. It is parameterized by its center point, the lengths
// of its three edges and an orthonormal rotation frame.
//
// Because the edges are orthogonal, the Jacobian of the reference-to-world
// mapping is constant over the element (diagonal matrix diag(hx/2,hy/2,hz/2)),
// which allows its determinant to be computed once and reused across all
// Gauss points.
type RectangularHexahedron struct {
	C []float64   // center point
	H []float64   // edge lengths {hx, hy, hz}
	R [][]float64 // orthonormal rotation frame; identity by default
}

// register allocator
func init() {
	allocators[Hex8] = func(X [][]float64) (Element, error) {
		return NewHexahedronFromNodes(X)
	}
}

// NewRectangularHexahedron returns a hexahedron with given center, edge
// lengths and rotation frame. A nil rotation means identity
func NewRectangularHexahedron(center, size []float64, rotation [][]float64) (o *RectangularHexahedron) {
	o = new(RectangularHexahedron)
	o.C = []float64{center[0], center[1], center[2]}
	o.H = []float64{size[0], size[1], size[2]}
	if rotation == nil {
		o.R = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	} else {
		o.R = la.MatAlloc(3, 3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.R[i][j] = rotation[i][j]
			}
		}
	}
	return
}

// NewUnitHexahedron returns the canonical hexahedron: centered at the origin,
// with edge lengths {2,2,2} and the identity frame
func NewUnitHexahedron() (o *RectangularHexahedron) {
	return NewRectangularHexahedron([]float64{0, 0, 0}, []float64{2, 2, 2}, nil)
}

// NewHexahedronFromNodes recovers a rectangular hexahedron from the world
// positions of its 8 corners, following the canonical numbering: nodes 1, 3
// and 4 are the neighbours of node 0 along the local x, y and z axes
func NewHexahedronFromNodes(X [][]float64) (o *RectangularHexahedron, err error) {
	if len(X) != 8 {
		return nil, chk.Err("rectangular hexahedron needs 8 nodes. %d given", len(X))
	}
	o = new(RectangularHexahedron)
	o.C = make([]float64, 3)
	for _, x := range X {
		for i := 0; i < 3; i++ {
			o.C[i] += x[i] / 8.0
		}
	}
	u := []float64{X[1][0] - X[0][0], X[1][1] - X[0][1], X[1][2] - X[0][2]}
	v := []float64{X[3][0] - X[0][0], X[3][1] - X[0][1], X[3][2] - X[0][2]}
	w := []float64{X[4][0] - X[0][0], X[4][1] - X[0][1], X[4][2] - X[0][2]}
	o.H = []float64{la.VecNorm(u), la.VecNorm(v), la.VecNorm(w)}
	if o.H[0] < intersectionEps || o.H[1] < intersectionEps || o.H[2] < intersectionEps {
		return nil, chk.Err("degenerate hexahedron: edge lengths = %v", o.H)
	}
	o.R = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		o.R[i][0] = u[i] / o.H[0]
		o.R[i][1] = v[i] / o.H[1]
		o.R[i][2] = w[i] / o.H[2]
	}
	return
}

// Nnodes returns the number of nodes
func (o *RectangularHexahedron) Nnodes() int { return 8 }

// Ndim returns the dimension of the reference space
func (o *RectangularHexahedron) Ndim() int { return 3 }

// Ngauss returns the number of Gauss points
func (o *RectangularHexahedron) Ngauss() int { return 8 }

// GaussPoint returns the idx'th Gauss point and its weight
func (o *RectangularHexahedron) GaussPoint(idx int) (ξ []float64, w float64) {
	return hex8gauss[idx], 1.0
}

// Node returns the world position of the idx'th node
func (o *RectangularHexahedron) Node(idx int) (x []float64) {
	return o.T(hex8nodes[idx])
}

// T maps local coordinates ξ ∈ [-1,1]³ to world coordinates:
//
//	T(ξ) = center + R·ξ ⊙ h/2
func (o *RectangularHexahedron) T(ξ []float64) (x []float64) {
	x = make([]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = o.C[i]
		for j := 0; j < 3; j++ {
			x[i] += o.R[i][j] * ξ[j] * o.H[j] / 2.0
		}
	}
	return
}

// Tinv maps world coordinates back to local coordinates:
//
//	Tinv(x) = Rᵀ·(x - center) ⊘ h/2
func (o *RectangularHexahedron) Tinv(x []float64) (ξ []float64) {
	ξ = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ξ[i] += o.R[j][i] * (x[j] - o.C[j])
		}
		ξ[i] /= o.H[i] / 2.0
	}
	return
}

// Jacobian returns the Jacobian matrix of T. It is constant over the element
// since the edges are mutually orthogonal:
//
//	J = diag(hx/2, hy/2, hz/2)
func (o *RectangularHexahedron) Jacobian(ξ []float64) [][]float64 {
	return [][]float64{
		{o.H[0] / 2.0, 0, 0},
		{0, o.H[1] / 2.0, 0},
		{0, 0, o.H[2] / 2.0},
	}
}

// DetJ returns the determinant of the (constant) Jacobian matrix
func (o *RectangularHexahedron) DetJ() float64 {
	return o.H[0] * o.H[1] * o.H[2] / 8.0
}

// Volume computes the volume of the hexahedron from the pairwise distances
// between node 0 and its three orthogonal neighbours. It deliberately avoids
// the stored size vector so it can serve as a cross-check of the node mapping
func (o *RectangularHexahedron) Volume() float64 {
	hx := vecDist(o.Node(0), o.Node(1))
	hy := vecDist(o.Node(0), o.Node(3))
	hz := vecDist(o.Node(0), o.Node(4))
	return hx * hy * hz
}

// ShapeFuncs returns the trilinear interpolation functions at ξ
func (o *RectangularHexahedron) ShapeFuncs(ξ []float64) (S []float64) {
	S = make([]float64, 8)
	for m := 0; m < 8; m++ {
		n := hex8nodes[m]
		S[m] = (1.0 + ξ[0]*n[0]) * (1.0 + ξ[1]*n[1]) * (1.0 + ξ[2]*n[2]) / 8.0
	}
	return
}

// ShapeDerivs returns the local gradients of the interpolation functions
// at ξ [8][3]
func (o *RectangularHexahedron) ShapeDerivs(ξ []float64) (G [][]float64) {
	G = la.MatAlloc(8, 3)
	for m := 0; m < 8; m++ {
		n := hex8nodes[m]
		G[m][0] = n[0] * (1.0 + ξ[1]*n[1]) * (1.0 + ξ[2]*n[2]) / 8.0
		G[m][1] = n[1] * (1.0 + ξ[0]*n[0]) * (1.0 + ξ[2]*n[2]) / 8.0
		G[m][2] = n[2] * (1.0 + ξ[0]*n[0]) * (1.0 + ξ[1]*n[1]) / 8.0
	}
	return
}

// GaussQuadrature approximates the integral of f over the hexahedron by
// summing weighted evaluations of f at the canonical Gauss points:
//
//	∫ f dV ≈ Σ f(ξi)·wi·det(J)
//
// det(J) is constant for this element family; it factors outside the sum and
// is computed once per call
func (o *RectangularHexahedron) GaussQuadrature(f func(e *RectangularHexahedron, ξ []float64) float64) (res float64) {
	detJ := o.DetJ()
	for idx := 0; idx < o.Ngauss(); idx++ {
		ξ, w := o.GaussPoint(idx)
		res += f(o, ξ) * w * detJ
	}
	return
}

// Intersects tests whether the hexahedron intersects the 3D segment a-b given
// in world coordinates
func (o *RectangularHexahedron) Intersects(a, b []float64) bool {
	return o.IntersectsLocal(o.Tinv(a), o.Tinv(b))
}

// IntersectsLocal tests whether the canonical cube [-1,1]³ intersects the
// segment a-b given in the hexahedron's local frame. The test looks for a
// separating axis among the three face planes and the three edge
// cross-product ("rhombus normal") directions, following Don Hatch's
// cube-segment algorithm. It returns true only if no separating axis exists
func (o *RectangularHexahedron) IntersectsLocal(a, b []float64) bool {

	// shrink to a cube of size 1x1x1 centered on the origin
	v0 := []float64{a[0] / 2.0, a[1] / 2.0, a[2] / 2.0}
	v1 := []float64{b[0] / 2.0, b[1] / 2.0, b[2] / 2.0}

	edge := []float64{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
	var signs [3]float64
	for i := 0; i < 3; i++ {
		signs[i] = 1
		if edge[i] < 0 {
			signs[i] = -1
		}
	}

	// face-plane clipping checks
	for i := 0; i < 3; i++ {
		if v0[i]*signs[i] > 0.5+intersectionEps {
			return false
		}
		if v1[i]*signs[i] < -0.5-intersectionEps {
			return false
		}
	}

	// rhombus-normal checks
	for i := 0; i < 3; i++ {
		ip1 := (i + 1) % 3
		ip2 := (i + 2) % 3
		rnDotV0 := edge[ip2]*v0[ip1] - edge[ip1]*v0[ip2]
		rnDotCubedge := 0.5 * (edge[ip2]*signs[ip1] + edge[ip1]*signs[ip2])
		if rnDotV0*rnDotV0-rnDotCubedge*rnDotCubedge > intersectionEps {
			return false
		}
	}
	return true
}

// IntersectsPolygon tests whether the hexahedron intersects a 3D polygon.
// NOT IMPLEMENTED: always returns false; callers must not rely on it
func (o *RectangularHexahedron) IntersectsPolygon(nodes [][]float64, polynormal []float64) bool {
	return false
}
