// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// voigt maps Voigt component a ∈ [0,6) to its tensor index pair, using the
// order [xx yy zz xy yz zx]
var voigt = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}}

// hookeD fills the isotropic Hooke modulus in Voigt notation with
// engineering shear
func hookeD(D [][]float64, λ, μ float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = λ
		}
		D[i][i] = λ + 2.0*μ
		D[i+3][i+3] = μ
	}
}

// lameFromEν converts Young's modulus and Poisson's ratio to the Lamé
// parameters
func lameFromEν(E, ν float64) (λ, μ float64) {
	λ = E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	μ = E / (2.0 * (1.0 + ν))
	return
}

// mat33det returns the determinant of a 3x3 matrix
func mat33det(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// mat33inv fills ai with the inverse of a, given det(a)
func mat33inv(ai, a [][]float64, det float64) {
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
}

// rightCauchyGreen fills C with Fᵀ·F
func rightCauchyGreen(C, F [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = 0
			for k := 0; k < 3; k++ {
				C[i][j] += F[k][i] * F[k][j]
			}
		}
	}
}
