// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// voigt maps Voigt component a ∈ [0,6) to its tensor index pair, using the
// order [xx yy zz xy yz zx]
var voigt = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}}

// det33 returns the determinant of a 3x3 matrix
func det33(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// inv33 fills ai with the inverse of a, given det(a)
func inv33(ai, a [][]float64, det float64) {
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

// voigtToTensor fills the symmetric 3x3 tensor T from the Voigt vector v
// (off-diagonal entries of v are plain tensor components, no engineering
// factor)
func voigtToTensor(T [][]float64, v []float64) {
	for a := 0; a < 6; a++ {
		i, j := voigt[a][0], voigt[a][1]
		T[i][j] = v[a]
		T[j][i] = v[a]
	}
}

// smallBmatrix fills the small-strain B matrix [6][nu] mapping nodal
// displacements to Voigt strains with engineering shear. G are world
// shape-function gradients [nnodes][3]
func smallBmatrix(B [][]float64, G [][]float64, nnodes int) {
	for a := 0; a < 6; a++ {
		for r := 0; r < 3*nnodes; r++ {
			B[a][r] = 0
		}
	}
	for m := 0; m < nnodes; m++ {
		c := 3 * m
		B[0][c+0] = G[m][0]
		B[1][c+1] = G[m][1]
		B[2][c+2] = G[m][2]
		B[3][c+0] = G[m][1]
		B[3][c+1] = G[m][0]
		B[4][c+1] = G[m][2]
		B[4][c+2] = G[m][1]
		B[5][c+0] = G[m][2]
		B[5][c+2] = G[m][0]
	}
}

// largeBmatrix fills the nonlinear B matrix [6][nu] mapping nodal
// displacement variations to Voigt variations of the Green-Lagrange strain
// at deformation gradient F. It reduces to smallBmatrix when F is the
// identity
func largeBmatrix(B [][]float64, G [][]float64, F [][]float64, nnodes int) {
	for m := 0; m < nnodes; m++ {
		c := 3 * m
		for k := 0; k < 3; k++ {
			for a := 0; a < 6; a++ {
				i, j := voigt[a][0], voigt[a][1]
				if i == j {
					B[a][c+k] = F[k][i] * G[m][i]
				} else {
					B[a][c+k] = F[k][i]*G[m][j] + F[k][j]*G[m][i]
				}
			}
		}
	}
}
