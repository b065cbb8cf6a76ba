// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// LinearSolver is the boundary to the linear-solve collaborator of the
// Newton-Raphson driver. It creates the global system buffers and solves
// A·x = b; Solve returns false on failure and the driver treats that as
// divergence.
//
// nnz is the number of entries one assembly pass puts into the matrix.
// Elements sharing free dofs put duplicate entries, so nnz may exceed n²;
// the triplet must hold all of them
type LinearSolver interface {
	CreateMatrix(n, nnz int) *la.Triplet // n-by-n assembly matrix; Start clears it
	CreateVector(n int) []float64
	Solve(A *la.Triplet, b, x []float64) bool
}

// matrixCapacity returns the triplet capacity for an n-by-n system filled
// by nnz put calls per assembly pass
func matrixCapacity(n, nnz, nnzMax int) int {
	if nnzMax > 0 {
		return nnzMax
	}
	if nnz > 0 {
		return nnz
	}
	return n * n
}

// Sparse ///////////////////////////////////////////////////////////////////////////////////////////

// Sparse solves through a sparse direct solver (UMFPACK by default)
type Sparse struct {
	Name   string // solver name for la.GetSolver; empty means "umfpack"
	NnzMax int    // triplet capacity override; the assembly put count when zero
}

// CreateMatrix allocates the assembly triplet
func (o *Sparse) CreateMatrix(n, nnz int) *la.Triplet {
	t := new(la.Triplet)
	t.Init(n, n, matrixCapacity(n, nnz, o.NnzMax))
	return t
}

// CreateVector allocates a zeroed vector
func (o *Sparse) CreateVector(n int) []float64 {
	return make([]float64, n)
}

// Solve factorises A and solves A·x = b. Any initialisation, factorisation
// or solve error reports failure
func (o *Sparse) Solve(A *la.Triplet, b, x []float64) bool {
	name := o.Name
	if name == "" {
		name = "umfpack"
	}
	lis := la.GetSolver(name)
	defer lis.Clean()
	if err := lis.InitR(A, false, false, false); err != nil {
		return false
	}
	if err := lis.Fact(); err != nil {
		return false
	}
	if err := lis.SolveR(x, b, false); err != nil {
		return false
	}
	return true
}

// DenseLu //////////////////////////////////////////////////////////////////////////////////////////

// DenseLu solves through a dense LU decomposition. Intended for small
// systems and for environments without a sparse direct solver
type DenseLu struct {
	NnzMax int // triplet capacity override; the assembly put count when zero
}

// CreateMatrix allocates the assembly triplet
func (o *DenseLu) CreateMatrix(n, nnz int) *la.Triplet {
	t := new(la.Triplet)
	t.Init(n, n, matrixCapacity(n, nnz, o.NnzMax))
	return t
}

// CreateVector allocates a zeroed vector
func (o *DenseLu) CreateVector(n int) []float64 {
	return make([]float64, n)
}

// Solve densifies A and solves A·x = b by LU decomposition. Singular
// matrices report failure; ill-conditioned ones solve with a condition
// warning and still succeed
func (o *DenseLu) Solve(A *la.Triplet, b, x []float64) bool {
	n := len(b)
	d := A.ToMatrix(nil).ToDense()
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = d[i][j]
		}
	}
	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, flat))
	xv := mat.NewVecDense(n, nil)
	bv := mat.NewVecDense(n, b)
	if err := lu.SolveVecTo(xv, false, bv); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return false
		}
	}
	for i := 0; i < n; i++ {
		x[i] = xv.AtVec(i)
	}
	return true
}
