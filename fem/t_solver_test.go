// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
)

func Test_lu01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("lu01. dense LU backend")

	var ls DenseLu
	A := ls.CreateMatrix(3, 0)
	b := ls.CreateVector(3)
	x := ls.CreateVector(3)
	assert.Len(tst, b, 3)

	// diagonally dominant system with known solution x = (1, 2, 3)
	A.Start()
	A.Put(0, 0, 4)
	A.Put(0, 1, 1)
	A.Put(1, 0, 1)
	A.Put(1, 1, 5)
	A.Put(1, 2, 1)
	A.Put(2, 1, 1)
	A.Put(2, 2, 6)
	b[0] = 4*1 + 1*2
	b[1] = 1*1 + 5*2 + 1*3
	b[2] = 1*2 + 6*3
	assert.True(tst, ls.Solve(A, b, x))
	assert.InDelta(tst, 1.0, x[0], 1e-12)
	assert.InDelta(tst, 2.0, x[1], 1e-12)
	assert.InDelta(tst, 3.0, x[2], 1e-12)

	// duplicate triplet entries must accumulate
	A.Start()
	A.Put(0, 0, 2)
	A.Put(0, 0, 2)
	A.Put(1, 1, 5)
	A.Put(1, 2, 1)
	A.Put(1, 0, 1)
	A.Put(2, 1, 1)
	A.Put(2, 2, 6)
	A.Put(0, 1, 1)
	assert.True(tst, ls.Solve(A, b, x))
	assert.InDelta(tst, 1.0, x[0], 1e-12)
	assert.InDelta(tst, 2.0, x[1], 1e-12)
	assert.InDelta(tst, 3.0, x[2], 1e-12)

	// a singular matrix must report failure
	A.Start()
	A.Put(0, 0, 1)
	A.Put(1, 1, 1)
	assert.False(tst, ls.Solve(A, b, x))
}

func Test_lu02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("lu02. matrix capacity follows the assembly put count")

	// overlapping element blocks put more than n² entries per pass; the
	// triplet must hold all of them without overflowing
	var ls DenseLu
	n, nnz := 2, 12
	A := ls.CreateMatrix(n, nnz)
	b := ls.CreateVector(n)
	x := ls.CreateVector(n)
	A.Start()
	for k := 0; k < nnz/4; k++ {
		A.Put(0, 0, 2)
		A.Put(0, 1, 1)
		A.Put(1, 0, 1)
		A.Put(1, 1, 3)
	}
	b[0] = 3 * (2*1 + 1*2)
	b[1] = 3 * (1*1 + 3*2)
	assert.True(tst, ls.Solve(A, b, x))
	assert.InDelta(tst, 1.0, x[0], 1e-12)
	assert.InDelta(tst, 2.0, x[1], 1e-12)

	// an explicit NnzMax overrides the put count
	lo := DenseLu{NnzMax: 7}
	B := lo.CreateMatrix(2, 3)
	for k := 0; k < 7; k++ {
		B.Put(0, 0, 1)
	}
	d := B.ToMatrix(nil).ToDense()
	chk.Scalar(tst, "B00", 1e-15, d[0][0], 7)
}

func Test_sp01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("sp01. sparse backend buffers")

	ls := Sparse{NnzMax: 16}
	A := ls.CreateMatrix(4, 0)
	A.Put(0, 0, 2)
	A.Put(3, 1, 5)
	d := A.ToMatrix(nil).ToDense()
	chk.Scalar(tst, "A00", 1e-15, d[0][0], 2)
	chk.Scalar(tst, "A31", 1e-15, d[3][1], 5)
	chk.Scalar(tst, "A11", 1e-15, d[1][1], 0)
	v := ls.CreateVector(4)
	chk.IntAssert(len(v), 4)
	for _, x := range v {
		chk.Scalar(tst, "zeroed vector", 1e-15, x, 0)
	}
}
