// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/guparan/caribou/geom"
)

// twoHexMesh returns a 2x1x1 box grid: two unit cubes sharing one face
func twoHexMesh(tst *testing.T) (*Mesh, *Domain) {
	msh, dom, err := BoxGrid(2, 1, 1, 2, 1, 1)
	if err != nil {
		tst.Fatalf("BoxGrid failed:\n%v", err)
	}
	return msh, dom
}

func Test_dom01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dom01. domain counters and indices")

	msh, dom := twoHexMesh(tst)
	chk.IntAssert(msh.NumberOfNodes(), 12)
	chk.IntAssert(dom.NumberOfElements(), 2)
	chk.IntAssert(dom.NumberOfNodesPerElement(), 8)
	chk.IntAssert(int(dom.Kind()), int(geom.Hex8))

	// indices of the first cell
	i0, err := dom.ElementIndices(0)
	if err != nil {
		tst.Errorf("ElementIndices failed:\n%v", err)
		return
	}
	chk.Ints(tst, "element 0", i0, []int{0, 1, 4, 3, 6, 7, 10, 9})

	// repeated calls return identical values (idempotent, no mutation)
	i0b, _ := dom.ElementIndices(0)
	chk.Ints(tst, "element 0 (again)", i0b, i0)
	i1, _ := dom.ElementIndices(1)
	chk.Ints(tst, "element 1", i1, []int{1, 2, 5, 4, 7, 8, 11, 10})
}

func Test_dom02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dom02. element construction and position gathering")

	msh, dom := twoHexMesh(tst)

	// node positions of element 1 must equal the gathered mesh rows
	e, err := dom.Element(1, msh.X)
	if err != nil {
		tst.Errorf("Element failed:\n%v", err)
		return
	}
	hex := e.(*geom.RectangularHexahedron)
	indices, _ := dom.ElementIndices(1)
	for k, n := range indices {
		chk.Vector(tst, io.Sf("node %d", k), 1e-14, hex.Node(k), msh.Position(n))
	}
	chk.Scalar(tst, "volume", 1e-13, hex.Volume(), 1.0)

	// the overload fetching positions from the owning mesh agrees
	e2, err := dom.ElementFromMesh(1)
	if err != nil {
		tst.Errorf("ElementFromMesh failed:\n%v", err)
		return
	}
	hex2 := e2.(*geom.RectangularHexahedron)
	chk.Vector(tst, "center", 1e-14, hex2.C, hex.C)
	chk.Vector(tst, "size", 1e-14, hex2.H, hex.H)
}

func Test_dom03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dom03. out-of-range and invalid construction")

	msh, dom := twoHexMesh(tst)

	// out-of-range element id fails with the id and the valid bound
	_, err := dom.Element(2, msh.X)
	if err == nil {
		tst.Errorf("out-of-range error expected")
		return
	}
	if !strings.Contains(err.Error(), "element 2") || !strings.Contains(err.Error(), "2 elements") {
		tst.Errorf("error message must carry the offending id and the element count: %v", err)
	}
	_, err = dom.ElementIndices(-1)
	if err == nil {
		tst.Errorf("out-of-range error expected for negative id")
	}

	// node index beyond the mesh bound fails at construction
	_, err = msh.NewDomain(geom.Hex8, [][]int{{0, 1, 4, 3, 6, 7, 10, 99}})
	if err == nil {
		tst.Errorf("node bound violation must fail")
	}

	// heterogeneous rows fail at construction
	_, err = msh.NewDomain(geom.Hex8, [][]int{{0, 1, 4}})
	if err == nil {
		tst.Errorf("wrong row width must fail")
	}
}

func Test_dom04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dom04. owned copy vs external view")

	msh, owned := twoHexMesh(tst)

	// flat external buffer with the same connectivity
	buf := []int{
		0, 1, 4, 3, 6, 7, 10, 9,
		1, 2, 5, 4, 7, 8, 11, 10,
	}
	view, err := msh.ViewDomain(geom.Hex8, buf, 2, 8, 1)
	if err != nil {
		tst.Fatalf("ViewDomain failed:\n%v", err)
	}

	// both construction paths are interchangeable from every read-only
	// operation's point of view
	chk.IntAssert(view.NumberOfElements(), owned.NumberOfElements())
	chk.IntAssert(view.NumberOfNodesPerElement(), owned.NumberOfNodesPerElement())
	for id := 0; id < 2; id++ {
		a, _ := owned.ElementIndices(id)
		b, _ := view.ElementIndices(id)
		chk.Ints(tst, io.Sf("indices %d", id), a, b)
		ea, _ := owned.ElementFromMesh(id)
		eb, _ := view.ElementFromMesh(id)
		chk.Vector(tst, io.Sf("center %d", id), 1e-14,
			ea.(*geom.RectangularHexahedron).C, eb.(*geom.RectangularHexahedron).C)
	}

	// strided view: interleaved buffer holding the same rows at even offsets,
	// with padding (skipped by the inner stride) in between
	strided := make([]int, 2*len(buf))
	for i, v := range buf {
		strided[2*i] = v
	}
	sview, err := msh.ViewDomain(geom.Hex8, strided, 2, 16, 2)
	if err != nil {
		tst.Fatalf("strided ViewDomain failed:\n%v", err)
	}
	for id := 0; id < 2; id++ {
		a, _ := owned.ElementIndices(id)
		b, _ := sview.ElementIndices(id)
		chk.Ints(tst, io.Sf("strided indices %d", id), b, a)
	}

	// a buffer too short for the declared strides fails at construction
	// with the required length in the message
	_, err = msh.ViewDomain(geom.Hex8, buf[:15], 2, 8, 1)
	if err == nil {
		tst.Fatalf("a short external buffer should return an error")
	}
	if !strings.Contains(err.Error(), "15") || !strings.Contains(err.Error(), "16") {
		tst.Errorf("error message should carry the given and required lengths: %v", err)
	}
}

func Test_dom05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("dom05. barycentric embedding")

	_, dom, err := BoxGrid(2, 1, 1, 2, 1, 1)
	if err != nil {
		tst.Fatalf("BoxGrid failed:\n%v", err)
	}

	// one point per cell, one outside
	points := [][]float64{
		{0.5, 0.5, 0.5},
		{1.5, 0.25, 0.75},
		{5, 5, 5},
	}
	loc, err := dom.Embed(points)
	if err != nil {
		tst.Fatalf("Embed failed:\n%v", err)
	}
	chk.IntAssert(loc.NumberOfPoints(), 3)
	chk.Ints(tst, "outside", loc.Outside(), []int{2})

	// interpolation of a linear field is exact: f(x) = 2x - y + 3z
	msh := dom.Mesh()
	field := make([][]float64, msh.NumberOfNodes())
	for n, x := range msh.X {
		field[n] = []float64{2.0*x[0] - x[1] + 3.0*x[2]}
	}
	loc, err = dom.Embed(points[:2])
	if err != nil {
		tst.Fatalf("Embed failed:\n%v", err)
	}
	vals, err := loc.Interpolate(field)
	if err != nil {
		tst.Fatalf("Interpolate failed:\n%v", err)
	}
	for p, x := range points[:2] {
		chk.Scalar(tst, io.Sf("f(point %d)", p), 1e-13, vals[p][0], 2.0*x[0]-x[1]+3.0*x[2])
	}

	// interpolating at an outside point fails
	loc, _ = dom.Embed(points)
	_, err = loc.Interpolate(field)
	if err == nil {
		tst.Errorf("interpolation at an outside point must fail")
	}
}
