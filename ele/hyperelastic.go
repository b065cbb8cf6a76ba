// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the hyperelastic forcefield: per-element Gauss-point
// state, element tangent stiffness matrices and internal forces, and their
// scatter into the global system
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/guparan/caribou/geom"
	"github.com/guparan/caribou/mesh"
	"github.com/guparan/caribou/msolid"
)

// GaussNode holds the state of one quadrature sample of one element
type GaussNode struct {
	W    float64     // quadrature weight
	DetJ float64     // determinant of the reference-to-world Jacobian
	DNdx [][]float64 // [nnodes][3] shape-function gradients in world frame
	F    [][]float64 // [3][3] deformation gradient; identity at rest
}

// Hyperelastic assembles internal forces and tangent stiffness matrices for
// one domain of solid elements with a hyperelastic (or linear elastic)
// material response.
//
// Two freshness flags gate the derived data: element stiffness matrices, and
// diagnostics derived from them (the assembled sparse tangent, its
// eigenvalues and condition number). Any configuration update invalidates
// both.
type Hyperelastic struct {

	// basic data
	Dom    *mesh.Domain // the domain providing connectivity and geometry
	Mdl    msolid.Model // material model
	Nnodes int          // nodes per element
	Nu     int          // dofs per element == 3 * Nnodes
	Neq    int          // total number of equations; set by SetEqs

	// model specialisations
	MdlSmall msolid.Small // non-nil for small-strain (linear) materials
	MdlLarge msolid.Large // non-nil for large-deformation materials

	// problem variables
	Umaps [][]int // [nelems][nu] assembly maps; negative entries are prescribed

	// gauss data
	gnodes [][]*GaussNode // [nelems][nip]

	// element matrices and displacements
	Ke [][][]float64 // [nelems][nu][nu] element tangent stiffness
	ue [][]float64   // [nelems][nu] element nodal displacements

	// freshness flags
	kFresh    bool // element stiffness matrices up to date
	diagFresh bool // assembled sparse tangent up to date
	eigsFresh bool // eigenvalues up to date
	condFresh bool // condition number up to date

	// cached diagnostics
	kb   la.Triplet    // global assembly workspace
	kcc  *la.CCMatrix  // assembled sparse tangent
	kd   *mat.SymDense // dense tangent for eigen/condition diagnostics
	eigs []float64     // eigenvalues in ascending order
	cond float64       // 2-norm condition number

	// scratchpad. computed @ each ip
	B   [][]float64 // [6][nu] strain-displacement matrix
	D   [][]float64 // [6][6] material tangent (small-strain path)
	sig [][]float64 // [3][3] stress tensor
	εs  []float64   // [6] small strains
	σs  []float64   // [6] small stresses
	fi  []float64   // [nu] internal forces
}

// MeshIsCompatible tells whether the forcefield can operate on domains of the
// given element kind. This is a pure capability check
func MeshIsCompatible(kind geom.Kind) bool {
	switch kind {
	case geom.Hex8, geom.Tet4:
		return true
	}
	return false
}

// NewHyperelastic allocates a forcefield over the given domain and material
// model and precomputes the Gauss-point data of every element
func NewHyperelastic(dom *mesh.Domain, mdl msolid.Model) (o *Hyperelastic, err error) {

	// check
	if !MeshIsCompatible(dom.Kind()) {
		return nil, chk.Err("hyperelastic forcefield cannot operate on %q domains", dom.Kind())
	}

	// basic data
	o = new(Hyperelastic)
	o.Dom = dom
	o.Mdl = mdl
	o.Nnodes = dom.NumberOfNodesPerElement()
	o.Nu = 3 * o.Nnodes

	// model specialisation
	switch m := mdl.(type) {
	case msolid.Small:
		o.MdlSmall = m
	case msolid.Large:
		o.MdlLarge = m
	default:
		return nil, chk.Err("cannot determine the specialisation of material model %T", mdl)
	}

	// element matrices and displacements
	nelems := dom.NumberOfElements()
	o.Ke = make([][][]float64, nelems)
	o.ue = la.MatAlloc(nelems, o.Nu)
	for i := 0; i < nelems; i++ {
		o.Ke[i] = la.MatAlloc(o.Nu, o.Nu)
	}

	// scratchpad
	o.B = la.MatAlloc(6, o.Nu)
	o.D = la.MatAlloc(6, 6)
	o.sig = la.MatAlloc(3, 3)
	o.εs = make([]float64, 6)
	o.σs = make([]float64, 6)
	o.fi = make([]float64, o.Nu)

	// gauss data
	err = o.InitializeElements()
	return
}

// SetEqs sets the assembly maps from global equation numbers per (node,
// component). Negative entries mark prescribed dofs; they are skipped by the
// scatter operations
func (o *Hyperelastic) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != o.Dom.Mesh().NumberOfNodes() {
		return chk.Err("equation table has %d rows: the mesh has %d nodes", len(eqs), o.Dom.Mesh().NumberOfNodes())
	}
	nelems := o.Dom.NumberOfElements()
	o.Umaps = make([][]int, nelems)
	o.Neq = 0
	for eid := 0; eid < nelems; eid++ {
		indices, err := o.Dom.ElementIndices(eid)
		if err != nil {
			return err
		}
		o.Umaps[eid] = make([]int, o.Nu)
		for m, n := range indices {
			for i := 0; i < 3; i++ {
				eq := eqs[n][i]
				o.Umaps[eid][i+m*3] = eq
				if eq >= o.Neq {
					o.Neq = eq + 1
				}
			}
		}
	}
	return
}

// NumberOfEquations returns the total number of free equations set by SetEqs
func (o *Hyperelastic) NumberOfEquations() int { return o.Neq }

// Nnz returns the number of triplet entries one AddToKb pass scatters, an
// upper bound on the nonzeros of the assembled tangent. Elements sharing
// free dofs put duplicate entries, so this exceeds Neq² on small systems
func (o *Hyperelastic) Nnz() int { return len(o.gnodes) * o.Nu * o.Nu }

// InitializeElements precomputes, at every Gauss point of every element, the
// world shape-function gradients and the Jacobian determinant, and sets the
// deformation gradient to the identity. The reference geometry is assumed
// fixed afterwards
func (o *Hyperelastic) InitializeElements() (err error) {
	nelems := o.Dom.NumberOfElements()
	o.gnodes = make([][]*GaussNode, nelems)
	Jinv := la.MatAlloc(3, 3)
	for eid := 0; eid < nelems; eid++ {
		e, err := o.Dom.ElementFromMesh(eid)
		if err != nil {
			return err
		}
		nip := e.Ngauss()
		o.gnodes[eid] = make([]*GaussNode, nip)
		for idx := 0; idx < nip; idx++ {
			ξ, w := e.GaussPoint(idx)
			J := e.Jacobian(ξ)
			detJ := det33(J)
			if math.Abs(detJ) < 1e-14 {
				return chk.Err("element %d has a singular Jacobian at integration point %d", eid, idx)
			}
			inv33(Jinv, J, detJ)
			Gloc := e.ShapeDerivs(ξ)
			gn := &GaussNode{
				W:    w,
				DetJ: detJ,
				DNdx: la.MatAlloc(o.Nnodes, 3),
				F:    la.MatAlloc(3, 3),
			}
			for m := 0; m < o.Nnodes; m++ {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						gn.DNdx[m][i] += Gloc[m][j] * Jinv[j][i]
					}
				}
			}
			for i := 0; i < 3; i++ {
				gn.F[i][i] = 1
			}
			o.gnodes[eid][idx] = gn
		}
	}
	return
}

// UpdateConfiguration propagates the global displacement vector U (indexed
// by equation number) into the element nodal displacements and the
// deformation gradients at all Gauss points. It invalidates the element
// stiffness matrices and all derived diagnostics
func (o *Hyperelastic) UpdateConfiguration(U []float64) (err error) {
	if len(U) < o.Neq {
		return chk.Err("displacement vector has %d entries: the system has %d equations", len(U), o.Neq)
	}
	if o.Umaps == nil {
		return chk.Err("equations must be set before updating the configuration")
	}
	for eid := range o.gnodes {

		// gather element displacements; prescribed dofs stay zero
		for r, eq := range o.Umaps[eid] {
			if eq >= 0 {
				o.ue[eid][r] = U[eq]
			} else {
				o.ue[eid][r] = 0
			}
		}

		// F = I + Σ_m u_m ⊗ ∇N_m
		for _, gn := range o.gnodes[eid] {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					gn.F[i][j] = 0
					for m := 0; m < o.Nnodes; m++ {
						gn.F[i][j] += o.ue[eid][i+m*3] * gn.DNdx[m][j]
					}
				}
				gn.F[i][i] += 1
			}
		}
	}
	o.kFresh = false
	o.invalidateDiagnostics()
	return
}

// UpdateStiffness recomputes every element tangent stiffness matrix at the
// current configuration. Elements and Gauss points are visited in ascending
// order so the accumulation is deterministic
func (o *Hyperelastic) UpdateStiffness() (err error) {
	for eid := range o.gnodes {
		la.MatFill(o.Ke[eid], 0)
		for _, gn := range o.gnodes[eid] {
			coef := gn.W * math.Abs(gn.DetJ)

			// small-strain path: constant modulus, linear B
			if o.MdlSmall != nil {
				smallBmatrix(o.B, gn.DNdx, o.Nnodes)
				o.MdlSmall.CalcD(o.D)
				la.MatTrMulAdd3(o.Ke[eid], coef, o.B, o.D, o.B) // K += coef * tr(B) * D * B
				continue
			}

			// large-deformation path: material part
			S, D, err := o.MdlLarge.Evaluate(gn.F)
			if err != nil {
				return chk.Err("material evaluation failed at element %d:\n%v", eid, err)
			}
			largeBmatrix(o.B, gn.DNdx, gn.F, o.Nnodes)
			la.MatTrMulAdd3(o.Ke[eid], coef, o.B, D, o.B) // K += coef * tr(B) * D * B

			// geometric part
			voigtToTensor(o.sig, S)
			for m := 0; m < o.Nnodes; m++ {
				for n := 0; n < o.Nnodes; n++ {
					var gSg float64
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							gSg += gn.DNdx[m][p] * o.sig[p][q] * gn.DNdx[n][q]
						}
					}
					for i := 0; i < 3; i++ {
						o.Ke[eid][i+m*3][i+n*3] += coef * gSg
					}
				}
			}
		}
	}
	o.kFresh = true
	return
}

// AddToRhs subtracts the internal forces at the current configuration from
// the global residual vector fb
func (o *Hyperelastic) AddToRhs(fb []float64) (err error) {
	if o.Umaps == nil {
		return chk.Err("equations must be set before assembling the residual")
	}
	for eid := range o.gnodes {
		la.VecFill(o.fi, 0)
		for _, gn := range o.gnodes[eid] {
			coef := gn.W * math.Abs(gn.DetJ)

			// stress and strain-displacement matrix @ ip
			if o.MdlSmall != nil {
				smallBmatrix(o.B, gn.DNdx, o.Nnodes)
				la.MatVecMul(o.εs, 1, o.B, o.ue[eid])
				o.MdlSmall.CalcSig(o.σs, o.εs)
				la.MatTrVecMulAdd(o.fi, coef, o.B, o.σs) // fi += coef * tr(B) * σ
			} else {
				S, _, err := o.MdlLarge.Evaluate(gn.F)
				if err != nil {
					return chk.Err("material evaluation failed at element %d:\n%v", eid, err)
				}
				largeBmatrix(o.B, gn.DNdx, gn.F, o.Nnodes)
				la.MatTrVecMulAdd(o.fi, coef, o.B, S) // fi += coef * tr(B) * S
			}
		}

		// scatter -fi
		for r, eq := range o.Umaps[eid] {
			if eq >= 0 {
				fb[eq] -= o.fi[r]
			}
		}
	}
	return
}

// AddToKb scatters the element tangent stiffness matrices into the global
// sparse matrix Kb, skipping prescribed dofs. Stale element matrices are
// recomputed first
func (o *Hyperelastic) AddToKb(Kb *la.Triplet) (err error) {
	if o.Umaps == nil {
		return chk.Err("equations must be set before assembling the tangent")
	}
	if !o.kFresh {
		if err = o.UpdateStiffness(); err != nil {
			return
		}
	}
	for eid := range o.gnodes {
		for i, I := range o.Umaps[eid] {
			if I < 0 {
				continue
			}
			for j, J := range o.Umaps[eid] {
				if J < 0 {
					continue
				}
				Kb.Put(I, J, o.Ke[eid][i][j])
			}
		}
	}
	return
}

// read accessors //////////////////////////////////////////////////////////////////////////////////

// GaussNodesOf returns the Gauss-point states of the eid'th element
func (o *Hyperelastic) GaussNodesOf(eid int) (gns []*GaussNode, err error) {
	if eid < 0 || eid >= len(o.gnodes) {
		return nil, chk.Err("cannot get gauss nodes of element %d: the domain only has %d elements", eid, len(o.gnodes))
	}
	return o.gnodes[eid], nil
}

// StiffnessMatrixOf returns the tangent stiffness matrix of the eid'th
// element at the current configuration, recomputing it if stale
func (o *Hyperelastic) StiffnessMatrixOf(eid int) (K [][]float64, err error) {
	if eid < 0 || eid >= len(o.gnodes) {
		return nil, chk.Err("cannot get stiffness of element %d: the domain only has %d elements", eid, len(o.gnodes))
	}
	if !o.kFresh {
		if err = o.UpdateStiffness(); err != nil {
			return
		}
	}
	return o.Ke[eid], nil
}

// K returns the assembled sparse global tangent at the current
// configuration, recomputing it if stale
func (o *Hyperelastic) K() (K *la.CCMatrix, err error) {
	if err = o.assembleGlobal(); err != nil {
		return
	}
	return o.kcc, nil
}

// Eigenvalues returns the eigenvalues of the assembled global tangent in
// ascending order
func (o *Hyperelastic) Eigenvalues() (eigs []float64, err error) {
	if err = o.assembleGlobal(); err != nil {
		return
	}
	if !o.eigsFresh {
		var es mat.EigenSym
		if !es.Factorize(o.kd, false) {
			return nil, chk.Err("eigen decomposition of the global tangent failed")
		}
		o.eigs = es.Values(nil)
		o.eigsFresh = true
	}
	return o.eigs, nil
}

// Cond returns the 2-norm condition number of the assembled global tangent
func (o *Hyperelastic) Cond() (cond float64, err error) {
	if err = o.assembleGlobal(); err != nil {
		return
	}
	if !o.condFresh {
		o.cond = mat.Cond(o.kd, 2)
		o.condFresh = true
	}
	return o.cond, nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// invalidateDiagnostics marks all derived diagnostics as stale
func (o *Hyperelastic) invalidateDiagnostics() {
	o.diagFresh = false
	o.eigsFresh = false
	o.condFresh = false
}

// assembleGlobal rebuilds the sparse and dense copies of the global tangent
// if stale
func (o *Hyperelastic) assembleGlobal() (err error) {
	if o.diagFresh {
		return
	}
	if o.Umaps == nil || o.Neq == 0 {
		return chk.Err("equations must be set before assembling the global tangent")
	}
	o.kb.Init(o.Neq, o.Neq, o.Nnz())
	if err = o.AddToKb(&o.kb); err != nil {
		return
	}
	o.kcc = o.kb.ToMatrix(nil)
	o.kd = mat.NewSymDense(o.Neq, nil)
	for eid := range o.gnodes {
		for i, I := range o.Umaps[eid] {
			if I < 0 {
				continue
			}
			for j, J := range o.Umaps[eid] {
				if J < 0 || J < I {
					continue
				}
				o.kd.SetSym(I, J, o.kd.At(I, J)+o.Ke[eid][i][j])
			}
		}
	}
	o.diagFresh = true
	return
}
