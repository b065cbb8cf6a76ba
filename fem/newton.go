// Copyright 2026 The Caribou Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// machEps is the double-precision machine epsilon; squared norms below it
// are treated as zero
const machEps = 2.220446049250313e-16

// Forcefield is the assembly boundary of the driver: it propagates
// displacement updates into its configuration and adds its contributions to
// the global residual and tangent
type Forcefield interface {
	NumberOfEquations() int
	Nnz() int // entries put into the global matrix per assembly pass
	UpdateConfiguration(U []float64) error
	AddToRhs(fb []float64) error
	AddToKb(Kb *la.Triplet) error
}

// Diagnostics receives the per-iteration and final outcome of one solve.
// The ratios are plain (not squared) norms, computed for reporting only
type Diagnostics interface {
	Iteration(it int, resRatio, corRatio float64, elapsed time.Duration)
	Final(converged bool, it int)
}

// NewtonRaphson drives the nonlinear solve: repeated assembly, linear solve
// and displacement update until convergence, divergence or exhaustion of the
// iteration budget.
//
// Convergence operates on squared norms. Each criterion is disabled by a
// non-positive tolerance. Numerical non-convergence and divergence are state
// outcomes, not errors; only configuration problems return an error
type NewtonRaphson struct {

	// configuration
	NmaxIt int          // maximum number of iterations
	CorTol float64      // tolerance on the correction ratio; non-positive disables
	ResTol float64      // tolerance on the residual ratio; non-positive disables
	LinSol LinearSolver // linear-solve collaborator
	Diag   Diagnostics  // optional diagnostics sink

	// internal state
	confErrReported bool // missing-solver error printed already

	// results. persisted until the next Solve call
	Converged   bool            // last solve reached one of the tolerances
	It          int             // iterations in which a linear solve was attempted
	SqResiduals []float64       // squared residual norm per iteration
	IterTimes   []time.Duration // wall time per iteration
}

// Solve finds the displacement field U balancing the internal forces of ff
// against the external forces fext (indexed by equation number). U is
// written in place; it must enter with the current configuration (normally
// zero) and has length ff.NumberOfEquations()
func (o *NewtonRaphson) Solve(ff Forcefield, fext, U []float64) (err error) {

	// guard: nothing is mutated when no solver is configured
	if o.LinSol == nil {
		if !o.confErrReported {
			io.PfRed("newton-raphson: no linear solver configured\n")
			o.confErrReported = true
		}
		return chk.Err("no linear solver configured")
	}
	n := ff.NumberOfEquations()
	if n < 1 {
		return chk.Err("the system has no equations")
	}
	if len(fext) != n || len(U) != n {
		return chk.Err("vector lengths (%d, %d) do not match the %d equations", len(fext), len(U), n)
	}

	// global system buffers. the matrix capacity follows the assembly put
	// count, which exceeds n² when elements share most of the free dofs
	Kb := o.LinSol.CreateMatrix(n, ff.Nnz())
	fb := o.LinSol.CreateVector(n)
	wb := o.LinSol.CreateVector(n)

	// reset results
	o.Converged = false
	o.It = 0
	o.SqResiduals = o.SqResiduals[:0]
	o.IterTimes = o.IterTimes[:0]

	// initial residual
	if err = ff.UpdateConfiguration(U); err != nil {
		return
	}
	copy(fb, fext)
	if err = ff.AddToRhs(fb); err != nil {
		return
	}
	R0sq := la.VecDot(fb, fb)

	// equilibrium may already hold
	if o.ResTol > 0 && R0sq <= o.ResTol {
		o.Converged = true
		if o.Diag != nil {
			o.Diag.Final(true, 0)
		}
		return
	}

	// iterations
	Rsq := R0sq
	for it := 1; it <= o.NmaxIt; it++ {
		o.It = it
		t0 := time.Now()

		// assemble and solve the linearised system
		Kb.Start()
		if err = ff.AddToKb(Kb); err != nil {
			return
		}
		if !o.LinSol.Solve(Kb, fb, wb) {
			break // diverged: the correction cannot be trusted
		}

		// apply the correction and propagate it into the configuration
		for i := 0; i < n; i++ {
			U[i] += wb[i]
		}
		if err = ff.UpdateConfiguration(U); err != nil {
			return
		}

		// recompute the residual, unless a single iteration is configured
		// and the pre-iteration value may serve
		if o.NmaxIt > 1 {
			copy(fb, fext)
			if err = ff.AddToRhs(fb); err != nil {
				return
			}
			Rsq = la.VecDot(fb, fb)
		}

		// squared norms of the correction and of the accumulated displacement
		corSq := la.VecDot(wb, wb)
		Usq := la.VecDot(U, U)

		// record the sample
		o.SqResiduals = append(o.SqResiduals, Rsq)
		o.IterTimes = append(o.IterTimes, time.Since(t0))
		if o.Diag != nil {
			o.Diag.Iteration(it, ratio(Rsq, R0sq), ratio(corSq, Usq), o.IterTimes[len(o.IterTimes)-1])
		}

		// divergence
		if math.IsNaN(corSq) || math.IsNaN(Rsq) || Usq < machEps {
			break
		}

		// convergence
		if o.CorTol > 0 && corSq < o.CorTol*o.CorTol*Usq {
			o.Converged = true
			break
		}
		if o.ResTol > 0 && Rsq < o.ResTol*o.ResTol*R0sq {
			o.Converged = true
			break
		}

		// next iteration starts from a clean correction
		la.VecFill(wb, 0)
	}

	if o.Diag != nil {
		o.Diag.Final(o.Converged, o.It)
	}
	return
}

// ratio returns sqrt(a/b), or zero when b vanishes
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return math.Sqrt(a / b)
}

// LogDiagnostics prints the iteration table with gosl's colored output
type LogDiagnostics struct{}

// Iteration prints one row of the iteration table
func (o LogDiagnostics) Iteration(it int, resRatio, corRatio float64, elapsed time.Duration) {
	if it == 1 {
		io.Pf("%4s%23s%23s%15s\n", "it", "R/R0", "|du|/|U|", "time")
	}
	io.Pf("%4d%23.15e%23.15e%15v\n", it, resRatio, corRatio, elapsed)
}

// Final prints the outcome
func (o LogDiagnostics) Final(converged bool, it int) {
	if converged {
		io.PfGreen("converged after %d iterations\n", it)
		return
	}
	io.PfRed("did not converge after %d iterations\n", it)
}
