package solver

import (
	"errors"
	"fmt"

	"github.com/oceanfv/gofv/grid"
)

/*
	Preconditioned conjugate gradient over halo-padded fields. The linear
	operator is an opaque callback: it must be symmetric positive
	(semi-)definite over the interior inner product, synchronous, and must
	leave the output field's halo filled before returning, because the next
	stencil application reads ghost cells. The solver fills the halo of every
	field it mutates itself (search direction, iterate) for the same reason.

	All solver state lives in one Solve call; nothing is shared across calls.
*/

// Operator applies a linear map to in and stores the result in out,
// refreshing out's halo before returning.
type Operator func(out, in *grid.Field)

type Config struct {
	Operator       Operator
	Preconditioner Operator // nil means identity
	BC             grid.BC  // halo rule for solver-mutated fields
	MaxIterations  int      // iteration cap, default 500
	Tolerance      float64  // convergence bound on the interior residual norm
}

type Stats struct {
	Iterations   int
	ResidualNorm float64
	Converged    bool
}

// ErrMaxIterations reports that the iteration cap was reached before the
// residual norm dropped below tolerance. Stats still carries the last
// residual; whether this is fatal is the caller's policy.
var ErrMaxIterations = errors.New("pcg: maximum iterations reached without convergence")

const DefaultMaxIterations = 500

// Solve finds x with A x = b, using x's incoming interior values as the
// initial guess and mutating x in place.
func Solve(x, b *grid.Field, cfg Config) (stats Stats, err error) {
	if cfg.Operator == nil {
		err = fmt.Errorf("pcg: no operator supplied")
		return
	}
	if cfg.Tolerance <= 0 {
		err = fmt.Errorf("pcg: tolerance must be positive, got %g", cfg.Tolerance)
		return
	}
	if x.G != b.G {
		err = fmt.Errorf("pcg: solution and right hand side live on different grids")
		return
	}
	var (
		g      = x.G
		maxit  = cfg.MaxIterations
		r      = g.NewField() // residual
		z      = g.NewField() // preconditioned residual
		p      = g.NewField() // search direction
		Ap     = g.NewField() // operator application
		precon = cfg.Preconditioner
	)
	if maxit <= 0 {
		maxit = DefaultMaxIterations
	}

	x.FillHaloRegions(cfg.BC)
	cfg.Operator(Ap, x)
	g.ForEachInterior(func(i, j int) {
		r.Set(i, j, b.At(i, j)-Ap.At(i, j))
	})
	r.FillHaloRegions(cfg.BC)

	stats.ResidualNorm = grid.InteriorNorm(r)
	if stats.ResidualNorm < cfg.Tolerance {
		stats.Converged = true
		return
	}

	applyPrecon(precon, z, r, cfg.BC)
	z.CopyInto(p)
	rz := grid.InteriorDot(r, z)

	for it := 1; it <= maxit; it++ {
		cfg.Operator(Ap, p)
		pAp := grid.InteriorDot(p, Ap)
		alpha := rz / pAp
		g.ForEachInterior(func(i, j int) {
			x.Add(i, j, alpha*p.At(i, j))
			r.Add(i, j, -alpha*Ap.At(i, j))
		})
		stats.Iterations = it
		stats.ResidualNorm = grid.InteriorNorm(r)
		// NaN or Inf residuals fail this comparison, so a poisoned operator
		// falls through to the iteration cap instead of looping forever.
		if stats.ResidualNorm < cfg.Tolerance {
			stats.Converged = true
			x.FillHaloRegions(cfg.BC)
			return
		}
		r.FillHaloRegions(cfg.BC)
		applyPrecon(precon, z, r, cfg.BC)
		rzNext := grid.InteriorDot(r, z)
		beta := rzNext / rz
		rz = rzNext
		g.ForEachInterior(func(i, j int) {
			p.Set(i, j, z.At(i, j)+beta*p.At(i, j))
		})
		p.FillHaloRegions(cfg.BC)
	}
	x.FillHaloRegions(cfg.BC)
	err = ErrMaxIterations
	return
}

func applyPrecon(precon Operator, z, r *grid.Field, bc grid.BC) {
	if precon == nil {
		r.CopyInto(z)
		z.FillHaloRegions(bc)
		return
	}
	precon(z, r)
}
