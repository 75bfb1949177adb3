package solver

import (
	"github.com/oceanfv/gofv/grid"
)

/*
	Stencil operators shipped with the solver. Each returned Operator honors
	the callback contract: interior-only writes from the input stencil, then
	a halo refresh on the output. The interior sweep shards across np
	goroutines when np > 1; the halo refresh after the barrier is the only
	synchronization the PCG loop needs.
*/

// Laplacian returns the 5-point discrete Laplacian on g.
func Laplacian(g *grid.Grid, bc grid.BC, np int) Operator {
	var (
		rdx2 = 1. / (g.Dx * g.Dx)
		rdy2 = 1. / (g.Dy * g.Dy)
	)
	return func(out, in *grid.Field) {
		g.ForEachInteriorParallel(np, func(i, j int) {
			c := in.At(i, j)
			out.Set(i, j,
				(in.At(i+1, j)-2*c+in.At(i-1, j))*rdx2+
					(in.At(i, j+1)-2*c+in.At(i, j-1))*rdy2)
		})
		out.FillHaloRegions(bc)
	}
}

// Helmholtz returns (I - alpha lap), the implicit free-surface operator;
// symmetric positive definite for alpha > 0, so PCG applies directly.
func Helmholtz(g *grid.Grid, bc grid.BC, alpha float64, np int) Operator {
	var (
		rdx2 = 1. / (g.Dx * g.Dx)
		rdy2 = 1. / (g.Dy * g.Dy)
	)
	return func(out, in *grid.Field) {
		g.ForEachInteriorParallel(np, func(i, j int) {
			c := in.At(i, j)
			lap := (in.At(i+1, j)-2*c+in.At(i-1, j))*rdx2 +
				(in.At(i, j+1)-2*c+in.At(i, j-1))*rdy2
			out.Set(i, j, c-alpha*lap)
		})
		out.FillHaloRegions(bc)
	}
}

// DiagonalPreconditioner returns the Jacobi preconditioner z = r / d.
// d must be nonzero over the interior.
func DiagonalPreconditioner(d *grid.Field, bc grid.BC) Operator {
	return func(out, in *grid.Field) {
		d.G.ForEachInterior(func(i, j int) {
			out.Set(i, j, in.At(i, j)/d.At(i, j))
		})
		out.FillHaloRegions(bc)
	}
}
