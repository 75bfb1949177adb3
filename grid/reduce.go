package grid

import "math"

/*
	Global reductions run over interior points only. Halo cells never
	participate in convergence norms or inner products: with periodic
	boundaries they would double-count interior values, and with open
	boundaries they hold extrapolated data.
*/

func InteriorDot(a, b *Field) (dot float64) {
	if a.G != b.G {
		panic("fields are defined on different grids")
	}
	var (
		g = a.G
	)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			dot += a.At(i, j) * b.At(i, j)
		}
	}
	return
}

func InteriorNorm(a *Field) float64 {
	return math.Sqrt(InteriorDot(a, a))
}

func InteriorMaxAbs(a *Field) (m float64) {
	var (
		g = a.G
	)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if v := math.Abs(a.At(i, j)); v > m {
				m = v
			}
		}
	}
	return
}

func InteriorMean(a *Field) (mean float64) {
	var (
		g = a.G
	)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			mean += a.At(i, j)
		}
	}
	mean /= float64(g.InteriorSize())
	return
}
