package closure

import (
	"math"

	"github.com/oceanfv/gofv/grid"
)

// Closure computes an eddy diffusivity field from the current state of a
// halo'd field and leaves kappa's halo filled, ready for stencil use.
type Closure interface {
	Diffusivity(kappa, phi *grid.Field, bc grid.BC)
}

// Constant is the trivial closure: uniform background diffusivity.
type Constant struct {
	Kappa float64
}

func (c Constant) Diffusivity(kappa, phi *grid.Field, bc grid.BC) {
	kappa.SetInterior(func(i, j int) float64 { return c.Kappa })
	kappa.FillHaloRegions(bc)
}

const SmagorinskyC = 0.2

// Smagorinsky scales diffusivity with the resolved gradient magnitude,
//
//	kappa = Background + (C Delta)^2 |grad phi|
//
// with Delta^2 = dx*dy the filter scale squared. Smooth regions keep the
// background value; sharp gradients get damped harder.
type Smagorinsky struct {
	C          float64 // dimensionless constant, SmagorinskyC if zero
	Background float64
	NP         int
}

func (s Smagorinsky) Diffusivity(kappa, phi *grid.Field, bc grid.BC) {
	var (
		g = phi.G
		c = s.C
	)
	if c == 0 {
		c = SmagorinskyC
	}
	delta2 := g.Dx * g.Dy
	g.ForEachInteriorParallel(s.NP, func(i, j int) {
		gx := (phi.At(i+1, j) - phi.At(i-1, j)) / (2 * g.Dx)
		gy := (phi.At(i, j+1) - phi.At(i, j-1)) / (2 * g.Dy)
		kappa.Set(i, j, s.Background+c*c*delta2*math.Sqrt(gx*gx+gy*gy))
	})
	kappa.FillHaloRegions(bc)
}

// DiffusiveTendency adds div(kappa grad phi) over the interior into dphidt,
// with kappa averaged to faces. phi and kappa must have current halos.
func DiffusiveTendency(dphidt, phi, kappa *grid.Field, np int) {
	var (
		g = phi.G
	)
	g.ForEachInteriorParallel(np, func(i, j int) {
		fE := 0.5 * (kappa.At(i, j) + kappa.At(i+1, j)) * (phi.At(i+1, j) - phi.At(i, j)) / g.Dx
		fW := 0.5 * (kappa.At(i-1, j) + kappa.At(i, j)) * (phi.At(i, j) - phi.At(i-1, j)) / g.Dx
		fN := 0.5 * (kappa.At(i, j) + kappa.At(i, j+1)) * (phi.At(i, j+1) - phi.At(i, j)) / g.Dy
		fS := 0.5 * (kappa.At(i, j-1) + kappa.At(i, j)) * (phi.At(i, j) - phi.At(i, j-1)) / g.Dy
		dphidt.Add(i, j, (fE-fW)/g.Dx+(fN-fS)/g.Dy)
	})
}
