package advection

import (
	"fmt"

	"github.com/oceanfv/gofv/grid"
	"github.com/oceanfv/gofv/weno"
)

/*
	WENO advective flux evaluation over a halo-padded field. Face values are
	reconstructed from the upwind-biased sample window: positive face
	velocity takes the right-face reconstruction centered on the cell to the
	left of the face, negative takes the mirrored reconstruction centered on
	the cell to the right. Velocities are cell-centered and averaged to
	faces.
*/
type Scheme struct {
	RC *weno.Reconstruction
	NP int // parallel degree for tendency sweeps
}

func NewScheme(k, np int) (s *Scheme, err error) {
	rc, err := weno.NewReconstruction(k)
	if err != nil {
		return
	}
	s = &Scheme{
		RC: rc,
		NP: np,
	}
	return
}

// FaceValueX reconstructs phi at face (i+1/2, j) upwinded on vel
func (s *Scheme) FaceValueX(phi *grid.Field, i, j int, vel float64) float64 {
	var (
		k = s.RC.K
		w = s.RC.Width()
	)
	window := make([]float64, w)
	if vel >= 0 {
		for n := 0; n < w; n++ {
			window[n] = phi.At(i-k+1+n, j)
		}
		return s.RC.RightFace(window)
	}
	for n := 0; n < w; n++ {
		window[n] = phi.At(i+1-k+1+n, j)
	}
	return s.RC.LeftFace(window)
}

// FaceValueY reconstructs phi at face (i, j+1/2) upwinded on vel
func (s *Scheme) FaceValueY(phi *grid.Field, i, j int, vel float64) float64 {
	var (
		k = s.RC.K
		w = s.RC.Width()
	)
	window := make([]float64, w)
	if vel >= 0 {
		for n := 0; n < w; n++ {
			window[n] = phi.At(i, j-k+1+n)
		}
		return s.RC.RightFace(window)
	}
	for n := 0; n < w; n++ {
		window[n] = phi.At(i, j+1-k+1+n)
	}
	return s.RC.LeftFace(window)
}

// Tendency stores -div(u phi, v phi) over the interior into dphidt.
// phi, u and v must have current halos; dphidt's halo is left stale.
func (s *Scheme) Tendency(dphidt, phi, u, v *grid.Field) {
	var (
		g = phi.G
	)
	if g.Halo < s.RC.K {
		panic(fmt.Errorf("halo width %d cannot hold an order %d sample window", g.Halo, s.RC.K))
	}
	g.ForEachInteriorParallel(s.NP, func(i, j int) {
		uE := 0.5 * (u.At(i, j) + u.At(i+1, j))
		uW := 0.5 * (u.At(i-1, j) + u.At(i, j))
		vN := 0.5 * (v.At(i, j) + v.At(i, j+1))
		vS := 0.5 * (v.At(i, j-1) + v.At(i, j))
		fluxE := uE * s.FaceValueX(phi, i, j, uE)
		fluxW := uW * s.FaceValueX(phi, i-1, j, uW)
		fluxN := vN * s.FaceValueY(phi, i, j, vN)
		fluxS := vS * s.FaceValueY(phi, i, j-1, vS)
		dphidt.Set(i, j, -(fluxE-fluxW)/g.Dx-(fluxN-fluxS)/g.Dy)
	})
}
