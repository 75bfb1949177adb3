package grid

import "fmt"

type BCType uint8

const (
	Periodic BCType = iota
	ZeroGradient
)

func (t BCType) String() string {
	switch t {
	case Periodic:
		return "periodic"
	case ZeroGradient:
		return "zero-gradient"
	}
	return fmt.Sprintf("BCType(%d)", uint8(t))
}

// BC selects the halo fill rule per direction
type BC struct {
	X, Y BCType
}

/*
	FillHaloRegions refreshes the ghost margin from the interior.

	The X sweep runs first over all rows including the Y halo rows, then the
	Y sweep runs over full rows, so the corner ghost cells end up consistent
	with applying both rules in sequence.
*/
func (f *Field) FillHaloRegions(bc BC) {
	var (
		g = f.G
		h = g.Halo
	)
	for j := -h; j < g.Ny+h; j++ {
		switch bc.X {
		case Periodic:
			for n := 1; n <= h; n++ {
				f.Set(-n, j, f.At(g.Nx-n, j))
				f.Set(g.Nx-1+n, j, f.At(n-1, j))
			}
		case ZeroGradient:
			for n := 1; n <= h; n++ {
				f.Set(-n, j, f.At(0, j))
				f.Set(g.Nx-1+n, j, f.At(g.Nx-1, j))
			}
		}
	}
	for i := -h; i < g.Nx+h; i++ {
		switch bc.Y {
		case Periodic:
			for n := 1; n <= h; n++ {
				f.Set(i, -n, f.At(i, g.Ny-n))
				f.Set(i, g.Ny-1+n, f.At(i, n-1))
			}
		case ZeroGradient:
			for n := 1; n <= h; n++ {
				f.Set(i, -n, f.At(i, 0))
				f.Set(i, g.Ny-1+n, f.At(i, g.Ny-1))
			}
		}
	}
}
