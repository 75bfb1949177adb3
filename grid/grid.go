package grid

import "fmt"

/*
	Structured rectilinear grid with a fixed halo (ghost cell) margin.

	Interior indices run [0, Nx) x [0, Ny). A Field additionally exposes the
	halo: any index in [-Halo, Nx+Halo) x [-Halo, Ny+Halo) is addressable.
	Neighbor-dependent stencils read halo values, so every mutation whose
	result feeds a stencil must be followed by FillHaloRegions.
*/
type Grid struct {
	Nx, Ny int     // Interior cell counts
	Dx, Dy float64 // Uniform cell spacing
	Halo   int     // Ghost margin width, must cover the widest stencil
}

func NewGrid(nx, ny, halo int, dx, dy float64) (g *Grid) {
	if nx < 1 || ny < 1 {
		panic(fmt.Errorf("invalid grid dimensions [%d,%d]", nx, ny))
	}
	if halo < 1 {
		panic(fmt.Errorf("halo width must be at least 1, got %d", halo))
	}
	if dx <= 0 || dy <= 0 {
		panic(fmt.Errorf("invalid grid spacing [%g,%g]", dx, dy))
	}
	g = &Grid{
		Nx:   nx,
		Ny:   ny,
		Dx:   dx,
		Dy:   dy,
		Halo: halo,
	}
	return
}

func (g *Grid) InteriorSize() int {
	return g.Nx * g.Ny
}

// ForEachInterior applies f over every interior index in sequence
func (g *Grid) ForEachInterior(f func(i, j int)) {
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			f(i, j)
		}
	}
}

type Field struct {
	G      *Grid
	data   []float64
	stride int // row length including both halo margins
}

func (g *Grid) NewField() (f *Field) {
	var (
		stride = g.Nx + 2*g.Halo
		rows   = g.Ny + 2*g.Halo
	)
	f = &Field{
		G:      g,
		data:   make([]float64, stride*rows),
		stride: stride,
	}
	return
}

func (f *Field) index(i, j int) int {
	return (j+f.G.Halo)*f.stride + (i + f.G.Halo)
}

func (f *Field) At(i, j int) float64 {
	return f.data[f.index(i, j)]
}

func (f *Field) Set(i, j int, val float64) {
	f.data[f.index(i, j)] = val
}

func (f *Field) Add(i, j int, val float64) {
	f.data[f.index(i, j)] += val
}

func (f *Field) Copy() (r *Field) {
	r = f.G.NewField()
	copy(r.data, f.data)
	return
}

// CopyInto overwrites r with f, halos included. Both must share a grid.
func (f *Field) CopyInto(r *Field) {
	if r.G != f.G {
		panic("fields are defined on different grids")
	}
	copy(r.data, f.data)
}

func (f *Field) Zero() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// SetInterior assigns val(i,j) over the interior only
func (f *Field) SetInterior(val func(i, j int) float64) {
	f.G.ForEachInterior(func(i, j int) {
		f.Set(i, j, val(i, j))
	})
}
