package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/oceanfv/gofv/grid"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title                 string  `yaml:"Title"`
	Nx                    int     `yaml:"Nx"`
	Ny                    int     `yaml:"Ny"`
	Dx                    float64 `yaml:"Dx"`
	Dy                    float64 `yaml:"Dy"`
	Depth                 float64 `yaml:"Depth"`
	Gravity               float64 `yaml:"Gravity"`
	CFL                   float64 `yaml:"CFL"`
	FinalTime             float64 `yaml:"FinalTime"`
	ReconstructionOrder   int     `yaml:"ReconstructionOrder"` // candidate stencil width k
	SolverTolerance       float64 `yaml:"SolverTolerance"`
	SolverMaxIterations   int     `yaml:"SolverMaxIterations"`
	SmagorinskyConstant   float64 `yaml:"SmagorinskyConstant"`
	BackgroundDiffusivity float64 `yaml:"BackgroundDiffusivity"`
	BCX                   string  `yaml:"BCX"` // "periodic" or "zero-gradient"
	BCY                   string  `yaml:"BCY"`
	Parallelism           int     `yaml:"Parallelism"`
}

func DefaultParameters() (ip *SimParameters) {
	ip = &SimParameters{
		Title:                 "Free Surface Test Case",
		Nx:                    64,
		Ny:                    64,
		Dx:                    1000,
		Dy:                    1000,
		Depth:                 100,
		Gravity:               9.81,
		CFL:                   0.5,
		FinalTime:             3600,
		ReconstructionOrder:   3,
		SolverTolerance:       1.e-10,
		SolverMaxIterations:   500,
		SmagorinskyConstant:   0.2,
		BackgroundDiffusivity: 1.e-2,
		BCX:                   "periodic",
		BCY:                   "periodic",
		Parallelism:           1,
	}
	return
}

func (ip *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *SimParameters) BoundaryConditions() (bc grid.BC, err error) {
	toBC := func(s string) (grid.BCType, error) {
		switch s {
		case "", "periodic":
			return grid.Periodic, nil
		case "zero-gradient":
			return grid.ZeroGradient, nil
		}
		return 0, fmt.Errorf("unknown boundary condition %q", s)
	}
	if bc.X, err = toBC(ip.BCX); err != nil {
		return
	}
	bc.Y, err = toBC(ip.BCY)
	return
}

func (ip *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("[%g x %g]\t= Spacing\n", ip.Dx, ip.Dy)
	fmt.Printf("%8.2f\t\t= Depth\n", ip.Depth)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.2f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= Reconstruction Order\n", ip.ReconstructionOrder)
	fmt.Printf("%8.1e\t\t= Solver Tolerance\n", ip.SolverTolerance)
	fmt.Printf("[%d]\t\t\t= Solver Max Iterations\n", ip.SolverMaxIterations)
	fmt.Printf("[%s, %s]\t= Boundary Conditions\n", ip.BCX, ip.BCY)
}
