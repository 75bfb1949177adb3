package FreeSurface2D

import (
	"fmt"
	"math"
	"time"

	"github.com/oceanfv/gofv/advection"
	"github.com/oceanfv/gofv/closure"
	"github.com/oceanfv/gofv/grid"
	"github.com/oceanfv/gofv/solver"
)

/*
	Depth-averaged free-surface hydrostatic model over a structured grid.
	Each step advances momentum explicitly (WENO advection plus eddy
	diffusion), then solves the implicit free-surface Helmholtz system

		(I - g H dt^2 lap) eta' = eta - dt H div(u*, v*)

	with the preconditioned conjugate gradient solver, and corrects the
	velocities with the new surface gradient. The time step is fixed by the
	CFL number against the gravity wave speed sqrt(gH).
*/
type Simulation struct {
	// Input parameters
	CFL, FinalTime float64
	Gravity, Depth float64
	G              *grid.Grid
	BC             grid.BC
	// State
	U, V, Eta *grid.Field
	Kappa     *grid.Field
	Time      float64
	StepCount int
	// Numerics
	Adv         *advection.Scheme
	Turb        closure.Closure
	SolverTol   float64
	SolverMaxIt int
	NP          int

	dt        float64
	helmholtz solver.Operator
	dudt      *grid.Field
	dvdt      *grid.Field
	ustar     *grid.Field
	vstar     *grid.Field
	rhs       *grid.Field
	etaNext   *grid.Field
}

func NewSimulation(nx, ny int, dx, dy, depth, gravity, CFL, FinalTime float64,
	order int, turb closure.Closure, bc grid.BC, tol float64, maxit, np int) (sim *Simulation) {
	var (
		g = grid.NewGrid(nx, ny, order, dx, dy)
	)
	adv, err := advection.NewScheme(order, np)
	if err != nil {
		panic(err)
	}
	sim = &Simulation{
		CFL:         CFL,
		FinalTime:   FinalTime,
		Gravity:     gravity,
		Depth:       depth,
		G:           g,
		BC:          bc,
		U:           g.NewField(),
		V:           g.NewField(),
		Eta:         g.NewField(),
		Kappa:       g.NewField(),
		Adv:         adv,
		Turb:        turb,
		SolverTol:   tol,
		SolverMaxIt: maxit,
		NP:          np,
		dudt:        g.NewField(),
		dvdt:        g.NewField(),
		ustar:       g.NewField(),
		vstar:       g.NewField(),
		rhs:         g.NewField(),
		etaNext:     g.NewField(),
	}
	sim.dt = CFL * math.Min(dx, dy) / math.Sqrt(gravity*depth)
	sim.helmholtz = solver.Helmholtz(g, bc, gravity*depth*sim.dt*sim.dt, np)
	return
}

// SetInitialState loads the surface elevation and velocities and fills halos
func (sim *Simulation) SetInitialState(eta, u, v func(x, y float64) float64) {
	var (
		g = sim.G
	)
	at := func(f func(x, y float64) float64, i, j int) float64 {
		return f((float64(i)+0.5)*g.Dx, (float64(j)+0.5)*g.Dy)
	}
	g.ForEachInterior(func(i, j int) {
		sim.Eta.Set(i, j, at(eta, i, j))
		sim.U.Set(i, j, at(u, i, j))
		sim.V.Set(i, j, at(v, i, j))
	})
	sim.Eta.FillHaloRegions(sim.BC)
	sim.U.FillHaloRegions(sim.BC)
	sim.V.FillHaloRegions(sim.BC)
}

func (sim *Simulation) Dt() float64 {
	return sim.dt
}

// Step advances one time level. A solver that hits its iteration cap is
// reported through the returned stats and error; the state still advances
// with the best available surface, and the caller decides whether to abort.
func (sim *Simulation) Step() (stats solver.Stats, err error) {
	var (
		g  = sim.G
		dt = sim.dt
	)
	// Explicit momentum tendencies
	sim.Turb.Diffusivity(sim.Kappa, sim.U, sim.BC)
	sim.Adv.Tendency(sim.dudt, sim.U, sim.U, sim.V)
	closure.DiffusiveTendency(sim.dudt, sim.U, sim.Kappa, sim.NP)
	sim.Adv.Tendency(sim.dvdt, sim.V, sim.U, sim.V)
	closure.DiffusiveTendency(sim.dvdt, sim.V, sim.Kappa, sim.NP)
	g.ForEachInteriorParallel(sim.NP, func(i, j int) {
		sim.ustar.Set(i, j, sim.U.At(i, j)+dt*sim.dudt.At(i, j))
		sim.vstar.Set(i, j, sim.V.At(i, j)+dt*sim.dvdt.At(i, j))
	})
	sim.ustar.FillHaloRegions(sim.BC)
	sim.vstar.FillHaloRegions(sim.BC)

	// Free-surface right hand side from the provisional divergence
	g.ForEachInteriorParallel(sim.NP, func(i, j int) {
		div := (sim.ustar.At(i+1, j)-sim.ustar.At(i-1, j))/(2*g.Dx) +
			(sim.vstar.At(i, j+1)-sim.vstar.At(i, j-1))/(2*g.Dy)
		sim.rhs.Set(i, j, sim.Eta.At(i, j)-dt*sim.Depth*div)
	})

	// Implicit surface solve, warm-started from the current surface
	sim.Eta.CopyInto(sim.etaNext)
	stats, err = solver.Solve(sim.etaNext, sim.rhs, solver.Config{
		Operator:      sim.helmholtz,
		BC:            sim.BC,
		MaxIterations: sim.SolverMaxIt,
		Tolerance:     sim.SolverTol,
	})

	// Correct velocities with the new surface gradient
	g.ForEachInteriorParallel(sim.NP, func(i, j int) {
		detadx := (sim.etaNext.At(i+1, j) - sim.etaNext.At(i-1, j)) / (2 * g.Dx)
		detady := (sim.etaNext.At(i, j+1) - sim.etaNext.At(i, j-1)) / (2 * g.Dy)
		sim.U.Set(i, j, sim.ustar.At(i, j)-sim.Gravity*dt*detadx)
		sim.V.Set(i, j, sim.vstar.At(i, j)-sim.Gravity*dt*detady)
	})
	sim.U.FillHaloRegions(sim.BC)
	sim.V.FillHaloRegions(sim.BC)
	sim.etaNext.CopyInto(sim.Eta)

	sim.Time += dt
	sim.StepCount++
	return
}

func (sim *Simulation) Run(printInterval int) {
	fmt.Printf("Free Surface Hydrostatic Model in 2 Dimensions\n")
	fmt.Printf("Grid %dx%d, dx=%g dy=%g, depth=%g, gravity=%g\n",
		sim.G.Nx, sim.G.Ny, sim.G.Dx, sim.G.Dy, sim.Depth, sim.Gravity)
	fmt.Printf("CFL = %8.4f, dt = %8.6f, WENO order k = %d, %d goroutines\n\n",
		sim.CFL, sim.dt, sim.Adv.RC.K, sim.NP)
	var (
		elapsed time.Duration
	)
	for sim.Time < sim.FinalTime {
		start := time.Now()
		stats, err := sim.Step()
		elapsed += time.Now().Sub(start)
		if err != nil {
			fmt.Printf("step %6d: surface solve stopped at %d iterations, residual %8.3e\n",
				sim.StepCount, stats.Iterations, stats.ResidualNorm)
		}
		if printInterval > 0 && (sim.StepCount%printInterval == 0 || sim.StepCount == 1) {
			fmt.Printf("step %6d: time %8.4f, max|eta| %8.5f, max|u| %8.5f, pcg %3d iters\n",
				sim.StepCount, sim.Time, grid.InteriorMaxAbs(sim.Eta),
				grid.InteriorMaxAbs(sim.U), stats.Iterations)
		}
	}
	fmt.Printf("\n%d steps in %s, %s per step\n", sim.StepCount, elapsed,
		elapsed/time.Duration(max(sim.StepCount, 1)))
}
