package weno

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonlinearWeights(t *testing.T) {
	gamma := []float64{3. / 10., 3. / 5., 1. / 10.}
	// Weights always sum to one
	{
		omega := NonlinearWeights(gamma, []float64{0.3, 1.7, 0.01}, DefaultEpsilon, DefaultExponent)
		var sum float64
		for _, w := range omega {
			sum += w
		}
		assert.InDelta(t, 1., sum, 1.e-14)
	}
	// Smooth data (all betas tiny) recovers the optimal linear weights
	{
		omega := NonlinearWeights(gamma, []float64{1.e-12, 1.e-12, 1.e-12}, DefaultEpsilon, DefaultExponent)
		for r := range gamma {
			assert.InDelta(t, gamma[r], omega[r], 1.e-5)
		}
	}
	// A candidate with a dominant beta is suppressed
	{
		omega := NonlinearWeights(gamma, []float64{10, 0, 0}, DefaultEpsilon, DefaultExponent)
		assert.True(t, omega[0] < 1.e-8)
		assert.True(t, omega[1] > 0.8)
	}
	assert.Panics(t, func() { NonlinearWeights(gamma, []float64{1, 2}, DefaultEpsilon, DefaultExponent) })
}

func TestReconstruction(t *testing.T) {
	rc, err := NewReconstruction(3)
	assert.NoError(t, err)
	assert.Equal(t, 5, rc.Width())
	// Exact on cell averages of quadratics: every candidate reproduces
	// polynomials below the stencil order, so the blend does too.
	// Averages of x^2 over unit cells centered at i are i^2 + 1/12.
	{
		phi := make([]float64, 5)
		for n := 0; n < 5; n++ {
			x := float64(n - 2)
			phi[n] = x*x + 1./12.
		}
		assert.InDelta(t, 0.25, rc.RightFace(phi), 1.e-12) // (1/2)^2
		assert.InDelta(t, 0.25, rc.LeftFace(phi), 1.e-12)  // (-1/2)^2
	}
	// Linear data: face values are the linear interpolants
	{
		phi := []float64{-2, -1, 0, 1, 2}
		assert.InDelta(t, 0.5, rc.RightFace(phi), 1.e-12)
		assert.InDelta(t, -0.5, rc.LeftFace(phi), 1.e-12)
	}
	// A step just downwind must not leak into the upwind face value
	{
		phi := []float64{0, 0, 0, 1, 1}
		face := rc.RightFace(phi)
		assert.True(t, math.Abs(face) < 0.05, "face value %g polluted by the step", face)
	}
	// Mirror symmetry between the two faces
	{
		phi := []float64{0.1, 0.9, 0.4, 0.7, 0.2}
		rev := []float64{0.2, 0.7, 0.4, 0.9, 0.1}
		assert.InDelta(t, rc.RightFace(phi), rc.LeftFace(rev), 1.e-15)
	}
	// No hidden state: repeated evaluation is bit-identical
	{
		phi := []float64{1, 4, 2, 8, 5}
		assert.Equal(t, rc.RightFace(phi), rc.RightFace(phi))
		rc2, err := NewReconstruction(3)
		assert.NoError(t, err)
		assert.Equal(t, rc.RightFace(phi), rc2.RightFace(phi))
	}
	// Window width is enforced
	assert.Panics(t, func() { rc.RightFace([]float64{1, 2, 3}) })
	_, err = NewReconstruction(0)
	assert.Error(t, err)
}

func TestReconstructionConvergence(t *testing.T) {
	// Smooth sine data: the k=3 blend approaches the face value as the grid
	// refines, and the coarse-grid error is already small
	for _, n := range []int{16, 32} {
		rc, err := NewReconstruction(3)
		assert.NoError(t, err)
		h := 1. / float64(n)
		// Cell averages of sin(2 pi x) over cell centered at x0:
		// (cos(2 pi (x0-h/2)) - cos(2 pi (x0+h/2))) / (2 pi h)
		avg := func(x0 float64) float64 {
			return (math.Cos(2*math.Pi*(x0-h/2)) - math.Cos(2*math.Pi*(x0+h/2))) / (2 * math.Pi * h)
		}
		var maxErr float64
		for i := 0; i < n; i++ {
			x0 := (float64(i) + 0.5) * h
			phi := make([]float64, 5)
			for m := 0; m < 5; m++ {
				phi[m] = avg(x0 + float64(m-2)*h)
			}
			exact := math.Sin(2 * math.Pi * (x0 + h/2))
			if e := math.Abs(rc.RightFace(phi) - exact); e > maxErr {
				maxErr = e
			}
		}
		assert.True(t, maxErr < 1.e-3/float64(n/16), "n=%d maxErr=%g", n, maxErr)
	}
}
