package weno

import "fmt"

/*
	Reconstruction is the runtime face-value engine for one order k. The
	constructor runs the exact-rational derivations once and caches float64
	tables; evaluation is pure floating point with no state across calls, so
	one Reconstruction may be shared by concurrent grid sweeps.
*/
type Reconstruction struct {
	K        int
	Coeffs   [][]float64   // Candidate coefficients, Coeffs[r][j], r = 0..K-1
	Gamma    []float64     // Optimal linear weights
	Forms    [][][]float64 // Smoothness quadratic forms per candidate
	Epsilon  float64
	Exponent int
}

func NewReconstruction(k int) (rc *Reconstruction, err error) {
	if k < 1 {
		err = fmt.Errorf("invalid reconstruction order %d, must be at least 1", k)
		return
	}
	rc = &Reconstruction{
		K:        k,
		Coeffs:   make([][]float64, k),
		Gamma:    make([]float64, k),
		Forms:    make([][][]float64, k),
		Epsilon:  DefaultEpsilon,
		Exponent: DefaultExponent,
	}
	gamma, err := OptimalWeights(k)
	if err != nil {
		return nil, err
	}
	for r := 0; r < k; r++ {
		rc.Gamma[r], _ = gamma[r].Float64()
		c, err := ENOCoefficients(k, r)
		if err != nil {
			return nil, err
		}
		rc.Coeffs[r] = make([]float64, k)
		for j := range c {
			rc.Coeffs[r][j], _ = c[j].Float64()
		}
		Q, err := SmoothnessForm(k, r)
		if err != nil {
			return nil, err
		}
		rc.Forms[r] = make([][]float64, k)
		for m := range Q {
			rc.Forms[r][m] = make([]float64, k)
			for n := range Q[m] {
				rc.Forms[r][m][n], _ = Q[m][n].Float64()
			}
		}
	}
	return
}

// Width is the number of samples a reconstruction consumes: cells
// i-k+1 .. i+k-1 around the home cell i.
func (rc *Reconstruction) Width() int {
	return 2*rc.K - 1
}

// RightFace reconstructs the value at face i+1/2 from the 2k-1 samples
// phi[0]=u_{i-k+1} .. phi[2k-2]=u_{i+k-1}. This is the upwind-biased face
// value for flow in the +x direction.
func (rc *Reconstruction) RightFace(phi []float64) float64 {
	return rc.face(phi, false)
}

// LeftFace reconstructs the value at face i-1/2 seen from cell i, the
// upwind-biased value for flow in the -x direction; by symmetry it is the
// RightFace of the mirrored sample window.
func (rc *Reconstruction) LeftFace(phi []float64) float64 {
	return rc.face(phi, true)
}

func (rc *Reconstruction) face(phi []float64, mirror bool) float64 {
	var (
		k = rc.K
		w = rc.Width()
	)
	if len(phi) != w {
		panic(fmt.Errorf("sample window has %d entries, order %d needs %d", len(phi), k, w))
	}
	at := func(n int) float64 {
		if mirror {
			return phi[w-1-n]
		}
		return phi[n]
	}
	var (
		value = make([]float64, k)
		beta  = make([]float64, k)
	)
	for r := 0; r < k; r++ {
		base := k - 1 - r
		for j := 0; j < k; j++ {
			value[r] += rc.Coeffs[r][j] * at(base+j)
		}
		Q := rc.Forms[r]
		for m := 0; m < k; m++ {
			pm := at(base + m)
			for n := 0; n < k; n++ {
				beta[r] += Q[m][n] * pm * at(base+n)
			}
		}
	}
	omega := NonlinearWeights(rc.Gamma, beta, rc.Epsilon, rc.Exponent)
	var face float64
	for r := 0; r < k; r++ {
		face += omega[r] * value[r]
	}
	return face
}
