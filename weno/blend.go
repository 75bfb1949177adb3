package weno

import (
	"github.com/oceanfv/gofv/utils"
)

const (
	// Epsilon keeps the alpha division away from floating-point blowup on
	// perfectly smooth data without biasing smooth-region weights off the
	// optimal gammas. Never an error path: regularization is structural.
	DefaultEpsilon  = 1.e-6
	DefaultExponent = 2
)

/*
	NonlinearWeights blends the optimal linear weights with the measured
	smoothness of each candidate,

		alpha_r = gamma_r / (epsilon + beta_r)^p,  omega_r = alpha_r / sum alpha

	The omegas sum to one. On smooth data all betas shrink together and the
	omegas recover the gammas; a candidate straddling a discontinuity carries
	a large beta and is suppressed.
*/
func NonlinearWeights(gamma, beta []float64, epsilon float64, exponent int) (omega []float64) {
	if len(gamma) != len(beta) {
		panic("gamma and beta must have one entry per candidate stencil")
	}
	var (
		sum float64
	)
	omega = make([]float64, len(gamma))
	for r := range gamma {
		omega[r] = gamma[r] / utils.POW(epsilon+beta[r], exponent)
		sum += omega[r]
	}
	for r := range omega {
		omega[r] /= sum
	}
	return
}
