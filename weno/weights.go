package weno

import (
	"fmt"
	"math/big"
)

/*
	OptimalWeights returns the linear weights gamma such that the
	gamma-weighted combination of the k candidate reconstructions equals the
	single (2k-1)-point upwind-biased reconstruction:

		sum_r gamma[r] * c^(r), zero-padded to width 2k-1, == C

	where C are the coefficients of the wide stencil {i-k+1, ..., i+k-1} and
	candidate r covers positions (k-1-r)..(2k-2-r) within it. The weights are
	a property of the stencil geometry only, independent of the data.

	The consistency system is overdetermined (2k-1 equations, k unknowns) but
	consistent; the leftmost k positions form a triangular system solved by
	forward substitution in exact arithmetic, and the remaining positions are
	verified to hold identically.
*/
func OptimalWeights(k int) (gamma []*big.Rat, err error) {
	if k < 1 {
		err = fmt.Errorf("invalid stencil order %d, must be at least 1", k)
		return
	}
	var (
		full []*big.Rat
		cand = make([][]*big.Rat, k)
	)
	if full, err = ENOCoefficients(2*k-1, k-1); err != nil {
		return
	}
	for r := 0; r < k; r++ {
		if cand[r], err = ENOCoefficients(k, r); err != nil {
			return
		}
	}
	gamma = make([]*big.Rat, k)
	for m := 0; m < k; m++ {
		// Position m introduces candidate r = k-1-m through its leading
		// coefficient; every other contributor at m is already known.
		r := k - 1 - m
		acc := new(big.Rat).Set(full[m])
		for rr := r + 1; rr < k; rr++ {
			j := m - (k - 1 - rr)
			if j >= 0 && j < k {
				acc.Sub(acc, new(big.Rat).Mul(gamma[rr], cand[rr][j]))
			}
		}
		if cand[r][0].Sign() == 0 {
			err = fmt.Errorf("degenerate leading coefficient for candidate %d of order %d", r, k)
			return
		}
		gamma[r] = acc.Quo(acc, cand[r][0])
	}
	for m := k; m < 2*k-1; m++ {
		acc := new(big.Rat)
		for r := 0; r < k; r++ {
			j := m - (k - 1 - r)
			if j >= 0 && j < k {
				acc.Add(acc, new(big.Rat).Mul(gamma[r], cand[r][j]))
			}
		}
		if acc.Cmp(full[m]) != 0 {
			err = fmt.Errorf("inconsistent weight system at position %d for order %d", m, k)
			return
		}
	}
	return
}
