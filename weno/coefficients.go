package weno

import (
	"fmt"
	"math/big"
)

/*
	Reconstruction coefficients for a k-point candidate stencil on a uniform
	grid, in Shu's convention: the stencil with shift r covers cells
	{i-r, ..., i-r+k-1} and reconstructs the point value at face i+1/2 from
	the k cell averages,

		u_{i+1/2} ~= sum_j c[j] * ubar_{i-r+j}

	The coefficients come from exact Lagrange interpolation of the primitive
	function through the k+1 stencil faces, differentiated and evaluated at
	the target face. On a uniform grid the derivation collapses to a closed
	combinatorial form (Shu 1998, eq 2.20), evaluated here over big.Rat so no
	round-off enters the coefficient algebra.

	r = -1 and r = k-1 are the fully one-sided stencils. ENOCoefficients is a
	pure function of (k, r): no hidden state, identical inputs give identical
	exact-rational outputs.
*/
func ENOCoefficients(k, r int) (c []*big.Rat, err error) {
	if k < 1 {
		err = fmt.Errorf("invalid stencil order %d, must be at least 1", k)
		return
	}
	if r < -1 || r > k-1 {
		err = fmt.Errorf("invalid stencil shift %d for order %d, must be in [-1,%d]", r, k, k-1)
		return
	}
	c = make([]*big.Rat, k)
	for j := 0; j < k; j++ {
		sum := new(big.Rat)
		for m := j + 1; m <= k; m++ {
			num := new(big.Rat)
			for l := 0; l <= k; l++ {
				if l == m {
					continue
				}
				prod := newRat(1, 1)
				for q := 0; q <= k; q++ {
					if q == m || q == l {
						continue
					}
					prod.Mul(prod, newRat(int64(r-q+1), 1))
				}
				num.Add(num, prod)
			}
			den := newRat(1, 1)
			for l := 0; l <= k; l++ {
				if l == m {
					continue
				}
				den.Mul(den, newRat(int64(m-l), 1))
			}
			sum.Add(sum, num.Quo(num, den))
		}
		c[j] = sum
	}
	return
}
