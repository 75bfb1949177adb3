package weno

import (
	"fmt"
	"math/big"
)

/*
	Jiang-Shu smoothness indicator. For candidate (k, r) the reconstruction
	polynomial p(x) of degree k-1 matches the k cell averages; the indicator
	sums its squared derivatives over the home cell,

		beta = sum_{l=1}^{k-1} int_{-1/2}^{1/2} (d^l p / dx^l)^2 dx

	in cell-width units, so it is a quadratic form in the stencil values.
	SmoothnessForm derives the k x k form matrix exactly: the primitive of p
	is Lagrange-interpolated through the k+1 stencil faces, differentiated
	into the cell-average basis functions B_j, and the derivative products
	are integrated term by term over big.Rat.

	beta is non-negative for real inputs and vanishes exactly on constant
	data; for k=3 the forms expand to the published closed forms with the
	13/12 and 1/4 constants (see the package tests).
*/
func SmoothnessForm(k, r int) (Q [][]*big.Rat, err error) {
	if k < 1 {
		err = fmt.Errorf("invalid stencil order %d, must be at least 1", k)
		return
	}
	if r < -1 || r > k-1 {
		err = fmt.Errorf("invalid stencil shift %d for order %d, must be in [-1,%d]", r, k, k-1)
		return
	}
	// Stencil faces in cell-local coordinates: y_s = s - r - 1/2
	faces := make([]*big.Rat, k+1)
	for s := 0; s <= k; s++ {
		faces[s] = newRat(int64(2*(s-r)-1), 2)
	}
	// dLagrange[s] is L'_s for the face nodes
	dLagrange := make([]ratPoly, k+1)
	for s := 0; s <= k; s++ {
		num := polyConst(newRat(1, 1))
		den := newRat(1, 1)
		for t := 0; t <= k; t++ {
			if t == s {
				continue
			}
			num = num.mul(polyLinear(new(big.Rat).Neg(faces[t])))
			den.Mul(den, new(big.Rat).Sub(faces[s], faces[t]))
		}
		dLagrange[s] = num.scale(new(big.Rat).Inv(den)).deriv()
	}
	// The primitive at face s is the running sum of the first s averages, so
	// the basis multiplying average j is B_j = sum_{s>j} L'_s
	B := make([]ratPoly, k)
	for j := 0; j < k; j++ {
		B[j] = polyConst(new(big.Rat))
		for s := j + 1; s <= k; s++ {
			B[j] = B[j].add(dLagrange[s])
		}
	}
	Q = make([][]*big.Rat, k)
	for m := range Q {
		Q[m] = make([]*big.Rat, k)
		for n := range Q[m] {
			Q[m][n] = new(big.Rat)
		}
	}
	var (
		lo = newRat(-1, 2)
		hi = newRat(1, 2)
	)
	d := make([]ratPoly, k)
	copy(d, B)
	for l := 1; l <= k-1; l++ {
		for j := 0; j < k; j++ {
			d[j] = d[j].deriv()
		}
		for m := 0; m < k; m++ {
			for n := 0; n < k; n++ {
				Q[m][n].Add(Q[m][n], d[m].mul(d[n]).integrate(lo, hi))
			}
		}
	}
	return
}

// Smoothness applies a derived form to k stencil values through the generic
// operand algebra; Q[m][n] already includes both symmetric halves.
func Smoothness[T Operand[T]](Q [][]*big.Rat, phi []T) T {
	if len(phi) != len(Q) {
		panic(fmt.Errorf("stencil width %d does not match form order %d", len(phi), len(Q)))
	}
	acc := phi[0].Mul(phi[0]).Scale(Q[0][0])
	for m := range Q {
		for n := range Q[m] {
			if m == 0 && n == 0 {
				continue
			}
			acc = acc.Add(phi[m].Mul(phi[n]).Scale(Q[m][n]))
		}
	}
	return acc
}
