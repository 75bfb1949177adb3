package weno

import "math/big"

// Univariate polynomials over exact rationals, ascending powers. Scratch
// machinery for the coefficient and smoothness derivations, which run once
// per order and never on the hot path.
type ratPoly []*big.Rat

func newRat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func polyConst(c *big.Rat) ratPoly {
	return ratPoly{new(big.Rat).Set(c)}
}

// polyLinear returns (x + c)
func polyLinear(c *big.Rat) ratPoly {
	return ratPoly{new(big.Rat).Set(c), newRat(1, 1)}
}

func (p ratPoly) add(q ratPoly) (r ratPoly) {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r = make(ratPoly, n)
	for i := range r {
		r[i] = new(big.Rat)
		if i < len(p) {
			r[i].Add(r[i], p[i])
		}
		if i < len(q) {
			r[i].Add(r[i], q[i])
		}
	}
	return
}

func (p ratPoly) mul(q ratPoly) (r ratPoly) {
	if len(p) == 0 || len(q) == 0 {
		return ratPoly{}
	}
	r = make(ratPoly, len(p)+len(q)-1)
	for i := range r {
		r[i] = new(big.Rat)
	}
	for i, a := range p {
		for j, b := range q {
			term := new(big.Rat).Mul(a, b)
			r[i+j].Add(r[i+j], term)
		}
	}
	return
}

func (p ratPoly) scale(s *big.Rat) (r ratPoly) {
	r = make(ratPoly, len(p))
	for i := range r {
		r[i] = new(big.Rat).Mul(p[i], s)
	}
	return
}

func (p ratPoly) deriv() (r ratPoly) {
	if len(p) <= 1 {
		return ratPoly{new(big.Rat)}
	}
	r = make(ratPoly, len(p)-1)
	for i := 1; i < len(p); i++ {
		r[i-1] = new(big.Rat).Mul(p[i], newRat(int64(i), 1))
	}
	return
}

// integrate evaluates the definite integral of p over [a, b] exactly
func (p ratPoly) integrate(a, b *big.Rat) (v *big.Rat) {
	v = new(big.Rat)
	for i, c := range p {
		anti := new(big.Rat).Quo(c, newRat(int64(i+1), 1))
		bp := ratPow(b, i+1)
		ap := ratPow(a, i+1)
		term := new(big.Rat).Mul(anti, bp.Sub(bp, ap))
		v.Add(v, term)
	}
	return
}

func ratPow(x *big.Rat, n int) (y *big.Rat) {
	y = newRat(1, 1)
	for i := 0; i < n; i++ {
		y.Mul(y, x)
	}
	return
}
