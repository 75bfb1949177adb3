package weno

import (
	"math/big"
	"sort"
	"strings"
)

/*
	Expr is a sparse multivariate polynomial over exact rationals, just
	enough algebra to expand and compare smoothness indicator formulas
	symbolically. Terms map a canonical monomial key ("a*a*b" for a²b) to its
	coefficient; the empty key is the constant term.
*/
type Expr struct {
	terms map[string]*big.Rat
}

func Var(name string) Expr {
	return Expr{terms: map[string]*big.Rat{name: newRat(1, 1)}}
}

func Const(c *big.Rat) Expr {
	return Expr{terms: map[string]*big.Rat{"": new(big.Rat).Set(c)}}
}

func (e Expr) clone() (r Expr) {
	r = Expr{terms: make(map[string]*big.Rat, len(e.terms))}
	for k, v := range e.terms {
		r.terms[k] = new(big.Rat).Set(v)
	}
	return
}

func (e Expr) Add(o Expr) (r Expr) {
	r = e.clone()
	for k, v := range o.terms {
		if c, ok := r.terms[k]; ok {
			c.Add(c, v)
		} else {
			r.terms[k] = new(big.Rat).Set(v)
		}
	}
	return
}

func (e Expr) Sub(o Expr) (r Expr) {
	return e.Add(o.Scale(newRat(-1, 1)))
}

func (e Expr) Mul(o Expr) (r Expr) {
	r = Expr{terms: make(map[string]*big.Rat)}
	for ka, va := range e.terms {
		for kb, vb := range o.terms {
			k := mulMonomials(ka, kb)
			c := new(big.Rat).Mul(va, vb)
			if acc, ok := r.terms[k]; ok {
				acc.Add(acc, c)
			} else {
				r.terms[k] = c
			}
		}
	}
	return
}

func (e Expr) Square() Expr {
	return e.Mul(e)
}

func (e Expr) Scale(s *big.Rat) (r Expr) {
	r = Expr{terms: make(map[string]*big.Rat, len(e.terms))}
	for k, v := range e.terms {
		r.terms[k] = new(big.Rat).Mul(v, s)
	}
	return
}

// Equal compares expanded forms exactly, ignoring zero terms
func (e Expr) Equal(o Expr) bool {
	for k, v := range e.terms {
		w, ok := o.terms[k]
		if !ok {
			if v.Sign() != 0 {
				return false
			}
			continue
		}
		if v.Cmp(w) != 0 {
			return false
		}
	}
	for k, w := range o.terms {
		if _, ok := e.terms[k]; !ok && w.Sign() != 0 {
			return false
		}
	}
	return true
}

func (e Expr) IsZero() bool {
	for _, v := range e.terms {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

func (e Expr) String() string {
	keys := make([]string, 0, len(e.terms))
	for k, v := range e.terms {
		if v.Sign() != 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "0"
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		if k == "" {
			parts[i] = e.terms[k].RatString()
		} else {
			parts[i] = e.terms[k].RatString() + "*" + k
		}
	}
	return strings.Join(parts, " + ")
}

func mulMonomials(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	vars := append(strings.Split(a, "*"), strings.Split(b, "*")...)
	sort.Strings(vars)
	return strings.Join(vars, "*")
}
