package weno

import "math/big"

/*
	The smoothness formula is written once, against the minimal capability
	set {add, subtract, multiply, rational scale}, and instantiated twice:
	with Real for the runtime hot path and with Expr for the offline
	symbolic derivation and verification.
*/
type Operand[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Scale(*big.Rat) T
}

// Real is the numeric operand used at runtime
type Real float64

func (a Real) Add(b Real) Real { return a + b }

func (a Real) Sub(b Real) Real { return a - b }

func (a Real) Mul(b Real) Real { return a * b }

func (a Real) Scale(s *big.Rat) Real {
	f, _ := s.Float64()
	return a * Real(f)
}

func Reals(v []float64) (r []Real) {
	r = make([]Real, len(v))
	for i, x := range v {
		r[i] = Real(x)
	}
	return
}
