package weno

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratTable(pairs ...[2]int64) (c []*big.Rat) {
	c = make([]*big.Rat, len(pairs))
	for i, p := range pairs {
		c[i] = big.NewRat(p[0], p[1])
	}
	return
}

func assertRatsEqual(t *testing.T, want, got []*big.Rat) {
	t.Helper()
	assert.Equal(t, len(want), len(got))
	for i := range want {
		assert.Zero(t, want[i].Cmp(got[i]),
			"entry %d: want %s, got %s", i, want[i].RatString(), got[i].RatString())
	}
}

func TestENOCoefficients(t *testing.T) {
	// Published reference values, k=2
	{
		c, err := ENOCoefficients(2, -1)
		assert.NoError(t, err)
		assertRatsEqual(t, ratTable([2]int64{3, 2}, [2]int64{-1, 2}), c)
		c, err = ENOCoefficients(2, 0)
		assert.NoError(t, err)
		assertRatsEqual(t, ratTable([2]int64{1, 2}, [2]int64{1, 2}), c)
		c, err = ENOCoefficients(2, 1)
		assert.NoError(t, err)
		assertRatsEqual(t, ratTable([2]int64{-1, 2}, [2]int64{3, 2}), c)
	}
	// Published reference values, k=3 (full table, four shifts)
	{
		want := [][]*big.Rat{
			ratTable([2]int64{11, 6}, [2]int64{-7, 6}, [2]int64{1, 3}),
			ratTable([2]int64{1, 3}, [2]int64{5, 6}, [2]int64{-1, 6}),
			ratTable([2]int64{-1, 6}, [2]int64{5, 6}, [2]int64{1, 3}),
			ratTable([2]int64{1, 3}, [2]int64{-7, 6}, [2]int64{11, 6}),
		}
		for r := -1; r <= 2; r++ {
			c, err := ENOCoefficients(3, r)
			assert.NoError(t, err)
			assertRatsEqual(t, want[r+1], c)
		}
	}
	// Coefficients sum exactly to one: interpolation consistency
	{
		one := big.NewRat(1, 1)
		for k := 1; k <= 5; k++ {
			for r := -1; r <= k-1; r++ {
				c, err := ENOCoefficients(k, r)
				assert.NoError(t, err)
				sum := new(big.Rat)
				for _, v := range c {
					sum.Add(sum, v)
				}
				assert.Zero(t, one.Cmp(sum), "k=%d r=%d sums to %s", k, r, sum.RatString())
			}
		}
	}
	// Fully upwind and fully downwind stencils are exact mirrors
	{
		for k := 1; k <= 5; k++ {
			up, err := ENOCoefficients(k, -1)
			assert.NoError(t, err)
			down, err := ENOCoefficients(k, k-1)
			assert.NoError(t, err)
			for j := 0; j < k; j++ {
				assert.Zero(t, up[j].Cmp(down[k-1-j]))
			}
		}
	}
	// Pure function: identical inputs give identical exact outputs
	{
		a, err := ENOCoefficients(4, 1)
		assert.NoError(t, err)
		b, err := ENOCoefficients(4, 1)
		assert.NoError(t, err)
		assertRatsEqual(t, a, b)
	}
	// Out-of-range shifts and orders are caller bugs
	{
		_, err := ENOCoefficients(3, 3)
		assert.Error(t, err)
		_, err = ENOCoefficients(3, -2)
		assert.Error(t, err)
		_, err = ENOCoefficients(0, 0)
		assert.Error(t, err)
	}
}
