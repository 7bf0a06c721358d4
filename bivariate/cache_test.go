package bivariate

import (
	"math/big"
	"sync"
	"testing"

	"github.com/skal65535/lolremez/utils/bignum"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {

	prec := uint(96)

	x := bignum.NewFloat(0.25, prec)
	y := bignum.NewFloat(0.5, prec)

	t.Run("AtMostOnce", func(t *testing.T) {

		var evals int
		c := NewCache(func(x, y *big.Float) *big.Float {
			evals++
			return new(big.Float).Add(x, y)
		})

		v1 := c.Eval(x, y)
		v2 := c.Eval(x, y)

		require.Equal(t, 1, evals)
		require.Same(t, v1, v2)
		require.Equal(t, 0, v1.Cmp(v2))
	})

	t.Run("CoordinateOrderMatters", func(t *testing.T) {

		var evals int
		c := NewCache(func(x, y *big.Float) *big.Float {
			evals++
			return new(big.Float).Sub(x, y)
		})

		c.Eval(x, y)
		c.Eval(y, x)

		require.Equal(t, 2, evals)
		require.Equal(t, 2, c.Evaluations())
		require.Len(t, c.Keys(), 2)
	})

	t.Run("Concurrent", func(t *testing.T) {

		// evals is only mutated inside the callback, which the cache
		// runs under its lock.
		var evals int
		c := NewCache(func(x, y *big.Float) *big.Float {
			evals++
			return new(big.Float).Mul(x, y)
		})

		var wg sync.WaitGroup
		wg.Add(8)
		for i := 0; i < 8; i++ {
			go func() {
				defer wg.Done()
				c.Eval(x, y)
			}()
		}
		wg.Wait()

		require.Equal(t, 1, evals)
		require.Equal(t, 1, c.Evaluations())
	})
}
