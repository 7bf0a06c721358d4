package bivariate

import (
	"math/big"
	"testing"

	"github.com/skal65535/lolremez/utils/bignum"
	"github.com/stretchr/testify/require"
)

func TestChebyshevGrid(t *testing.T) {

	prec := uint(96)

	s, ok := new(big.Float).SetPrec(prec).SetString(DefaultContraction)
	require.True(t, ok)

	n := 4
	nodes := chebyshevGrid(n, s, prec)
	require.Len(t, nodes, n+1)

	one := bignum.NewFloat(1, prec)
	tol := new(big.Float).SetMantExp(bignum.NewFloat(1, prec), -int(prec)+16)

	t.Run("OpenDomain", func(t *testing.T) {
		abs := new(big.Float)
		for _, c := range nodes {
			abs.Abs(c)
			require.Equal(t, -1, abs.Cmp(one))
		}
	})

	t.Run("Increasing", func(t *testing.T) {
		for i := 1; i < len(nodes); i++ {
			require.Equal(t, -1, nodes[i-1].Cmp(nodes[i]))
		}
	})

	t.Run("Endpoints", func(t *testing.T) {
		// cos(0) is exact, so c_0 = -s exactly
		require.Equal(t, 0, nodes[0].Cmp(new(big.Float).Neg(s)))

		diff := new(big.Float).Sub(nodes[n], s)
		diff.Abs(diff)
		require.Equal(t, -1, diff.Cmp(tol))
	})

	t.Run("Symmetry", func(t *testing.T) {
		diff := new(big.Float)
		for i := range nodes {
			diff.Add(nodes[i], nodes[n-i])
			diff.Abs(diff)
			require.Equal(t, -1, diff.Cmp(tol))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again := chebyshevGrid(n, s, prec)
		for i := range nodes {
			require.Equal(t, 0, nodes[i].Cmp(again[i]))
		}
	})
}
