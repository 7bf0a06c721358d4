package bivariate

import (
	"math/big"

	"github.com/skal65535/lolremez/utils/bignum"
)

// chebyshevGrid returns the n+1 candidate coordinates c_i = -cos(pi*i/n)*s
// for i in 0..n, in increasing order. This is the Chebyshev extremum
// distribution contracted by s to stay strictly inside (-1, 1); the same
// sequence serves both axes.
func chebyshevGrid(n int, s *big.Float, prec uint) (nodes []*big.Float) {

	nodes = make([]*big.Float, n+1)

	piOverN := bignum.Pi(prec)
	piOverN.Quo(piOverN, new(big.Float).SetInt64(int64(n)))

	for i := range nodes {
		x := bignum.NewFloat(i, prec)
		x.Mul(x, piOverN)
		x = bignum.Cos(x)
		x.Neg(x)
		x.Mul(x, s)
		nodes[i] = x
	}

	return
}
