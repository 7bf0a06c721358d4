package bivariate

import (
	"math/big"

	"github.com/skal65535/lolremez/utils/bignum"
)

// SinAcosRatio returns the target sin((1-u)*acos(v))/sqrt(1-v^2) with
// u=(x+1)/2 and v=(y+1)/2, remapping the open square (-1,1)^2 onto the
// function's natural domain. The denominator vanishes at v=1, which the
// grid contraction keeps out of reach.
func SinAcosRatio(prec uint) TargetFunction {
	return TargetFunction{
		Expr: "sin((1-x)/2*acos((1+y)/2))/sqrt(1-((y+1)/2)**2)",
		Eval: func(x, y *big.Float) *big.Float {

			one := bignum.NewFloat(1, prec)
			two := bignum.NewFloat(2, prec)

			u := new(big.Float).Add(x, one)
			u.Quo(u, two)
			v := new(big.Float).Add(y, one)
			v.Quo(v, two)

			// sin((1-u)*acos(v))
			num := new(big.Float).Sub(one, u)
			num.Mul(num, bignum.Acos(v))
			num = bignum.Sin(num)

			// sqrt(1-v^2)
			den := new(big.Float).Mul(v, v)
			den.Sub(one, den)
			den = bignum.Sqrt(den)

			return num.Quo(num, den)
		},
	}
}

// ExpSinCos returns the target exp(sin(3x)+cos(y-1/4)).
func ExpSinCos(prec uint) TargetFunction {
	return TargetFunction{
		Expr: "exp(sin(3*x)+cos(y-0.25))",
		Eval: func(x, y *big.Float) *big.Float {

			t := bignum.NewFloat(3, prec)
			t.Mul(t, x)

			c := new(big.Float).Sub(y, bignum.NewFloat(0.25, prec))

			t = bignum.Sin(t)
			t.Add(t, bignum.Cos(c))

			return bignum.Exp(t)
		},
	}
}

// Constant returns the constant target c, given as a decimal literal.
// Constant panics if the literal does not parse.
func Constant(c string, prec uint) TargetFunction {

	val, ok := new(big.Float).SetPrec(prec).SetString(c)
	if !ok {
		panic("cannot Constant: invalid decimal literal " + c)
	}

	return TargetFunction{
		Expr: c,
		Eval: func(x, y *big.Float) *big.Float {
			return new(big.Float).Set(val)
		},
	}
}
