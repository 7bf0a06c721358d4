// Package bignum provides the arbitrary precision arithmetic used by the
// bivariate solver: constructors, constants and the elementary functions
// needed by the candidate grid and the predefined target functions.
package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Cos is an iterative arbitrary precision computation of Cos(x)
// Iterative process with an error of ~10^{−0.60206*k} = (1/4)^k after k iterations.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return
}

// Sin returns sin(x), computed as Cos(x - pi/2).
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, new(big.Float).SetInt64(2))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Acos is an iterative arbitrary precision computation of Acos(x) for x in [-1, 1].
// A float64 seed is refined with Newton iterations on cos(t) - x, roughly doubling
// the number of correct bits per pass. Acos panics if |x| > 1.
func Acos(x *big.Float) (acosx *big.Float) {

	prec := x.Prec()

	one := NewFloat(1, prec)

	switch x.Cmp(one) {
	case 1:
		panic(fmt.Errorf("cannot Acos: x > 1 (x=%v)", x))
	case 0:
		return NewFloat(0, prec)
	}

	minusOne := new(big.Float).Neg(one)
	switch x.Cmp(minusOne) {
	case -1:
		panic(fmt.Errorf("cannot Acos: x < -1 (x=%v)", x))
	case 0:
		return Pi(prec)
	}

	t := new(big.Float).SetPrec(prec)

	if xF64, _ := x.Float64(); xF64 > -1 && xF64 < 1 {
		t.SetFloat64(math.Acos(xF64))
	} else if xF64 >= 1 {
		// x rounds to 1 in float64: acos(x) ~ sqrt(2(1-x)) near 1
		t.Sub(one, x)
		t.Add(t, t)
		t.Sqrt(t)
	} else {
		// x rounds to -1: acos(x) ~ pi - sqrt(2(1+x)) near -1
		t.Add(one, x)
		t.Add(t, t)
		t.Sqrt(t)
		t.Sub(Pi(prec), t)
	}

	tmp := new(big.Float).SetPrec(prec)

	for i := 0; i < int(math.Log2(float64(prec)))+1; i++ {
		// t = t + (cos(t) - x)/sin(t)
		tmp.Sub(Cos(t), x)
		tmp.Quo(tmp, Sin(t))
		t.Add(t, tmp)
	}

	return t
}

// Sqrt returns sqrt(x).
func Sqrt(x *big.Float) (sqrt *big.Float) {
	return bigfloat.Sqrt(x)
}

// Log return ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Sign returns -1, 0 or 1 depending on the sign of x, as a *big.Float.
func Sign(x *big.Float) (y *big.Float) {
	return NewFloat(float64(x.Cmp(NewFloat(0.0, x.Prec()))), x.Prec())
}
