// Package bivariate implements a greedy two-dimensional generalization of
// the Remez exchange algorithm. At each iteration the solver scans a fixed
// Chebyshev candidate grid for the point where the current error function
// is extremal (the pivot), then updates a matrix of coefficients so that
// the next error function vanishes along the pivot's row and column.
// The error function e_k after k pivots is represented as the implicit
// term f(x,y) plus the sum of the separable terms
// coeffs[j][i]*f(x_i,y)*f(x,y_j) over the recorded pivots.
package bivariate

import (
	"fmt"
	"math/big"
)

// DefaultContraction is the default scaling applied to the candidate grid
// to keep it strictly inside the open square (-1,1)^2, where the target
// function may be singular on the boundary. Its correct value depends on
// the working precision and on the boundary behavior of the target.
const DefaultContraction = "0.999999999999999"

// TargetFunction is the bivariate function whose error function the solver
// minimizes. Eval must be total on the open square (-1,1)^2; it is not
// required to be defined on the boundary.
type TargetFunction struct {
	// Eval evaluates the function at (x, y).
	Eval func(x, y *big.Float) (z *big.Float)

	// Expr is the closed form of the function in gnuplot syntax,
	// used verbatim by WriteGnuplot.
	Expr string
}

// Parameters is a struct storing the parameters required to
// initialize the bivariate solver.
type Parameters struct {
	// Function is the target function to approximate.
	Function TargetFunction

	// GridSize is n in the candidate grid -cos(pi*i/n)*s for i in 0..n,
	// shared by both axes. Must be at least 1.
	GridSize int

	// Iterations is the number of pivots to select. There is no
	// convergence-based early exit.
	Iterations int

	// Prec defines the bit precision of the overall computation.
	Prec uint

	// Contraction is the grid scaling factor s as a decimal literal,
	// strictly between 0 and 1. If empty, DefaultContraction is used.
	Contraction string
}

func (p Parameters) validate() error {
	switch {
	case p.Function.Eval == nil:
		return fmt.Errorf("cannot NewSolver: Function.Eval is nil")
	case p.GridSize < 1:
		return fmt.Errorf("cannot NewSolver: GridSize must be at least 1 but is %d", p.GridSize)
	case p.Iterations < 0:
		return fmt.Errorf("cannot NewSolver: Iterations cannot be negative but is %d", p.Iterations)
	case p.Prec == 0:
		return fmt.Errorf("cannot NewSolver: Prec cannot be 0")
	}
	return nil
}

// contraction parses the contraction factor at the working precision.
func (p Parameters) contraction() (*big.Float, error) {

	literal := p.Contraction
	if literal == "" {
		literal = DefaultContraction
	}

	s, ok := new(big.Float).SetPrec(p.Prec).SetString(literal)
	if !ok {
		return nil, fmt.Errorf("cannot NewSolver: invalid Contraction literal %q", literal)
	}

	one := new(big.Float).SetPrec(p.Prec).SetInt64(1)
	if s.Sign() <= 0 || s.Cmp(one) >= 0 {
		return nil, fmt.Errorf("cannot NewSolver: Contraction must lie strictly between 0 and 1 but is %v", s)
	}

	return s, nil
}
