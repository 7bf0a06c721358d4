package bivariate

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/montanaflynn/stats"
)

// ErrDegeneratePivot is returned by Step when the maximum absolute value of
// the error function over the entire candidate grid is exactly zero: the
// target function is already exactly represented by the current expansion
// on every candidate point and no further pivot can be selected.
var ErrDegeneratePivot = errors.New("degenerate pivot: error function is zero on the entire candidate grid")

// Point is a candidate grid point selected as a pivot.
type Point struct {
	X, Y *big.Float
}

// Solver implements the greedy bivariate pivot-selection loop. Each call to
// Step scans the candidate grid for the extremal point of the current error
// function, applies a rank-1 update to the coefficient matrix so that the
// next error function vanishes along the new pivot's row and column, and
// records the pivot. The run is fully deterministic for a given target
// function, grid and precision.
type Solver struct {
	Parameters

	grid   []*big.Float
	cache  *Cache
	pivots []Point
	coeffs [][]*big.Float
}

// NewSolver instantiates a new Solver from the provided parameters.
func NewSolver(p Parameters) (s *Solver, err error) {

	if err = p.validate(); err != nil {
		return nil, err
	}

	contraction, err := p.contraction()
	if err != nil {
		return nil, err
	}

	s = &Solver{
		Parameters: p,
		grid:       chebyshevGrid(p.GridSize, contraction, p.Prec),
		cache:      NewCache(p.Function.Eval),
	}

	// Only the top-left k x k submatrix is meaningful after k pivots;
	// the rest stays zero until later iterations grow the active region.
	s.coeffs = make([][]*big.Float, p.Iterations)
	for j := range s.coeffs {
		s.coeffs[j] = make([]*big.Float, p.Iterations)
		for i := range s.coeffs[j] {
			s.coeffs[j][i] = new(big.Float).SetPrec(p.Prec)
		}
	}

	return s, nil
}

// Pivots returns the pivots recorded so far, in selection order.
func (s *Solver) Pivots() []Point {
	return s.pivots
}

// Grid returns the shared candidate coordinates of both axes.
func (s *Solver) Grid() []*big.Float {
	return s.grid
}

// EvalResidual evaluates the current error function at (x, y): the implicit
// f(x,y) term plus the separable terms coeffs[j][i]*f(x_i,y)*f(x,y_j) over
// all recorded pivots. Zero coefficients are skipped.
func (s *Solver) EvalResidual(x, y *big.Float) *big.Float {

	res := new(big.Float).Set(s.cache.Eval(x, y))

	tmp := new(big.Float)
	for i := range s.pivots {
		for j := range s.pivots {
			if c := s.coeffs[j][i]; c.Sign() != 0 {
				tmp.Mul(c, s.cache.Eval(s.pivots[i].X, y))
				tmp.Mul(tmp, s.cache.Eval(x, s.pivots[j].Y))
				res.Add(res, tmp)
			}
		}
	}

	return res
}

// Step performs one pivot-selection iteration. It returns an error wrapping
// ErrDegeneratePivot, leaving the solver state untouched, if the error
// function is exactly zero on every candidate point.
func (s *Solver) Step() error {

	k := len(s.pivots)

	if k == s.Iterations {
		return fmt.Errorf("cannot Step: all %d iterations already performed", s.Iterations)
	}

	best, bestVal := s.searchPivot()

	if bestVal.Sign() == 0 {
		return fmt.Errorf("cannot Step: %w at iteration %d", ErrDegeneratePivot, k)
	}

	dk := new(big.Float).SetPrec(s.Prec).SetInt64(1)
	dk.Quo(dk, bestVal)

	// Restrictions of the error function to the pivot's row and column,
	// as coefficient vectors over f(x_i, y*) and f(x*, y_j).
	// Index k is the implicit f(x,y) slot.
	rowVec := make([]*big.Float, k+1)
	colVec := make([]*big.Float, k+1)
	for i := range rowVec {
		rowVec[i] = new(big.Float).SetPrec(s.Prec)
		colVec[i] = new(big.Float).SetPrec(s.Prec)
	}

	tmp := new(big.Float)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if c := s.coeffs[j][i]; c.Sign() != 0 {
				rowVec[j].Add(rowVec[j], tmp.Mul(c, s.cache.Eval(s.pivots[i].X, best.Y)))
				colVec[i].Add(colVec[i], tmp.Mul(c, s.cache.Eval(best.X, s.pivots[j].Y)))
			}
		}
	}
	rowVec[k].SetInt64(1)
	colVec[k].SetInt64(1)

	// Outer-product subtraction: the next error function vanishes at the
	// new pivot along both its row and its column.
	for i := 0; i <= k; i++ {
		for j := 0; j <= k; j++ {
			tmp.Mul(colVec[i], rowVec[j])
			tmp.Mul(tmp, dk)
			s.coeffs[j][i].Sub(s.coeffs[j][i], tmp)
		}
	}

	s.pivots = append(s.pivots, best)

	return nil
}

// Solve runs all configured iterations and returns the number of pivots
// recorded. On a degenerate pivot it stops early, returning the number of
// valid pivots alongside the wrapped ErrDegeneratePivot.
func (s *Solver) Solve() (int, error) {
	for len(s.pivots) < s.Iterations {
		if err := s.Step(); err != nil {
			return len(s.pivots), err
		}
	}
	return len(s.pivots), nil
}

// searchPivot scans grid x grid for the point with the maximum absolute
// error. The scan order is outer loop over y, inner loop over x, both in
// grid order, and ties keep the first-encountered maximum. Rows are scanned
// concurrently; the reduction walks the per-row results in scan order with
// a strict comparison, so the outcome is independent of scheduling.
func (s *Solver) searchPivot() (best Point, bestVal *big.Float) {

	type rowBest struct {
		x   *big.Float
		val *big.Float
	}

	rows := make([]rowBest, len(s.grid))

	var wg sync.WaitGroup
	wg.Add(len(s.grid))
	for r := range s.grid {
		go func(r int) {
			defer wg.Done()

			y := s.grid[r]

			var bx, bv *big.Float
			babs := new(big.Float)
			abs := new(big.Float)

			for _, x := range s.grid {
				v := s.EvalResidual(x, y)
				if abs.Abs(v); bv == nil || abs.Cmp(babs) > 0 {
					bx, bv = x, v
					babs.Set(abs)
				}
			}

			rows[r] = rowBest{x: bx, val: bv}
		}(r)
	}
	wg.Wait()

	babs := new(big.Float)
	abs := new(big.Float)
	for r := range rows {
		if abs.Abs(rows[r].val); r == 0 || abs.Cmp(babs) > 0 {
			best = Point{X: rows[r].x, Y: s.grid[r]}
			bestVal = rows[r].val
			babs.Set(abs)
		}
	}

	return
}

// ResidualStats summarizes the absolute value of the current error function
// over the candidate grid.
type ResidualStats struct {
	Max, Mean, Median, StdDev float64
}

// ResidualStats evaluates the error function on the full candidate grid and
// returns float64 summary statistics, for progress reporting.
func (s *Solver) ResidualStats() (rs ResidualStats, err error) {

	values := make([]float64, 0, len(s.grid)*len(s.grid))

	abs := new(big.Float)
	for _, y := range s.grid {
		for _, x := range s.grid {
			abs.Abs(s.EvalResidual(x, y))
			v, _ := abs.Float64()
			values = append(values, v)
		}
	}

	if rs.Max, err = stats.Max(values); err != nil {
		return rs, err
	}
	if rs.Mean, err = stats.Mean(values); err != nil {
		return rs, err
	}
	if rs.Median, err = stats.Median(values); err != nil {
		return rs, err
	}
	if rs.StdDev, err = stats.StandardDeviation(values); err != nil {
		return rs, err
	}

	return rs, nil
}
