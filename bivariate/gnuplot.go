package bivariate

import (
	"bufio"
	"fmt"
	"io"
)

// WriteGnuplot writes a gnuplot script reconstructing the error function
// from the recorded pivots. The script defines e0(x,y)=f(x,y) and, per
// 1-based pivot n, the recursion
//
//	en(x,y) = e{n-1}(x,y) - e{n-1}(xn,y)*e{n-1}(x,yn)/dn
//
// with dn = e{n-1}(xn,yn), followed by a plot command for the final
// error function over [-1,1]x[-1,1]. Pivot coordinates are printed at
// the full configured precision. The variable naming (x, y, d, e plus
// index) is fixed for downstream tooling.
func (s *Solver) WriteGnuplot(w io.Writer) error {

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "f(x,y)=%s\n", s.Function.Expr)
	fmt.Fprintf(bw, "e0(x,y)=f(x,y)\n")

	for n, p := range s.pivots {
		fmt.Fprintf(bw, "x%d=%s\n", n+1, p.X.Text('g', -1))
		fmt.Fprintf(bw, "y%d=%s\n", n+1, p.Y.Text('g', -1))
		fmt.Fprintf(bw, "d%d=e%d(x%d,y%d)\n", n+1, n, n+1, n+1)
		fmt.Fprintf(bw, "e%d(x,y)=e%d(x,y)-e%d(x%d,y)*e%d(x,y%d)/d%d\n",
			n+1, n, n, n+1, n, n+1, n+1)
	}

	fmt.Fprintf(bw, "splot [-1:1][-1:1] e%d(x,y)\n", len(s.pivots))

	return bw.Flush()
}
