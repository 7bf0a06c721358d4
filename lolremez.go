/*
Package lolremez provides a bivariate generalization of the classical Remez
exchange algorithm: a greedy pivot-selection loop over a two-dimensional
Chebyshev grid that incrementally builds a separable rank-1 expansion of the
error function of a target f(x,y), in arbitrary precision arithmetic.

The algorithm lives in the bivariate subpackage; utils/bignum holds the
arbitrary-precision elementary functions it relies on.
*/
package lolremez
