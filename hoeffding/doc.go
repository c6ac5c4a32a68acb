// Package hoeffding implements the stitched sub-Gaussian Hoeffding
// confidence sequence for the mean of a bounded stream.
//
// The half-width at observation count n is
//
//	hw(n) = (b-a) * sqrt( (1 + 1/(n*rho^2)) * log( sqrt(n*rho^2+1) / alpha ) / (2*n) )
//
// with a fixed tuning constant rho=1.0 (see RhoDefault for the
// derivation citation). The interval is [max(a, mean-hw), min(b,
// mean+hw)] for a two-sided spec. For large n this is the CS with the
// widest band of the three one-sample methods (at small n the
// empirical-Bernstein band can be wider) but the weakest assumption:
// independent observations bounded in [a,b], nothing else.
package hoeffding
