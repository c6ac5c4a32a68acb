// Package ebernstein implements the variance-adaptive Empirical-Bernstein
// confidence sequence for the mean of a bounded stream.
//
// The half-width at observation count n>=2 is
//
//	hw(n) = sqrt(2*sigma2*log(1/alpha)/n) + 7*(b-a)*log(1/alpha)/(3*(n-1))
//
// where sigma2 is the running sample variance. The constant triple
// (2, 7, 3) is part of the public contract (see the constants below);
// for n<2 the CS returns the vacuous interval [a,b] at tier Guaranteed.
// For large n this method is narrower than hoeffding whenever the
// empirical variance is below (b-a)^2/4, which is the common case for
// streams that are not near-Bernoulli(0.5). At small n the bias term can
// make it wider: with alpha=0.05 and support [0,1], the bias term alone is
// about 0.78 at n=10, while hoeffding's half-width there is about 0.48.
package ebernstein
