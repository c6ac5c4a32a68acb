// Package twosample implements the Minkowski-difference two-sample
// confidence sequence for Delta = mean(B) - mean(A).
//
// Construction maintains two independent one-sample confidence sequences
// of the same method, one per arm, each at confidence level 1-alpha/2.
// The returned interval for Delta is
//
//	lo = lo_B - hi_A,  hi = hi_B - lo_A,  estimate = mean_B - mean_A
//
// By a union bound the joint coverage is >= 1-alpha. Swapping arms
// negates estimate and reflects (lo,hi) to (-hi,-lo); the combined tier
// is the worse of both arms', degraded further to at worst Diagnostic if
// either arm has seen no observations yet (an empty arm's information is
// surfaced, never silently treated as guaranteed). Two-sided only in v1:
// construction fails with ConfigError if the ABSpec is not TwoSided.
package twosample
