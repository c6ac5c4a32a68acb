// Package bernoulli implements the beta-binomial mixture confidence
// sequence for a 0/1 stream.
//
// With a conjugate Beta(1/2, 1/2) prior over the true rate p, the
// posterior after s successes and f failures in n=s+f trials is
// Beta(s+1/2, f+1/2). The confidence sequence is the set of p for which
// the mixture martingale test statistic
//
//	logBetaBin(s,n; 1/2,1/2) - s*log(p) - f*log(1-p)
//
// has not exceeded log(1/alpha). Both endpoints are located by 1-D
// bisection on this (unimodal, convex) statistic, split at the MLE
// phat=s/n into a decreasing branch (for Lo) and an increasing branch
// (for Hi); at n=0 the method returns the vacuous [0,1].
//
// Open design decision: inputs are declared to
// be exactly 0 or 1, but the shared diagnostics range gate only enforces
// membership in [0,1]. Any value that clears diagnostics is rounded to
// the nearest trial outcome (x>=0.5 counts as a success) rather than
// rejected outright, so a clip_mode=clip stream that clips a wild value
// into [0,1] still produces a well-defined trial. See DESIGN.md.
package bernoulli
