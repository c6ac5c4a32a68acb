package numerics

import "math"

// Clip restricts x to the closed interval [lo, hi]. If lo > hi the result
// is unspecified; callers are expected to pass a valid interval.
func Clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// LogBeta returns log(B(a, b)) = lgamma(a) + lgamma(b) - lgamma(a+b).
func LogBeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}

// LogBetaBinomial returns the log marginal likelihood of observing s
// successes in n Bernoulli(p) trials, p integrated out against a
// Beta(alpha, beta) prior (the beta-binomial mixture density at (s, n)).
//
//	log BetaBin(s, n; alpha, beta) = log C(n, s) + LogBeta(s+alpha, n-s+beta) - LogBeta(alpha, beta)
func LogBetaBinomial(s, n int, alpha, beta float64) float64 {
	logChoose := LogChoose(n, s)
	return logChoose + LogBeta(float64(s)+alpha, float64(n-s)+beta) - LogBeta(alpha, beta)
}

// LogChoose returns log(C(n, k)) via the log-gamma function, valid for
// 0 <= k <= n.
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	ln1, _ := math.Lgamma(float64(n) + 1)
	lk1, _ := math.Lgamma(float64(k) + 1)
	lnk1, _ := math.Lgamma(float64(n-k) + 1)
	return ln1 - lk1 - lnk1
}

// BisectMonotoneIncreasing finds x in [lo, hi] such that f(x) == target,
// assuming f is non-decreasing over [lo, hi]. It runs a fixed number of
// iterations sufficient for double-precision convergence on any bounded
// interval and never evaluates f outside [lo, hi].
//
// If f(lo) >= target, lo is returned (the crossing is at or below lo).
// If f(hi) <= target, hi is returned (the crossing is at or above hi).
func BisectMonotoneIncreasing(f func(float64) float64, lo, hi, target float64) float64 {
	const maxIter = 100
	if f(lo) >= target {
		return lo
	}
	if f(hi) <= target {
		return hi
	}
	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// BisectMonotoneDecreasing mirrors BisectMonotoneIncreasing for a
// non-increasing f.
func BisectMonotoneDecreasing(f func(float64) float64, lo, hi, target float64) float64 {
	return BisectMonotoneIncreasing(func(x float64) float64 { return -f(x) }, lo, hi, -target)
}

// LogExpCeiling is the largest log value this package will exponentiate;
// e-values are clamped here before crossing the log-space boundary so that
// math.Exp never overflows to +Inf for streams up to the million-scale
// observation bound this package targets.
const LogExpCeiling = 700.0

// ExpClamped exponentiates a log-space value, clamping the input to
// LogExpCeiling first so the result is always a finite float64.
func ExpClamped(logX float64) float64 {
	if logX > LogExpCeiling {
		logX = LogExpCeiling
	}
	return math.Exp(logX)
}
