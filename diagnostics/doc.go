// Package diagnostics implements the three gates every observation passes
// through before reaching an online estimator: missingness, range/clip,
// and an advisory CUSUM-lite drift heuristic. Each inference instance
// (one-sample CS, e-process) owns one *State and threads every
// observation through Process before folding it into its estimator.
//
// The gates only ever downgrade a stream's GuaranteeTier; reset()
// restores spec.Guaranteed. Drift detection is explicitly a heuristic:
// it may have false positives and false negatives, and this package
// documents that rather than hiding it.
package diagnostics
