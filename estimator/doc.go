// Package estimator implements the O(1) online sufficient statistics
// shared by every confidence-sequence and e-process method: running
// count, mean, and variance via Welford's recurrence.
//
// Target numerical property: relative error of the running mean/variance
// against a two-pass batch computation stays below 1e-8 for any monotone
// input of length up to 1e6. No allocations occur after construction.
package estimator
