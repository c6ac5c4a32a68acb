// Package recommend implements a deterministic method-selection table:
// a pure function from a stream configuration (plus an optional
// diagnostics snapshot) to a Recommendation naming the method to
// construct, a stable reason string for logging/audit, and the tier a
// caller should expect under normal operation.
package recommend
