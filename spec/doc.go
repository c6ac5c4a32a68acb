// Package spec defines the immutable configuration and result records
// shared by every confidence-sequence and e-process implementation in
// this module: StreamSpec, ABSpec, GuaranteeTier, Interval, EValue, and
// the two error kinds (ConfigError, AssumptionViolationError).
//
// Values of StreamSpec and ABSpec are built through functional options
// and validated once at construction; Interval and EValue are immutable
// snapshots returned by CS/e-process instances and safe to share across
// goroutines once returned.
package spec
