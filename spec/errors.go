package spec

import (
	"errors"
	"fmt"
)

// Sentinel causes. ConfigError and AssumptionViolationError wrap one of
// these so callers can match with errors.Is while still recovering the
// rich fields (method, t, offending value) from the concrete error type.
var (
	// ErrInvalidAlpha indicates alpha was not in the open interval (0,1).
	ErrInvalidAlpha = errors.New("spec: alpha must be in (0,1)")

	// ErrInvalidSupport indicates a >= b, or a non-finite bound.
	ErrInvalidSupport = errors.New("spec: support must satisfy a < b with finite bounds")

	// ErrInvalidKind indicates an unrecognized StreamKind.
	ErrInvalidKind = errors.New("spec: unrecognized kind")

	// ErrInvalidClipMode indicates an unrecognized ClipMode.
	ErrInvalidClipMode = errors.New("spec: unrecognized clip mode")

	// ErrBernoulliSupport indicates kind=Bernoulli with a support other than (0,1).
	ErrBernoulliSupport = errors.New("spec: bernoulli kind requires support (0,1)")

	// ErrOneSidedTwoSample indicates a two-sample CS was asked to run one-sided in v1.
	ErrOneSidedTwoSample = errors.New("spec: two-sample confidence sequences require TwoSided=true in v1")

	// ErrUnsupportedKind indicates a method was constructed over a spec.Kind it does not support.
	ErrUnsupportedKind = errors.New("spec: method does not support this stream kind")

	// ErrUnknownArm indicates an update tagged with an arm other than ArmA or ArmB.
	ErrUnknownArm = errors.New("spec: unknown arm")

	// ErrOutOfSupport is the cause carried by AssumptionViolationError when
	// ClipMode=ClipError and an observation falls outside [A,B].
	ErrOutOfSupport = errors.New("spec: observation outside declared support")

	// ErrInvalidNullRate indicates a null hypothesis rate p0 outside (0,1).
	ErrInvalidNullRate = errors.New("spec: null rate p0 must be in (0,1)")
)

// ConfigError reports a synchronous, construction-time validation
// failure. It never arises from data; see AssumptionViolationError for
// the one data-dependent failure mode.
type ConfigError struct {
	Method string // name of the constructor or method that rejected the config
	Cause  error  // one of the sentinels above
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Cause)
}

// Unwrap exposes the sentinel cause for errors.Is.
func (e *ConfigError) Unwrap() error { return e.Cause }

// NewConfigError builds a ConfigError attributing the failure to method.
func NewConfigError(method string, cause error) *ConfigError {
	return &ConfigError{Method: method, Cause: cause}
}

// AssumptionViolationError is raised by update(x) only when
// ClipMode=ClipError and x falls outside the declared support. It carries
// the offending value and the running counts so operators can locate the
// failure without re-deriving it from logs.
type AssumptionViolationError struct {
	Method string  // method name (e.g. "HoeffdingCS")
	T      int     // number of observations successfully applied before this one
	Value  float64 // the offending value
	Lo, Hi float64 // the declared support
}

func (e *AssumptionViolationError) Error() string {
	return fmt.Sprintf("%s: observation %v at t=%d outside support [%v,%v]", e.Method, e.Value, e.T, e.Lo, e.Hi)
}

// Unwrap exposes ErrOutOfSupport for errors.Is.
func (e *AssumptionViolationError) Unwrap() error { return ErrOutOfSupport }

// NewAssumptionViolationError builds an AssumptionViolationError.
func NewAssumptionViolationError(method string, t int, value, lo, hi float64) *AssumptionViolationError {
	return &AssumptionViolationError{Method: method, T: t, Value: value, Lo: lo, Hi: hi}
}
