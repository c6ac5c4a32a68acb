package spec

import "math"

// Kind names the distributional assumption a stream is declared under.
//
//   - Bounded:   values lie in a declared [A,B]; general real-valued mean.
//   - Bernoulli: values are 0/1; support is fixed at (0,1).
type Kind int

const (
	// Bounded declares a general bounded real-valued stream.
	Bounded Kind = iota

	// BernoulliKind declares a 0/1 stream.
	BernoulliKind
)

// ClipMode controls what happens when an observation falls outside the
// declared support.
type ClipMode int

const (
	// ClipError raises AssumptionViolationError on out-of-support values;
	// the offending observation is not applied.
	ClipError ClipMode = iota

	// ClipClip clamps the value into [A,B], increments the clipped
	// counter, and degrades the tier to at worst Clipped.
	ClipClip
)

// Support is a declared bounded interval [A,B] within which all
// observations must lie for the validity guarantees to hold.
type Support struct {
	A, B float64
}

// StreamSpec is the immutable configuration governing a one-sample
// confidence sequence or e-process: the confidence level, the
// distributional kind, the declared support, sidedness, and the policy
// for out-of-support observations. Construct with NewStreamSpec; the
// zero value is not valid.
type StreamSpec struct {
	alpha    float64
	kind     Kind
	support  Support
	twoSided bool
	clipMode ClipMode
	name     string
}

// Alpha returns the configured significance level.
func (s StreamSpec) Alpha() float64 { return s.alpha }

// Kind returns the configured distributional kind.
func (s StreamSpec) Kind() Kind { return s.kind }

// Support returns the declared [A,B] bound.
func (s StreamSpec) Support() Support { return s.support }

// TwoSided reports whether the spec governs a two-sided construction.
func (s StreamSpec) TwoSided() bool { return s.twoSided }

// ClipMode returns the configured out-of-support policy.
func (s StreamSpec) ClipMode() ClipMode { return s.clipMode }

// Name returns the caller-supplied label for logging/audit.
func (s StreamSpec) Name() string { return s.name }

// StreamOption configures a StreamSpec under construction.
type StreamOption func(*StreamSpec)

// WithAlpha sets the significance level; must be in (0,1).
func WithAlpha(alpha float64) StreamOption {
	return func(s *StreamSpec) { s.alpha = alpha }
}

// WithKind sets the distributional kind.
func WithKind(kind Kind) StreamOption {
	return func(s *StreamSpec) { s.kind = kind }
}

// WithSupport sets the declared [a,b] bound. Ignored for kind=Bernoulli,
// which always uses (0,1).
func WithSupport(a, b float64) StreamOption {
	return func(s *StreamSpec) { s.support = Support{A: a, B: b} }
}

// WithTwoSided sets sidedness; defaults to true.
func WithTwoSided(twoSided bool) StreamOption {
	return func(s *StreamSpec) { s.twoSided = twoSided }
}

// WithClipMode sets the out-of-support policy; defaults to ClipError.
func WithClipMode(mode ClipMode) StreamOption {
	return func(s *StreamSpec) { s.clipMode = mode }
}

// WithName sets a caller-supplied label used only for logging/audit.
func WithName(name string) StreamOption {
	return func(s *StreamSpec) { s.name = name }
}

// NewStreamSpec builds a StreamSpec from functional options and validates
// it, returning a *ConfigError if the result is not usable. Defaults
// (before options are applied): Alpha=0.05, Kind=Bounded, Support=(0,1),
// TwoSided=true, ClipMode=ClipError.
func NewStreamSpec(opts ...StreamOption) (StreamSpec, error) {
	s := StreamSpec{
		alpha:    0.05,
		kind:     Bounded,
		support:  Support{A: 0, B: 1},
		twoSided: true,
		clipMode: ClipError,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.kind == BernoulliKind {
		s.support = Support{A: 0, B: 1}
	}
	if err := s.Validate(); err != nil {
		return StreamSpec{}, err
	}
	return s, nil
}

// Validate re-checks the invariants NewStreamSpec enforces at
// construction; it is exported so methods that accept a StreamSpec built
// by other means (e.g. deserialized from YAML) can re-validate it.
func (s StreamSpec) Validate() error {
	const method = "StreamSpec.Validate"
	if !(s.alpha > 0 && s.alpha < 1) {
		return NewConfigError(method, ErrInvalidAlpha)
	}
	if s.kind != Bounded && s.kind != BernoulliKind {
		return NewConfigError(method, ErrInvalidKind)
	}
	if s.clipMode != ClipError && s.clipMode != ClipClip {
		return NewConfigError(method, ErrInvalidClipMode)
	}
	if s.kind == BernoulliKind {
		if s.support.A != 0 || s.support.B != 1 {
			return NewConfigError(method, ErrBernoulliSupport)
		}
	} else {
		if !(s.support.A < s.support.B) || math.IsInf(s.support.A, 0) || math.IsInf(s.support.B, 0) {
			return NewConfigError(method, ErrInvalidSupport)
		}
	}
	return nil
}
