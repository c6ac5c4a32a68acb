package spec

// Arm tags an observation in a two-sample update as belonging to stream A
// or stream B. The governing parameter of an ABSpec is Delta = mean(B) -
// mean(A).
type Arm int

const (
	// ArmA is the first stream (subtrahend in Delta = mean(B) - mean(A)).
	ArmA Arm = iota

	// ArmB is the second stream (minuend in Delta = mean(B) - mean(A)).
	ArmB
)

// String renders the arm label for logging.
func (a Arm) String() string {
	switch a {
	case ArmA:
		return "A"
	case ArmB:
		return "B"
	default:
		return "?"
	}
}

// ABSpec is the immutable configuration governing a two-sample confidence
// sequence or e-process over Delta = mean(B) - mean(A). It shares its
// fields with StreamSpec; TwoSided must be true for two-sample CS
// construction in v1 (one-sided Delta e-processes are permitted and
// optional — see eprocess.New2Sample).
type ABSpec struct {
	StreamSpec
}

// NewABSpec builds an ABSpec from the same functional options as
// NewStreamSpec and additionally enforces TwoSided=true for two-sample CS
// use, returning *ConfigError otherwise.
func NewABSpec(opts ...StreamOption) (ABSpec, error) {
	s, err := NewStreamSpec(opts...)
	if err != nil {
		return ABSpec{}, err
	}
	if !s.twoSided {
		return ABSpec{}, NewConfigError("NewABSpec", ErrOneSidedTwoSample)
	}
	return ABSpec{StreamSpec: s}, nil
}

// NewOneSidedABSpec builds an ABSpec for the optional one-sided Delta
// e-process construction. It does not enforce TwoSided=true and is not
// accepted by twosample CS constructors.
func NewOneSidedABSpec(opts ...StreamOption) (ABSpec, error) {
	s, err := NewStreamSpec(opts...)
	if err != nil {
		return ABSpec{}, err
	}
	return ABSpec{StreamSpec: s}, nil
}
