package cliconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/anytime/spec"
)

// RunSpec is the YAML shape of a run config file: anytimectl mean
// consumes it as a one-sample StreamSpec, anytimectl abtest as an
// ABSpec (TwoSided is forced true for abtest regardless of the file).
type RunSpec struct {
	Alpha     float64 `yaml:"alpha"`
	Kind      string  `yaml:"kind"`       // "bounded" or "bernoulli"
	SupportA  float64 `yaml:"support_a"`
	SupportB  float64 `yaml:"support_b"`
	TwoSided  bool    `yaml:"two_sided"`
	ClipMode  string  `yaml:"clip_mode"`  // "error" or "clip"
	Name      string  `yaml:"name"`
}

// LoadRunSpec reads and parses a YAML run spec file from path.
func LoadRunSpec(path string) (RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunSpec{}, err
	}
	var rs RunSpec
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RunSpec{}, err
	}
	return rs, nil
}

// options translates the parsed YAML fields into spec.StreamOption
// values. A zero alpha, a zero support pair, a clip_mode other than
// "clip", and an empty name leave the NewStreamSpec defaults in place;
// two_sided is always applied as read, so a file without it yields a
// one-sided spec.
func (rs RunSpec) options() []spec.StreamOption {
	opts := []spec.StreamOption{}
	if rs.Alpha > 0 {
		opts = append(opts, spec.WithAlpha(rs.Alpha))
	}
	if rs.Kind == "bernoulli" {
		opts = append(opts, spec.WithKind(spec.BernoulliKind))
	} else {
		opts = append(opts, spec.WithKind(spec.Bounded))
	}
	if rs.SupportA != 0 || rs.SupportB != 0 {
		opts = append(opts, spec.WithSupport(rs.SupportA, rs.SupportB))
	}
	opts = append(opts, spec.WithTwoSided(rs.TwoSided))
	if rs.ClipMode == "clip" {
		opts = append(opts, spec.WithClipMode(spec.ClipClip))
	}
	if rs.Name != "" {
		opts = append(opts, spec.WithName(rs.Name))
	}
	return opts
}

// BuildStreamSpec builds a one-sample spec.StreamSpec for anytimectl mean.
func (rs RunSpec) BuildStreamSpec() (spec.StreamSpec, error) {
	return spec.NewStreamSpec(rs.options()...)
}

// BuildABSpec builds a two-sample spec.ABSpec for anytimectl abtest,
// forcing TwoSided=true regardless of the file (v1 two-sample CS
// construction requires it; see spec.NewABSpec).
func (rs RunSpec) BuildABSpec() (spec.ABSpec, error) {
	opts := append(rs.options(), spec.WithTwoSided(true))
	return spec.NewABSpec(opts...)
}
