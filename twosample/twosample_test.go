package twosample_test

import (
	"math"
	"testing"

	"github.com/nibzard/anytime/spec"
	"github.com/nibzard/anytime/twosample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustABSpec(t *testing.T, opts ...spec.StreamOption) spec.ABSpec {
	t.Helper()
	ab, err := spec.NewABSpec(opts...)
	require.NoError(t, err)
	return ab
}

// E6: TwoSampleEmpiricalBernsteinCS(alpha=0.05), alternating (A,0.1) and
// (B,0.6) streams of 200 observations each. Expect estimate ~ 0.5 and,
// eventually, lo > 0 (the two arms are distinguishable).
func TestTwoSample_E6(t *testing.T) {
	ab := mustABSpec(t, spec.WithAlpha(0.05))
	cs, err := twosample.NewEmpiricalBernstein(ab)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.NoError(t, cs.Update(spec.ArmA, 0.1))
		require.NoError(t, cs.Update(spec.ArmB, 0.6))
	}

	iv := cs.Interval()
	assert.InDelta(t, 0.5, iv.Estimate, 0.05)
	assert.Greater(t, iv.Lo, 0.0)
	assert.Equal(t, spec.Guaranteed, iv.Tier)
}

func TestTwoSample_ArmSwapSymmetry(t *testing.T) {
	ab := mustABSpec(t, spec.WithAlpha(0.05))

	csAB, err := twosample.NewEmpiricalBernstein(ab)
	require.NoError(t, err)
	csBA, err := twosample.NewEmpiricalBernstein(ab)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, csAB.Update(spec.ArmA, 0.2))
		require.NoError(t, csAB.Update(spec.ArmB, 0.7))

		require.NoError(t, csBA.Update(spec.ArmB, 0.2))
		require.NoError(t, csBA.Update(spec.ArmA, 0.7))
	}

	ivAB := csAB.Interval()
	ivBA := csBA.Interval()

	assert.InDelta(t, -ivAB.Estimate, ivBA.Estimate, 1e-9)
	assert.InDelta(t, -ivAB.Hi, ivBA.Lo, 1e-9)
	assert.InDelta(t, -ivAB.Lo, ivBA.Hi, 1e-9)
}

func TestTwoSample_EmptyArmDowngradesToDiagnostic(t *testing.T) {
	ab := mustABSpec(t, spec.WithAlpha(0.05))
	cs, err := twosample.NewEmpiricalBernstein(ab)
	require.NoError(t, err)

	require.NoError(t, cs.Update(spec.ArmA, 0.3))

	iv := cs.Interval()
	assert.Equal(t, spec.Diagnostic, iv.Tier)
	assert.False(t, math.IsNaN(iv.Lo))
	assert.False(t, math.IsNaN(iv.Hi))
}

func TestTwoSample_RejectsOneSidedABSpec(t *testing.T) {
	ab, err := spec.NewOneSidedABSpec(spec.WithAlpha(0.05), spec.WithTwoSided(false))
	require.NoError(t, err)

	_, err = twosample.NewEmpiricalBernstein(ab)
	var cfgErr *spec.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestTwoSample_UnknownArmIsConfigError(t *testing.T) {
	ab := mustABSpec(t, spec.WithAlpha(0.05))
	cs, err := twosample.NewEmpiricalBernstein(ab)
	require.NoError(t, err)

	err = cs.Update(spec.Arm(99), 0.5)
	var cfgErr *spec.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestTwoSample_Reset(t *testing.T) {
	ab := mustABSpec(t, spec.WithAlpha(0.05))
	cs, err := twosample.NewHoeffding(ab)
	require.NoError(t, err)

	require.NoError(t, cs.Update(spec.ArmA, 0.4))
	require.NoError(t, cs.Update(spec.ArmB, 0.6))
	cs.Reset()

	iv := cs.Interval()
	assert.Equal(t, 0, iv.T)
	assert.Equal(t, spec.Diagnostic, iv.Tier)
}
