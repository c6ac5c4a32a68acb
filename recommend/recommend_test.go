package recommend_test

import (
	"testing"

	"github.com/nibzard/anytime/recommend"
	"github.com/nibzard/anytime/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCS_Bernoulli(t *testing.T) {
	sp, err := spec.NewStreamSpec(spec.WithKind(spec.BernoulliKind))
	require.NoError(t, err)

	rec := recommend.RecommendCS(sp, nil)
	assert.Equal(t, recommend.BernoulliMixtureCS, rec.Method)
	assert.Equal(t, spec.Guaranteed, rec.TierExpected)
}

func TestRecommendCS_BoundedNoDrift(t *testing.T) {
	sp, err := spec.NewStreamSpec(spec.WithKind(spec.Bounded))
	require.NoError(t, err)

	rec := recommend.RecommendCS(sp, nil)
	assert.Equal(t, recommend.EmpiricalBernsteinCS, rec.Method)
	assert.Equal(t, spec.Guaranteed, rec.TierExpected)
}

func TestRecommendCS_BoundedWithDriftFallsBackToHoeffding(t *testing.T) {
	sp, err := spec.NewStreamSpec(spec.WithKind(spec.Bounded))
	require.NoError(t, err)

	diag := &spec.DiagnosticsSnapshot{DriftDetected: true}
	rec := recommend.RecommendCS(sp, diag)
	assert.Equal(t, recommend.HoeffdingCS, rec.Method)
	assert.Equal(t, spec.Diagnostic, rec.TierExpected)
}

func TestRecommendAB_Bernoulli(t *testing.T) {
	ab, err := spec.NewABSpec(spec.WithKind(spec.BernoulliKind))
	require.NoError(t, err)

	rec := recommend.RecommendAB(ab, nil)
	assert.Equal(t, recommend.TwoSampleHoeffdingCS, rec.Method)
}

func TestRecommendAB_Bounded(t *testing.T) {
	ab, err := spec.NewABSpec(spec.WithKind(spec.Bounded))
	require.NoError(t, err)

	rec := recommend.RecommendAB(ab, nil)
	assert.Equal(t, recommend.TwoSampleEmpiricalBernsteinCS, rec.Method)
	assert.Equal(t, spec.Guaranteed, rec.TierExpected)
}

func TestRecommendAB_BoundedWithDrift(t *testing.T) {
	ab, err := spec.NewABSpec(spec.WithKind(spec.Bounded))
	require.NoError(t, err)

	diag := &spec.DiagnosticsSnapshot{DriftDetected: true}
	rec := recommend.RecommendAB(ab, diag)
	assert.Equal(t, recommend.TwoSampleEmpiricalBernsteinCS, rec.Method)
	assert.Equal(t, spec.Diagnostic, rec.TierExpected)
}
