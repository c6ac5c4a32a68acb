package bernoulli_test

import (
	"math"
	"testing"

	"github.com/nibzard/anytime/bernoulli"
	"github.com/nibzard/anytime/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBernoulliSpec(t *testing.T, opts ...spec.StreamOption) spec.StreamSpec {
	t.Helper()
	all := append([]spec.StreamOption{spec.WithKind(spec.BernoulliKind)}, opts...)
	s, err := spec.NewStreamSpec(all...)
	require.NoError(t, err)
	return s
}

// E3: BernoulliMixtureCS(alpha=0.05), input [1]*10. Expect lo>0, hi=1.0.
func TestBernoulli_E3(t *testing.T) {
	s := mustBernoulliSpec(t, spec.WithAlpha(0.05))
	cs, err := bernoulli.New(s)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, cs.Update(1))
	}

	iv := cs.Interval()
	assert.Greater(t, iv.Lo, 0.0)
	assert.Equal(t, 1.0, iv.Hi)
	assert.Equal(t, spec.Guaranteed, iv.Tier)
	assert.False(t, math.IsNaN(iv.Lo))
	assert.False(t, math.IsInf(iv.Lo, 0))
}

func TestBernoulli_AllFailures(t *testing.T) {
	s := mustBernoulliSpec(t, spec.WithAlpha(0.05))
	cs, err := bernoulli.New(s)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, cs.Update(0))
	}

	iv := cs.Interval()
	assert.Equal(t, 0.0, iv.Lo)
	assert.Less(t, iv.Hi, 1.0)
	assert.Greater(t, iv.Hi, 0.0)
}

func TestBernoulli_ZeroObservationsReturnsFullSupport(t *testing.T) {
	s := mustBernoulliSpec(t)
	cs, err := bernoulli.New(s)
	require.NoError(t, err)

	iv := cs.Interval()
	assert.Equal(t, 0.0, iv.Lo)
	assert.Equal(t, 1.0, iv.Hi)
	assert.Equal(t, spec.Guaranteed, iv.Tier)
}

func TestBernoulli_MonotoneAlpha(t *testing.T) {
	build := func(alpha float64) spec.Interval {
		s := mustBernoulliSpec(t, spec.WithAlpha(alpha))
		cs, err := bernoulli.New(s)
		require.NoError(t, err)
		for i := 0; i < 30; i++ {
			if i%3 == 0 {
				require.NoError(t, cs.Update(0))
			} else {
				require.NoError(t, cs.Update(1))
			}
		}
		return cs.Interval()
	}

	wide := build(0.01)
	narrow := build(0.2)
	assert.GreaterOrEqual(t, wide.Width(), narrow.Width())
}

func TestBernoulli_RejectsBoundedKind(t *testing.T) {
	s, err := spec.NewStreamSpec(spec.WithKind(spec.Bounded), spec.WithSupport(0, 10))
	require.NoError(t, err)
	_, err = bernoulli.New(s)
	var cfgErr *spec.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBernoulli_MixedStreamNeverNaN(t *testing.T) {
	s := mustBernoulliSpec(t)
	cs, err := bernoulli.New(s)
	require.NoError(t, err)
	seq := []float64{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0}
	for _, x := range seq {
		require.NoError(t, cs.Update(x))
		iv := cs.Interval()
		assert.False(t, math.IsNaN(iv.Lo))
		assert.False(t, math.IsNaN(iv.Hi))
		assert.GreaterOrEqual(t, iv.Hi, iv.Lo)
	}
}
