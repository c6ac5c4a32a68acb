package eprocess_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nibzard/anytime/eprocess"
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

// E7: BernoulliMixtureE(alpha=0.05, p0=0.5, side="ge"), input [1]*50.
// Expect decision=true within the first 50 steps and latching thereafter.
func TestBernoulliE_E7(t *testing.T) {
	s := mustBernoulliSpec(t, spec.WithAlpha(0.05))
	e, err := eprocess.New(s, 0.5, eprocess.SideGE)
	require.NoError(t, err)

	latchedAt := -1
	for i := 0; i < 50; i++ {
		require.NoError(t, e.Update(1))
		ev := e.EValue()
		if ev.Decision && latchedAt == -1 {
			latchedAt = i
		}
	}
	require.NotEqual(t, -1, latchedAt, "expected decision to latch within 50 steps")

	ev := e.EValue()
	assert.True(t, ev.Decision)

	// Feed an observation that would otherwise drag log E back down; the
	// decision must stay latched (property 6).
	require.NoError(t, e.Update(0))
	ev = e.EValue()
	assert.True(t, ev.Decision)
}

func TestBernoulliE_NoOverflowOnLargeStream(t *testing.T) {
	s := mustBernoulliSpec(t, spec.WithAlpha(0.05))
	e, err := eprocess.New(s, 0.5, eprocess.SideEQ)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	const n = 1_000_000
	for i := 0; i < n; i++ {
		x := 0.0
		if rng.Float64() < 0.9 {
			x = 1.0
		}
		require.NoError(t, e.Update(x))
	}

	ev := e.EValue()
	assert.False(t, math.IsNaN(ev.LogE))
	assert.False(t, math.IsInf(ev.LogE, 0))
	assert.False(t, math.IsNaN(ev.E))
	assert.False(t, math.IsInf(ev.E, 0))
}

func TestBernoulliE_RejectsBoundedKind(t *testing.T) {
	s, err := spec.NewStreamSpec(spec.WithKind(spec.Bounded))
	require.NoError(t, err)
	_, err = eprocess.New(s, 0.5, eprocess.SideEQ)
	var cfgErr *spec.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBernoulliE_RejectsInvalidNullRate(t *testing.T) {
	s := mustBernoulliSpec(t)
	_, err := eprocess.New(s, 1.5, eprocess.SideEQ)
	var cfgErr *spec.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBernoulliE_Reset(t *testing.T) {
	s := mustBernoulliSpec(t, spec.WithAlpha(0.05))
	e, err := eprocess.New(s, 0.5, eprocess.SideGE)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, e.Update(1))
	}
	require.True(t, e.EValue().Decision)

	e.Reset()
	ev := e.EValue()
	assert.Equal(t, 0, ev.T)
	assert.False(t, ev.Decision)
	assert.Equal(t, spec.Guaranteed, ev.Tier)
}
