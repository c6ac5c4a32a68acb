package cliconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nibzard/anytime/cliconfig"
	"github.com/nibzard/anytime/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRunSpec(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRunSpec_BuildsBoundedStreamSpec(t *testing.T) {
	path := writeRunSpec(t, `
alpha: 0.05
kind: bounded
support_a: 0
support_b: 1
two_sided: true
clip_mode: clip
name: demo
`)

	rs, err := cliconfig.LoadRunSpec(path)
	require.NoError(t, err)

	sp, err := rs.BuildStreamSpec()
	require.NoError(t, err)
	assert.Equal(t, 0.05, sp.Alpha())
	assert.Equal(t, spec.Bounded, sp.Kind())
	assert.Equal(t, spec.ClipClip, sp.ClipMode())
	assert.Equal(t, "demo", sp.Name())
}

func TestLoadRunSpec_BernoulliKind(t *testing.T) {
	path := writeRunSpec(t, `
alpha: 0.1
kind: bernoulli
`)

	rs, err := cliconfig.LoadRunSpec(path)
	require.NoError(t, err)

	sp, err := rs.BuildStreamSpec()
	require.NoError(t, err)
	assert.Equal(t, spec.BernoulliKind, sp.Kind())
	assert.Equal(t, spec.Support{A: 0, B: 1}, sp.Support())
}

func TestRunSpec_BuildABSpecForcesTwoSided(t *testing.T) {
	path := writeRunSpec(t, `
alpha: 0.05
kind: bounded
support_a: 0
support_b: 1
two_sided: false
`)

	rs, err := cliconfig.LoadRunSpec(path)
	require.NoError(t, err)

	ab, err := rs.BuildABSpec()
	require.NoError(t, err)
	assert.True(t, ab.TwoSided())
}

func TestLoadDefaults_FallsBackWithoutEnvFile(t *testing.T) {
	d := cliconfig.LoadDefaults()
	assert.Greater(t, d.Alpha, 0.0)
}
