package ndjson_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/nibzard/anytime/ndjson"
	"github.com/nibzard/anytime/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInterval_RoundTrips(t *testing.T) {
	iv := spec.Interval{T: 10, Estimate: 0.5, Lo: 0.4, Hi: 0.6, Tier: spec.Guaranteed, Alpha: 0.05}

	var buf bytes.Buffer
	require.NoError(t, ndjson.EncodeInterval(&buf, iv))

	dec := ndjson.NewDecoder[spec.Interval](&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, iv.T, got.T)
	assert.Equal(t, iv.Estimate, got.Estimate)
	assert.Equal(t, iv.Tier, got.Tier)

	_, err = dec.Next()
	assert.Equal(t, io.EOF, err)
}

func TestEncode_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ndjson.EncodeInterval(&buf, spec.Interval{T: 1}))
	require.NoError(t, ndjson.EncodeInterval(&buf, spec.Interval{T: 2}))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
}

func TestEncodeEValue_RoundTrips(t *testing.T) {
	ev := spec.NewEValue(5, 1.23, 0.05, false, spec.Guaranteed, spec.DiagnosticsSnapshot{})

	var buf bytes.Buffer
	require.NoError(t, ndjson.EncodeEValue(&buf, ev))

	dec := ndjson.NewDecoder[spec.EValue](&buf)
	got, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, ev.T, got.T)
	assert.InDelta(t, ev.LogE, got.LogE, 1e-9)
}
