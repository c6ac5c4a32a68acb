package ndjson

import (
	"bufio"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/nibzard/anytime/spec"
)

// Encode writes v as one JSON object followed by a newline. v is
// typically a spec.Interval, spec.EValue, or atlas.ManifestEntry, but
// any JSON-marshalable value is accepted.
func Encode(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeInterval writes iv's §3 fields as one NDJSON line.
func EncodeInterval(w io.Writer, iv spec.Interval) error { return Encode(w, iv) }

// EncodeEValue writes ev's §3 fields as one NDJSON line.
func EncodeEValue(w io.Writer, ev spec.EValue) error { return Encode(w, ev) }

// Decoder reads a stream of NDJSON objects of type T, one per line.
type Decoder[T any] struct {
	scanner *bufio.Scanner
}

// NewDecoder wraps r as a line-oriented NDJSON decoder for type T.
func NewDecoder[T any](r io.Reader) *Decoder[T] {
	return &Decoder[T]{scanner: bufio.NewScanner(r)}
}

// Next decodes the next line into a T. It returns io.EOF once the
// underlying reader is exhausted.
func (d *Decoder[T]) Next() (T, error) {
	var zero T
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return zero, err
		}
		return zero, io.EOF
	}
	var v T
	if err := json.Unmarshal(d.scanner.Bytes(), &v); err != nil {
		return zero, err
	}
	return v, nil
}
