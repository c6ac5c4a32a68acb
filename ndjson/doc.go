// Package ndjson serializes Interval/EValue/atlas.ManifestEntry
// snapshots to line-delimited JSON (one object per line), the only
// persisted format the core's external collaborators use to record
// results. The core itself persists nothing; this package is purely an
// external collaborator.
//
// Encoding uses github.com/segmentio/encoding/json rather than the
// standard library encoding/json: it is a drop-in, faster encoder the
// rest of this corpus already reaches for when a component writes a high
// volume of small JSON records (see DESIGN.md).
package ndjson
