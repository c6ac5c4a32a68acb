package atlas

import "github.com/nibzard/anytime/spec"

// ManifestEntry records one emitted result's provenance: scenario, seed,
// method name, and the tier of the result. Serialization is left to the
// caller (see ndjson.Encode); this type carries only the fields.
type ManifestEntry struct {
	Scenario string             `json:"scenario"`
	Seed     int64              `json:"seed"`
	Method   string             `json:"method"`
	Alpha    float64            `json:"alpha"`
	T        int                `json:"t"`
	Tier     spec.GuaranteeTier `json:"tier"`
}

// NewManifestEntry builds a ManifestEntry from an Interval snapshot.
func NewManifestEntry(scenario string, seed int64, method string, iv spec.Interval) ManifestEntry {
	return ManifestEntry{
		Scenario: scenario, Seed: seed, Method: method,
		Alpha: iv.Alpha, T: iv.T, Tier: iv.Tier,
	}
}
