package analysis

import (
	"encoding/json"
	"os"
)

// DefaultFixturePath is where the canned demo analysis lives, relative
// to the process working directory.
const DefaultFixturePath = "fixtures/analysis_example.json"

// LoadFixture reads the canned analysis document that stands in for a
// real check pipeline. Any failure (missing file, malformed JSON) is
// swallowed and reported as ok=false; the caller synthesizes an empty
// analysis instead.
func LoadFixture(path string) (*Analysis, bool) {
	if path == "" {
		path = DefaultFixturePath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var a Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, false
	}
	return &a, true
}
