package yaml

import (
	"testing"
)

// FuzzConfigParser tests the YAML parser against random/malformed inputs
// to detect crashes, panics, or unexpected behavior.
//
// Run with: go test -fuzz=FuzzConfigParser -fuzztime=30s
func FuzzConfigParser(f *testing.F) {
	f.Add([]byte(`releases:
  owner: astral-sh
  repo: python-build-standalone
  timeout_seconds: 60
`))

	f.Add([]byte(`distributions:
  build_script: build.rs
  table_marker: const DEFAULT_CPYTHON_DISTRIBUTIONS
  end_marker: // Frozen
  platforms: [linux, windows, macos]
options:
  manifest: Cargo.toml
  manifest_path: package.metadata.cross.build.env.passthrough
  command_groups: [cache]
`))

	// Seed with edge cases
	f.Add([]byte(``))                                   // Empty input
	f.Add([]byte(`{}`))                                 // Empty JSON-style YAML
	f.Add([]byte(`[]`))                                 // Array instead of object
	f.Add([]byte("releases:\n  owner: a\n  bad"))       // Invalid indentation
	f.Add([]byte("options:\n  ignored: PYAPP_EXPOSE")) // Scalar instead of list

	parser := NewConfigParser()

	f.Fuzz(func(_ *testing.T, data []byte) {
		// The parser should handle any input without crashing
		_, _ = parser.Parse(data)
	})
}
