package services

import (
	"strings"
	"testing"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
)

const buildScript = `use std::env;

// Python version in the form MAJOR.MINOR
#[rustfmt::skip]
const DEFAULT_CPYTHON_DISTRIBUTIONS: &[(&str, &str, &str, &str, &str, &str)] = &[
    ("3.8", "linux", "x86_64", "gnu", "v1",
        "https://example.com/stale.tar.gz"),
    // Frozen
    ("3.7", "linux", "x86_64", "gnu", "", "https://example.com/frozen.tar.zst"),
];

fn main() {}
`

func sampleEntries() []entities.DistributionEntry {
	return []entities.DistributionEntry{
		{
			Key: entities.DistributionKey{Major: 3, Minor: 13, OS: "linux", Arch: "x86_64", ABI: "gnu", CPUVariant: "v2", GILVariant: "freethreaded"},
			URL: "https://example.com/cpython-3.13.0%2B20241008-x86_64_v2-unknown-linux-gnu-freethreaded%2Bpgo%2Blto-full.tar.zst",
		},
		{
			Key: entities.DistributionKey{Major: 3, Minor: 13, OS: "macos", Arch: "aarch64"},
			URL: "https://example.com/cpython-3.13.0%2B20241008-aarch64-apple-darwin-install_only_stripped.tar.gz",
		},
	}
}

func TestTableRenderer_RenderRecords(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	got := renderer.RenderRecords(sampleEntries())
	want := []string{
		`    ("3.13", "linux", "x86_64", "gnu", "v2", "freethreaded",`,
		`        "https://example.com/cpython-3.13.0%2B20241008-x86_64_v2-unknown-linux-gnu-freethreaded%2Bpgo%2Blto-full.tar.zst"),`,
		`    ("3.13", "macos", "aarch64", "", "", "",`,
		`        "https://example.com/cpython-3.13.0%2B20241008-aarch64-apple-darwin-install_only_stripped.tar.gz"),`,
	}

	if len(got) != len(want) {
		t.Fatalf("RenderRecords() returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTableRenderer_Update(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	got, err := renderer.Update(buildScript, sampleEntries())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := `use std::env;

// Python version in the form MAJOR.MINOR
#[rustfmt::skip]
const DEFAULT_CPYTHON_DISTRIBUTIONS: &[(&str, &str, &str, &str, &str, &str)] = &[
    ("3.13", "linux", "x86_64", "gnu", "v2", "freethreaded",
        "https://example.com/cpython-3.13.0%2B20241008-x86_64_v2-unknown-linux-gnu-freethreaded%2Bpgo%2Blto-full.tar.zst"),
    ("3.13", "macos", "aarch64", "", "", "",
        "https://example.com/cpython-3.13.0%2B20241008-aarch64-apple-darwin-install_only_stripped.tar.gz"),
    // Frozen
    ("3.7", "linux", "x86_64", "gnu", "", "https://example.com/frozen.tar.zst"),
];

fn main() {}
`
	if got != want {
		t.Errorf("Update() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderer_Update_Idempotent(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	first, err := renderer.Update(buildScript, sampleEntries())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	second, err := renderer.Update(first, sampleEntries())
	if err != nil {
		t.Fatalf("Update() second run error = %v", err)
	}

	if first != second {
		t.Errorf("second Update() changed the output:\n%s\nvs\n%s", first, second)
	}
}

func TestTableRenderer_Update_EmptyTable(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	got, err := renderer.Update(buildScript, nil)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if strings.Contains(got, "stale.tar.gz") {
		t.Error("Update() kept a stale record")
	}
	if !strings.Contains(got, "= &[\n    // Frozen\n") {
		t.Errorf("Update() did not collapse the region:\n%s", got)
	}
}

func TestTableRenderer_Update_TrailingNewline(t *testing.T) {
	renderer := NewTableRenderer("const TABLE", "// Frozen")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"missing newline is added", "const TABLE = &[\n// Frozen\n];", "const TABLE = &[\n// Frozen\n];\n"},
		{"single newline is kept", "const TABLE = &[\n// Frozen\n];\n", "const TABLE = &[\n// Frozen\n];\n"},
		{"trailing blank line is kept", "const TABLE = &[\n// Frozen\n];\n\n", "const TABLE = &[\n// Frozen\n];\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.Update(tt.text, nil)
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Update() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableRenderer_Locate_MissingMarkers(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	tests := []struct {
		name string
		text string
	}{
		{"no table", "fn main() {}\n"},
		{"renamed table", "const CPYTHON_DISTRIBUTIONS: &[()] = &[\n    // Frozen\n];\n"},
		{"no end marker", "const DEFAULT_CPYTHON_DISTRIBUTIONS: &[()] = &[\n];\n"},
		{"end marker before table", "// Frozen\nconst DEFAULT_CPYTHON_DISTRIBUTIONS: &[()] = &[\n];\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderer.Locate(tt.text)
			if !ErrContract.Has(err) {
				t.Errorf("Locate() error = %v, want upstream contract error", err)
			}
			if _, err := renderer.Update(tt.text, sampleEntries()); err == nil {
				t.Error("Update() should fail when markers are missing")
			}
		})
	}
}

func TestTableRenderer_Locate(t *testing.T) {
	renderer := NewTableRenderer("const DEFAULT_CPYTHON_DISTRIBUTIONS", "// Frozen")

	region, err := renderer.Locate(buildScript)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if region.Start != 4 || region.End != 7 {
		t.Errorf("Locate() = %+v, want {Start:4 End:7}", region)
	}
}
