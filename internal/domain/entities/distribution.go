package entities

import "fmt"

// Operating systems recognised in distribution target triples
const (
	OSLinux   = "linux"
	OSWindows = "windows"
	OSMacOS   = "macos"
)

// ParsedFilename holds the fields decomposed from a distribution asset name
type ParsedFilename struct {
	Implementation string
	Version        string // canonical semantic version, e.g. v3.13.0
	Major          int
	Minor          int
	Micro          int
	ReleaseDate    int64
	OS             string
	Arch           string
	ABI            string
	CPUVariant     string // e.g. v1..v4 on x86_64 Linux
	GILVariant     string // "freethreaded" or empty
}

// Key returns the slot this parsed asset resolves
func (p *ParsedFilename) Key() DistributionKey {
	return DistributionKey{
		Major:      p.Major,
		Minor:      p.Minor,
		OS:         p.OS,
		Arch:       p.Arch,
		ABI:        p.ABI,
		CPUVariant: p.CPUVariant,
		GILVariant: p.GILVariant,
	}
}

// DistributionKey uniquely identifies a slot in the generated table
type DistributionKey struct {
	Major      int
	Minor      int
	OS         string
	Arch       string
	ABI        string
	CPUVariant string
	GILVariant string
}

// MinorVersion returns the release line in MAJOR.MINOR form
func (k DistributionKey) MinorVersion() string {
	return fmt.Sprintf("%d.%d", k.Major, k.Minor)
}

// DistributionEntry is the asset selected for a DistributionKey
type DistributionEntry struct {
	Key         DistributionKey
	Version     string
	ReleaseDate int64
	URL         string
}
