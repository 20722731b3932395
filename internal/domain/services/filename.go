package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"golang.org/x/mod/semver"
)

const (
	implementationCPython = "cpython"
	variantFreethreaded   = "freethreaded"
	variantShared         = "shared"
	baselineCPUVariant    = "v1"
)

var (
	// archiveSuffixes are the only archive formats considered
	archiveSuffixes = []string{".tar.gz", ".tar.zst"}

	// buildFlavours are tokens describing the archive layout rather than the build itself
	buildFlavours = []string{"install_only_stripped", "full"}

	// archAliases maps upstream architecture names to the target ecosystem's names
	archAliases = map[string]string{
		"i686":    "x86",
		"ppc64le": "powerpc64",
	}

	pythonVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)((?:a|b|rc)\d+)?$`)
)

// ParseFilename decomposes a distribution asset name.
//
// Examples:
//
//	cpython-3.13.0+20241008-x86_64-pc-windows-msvc-install_only_stripped.tar.gz
//	cpython-3.13.0+20241008-aarch64-apple-darwin-freethreaded+pgo+lto-full.tar.zst
//	cpython-3.13.0+20241008-x86_64_v2-unknown-linux-gnu-install_only_stripped.tar.gz
//
// ok is false for names outside the recognised grammar, other implementations,
// prereleases and deprecated variants. An error is returned only when the target
// triple names no known platform.
func ParseFilename(name string) (parsed *entities.ParsedFilename, ok bool, err error) {
	if !hasArchiveSuffix(name) {
		return nil, false, nil
	}

	// Rely on the latest artifact naming only
	if !strings.HasSuffix(name, "-install_only_stripped.tar.gz") && !strings.Contains(name, variantFreethreaded) {
		return nil, false, nil
	}

	parts := strings.Split(removeExtensions(name, 2), "-")
	if len(parts) < 3 {
		return nil, false, nil
	}

	implementation, releaseData, remaining := parts[0], parts[1], parts[2:]
	if implementation != implementationCPython {
		return nil, false, nil
	}

	rawVersion, rawDate, found := strings.Cut(releaseData, "+")
	if !found {
		return nil, false, nil
	}

	version, numbers, ok := parsePythonVersion(rawVersion)
	if !ok || semver.Prerelease(version) != "" {
		return nil, false, nil
	}

	date, err := strconv.ParseInt(rawDate, 10, 64)
	if err != nil {
		return nil, false, nil
	}

	isApple := slices.Contains(remaining, "apple")
	variantStart := 4
	if isApple {
		variantStart = 3
	}
	if len(remaining) < variantStart {
		return nil, false, nil
	}

	targetParts := remaining[:variantStart]
	variantParts := slices.Clone(remaining[variantStart:])
	for _, flavour := range buildFlavours {
		if i := slices.Index(variantParts, flavour); i >= 0 {
			variantParts = slices.Delete(variantParts, i, i+1)
		}
	}

	var variants []string
	if len(variantParts) > 0 {
		variants = strings.Split(variantParts[0], "+")
	}

	// Windows no longer ships variants but still publishes `shared` as an alias
	if slices.Contains(targetParts, "windows") && slices.Contains(variants, variantShared) {
		return nil, false, nil
	}

	parsed = &entities.ParsedFilename{
		Implementation: implementation,
		Version:        version,
		Major:          numbers[0],
		Minor:          numbers[1],
		Micro:          numbers[2],
		ReleaseDate:    date,
		Arch:           targetParts[0],
	}
	if !isApple {
		parsed.ABI = targetParts[3]
	}
	if slices.Contains(variants, variantFreethreaded) {
		parsed.GILVariant = variantFreethreaded
	}

	switch {
	case slices.Contains(targetParts, "windows"):
		parsed.OS = entities.OSWindows
	case isApple:
		parsed.OS = entities.OSMacOS
	case slices.Contains(targetParts, "linux"):
		parsed.OS = entities.OSLinux
		if strings.Contains(parsed.Arch, "_v") {
			i := strings.LastIndex(parsed.Arch, "_")
			parsed.Arch, parsed.CPUVariant = parsed.Arch[:i], parsed.Arch[i+1:]
		} else if parsed.Arch == "x86_64" {
			// An empty variant would select the build-time default instead
			parsed.CPUVariant = baselineCPUVariant
		}
	default:
		return nil, false, ErrContract.New("unknown platform: %s", name)
	}

	if alias, found := archAliases[parsed.Arch]; found {
		parsed.Arch = alias
	}

	return parsed, true, nil
}

func hasArchiveSuffix(name string) bool {
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// removeExtensions strips the last n dot-delimited extensions
func removeExtensions(name string, n int) string {
	for range n {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// parsePythonVersion converts a release version such as 3.14.0rc1 into semver
// form (v3.14.0-rc1) and returns its numeric components
func parsePythonVersion(raw string) (string, [3]int, bool) {
	var numbers [3]int
	m := pythonVersionPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", numbers, false
	}
	for i := range numbers {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return "", numbers, false
		}
		numbers[i] = n
	}

	version := fmt.Sprintf("v%d.%d.%d", numbers[0], numbers[1], numbers[2])
	if m[4] != "" {
		version += "-" + m[4]
	}
	if !semver.IsValid(version) {
		return "", numbers, false
	}
	return version, numbers, true
}
