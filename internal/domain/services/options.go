package services

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
)

var (
	// optionPattern matches quoted option names; internal PYAPP__ names are excluded
	optionPattern = regexp.MustCompile(`"(PYAPP_[^_].+?)"`)

	// exposeAnnotationPattern matches a command whose visibility is driven by an option
	exposeAnnotationPattern = regexp.MustCompile(`(?m)^#\[command\(hide = env!\("(PYAPP_EXPOSE_.+?)"\)`)
)

// OptionService extracts and compares configuration option names
type OptionService struct {
	ignored []string
}

// NewOptionService creates an option service that drops the given names from
// the available set
func NewOptionService(ignored []string) *OptionService {
	return &OptionService{ignored: ignored}
}

// ExtractOptions returns every option name referenced in a build script
func (s *OptionService) ExtractOptions(source string) []string {
	matches := optionPattern.FindAllStringSubmatch(source, -1)
	options := make([]string, 0, len(matches))
	for _, m := range matches {
		options = append(options, m[1])
	}
	return options
}

// ExtractExposedOption returns the option controlling a command's visibility,
// taken from the first annotation in the command source
func (s *OptionService) ExtractExposedOption(source string) (string, bool) {
	m := exposeAnnotationPattern.FindStringSubmatch(source)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Expected deduplicates the available names, drops ignored ones and sorts the rest
func (s *OptionService) Expected(available []string) []string {
	expected := make([]string, 0, len(available))
	for _, option := range available {
		if slices.Contains(s.ignored, option) {
			continue
		}
		expected = append(expected, option)
	}
	slices.Sort(expected)
	return slices.Compact(expected)
}

// Compare pairs the expected names with the declared ones
func (s *OptionService) Compare(available, defined []string) *entities.OptionDiff {
	return &entities.OptionDiff{
		Expected: s.Expected(available),
		Defined:  defined,
	}
}

// FormatDiff renders a two-column table of expected and defined names, one row
// per index of the longer list
func FormatDiff(diff *entities.OptionDiff) string {
	leftPadding := longest(diff.Expected)
	rightPadding := longest(diff.Defined)

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | Defined\n", leftPadding, "Expected")
	b.WriteString(strings.Repeat("-", leftPadding) + "-+-" + strings.Repeat("-", rightPadding) + "\n")

	rows := max(len(diff.Expected), len(diff.Defined))
	for i := range rows {
		fmt.Fprintf(&b, "%-*s | %s\n", leftPadding, at(diff.Expected, i), at(diff.Defined, i))
	}
	return b.String()
}

func longest(values []string) int {
	n := 0
	for _, v := range values {
		n = max(n, len(v))
	}
	return n
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
