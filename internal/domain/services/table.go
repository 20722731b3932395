package services

import (
	"fmt"
	"strings"

	"github.com/ochairo/pyapp-maint/internal/domain/entities"
)

// Region is the span of generated lines inside a source text.
// Lines Start and End hold the markers and are kept.
type Region struct {
	Start int
	End   int
}

// TableRenderer renders distribution entries into a marker-delimited region
type TableRenderer struct {
	startMarker string
	endMarker   string
}

// NewTableRenderer creates a renderer for the region opened by a line starting
// with startMarker and closed by a line equal to endMarker once trimmed
func NewTableRenderer(startMarker, endMarker string) *TableRenderer {
	return &TableRenderer{
		startMarker: startMarker,
		endMarker:   endMarker,
	}
}

// Locate finds the generated region in text
func (r *TableRenderer) Locate(text string) (Region, error) {
	return r.locate(splitLines(text))
}

func (r *TableRenderer) locate(lines []string) (Region, error) {
	start := -1
	for i, line := range lines {
		if start == -1 {
			if strings.HasPrefix(line, r.startMarker) {
				start = i
			}
			continue
		}
		if strings.TrimSpace(line) == r.endMarker {
			return Region{Start: start, End: i}, nil
		}
	}

	if start == -1 {
		return Region{}, ErrContract.New("table marker %q not found", r.startMarker)
	}
	return Region{}, ErrContract.New("end marker %q not found after line %d", r.endMarker, start+1)
}

// RenderRecords renders entries in order, two lines per entry
func (r *TableRenderer) RenderRecords(entries []entities.DistributionEntry) []string {
	lines := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		lines = append(lines,
			fmt.Sprintf(`    ("%s", "%s", "%s", "%s", "%s", "%s",`,
				e.Key.MinorVersion(), e.Key.OS, e.Key.Arch, e.Key.ABI, e.Key.CPUVariant, e.Key.GILVariant),
			fmt.Sprintf(`        "%s"),`, e.URL),
		)
	}
	return lines
}

// Update replaces every line strictly between the markers with the rendered
// entries. All other content is kept and the result ends with one newline.
func (r *TableRenderer) Update(text string, entries []entities.DistributionEntry) (string, error) {
	lines := splitLines(text)
	region, err := r.locate(lines)
	if err != nil {
		return "", err
	}

	records := r.RenderRecords(entries)
	updated := make([]string, 0, len(lines)-(region.End-region.Start-1)+len(records))
	updated = append(updated, lines[:region.Start+1]...)
	updated = append(updated, records...)
	updated = append(updated, lines[region.End:]...)

	return strings.Join(updated, "\n") + "\n", nil
}

// splitLines splits text into lines, ignoring a single trailing newline
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
