package entities

import "slices"

// OptionDiff is the outcome of comparing expected option names with the declared ones
type OptionDiff struct {
	Expected []string
	Defined  []string
}

// Matches reports whether both lists are identical, including order
func (d *OptionDiff) Matches() bool {
	return slices.Equal(d.Expected, d.Defined)
}
