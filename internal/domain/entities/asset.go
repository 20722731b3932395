// Package entities defines core domain models and data structures.
package entities

// Asset represents a single downloadable build artifact attached to a release
type Asset struct {
	Name string
	URL  string
}
