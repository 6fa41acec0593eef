// Package verbosity defines the lookup policies of the delete index.
package verbosity

type Verbosity int

const (
	// Top returns only the single best suggestion.
	Top Verbosity = iota
	// Closest returns all suggestions of the smallest edit distance found.
	Closest
	// All returns every suggestion within the maximum edit distance,
	// with no early termination. Slower.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	}
	return "unknown"
}
