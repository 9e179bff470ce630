package manifest

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// UnknownError reports a dataset name that matched nothing.
type UnknownError struct {
	Query      string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("manifest: unknown dataset %q, did you mean %q?", e.Query, e.Suggestion)
	}
	return fmt.Sprintf("manifest: unknown dataset %q", e.Query)
}

// Resolve finds the descriptor for query, matching the file name, the file
// name without extension, or the display name, ignoring case. When nothing
// matches, the error suggests the closest file name.
func Resolve(list []Descriptor, query string) (Descriptor, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, d := range list {
		if d.Filename == query {
			return d, nil
		}
	}
	for _, d := range list {
		name := strings.ToLower(d.Filename)
		if name == q || strings.TrimSuffix(name, ext) == q || strings.ToLower(d.DisplayName) == q {
			return d, nil
		}
	}

	best, bestDist := "", -1
	for _, d := range list {
		for _, candidate := range []string{strings.TrimSuffix(strings.ToLower(d.Filename), ext), strings.ToLower(d.DisplayName)} {
			dist := levenshtein.ComputeDistance(q, candidate)
			if bestDist < 0 || dist < bestDist {
				best, bestDist = d.Filename, dist
			}
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(q) {
		best = ""
	}
	return Descriptor{}, &UnknownError{Query: query, Suggestion: best}
}

func maxSuggestDistance(q string) int {
	if n := len(q) / 2; n > 2 {
		return n
	}
	return 2
}
