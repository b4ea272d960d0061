package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// PathFilter reports whether a file path should be kept.
type PathFilter func(path string) bool

func KeepAll(string) bool {
	return true
}

// ParseExcludes builds a filter from doublestar glob patterns. Matching or
// invalid-on-this-path files are still counted upstream as parse input, they
// just never reach classification or aggregation.
func ParseExcludes(patterns []string) (PathFilter, error) {
	var globs []string

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if !doublestar.ValidatePathPattern(p) {
			return nil, errors.Errorf("invalid path glob: %v", p)
		}

		globs = append(globs, p)
	}

	if len(globs) == 0 {
		return KeepAll, nil
	}

	return func(path string) bool {
		for _, g := range globs {
			m, err := doublestar.PathMatch(g, path)
			if err == nil && m {
				return false
			}
		}
		return true
	}, nil
}
