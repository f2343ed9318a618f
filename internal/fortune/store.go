package fortune

import (
	"fmt"
	"slices"

	"github.com/harrison/fortuner/internal/fileutil"
)

// Store is an ordered, read-only collection of fortunes.
type Store struct {
	fortunes []Fortune
}

// NewStore creates a Store holding a copy of fortunes in the given order.
func NewStore(fortunes []Fortune) *Store {
	return &Store{fortunes: slices.Clone(fortunes)}
}

// LoadStore resolves sources into fortune files and parses all of them.
// The ParseResult is returned alongside so callers can report dropped records.
func LoadStore(sources []string) (*Store, *ParseResult, error) {
	files, err := fileutil.ResolvePaths(sources)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve sources: %w", err)
	}

	result, err := ParseFiles(files)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read fortunes: %w", err)
	}

	return &Store{fortunes: result.Fortunes}, result, nil
}

// All returns the fortunes in their original order.
func (s *Store) All() []Fortune {
	if s == nil {
		return nil
	}
	return slices.Clone(s.fortunes)
}

// Len returns the number of fortunes in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fortunes)
}
