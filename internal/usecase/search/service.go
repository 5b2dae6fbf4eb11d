package search

import (
	"context"
	"fmt"
	"strings"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// Service answers free-text catalog queries. A record matches when the
// folded query is a substring of its folded French or Latin name; the
// empty query matches everything. Results keep store insertion order,
// with no ranking. The catalog is small, so this is a linear scan.
type Service struct {
	plants PlantLister
}

// New creates a search service.
func New(plants PlantLister) *Service {
	return &Service{plants: plants}
}

// Search returns the records matching query, in insertion order.
func (s *Service) Search(ctx context.Context, query string) ([]domplant.Plant, error) {
	all, err := s.plants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	q := fold(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	results := make([]domplant.Plant, 0, len(all))
	for _, p := range all {
		if matches(p, q) {
			results = append(results, p)
		}
	}
	return results, nil
}

// matches reports whether the folded query is a substring of either
// folded name.
func matches(p domplant.Plant, foldedQuery string) bool {
	return strings.Contains(fold(p.NomFrancais()), foldedQuery) ||
		strings.Contains(fold(p.NomLatin()), foldedQuery)
}
