package stats

import (
	"context"
	"fmt"
)

// Summary aggregates catalog and library counts. Total always equals
// the catalog size at call time; the remaining fields describe the
// library.
type Summary struct {
	Total          int
	LibraryEntries int
	TotalPlants    int
	Types          map[string]int
	Reminders      int
}

// Service derives summary statistics from the catalog and the library.
type Service struct {
	plants  PlantCounter
	library LibraryReader
}

// New creates a stats service.
func New(plants PlantCounter, library LibraryReader) *Service {
	return &Service{plants: plants, library: library}
}

// Stats computes the current summary: catalog total, library entry and
// plant counts, and library quantities grouped by plant type.
func (s *Service) Stats(ctx context.Context) (Summary, error) {
	total, err := s.plants.Count(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count plants: %w", err)
	}

	items, err := s.library.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list library: %w", err)
	}

	types := map[string]int{}
	totalPlants := 0
	for _, it := range items {
		totalPlants += it.Entry.Quantity()
		if t := it.Plant.TypePlante(); t != "" {
			types[t] += it.Entry.Quantity()
		}
	}

	return Summary{
		Total:          total,
		LibraryEntries: len(items),
		TotalPlants:    totalPlants,
		Types:          types,
	}, nil
}
