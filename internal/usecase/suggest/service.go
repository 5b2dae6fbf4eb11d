package suggest

import (
	"context"
	"fmt"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// DefaultLimit caps the suggested subset when no limit is configured.
const DefaultLimit = 4

// PlantLister reads catalog records in insertion order.
type PlantLister interface {
	List(ctx context.Context) ([]domplant.Plant, error)
}

// Service returns the suggested subset of the catalog. The rule is
// deterministic: records flagged as featured, in store order, capped
// at the configured limit.
type Service struct {
	plants PlantLister
	limit  int
}

// New creates a suggestion service.
func New(plants PlantLister, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{plants: plants, limit: limit}
}

// Suggestions returns the featured records in insertion order.
func (s *Service) Suggestions(ctx context.Context) ([]domplant.Plant, error) {
	all, err := s.plants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	out := make([]domplant.Plant, 0, s.limit)
	for _, p := range all {
		if !p.Featured() {
			continue
		}
		out = append(out, p)
		if len(out) == s.limit {
			break
		}
	}
	return out, nil
}
