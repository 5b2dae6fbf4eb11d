package catalog

import (
	"context"
	"fmt"

	"github.com/denistssx-code/botanus/internal/domain"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// Service handles catalog record operations: add, lookup, seeding.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and stores a new record. A record matching an existing
// one by name is deduped: the existing record is returned and created
// is false.
func (s *Service) Add(ctx context.Context, attrs domplant.Attrs) (domplant.Plant, bool, error) {
	p, err := domplant.New(attrs)
	if err != nil {
		return domplant.Plant{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidPlant, err)
	}

	saved, created, err := s.repo.Save(ctx, p)
	if err != nil {
		return domplant.Plant{}, false, fmt.Errorf("save plant: %w", err)
	}
	return saved, created, nil
}

// Get retrieves a record by ID.
func (s *Service) Get(ctx context.Context, id int64) (domplant.Plant, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domplant.Plant{}, fmt.Errorf("get plant: %w", err)
	}
	return p, nil
}

// List returns all records in insertion order.
func (s *Service) List(ctx context.Context) ([]domplant.Plant, error) {
	plants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}

// Seed stores the given records, skipping any already present (Save
// dedupes by name). Returns how many were actually added, so seeding
// is idempotent on persistent drivers.
func (s *Service) Seed(ctx context.Context, plants []domplant.Plant) (int, error) {
	added := 0
	for _, p := range plants {
		_, created, err := s.repo.Save(ctx, p)
		if err != nil {
			return added, fmt.Errorf("seed %q: %w", p.NomFrancais(), err)
		}
		if created {
			added++
		}
	}
	return added, nil
}
