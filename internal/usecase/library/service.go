package library

import (
	"context"
	"fmt"

	"github.com/denistssx-code/botanus/internal/domain"
	domlib "github.com/denistssx-code/botanus/internal/domain/library"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// Item is a library entry joined with its catalog record.
type Item struct {
	Entry domlib.Entry
	Plant domplant.Plant
}

// Service handles the personal library: saved plants with notes and
// quantities.
type Service struct {
	entries EntryRepository
	plants  PlantStore
}

// New creates a library service.
func New(entries EntryRepository, plants PlantStore) *Service {
	return &Service{entries: entries, plants: plants}
}

// Add saves the plant to the catalog (deduped by name) and records a
// library entry for it. Re-adding a plant already in the library merges
// by summing quantities.
func (s *Service) Add(ctx context.Context, attrs domplant.Attrs, notes string, quantity int) (Item, error) {
	p, err := domplant.New(attrs)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %w", domain.ErrInvalidPlant, err)
	}

	saved, _, err := s.plants.Save(ctx, p)
	if err != nil {
		return Item{}, fmt.Errorf("save plant: %w", err)
	}

	entry, err := domlib.New(saved.ID(), notes, quantity)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
	}

	stored, _, err := s.entries.Add(ctx, entry)
	if err != nil {
		return Item{}, fmt.Errorf("add entry: %w", err)
	}

	return Item{Entry: stored, Plant: saved}, nil
}

// AddByID records a library entry for an existing catalog record.
func (s *Service) AddByID(ctx context.Context, plantID int64, notes string, quantity int) (Item, error) {
	p, err := s.plants.Get(ctx, plantID)
	if err != nil {
		return Item{}, fmt.Errorf("get plant: %w", err)
	}

	entry, err := domlib.New(plantID, notes, quantity)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
	}

	stored, _, err := s.entries.Add(ctx, entry)
	if err != nil {
		return Item{}, fmt.Errorf("add entry: %w", err)
	}

	return Item{Entry: stored, Plant: p}, nil
}

// List returns all entries in insertion order, joined with their
// catalog records.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		p, err := s.plants.Get(ctx, e.PlantID())
		if err != nil {
			return nil, fmt.Errorf("get plant %d: %w", e.PlantID(), err)
		}
		items = append(items, Item{Entry: e, Plant: p})
	}
	return items, nil
}
