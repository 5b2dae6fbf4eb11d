package search

import (
	"context"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// PlantLister reads catalog records in insertion order.
type PlantLister interface {
	List(ctx context.Context) ([]domplant.Plant, error)
}
