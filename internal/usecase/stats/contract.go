package stats

import (
	"context"

	libraryuc "github.com/denistssx-code/botanus/internal/usecase/library"
)

// PlantCounter reports the catalog size.
type PlantCounter interface {
	Count(ctx context.Context) (int, error)
}

// LibraryReader lists library entries joined with their plants.
type LibraryReader interface {
	List(ctx context.Context) ([]libraryuc.Item, error)
}
