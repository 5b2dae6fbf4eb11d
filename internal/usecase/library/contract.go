package library

import (
	"context"

	domlib "github.com/denistssx-code/botanus/internal/domain/library"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// EntryRepository defines the storage contract for library entries.
type EntryRepository interface {
	Add(ctx context.Context, e domlib.Entry) (domlib.Entry, bool, error)
	List(ctx context.Context) ([]domlib.Entry, error)
	Count(ctx context.Context) (int, error)
}

// PlantStore resolves and stores catalog records for library entries.
type PlantStore interface {
	Save(ctx context.Context, p domplant.Plant) (domplant.Plant, bool, error)
	Get(ctx context.Context, id int64) (domplant.Plant, error)
}
