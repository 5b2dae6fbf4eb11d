package catalog

import (
	"context"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// Repository defines the storage contract for catalog records.
type Repository interface {
	Save(ctx context.Context, p domplant.Plant) (domplant.Plant, bool, error)
	Get(ctx context.Context, id int64) (domplant.Plant, error)
	List(ctx context.Context) ([]domplant.Plant, error)
	Count(ctx context.Context) (int, error)
}
