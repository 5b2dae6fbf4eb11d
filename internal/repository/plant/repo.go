package plant

import (
	"context"
	"fmt"
	"sort"

	"github.com/denistssx-code/botanus/internal/domain"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// store is the consumer interface for plant persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo implements usecase catalog/search storage contracts. Records are
// hashes keyed by a zero-padded sequence number, so lexical key order
// is insertion order. There is no delete or update: the catalog only
// grows within a process lifetime.
type Repo struct {
	store store
}

// New creates a plant repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save appends a plant, assigning the next insertion-order ID. When a
// record with the same French name and normalized Latin name already
// exists, the existing record is returned instead (created=false).
func (r *Repo) Save(ctx context.Context, p domplant.Plant) (domplant.Plant, bool, error) {
	existing, err := r.List(ctx)
	if err != nil {
		return domplant.Plant{}, false, fmt.Errorf("list plants: %w", err)
	}
	for _, e := range existing {
		if e.SameAs(p) {
			return e, false, nil
		}
	}

	id, err := r.store.Incr(ctx, seqKey)
	if err != nil {
		return domplant.Plant{}, false, fmt.Errorf("next plant id: %w", err)
	}

	saved := p.WithID(id)
	if err := r.store.HSet(ctx, plantKey(id), plantToHash(saved)); err != nil {
		return domplant.Plant{}, false, fmt.Errorf("hset plant %d: %w", id, err)
	}

	return saved, true, nil
}

// Get retrieves a plant by ID.
func (r *Repo) Get(ctx context.Context, id int64) (domplant.Plant, error) {
	m, err := r.store.HGetAll(ctx, plantKey(id))
	if err != nil {
		return domplant.Plant{}, fmt.Errorf("hgetall plant %d: %w", id, err)
	}
	if len(m) == 0 {
		return domplant.Plant{}, domain.ErrPlantNotFound
	}
	return plantFromHash(m)
}

// List returns all plants in insertion order.
func (r *Repo) List(ctx context.Context) ([]domplant.Plant, error) {
	keys, err := r.store.Scan(ctx, plantKeyPattern)
	if err != nil {
		return nil, fmt.Errorf("scan plants: %w", err)
	}
	if len(keys) == 0 {
		return []domplant.Plant{}, nil
	}
	sort.Strings(keys)

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi plants: %w", err)
	}

	plants := make([]domplant.Plant, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		p, err := plantFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse plant %s: %w", keys[i], err)
		}
		plants = append(plants, p)
	}

	return plants, nil
}

// Count returns the number of stored plants.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, plantKeyPattern)
	if err != nil {
		return 0, fmt.Errorf("scan plants: %w", err)
	}
	return len(keys), nil
}

// Key patterns: botanus:plant:{seq}, botanus:seq:plant.

const (
	seqKey          = "botanus:seq:plant"
	plantKeyPattern = "botanus:plant:*"
)

func plantKey(id int64) string {
	return fmt.Sprintf("botanus:plant:%08d", id)
}
