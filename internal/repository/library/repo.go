package library

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	domlib "github.com/denistssx-code/botanus/internal/domain/library"
)

// store is the consumer interface for library persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo stores library entries as hashes keyed by a zero-padded
// sequence, one entry per plant: re-adding a plant merges by summing
// quantities instead of creating a second entry.
type Repo struct {
	store store
}

// New creates a library repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Add appends a library entry or, when the plant is already present,
// increments the existing entry's quantity. Returns the stored entry
// and whether it was merged into an existing one.
func (r *Repo) Add(ctx context.Context, e domlib.Entry) (domlib.Entry, bool, error) {
	existing, err := r.List(ctx)
	if err != nil {
		return domlib.Entry{}, false, fmt.Errorf("list entries: %w", err)
	}

	for _, ex := range existing {
		if ex.PlantID() != e.PlantID() {
			continue
		}
		merged := ex.WithQuantity(ex.Quantity() + e.Quantity())
		if err := r.store.HSet(ctx, entryKey(merged.ID()), entryToHash(merged)); err != nil {
			return domlib.Entry{}, false, fmt.Errorf("hset entry %d: %w", merged.ID(), err)
		}
		return merged, true, nil
	}

	id, err := r.store.Incr(ctx, seqKey)
	if err != nil {
		return domlib.Entry{}, false, fmt.Errorf("next entry id: %w", err)
	}

	saved := e.WithID(id)
	if err := r.store.HSet(ctx, entryKey(id), entryToHash(saved)); err != nil {
		return domlib.Entry{}, false, fmt.Errorf("hset entry %d: %w", id, err)
	}

	return saved, false, nil
}

// List returns all entries in insertion order.
func (r *Repo) List(ctx context.Context) ([]domlib.Entry, error) {
	keys, err := r.store.Scan(ctx, entryKeyPattern)
	if err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	if len(keys) == 0 {
		return []domlib.Entry{}, nil
	}
	sort.Strings(keys)

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi entries: %w", err)
	}

	entries := make([]domlib.Entry, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		e, err := entryFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse entry %s: %w", keys[i], err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Count returns the number of library entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, entryKeyPattern)
	if err != nil {
		return 0, fmt.Errorf("scan entries: %w", err)
	}
	return len(keys), nil
}

// Key patterns: botanus:library:{seq}, botanus:seq:library.

const (
	seqKey          = "botanus:seq:library"
	entryKeyPattern = "botanus:library:*"
)

func entryKey(id int64) string {
	return fmt.Sprintf("botanus:library:%08d", id)
}

// entryToHash converts a domain Entry to a map for HSET.
func entryToHash(e domlib.Entry) map[string]string {
	return map[string]string{
		"id":       strconv.FormatInt(e.ID(), 10),
		"plant_id": strconv.FormatInt(e.PlantID(), 10),
		"notes":    e.Notes(),
		"quantity": strconv.Itoa(e.Quantity()),
		"added_at": strconv.FormatInt(e.AddedAt(), 10),
	}
}

// entryFromHash hydrates a domain Entry from an HGETALL result map.
func entryFromHash(m map[string]string) (domlib.Entry, error) {
	id, err := strconv.ParseInt(m["id"], 10, 64)
	if err != nil {
		return domlib.Entry{}, fmt.Errorf("invalid id: %w", err)
	}
	plantID, err := strconv.ParseInt(m["plant_id"], 10, 64)
	if err != nil {
		return domlib.Entry{}, fmt.Errorf("invalid plant_id: %w", err)
	}
	quantity, err := strconv.Atoi(m["quantity"])
	if err != nil {
		return domlib.Entry{}, fmt.Errorf("invalid quantity: %w", err)
	}

	addedAt := int64(0)
	if s := m["added_at"]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			addedAt = parsed
		}
	}

	return domlib.Reconstruct(id, plantID, m["notes"], quantity, addedAt), nil
}
