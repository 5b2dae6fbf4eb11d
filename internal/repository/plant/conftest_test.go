package plant

import (
	"context"
	"testing"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	incrFn         func(ctx context.Context, key string) (int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) Incr(ctx context.Context, key string) (int64, error) {
	if m.incrFn != nil {
		return m.incrFn(ctx, key)
	}
	return 1, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testPlant(t *testing.T, id int64, nomFrancais, nomLatin string) domplant.Plant {
	t.Helper()
	return domplant.Reconstruct(id, domplant.Attrs{
		NomFrancais: nomFrancais,
		NomLatin:    nomLatin,
		Icon:        domplant.DefaultIcon,
	}, 1700000000000)
}

func testPlantHash(id, nomFrancais, nomLatin string) map[string]string {
	return map[string]string{
		"id":           id,
		"nom_francais": nomFrancais,
		"nom_latin":    nomLatin,
		"icon":         domplant.DefaultIcon,
		"featured":     "false",
		"created_at":   "1700000000000",
	}
}
