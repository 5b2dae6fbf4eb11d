package plant

import (
	"context"
	"errors"
	"testing"

	"github.com/denistssx-code/botanus/internal/domain"
)

// --- Save ---

func TestSave_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.incrFn = func(_ context.Context, key string) (int64, error) {
		if key != "botanus:seq:plant" {
			t.Errorf("unexpected seq key: %s", key)
		}
		return 3, nil
	}
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		if key != "botanus:plant:00000003" {
			t.Errorf("unexpected key: %s", key)
		}
		if fields["nom_francais"] != "Lavande vraie" {
			t.Errorf("unexpected nom_francais: %s", fields["nom_francais"])
		}
		return nil
	}

	saved, created, err := repo.Save(ctx, testPlant(t, 0, "Lavande vraie", "Lavandula angustifolia"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if saved.ID() != 3 {
		t.Errorf("expected id 3, got %d", saved.ID())
	}
}

func TestSave_DedupesSameSpecies(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"botanus:plant:00000001"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, _ []string) ([]map[string]string, error) {
		return []map[string]string{
			testPlantHash("1", "Lavande vraie", "Lavandula angustifolia"),
		}, nil
	}
	ms.incrFn = func(_ context.Context, _ string) (int64, error) {
		t.Error("Incr must not be called for a duplicate")
		return 0, nil
	}

	saved, created, err := repo.Save(ctx, testPlant(t, 0, "Lavande vraie", "Lavandula angustifolia 'Hidcote'"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for duplicate")
	}
	if saved.ID() != 1 {
		t.Errorf("expected existing id 1, got %d", saved.ID())
	}
}

func TestSave_HSetError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hsetFn = func(_ context.Context, _ string, _ map[string]string) error {
		return errors.New("connection lost")
	}

	_, _, err := repo.Save(ctx, testPlant(t, 0, "Rose de Damas", "Rosa damascena"))
	if err == nil {
		t.Fatal("expected error on HSET failure")
	}
}

// --- Get ---

func TestGet_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "botanus:plant:00000002" {
			t.Errorf("unexpected key: %s", key)
		}
		return testPlantHash("2", "Rose de Damas", "Rosa damascena"), nil
	}

	p, err := repo.Get(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.NomFrancais() != "Rose de Damas" || p.ID() != 2 {
		t.Errorf("unexpected plant: %+v", p)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, domain.ErrPlantNotFound) {
		t.Fatalf("expected ErrPlantNotFound, got %v", err)
	}
}

// --- List / Count ---

func TestList_InsertionOrder(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	// Scan returns keys unordered, like redis SCAN.
	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != "botanus:plant:*" {
			t.Errorf("unexpected pattern: %s", pattern)
		}
		return []string{"botanus:plant:00000002", "botanus:plant:00000001"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if keys[0] != "botanus:plant:00000001" {
			t.Errorf("expected sorted keys, got %v", keys)
		}
		return []map[string]string{
			testPlantHash("1", "Lavande vraie", "Lavandula angustifolia"),
			testPlantHash("2", "Rose de Damas", "Rosa damascena"),
		}, nil
	}

	plants, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(plants))
	}
	if plants[0].NomFrancais() != "Lavande vraie" || plants[1].NomFrancais() != "Rose de Damas" {
		t.Errorf("unexpected order: %s, %s", plants[0].NomFrancais(), plants[1].NomFrancais())
	}
}

func TestList_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	plants, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 0 {
		t.Errorf("expected empty list, got %d", len(plants))
	}
}

func TestCount(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"botanus:plant:00000001", "botanus:plant:00000002"}, nil
	}

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}
}
