package stats

import (
	"context"
	"errors"
	"testing"

	domlib "github.com/denistssx-code/botanus/internal/domain/library"
	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
	libraryuc "github.com/denistssx-code/botanus/internal/usecase/library"
)

type mockCounter struct {
	countFn func(ctx context.Context) (int, error)
}

func (m *mockCounter) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockLibrary struct {
	listFn func(ctx context.Context) ([]libraryuc.Item, error)
}

func (m *mockLibrary) List(ctx context.Context) ([]libraryuc.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func item(plantID int64, typePlante string, quantity int) libraryuc.Item {
	return libraryuc.Item{
		Entry: domlib.Reconstruct(plantID, plantID, "", quantity, 0),
		Plant: domplant.Reconstruct(plantID, domplant.Attrs{
			NomFrancais: "x",
			TypePlante:  typePlante,
		}, 0),
	}
}

func TestStats_TotalTracksCatalogCount(t *testing.T) {
	svc := New(
		&mockCounter{countFn: func(_ context.Context) (int, error) { return 11, nil }},
		&mockLibrary{},
	)

	sum, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Total != 11 {
		t.Errorf("expected total 11, got %d", sum.Total)
	}
	if sum.LibraryEntries != 0 || sum.TotalPlants != 0 {
		t.Errorf("expected empty library stats, got %+v", sum)
	}
}

func TestStats_TypeBreakdownSumsQuantities(t *testing.T) {
	svc := New(
		&mockCounter{countFn: func(_ context.Context) (int, error) { return 3, nil }},
		&mockLibrary{listFn: func(_ context.Context) ([]libraryuc.Item, error) {
			return []libraryuc.Item{
				item(1, "Vivace", 2),
				item(2, "Vivace", 1),
				item(3, "Arbre", 4),
			}, nil
		}},
	)

	sum, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.LibraryEntries != 3 {
		t.Errorf("expected 3 entries, got %d", sum.LibraryEntries)
	}
	if sum.TotalPlants != 7 {
		t.Errorf("expected 7 plants, got %d", sum.TotalPlants)
	}
	if sum.Types["Vivace"] != 3 || sum.Types["Arbre"] != 4 {
		t.Errorf("unexpected type breakdown: %v", sum.Types)
	}
}

func TestStats_CounterError(t *testing.T) {
	svc := New(
		&mockCounter{countFn: func(_ context.Context) (int, error) {
			return 0, errors.New("connection lost")
		}},
		&mockLibrary{},
	)

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatal("expected error when counter fails")
	}
}
