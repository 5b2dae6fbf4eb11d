package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/denistssx-code/botanus/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestHashRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.HSet(ctx, "botanus:plant:00000001", map[string]string{
		"nom_francais": "Olivier européen",
		"nom_latin":    "Olea europaea",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second HSet merges rather than replaces.
	if err := s.HSet(ctx, "botanus:plant:00000001", map[string]string{"prix": "45,90 €"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := s.HGetAll(ctx, "botanus:plant:00000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["nom_francais"] != "Olivier européen" || m["prix"] != "45,90 €" {
		t.Errorf("unexpected hash contents: %v", m)
	}
}

func TestScan_TrailingStar(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{
		"botanus:plant:00000001",
		"botanus:plant:00000002",
		"botanus:library:00000001",
	} {
		if err := s.HSet(ctx, key, map[string]string{"x": "y"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	keys, err := s.Scan(ctx, "botanus:plant:*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[1] != "botanus:plant:00000002" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestKVAndIncr(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("unexpected get result: %q, %v", got, err)
	}

	for want := int64(1); want <= 2; want++ {
		n, err := s.Incr(ctx, "botanus:seq:plant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Errorf("expected %d, got %d", want, n)
		}
	}
}
