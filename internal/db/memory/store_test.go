package memory

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/denistssx-code/botanus/internal/db"
)

func TestHashRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.HSet(ctx, "botanus:plant:00000001", map[string]string{"nom_francais": "Lavande vraie"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.HSet(ctx, "botanus:plant:00000001", map[string]string{"nom_latin": "Lavandula angustifolia"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := s.HGetAll(ctx, "botanus:plant:00000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["nom_francais"] != "Lavande vraie" || m["nom_latin"] != "Lavandula angustifolia" {
		t.Errorf("unexpected hash contents: %v", m)
	}
}

func TestHGetAll_MissingKeyIsEmptyMap(t *testing.T) {
	s := NewStore()

	m, err := s.HGetAll(context.Background(), "botanus:plant:missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestScan_MatchesPattern(t *testing.T) {
	s := NewStore()
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
	if len(keys) != 2 || keys[0] != "botanus:plant:00000001" || keys[1] != "botanus:plant:00000002" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestDelAndExists(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.HSet(ctx, "k", map[string]string{"a": "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := s.Exists(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected key to exist, ok=%v err=%v", ok, err)
	}
	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err = s.Exists(ctx, "k")
	if err != nil || ok {
		t.Fatalf("expected key to be gone, ok=%v err=%v", ok, err)
	}
}

func TestGet_MissingKey(t *testing.T) {
	s := NewStore()

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestIncr_Monotonic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.Incr(ctx, "botanus:seq:plant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
}
