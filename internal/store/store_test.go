package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"groove/internal/store"
	"groove/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if err := st.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	var count int
	err := st.DB().QueryRow(
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name IN ('records', 'orders')",
	).Scan(&count)
	if err != nil {
		t.Fatalf("inspect schema: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected records and orders tables, found %d", count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	if err := second.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := st.DB().Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err = store.Open(cfg)
	if !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestUniqueIndexEnforced(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	insert := `INSERT INTO records
        (id, artist, album, price_cents, quantity, format, category, tracklist, created_at, updated_at)
        VALUES (?, 'Artist', 'Album', 100, 1, 'vinyl', 'rock', '[]', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`
	if _, err := st.DB().Exec(insert, "id-1"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := st.DB().Exec(insert, "id-2"); err == nil {
		t.Fatal("expected unique index violation")
	}
}

func TestPathReportsLocation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if st.Path() != filepath.Join(cfg.Paths.DataDir, "groove.db") {
		t.Fatalf("unexpected path: %q", st.Path())
	}
}
