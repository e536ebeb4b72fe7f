package jsonfile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"racecontrol/internal/domain"
	"racecontrol/internal/storage/jsonfile"
	"racecontrol/pkg/e"
)

func newStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()
	dir := t.TempDir()
	incidentsPath := filepath.Join(dir, "incidents.json")
	usersPath := filepath.Join(dir, "users.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return jsonfile.NewStore(incidentsPath, usersPath, logger), dir
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	incidents, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(incidents) != 0 {
		t.Fatalf("expected empty collection, got %d", len(incidents))
	}
}

func TestStore_SaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	want := []domain.Incident{
		{
			ID:           "a",
			Type:         domain.TypeCollision,
			RaceCategory: domain.CategoryF1,
			Severity:     domain.SeverityHigh,
			Status:       domain.StatusPending,
			Location:     "Monte Carlo",
			Circuit:      "Monaco",
			Drivers:      []string{"Max Verstappen"},
			Teams:        []string{"Red Bull"},
			LapNumber:    14,
			RaceTime:     "00:42:10",
			Description:  "contact at the hairpin",
			Timestamp:    "2025-05-25T14:03:00Z",
		},
	}

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SaveOverwritesWholeDocument(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []domain.Incident{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(ctx, []domain.Incident{{ID: "c"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected only c, got %+v", got)
	}
}

func TestStore_LoadCorruptFileIsStoreError(t *testing.T) {
	t.Parallel()

	store, dir := newStore(t)
	if err := os.WriteFile(filepath.Join(dir, "incidents.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := store.Load(context.Background()); !errors.Is(err, e.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestStore_LoadUsers(t *testing.T) {
	t.Parallel()

	store, dir := newStore(t)
	users := `[{"id":"u1","name":"Race Control","email":"rc@example.com","password":"pw","role":"admin","token":"tok"}]`
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(users), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := store.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("load users failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "rc@example.com" {
		t.Fatalf("unexpected users: %+v", got)
	}
}
