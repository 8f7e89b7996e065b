package history_test

import (
	"context"
	"testing"
	"time"

	"importcut/internal/history"
	"importcut/internal/testsupport"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	session, err := store.Record(ctx, history.Session{
		DisplayName: "Sea Side 3 V2",
		SourceURL:   "file:///exports/sea_side_3-v2.edl",
		CutPath:     "/exports/sea_side_3-v2.edl",
		MediaPath:   "/exports/sea_side_3-v2.mov",
		FrameRate:   24,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected assigned session ID")
	}
	if session.CreatedAt.IsZero() {
		t.Fatal("expected assigned timestamp")
	}

	fetched, err := store.GetByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected session to be found")
	}
	if fetched.DisplayName != "Sea Side 3 V2" || fetched.MediaPath != "/exports/sea_side_3-v2.mov" {
		t.Fatalf("unexpected session: %+v", fetched)
	}
	if fetched.FrameRate != 24 {
		t.Fatalf("unexpected frame rate: %v", fetched.FrameRate)
	}
}

func TestRecordRequiresCutPath(t *testing.T) {
	store := openStore(t)
	if _, err := store.Record(context.Background(), history.Session{DisplayName: "empty"}); err == nil {
		t.Fatal("expected error for missing cut path")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		_, err := store.Record(ctx, history.Session{
			DisplayName: name,
			CutPath:     "/exports/" + name + ".edl",
			FrameRate:   24,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	sessions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].DisplayName != "third" || sessions[2].DisplayName != "first" {
		t.Fatalf("unexpected order: %s, %s, %s", sessions[0].DisplayName, sessions[1].DisplayName, sessions[2].DisplayName)
	}
}

func TestGetByIDMissing(t *testing.T) {
	store := openStore(t)
	session, err := store.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil for missing session, got %+v", session)
	}
}

func TestClearAndCount(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		if _, err := store.Record(ctx, history.Session{DisplayName: name, CutPath: "/x/" + name + ".edl", FrameRate: 24}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 sessions, got %d", count)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	count, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty history, got %d", count)
	}
}
