package librarydb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"marquee/internal/state"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
	return store
}

func TestUpsertAndLoadItems(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	poster := "https://images.example/tt1.jpg"
	watched := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	item := state.LibraryItem{
		ID:     "tt1",
		Name:   "Example",
		Type:   "movie",
		Poster: &poster,
		MTime:  time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC),
		State: state.LibraryItemState{
			TimeOffset:   3600,
			Duration:     7200,
			TimesWatched: 2,
			LastWatched:  &watched,
		},
	}
	if err := store.UpsertItem(ctx, item); err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	index, err := store.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	got, ok := index["tt1"]
	if !ok {
		t.Fatalf("item missing from index")
	}
	if got.Name != "Example" || got.Poster == nil || *got.Poster != poster {
		t.Fatalf("item = %+v", got)
	}
	if !got.MTime.Equal(item.MTime) {
		t.Fatalf("mtime = %v, want %v", got.MTime, item.MTime)
	}
	if got.State.TimesWatched != 2 || got.State.LastWatched == nil || !got.State.LastWatched.Equal(watched) {
		t.Fatalf("state = %+v", got.State)
	}
	if !index.Has("tt1") {
		t.Fatalf("Has(tt1) = false")
	}
}

func TestTombstoneItem(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertItem(ctx, state.LibraryItem{ID: "tt1", Name: "Example", Type: "movie", MTime: time.Now()}); err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}
	if err := store.TombstoneItem(ctx, "tt1"); err != nil {
		t.Fatalf("TombstoneItem: %v", err)
	}

	index, err := store.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	got, ok := index["tt1"]
	if !ok || !got.Removed {
		t.Fatalf("tombstoned item = %+v, want retained with removed=true", got)
	}
	if index.Has("tt1") {
		t.Fatalf("Has(tt1) = true for tombstoned entry")
	}

	if err := store.TombstoneItem(ctx, "missing"); err == nil {
		t.Fatalf("TombstoneItem accepted an unknown id")
	}
}

func TestUpsertItemRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)
	if err := store.UpsertItem(context.Background(), state.LibraryItem{}); err == nil {
		t.Fatalf("UpsertItem accepted an empty id")
	}
}

func TestNotificationsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	released := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []state.NotificationItem{
		{MetaID: "tt1", VideoID: "tt1:1:1", VideoReleased: released},
		{MetaID: "tt1", VideoID: "tt1:1:2", VideoReleased: released.Add(7 * 24 * time.Hour)},
		{MetaID: "tt2", VideoID: "tt2:1:1", VideoReleased: released},
	}
	for _, record := range records {
		if err := store.UpsertNotification(ctx, record); err != nil {
			t.Fatalf("UpsertNotification: %v", err)
		}
	}

	items, err := store.Notifications(ctx)
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(items) != 2 || len(items["tt1"]) != 2 || len(items["tt2"]) != 1 {
		t.Fatalf("notifications = %+v", items)
	}
	if got := items["tt1"]["tt1:1:2"]; !got.VideoReleased.Equal(released.Add(7 * 24 * time.Hour)) {
		t.Fatalf("released timestamp = %v", got.VideoReleased)
	}
}

func TestOpenHoldsLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer first.Close()

	if _, err := Open(path); !errors.Is(err, ErrLocked) {
		t.Fatalf("second Open error = %v, want ErrLocked", err)
	}
}
