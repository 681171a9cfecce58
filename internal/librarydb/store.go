package librarydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"marquee/internal/state"
)

// ErrLocked indicates another process holds the library database lock.
var ErrLocked = errors.New("library database is locked by another process")

// Store manages library entries and notifications backed by SQLite. It is
// input plumbing for the CLI: snapshots read from it, importers write to it.
// The projection core never touches it.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the library database at path, creating
// parent directories as needed, and applies the schema. The file lock next
// to the database guards against concurrent importers.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection and releases the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("release library lock: %w", err)
		}
	}
	return closeErr
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// UpsertItem inserts or replaces a library entry.
func (s *Store) UpsertItem(ctx context.Context, item state.LibraryItem) error {
	if item.ID == "" {
		return errors.New("library item id is empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO library_items (
            id, name, type, poster, removed, temp, ctime, mtime,
            time_offset, duration, times_watched, last_watched, video_id
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.Name,
		item.Type,
		nullableString(item.Poster),
		item.Removed,
		item.Temp,
		nullableTime(item.CTime),
		item.MTime.UTC().Format(time.RFC3339Nano),
		item.State.TimeOffset,
		item.State.Duration,
		item.State.TimesWatched,
		nullableTime(item.State.LastWatched),
		nullableString(item.State.VideoID),
	)
	if err != nil {
		return fmt.Errorf("upsert library item %q: %w", item.ID, err)
	}
	return nil
}

// TombstoneItem marks an entry removed without deleting the row, so sync
// peers can observe the removal.
func (s *Store) TombstoneItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE library_items SET removed = 1, mtime = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return fmt.Errorf("tombstone library item %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tombstone library item %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("library item %q not found", id)
	}
	return nil
}

// Items loads the full library index, tombstones included.
func (s *Store) Items(ctx context.Context) (state.LibraryIndex, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, poster, removed, temp, ctime, mtime,
            time_offset, duration, times_watched, last_watched, video_id
        FROM library_items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query library items: %w", err)
	}
	defer rows.Close()

	index := make(state.LibraryIndex)
	for rows.Next() {
		var (
			item        state.LibraryItem
			poster      sql.NullString
			ctime       sql.NullString
			mtime       string
			lastWatched sql.NullString
			videoID     sql.NullString
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Type, &poster, &item.Removed, &item.Temp,
			&ctime, &mtime, &item.State.TimeOffset, &item.State.Duration,
			&item.State.TimesWatched, &lastWatched, &videoID,
		); err != nil {
			return nil, fmt.Errorf("scan library item: %w", err)
		}
		item.Poster = stringRef(poster)
		item.CTime = timeRef(ctime)
		if parsed, err := time.Parse(time.RFC3339Nano, mtime); err == nil {
			item.MTime = parsed
		}
		item.State.LastWatched = timeRef(lastWatched)
		item.State.VideoID = stringRef(videoID)
		index[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library items: %w", err)
	}
	return index, nil
}

// UpsertNotification inserts or replaces a notification record.
func (s *Store) UpsertNotification(ctx context.Context, item state.NotificationItem) error {
	if item.MetaID == "" || item.VideoID == "" {
		return errors.New("notification requires meta and video ids")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO notifications (meta_id, video_id, video_released)
        VALUES (?, ?, ?)`,
		item.MetaID, item.VideoID, item.VideoReleased.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert notification %s/%s: %w", item.MetaID, item.VideoID, err)
	}
	return nil
}

// Notifications loads all notification records bucketed by meta id, then
// video id, matching the shape the session projection consumes.
func (s *Store) Notifications(ctx context.Context) (map[string]map[string]state.NotificationItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT meta_id, video_id, video_released FROM notifications ORDER BY meta_id, video_id",
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	items := make(map[string]map[string]state.NotificationItem)
	for rows.Next() {
		var (
			item     state.NotificationItem
			released string
		)
		if err := rows.Scan(&item.MetaID, &item.VideoID, &released); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, released); err == nil {
			item.VideoReleased = parsed
		}
		bucket, ok := items[item.MetaID]
		if !ok {
			bucket = make(map[string]state.NotificationItem)
			items[item.MetaID] = bucket
		}
		bucket[item.VideoID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return items, nil
}

func nullableString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) any {
	if value == nil || value.IsZero() {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func stringRef(value sql.NullString) *string {
	if !value.Valid || value.String == "" {
		return nil
	}
	s := value.String
	return &s
}

func timeRef(value sql.NullString) *time.Time {
	if !value.Valid || value.String == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, value.String)
	if err != nil {
		return nil
	}
	return &parsed
}
