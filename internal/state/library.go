package state

import "time"

// LibraryItemState tracks per-item playback bookkeeping.
type LibraryItemState struct {
	TimeOffset   uint64     `json:"timeOffset"`
	Duration     uint64     `json:"duration"`
	TimesWatched uint32     `json:"timesWatched"`
	LastWatched  *time.Time `json:"lastWatched"`
	VideoID      *string    `json:"videoId"`
}

// LibraryItem is one entry in the user's library. Removed is a tombstone:
// the entry is retained for sync purposes but no longer counts as a member.
type LibraryItem struct {
	ID      string           `json:"_id"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Poster  *string          `json:"poster"`
	Removed bool             `json:"removed"`
	Temp    bool             `json:"temp"`
	CTime   *time.Time       `json:"_ctime"`
	MTime   time.Time        `json:"_mtime"`
	State   LibraryItemState `json:"state"`
}

// LibraryIndex maps item ids to their library entries, tombstones included.
type LibraryIndex map[string]LibraryItem

// Has reports live membership: the id is present and not tombstoned.
func (idx LibraryIndex) Has(id string) bool {
	item, ok := idx[id]
	return ok && !item.Removed
}
