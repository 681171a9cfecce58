package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"marquee/internal/state"
)

// Snapshot is a resolved application state document. The session fields are
// always present; surface slices are optional and stay nil when the document
// does not carry them.
type Snapshot struct {
	Profile       state.Profile       `json:"profile"`
	LibraryItems  []state.LibraryItem `json:"libraryItems"`
	Notifications state.Notifications `json:"notifications"`

	Board            *state.CatalogsWithExtra                           `json:"board,omitempty"`
	ContinueWatching *state.ContinueWatchingPreview                     `json:"continueWatching,omitempty"`
	Discover         *state.CatalogWithFilters[state.MetaItemPreview]   `json:"discover,omitempty"`
	Library          *state.LibraryWithFilters                          `json:"library,omitempty"`
	RemoteAddons     *state.CatalogWithFilters[state.DescriptorPreview] `json:"remoteAddons,omitempty"`
	InstalledAddons  *state.InstalledAddonsWithFilters                  `json:"installedAddons,omitempty"`
	MetaDetails      *state.MetaDetails                                 `json:"metaDetails,omitempty"`
	StreamingServer  *state.StreamingServer                             `json:"streamingServer,omitempty"`
}

// Load reads and decodes a snapshot document from path.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()
	snap, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Decode decodes a snapshot document from r.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Index builds the library index from the document's items, tombstones
// included. Later duplicates win.
func (s *Snapshot) Index() state.LibraryIndex {
	index := make(state.LibraryIndex, len(s.LibraryItems))
	for _, item := range s.LibraryItems {
		index[item.ID] = item
	}
	return index
}

// MergeLibrary overlays locally stored library items and notifications onto
// the document. Stored entries win over snapshot entries with the same id.
func (s *Snapshot) MergeLibrary(items state.LibraryIndex, notifications map[string]map[string]state.NotificationItem) {
	if len(items) > 0 {
		merged := s.Index()
		for id, item := range items {
			merged[id] = item
		}
		s.LibraryItems = s.LibraryItems[:0]
		for _, item := range merged {
			s.LibraryItems = append(s.LibraryItems, item)
		}
		slices.SortFunc(s.LibraryItems, func(a, b state.LibraryItem) int {
			return strings.Compare(a.ID, b.ID)
		})
	}
	if len(notifications) > 0 {
		if s.Notifications.Items == nil {
			s.Notifications.Items = make(map[string]map[string]state.NotificationItem, len(notifications))
		}
		for metaID, videos := range notifications {
			bucket := s.Notifications.Items[metaID]
			if bucket == nil {
				bucket = make(map[string]state.NotificationItem, len(videos))
				s.Notifications.Items[metaID] = bucket
			}
			for videoID, item := range videos {
				bucket[videoID] = item
			}
		}
	}
}

// Ctx assembles the session slice from the document.
func (s *Snapshot) Ctx() state.Ctx {
	return state.Ctx{
		Profile:       s.Profile,
		Library:       s.Index(),
		Notifications: s.Notifications,
	}
}
