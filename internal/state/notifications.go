package state

import "time"

// NotificationItem records one new-video notification for a meta item.
type NotificationItem struct {
	MetaID        string    `json:"metaId"`
	VideoID       string    `json:"videoId"`
	VideoReleased time.Time `json:"videoReleased"`
}

// Notifications is the notification index as maintained upstream: items
// bucketed by meta id, then by video id.
type Notifications struct {
	Items       map[string]map[string]NotificationItem `json:"items"`
	LastUpdated *time.Time                             `json:"lastUpdated"`
	Created     time.Time                              `json:"created"`
}

// Ctx is the session slice: the profile, the library index, and the
// notification index.
type Ctx struct {
	Profile       Profile       `json:"profile"`
	Library       LibraryIndex  `json:"library"`
	Notifications Notifications `json:"notifications"`
}
