package view

import (
	"slices"
	"strings"
	"time"

	"marquee/internal/state"
)

// NotificationsView regroups the notification index by meta item id, each
// value holding the matching notification records.
type NotificationsView struct {
	Items       map[string][]state.NotificationItem `json:"items"`
	LastUpdated *time.Time                          `json:"lastUpdated"`
	Created     time.Time                           `json:"created"`
}

// Session is the session view model: the profile carried verbatim plus the
// regrouped notifications.
type Session struct {
	Profile       state.Profile     `json:"profile"`
	Notifications NotificationsView `json:"notifications"`
}

// FromCtx projects the session slice. Timestamps pass through verbatim;
// notification lists are ordered by video id so identical inputs always
// produce identical output.
func FromCtx(session state.Ctx) Session {
	items := make(map[string][]state.NotificationItem, len(session.Notifications.Items))
	for metaID, bucket := range session.Notifications.Items {
		list := make([]state.NotificationItem, 0, len(bucket))
		for _, item := range bucket {
			list = append(list, item)
		}
		slices.SortFunc(list, func(a, b state.NotificationItem) int {
			return strings.Compare(a.VideoID, b.VideoID)
		})
		items[metaID] = list
	}
	return Session{
		Profile: session.Profile,
		Notifications: NotificationsView{
			Items:       items,
			LastUpdated: session.Notifications.LastUpdated,
			Created:     session.Notifications.Created,
		},
	}
}
