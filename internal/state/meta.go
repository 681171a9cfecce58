package state

import "time"

// Stream is one playable source for an item.
type Stream struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	InfoHash    string `json:"infoHash,omitempty"`
	FileIdx     *int   `json:"fileIdx,omitempty"`
	YtID        string `json:"ytId,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

// MetaLink is a navigable reference declared on a meta item, grouped by
// category (genre, director, meta extension, ...).
type MetaLink struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// MetaBehaviorHints carries presentation hints declared by the owning addon.
type MetaBehaviorHints struct {
	DefaultVideoID     *string `json:"defaultVideoId"`
	FeaturedVideoID    *string `json:"featuredVideoId,omitempty"`
	HasScheduledVideos bool    `json:"hasScheduledVideos"`
}

// MetaItemPreview is the catalog-listing form of a meta item.
type MetaItemPreview struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Name           string            `json:"name"`
	Poster         *string           `json:"poster"`
	Background     *string           `json:"background,omitempty"`
	Logo           *string           `json:"logo,omitempty"`
	Description    string            `json:"description,omitempty"`
	ReleaseInfo    string            `json:"releaseInfo,omitempty"`
	Released       *time.Time        `json:"released"`
	PosterShape    string            `json:"posterShape,omitempty"`
	Links          []MetaLink        `json:"links,omitempty"`
	TrailerStreams []Stream          `json:"trailerStreams,omitempty"`
	BehaviorHints  MetaBehaviorHints `json:"behaviorHints"`
}

// Video is one episode or scheduled entry under a meta item.
type Video struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Released       *time.Time `json:"released"`
	Overview       string     `json:"overview,omitempty"`
	Thumbnail      string     `json:"thumbnail,omitempty"`
	Season         int        `json:"season,omitempty"`
	Episode        int        `json:"episode,omitempty"`
	TrailerStreams []Stream   `json:"trailerStreams,omitempty"`
}

// MetaItem is the detail form of a meta item, extending the preview with its
// video list.
type MetaItem struct {
	MetaItemPreview
	Videos []Video `json:"videos"`
}
