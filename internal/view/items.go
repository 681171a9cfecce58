package view

import (
	"marquee/internal/links"
	"marquee/internal/state"
)

// StreamView flattens a stream with its navigation bundle.
type StreamView struct {
	state.Stream
	DeepLinks links.Bundle `json:"deepLinks"`
}

// LibraryItemView flattens a library entry with its navigation bundle.
type LibraryItemView struct {
	state.LibraryItem
	DeepLinks links.Bundle `json:"deepLinks"`
}

// TypeFacet is one selectable content type with its navigation bundle.
type TypeFacet struct {
	Type      string                `json:"type"`
	Selected  bool                  `json:"selected"`
	Request   state.ResourceRequest `json:"request"`
	DeepLinks links.Bundle          `json:"deepLinks"`
}

// CatalogFacet is one selectable specific catalog.
type CatalogFacet struct {
	Catalog   string                `json:"catalog"`
	AddonName string                `json:"addonName"`
	Selected  bool                  `json:"selected"`
	Request   state.ResourceRequest `json:"request"`
	DeepLinks links.Bundle          `json:"deepLinks"`
}

// ExtraOptionFacet is one selectable value of an extra filter dimension.
type ExtraOptionFacet struct {
	Value     *string      `json:"value"`
	Selected  bool         `json:"selected"`
	DeepLinks links.Bundle `json:"deepLinks"`
}

// ExtraFacet is one extra filter dimension with its selectable options.
type ExtraFacet struct {
	Name       string             `json:"name"`
	IsRequired bool               `json:"isRequired"`
	Options    []ExtraOptionFacet `json:"options"`
}

// PageFacet points at an adjacent catalog page.
type PageFacet struct {
	DeepLinks links.Bundle `json:"deepLinks"`
}

func wrapStreams(streams []state.Stream, gen links.Generator) []StreamView {
	wrapped := make([]StreamView, 0, len(streams))
	for _, stream := range streams {
		wrapped = append(wrapped, StreamView{Stream: stream, DeepLinks: gen.Stream(stream)})
	}
	return wrapped
}
