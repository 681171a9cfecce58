package view

import (
	"marquee/internal/links"
	"marquee/internal/loadable"
	"marquee/internal/state"
)

// VideoView flattens a video with its computed fields and navigation bundle.
// Watched and Progress are documented stubs: always false and nil until
// library-based playback tracking is wired upstream.
type VideoView struct {
	state.Video
	TrailerStreams []StreamView `json:"trailerStreams"`
	Upcoming       bool         `json:"upcoming"`
	Watched        bool         `json:"watched"`
	Progress       *uint32      `json:"progress"`
	Scheduled      bool         `json:"scheduled"`
	DeepLinks      links.Bundle `json:"deepLinks"`
}

// MetaItemView flattens a full meta item with enriched videos, trailer
// streams, library membership, and its navigation bundle.
type MetaItemView struct {
	state.MetaItem
	Videos         []VideoView  `json:"videos"`
	TrailerStreams []StreamView `json:"trailerStreams"`
	InLibrary      bool         `json:"inLibrary"`
	DeepLinks      links.Bundle `json:"deepLinks"`
}

// MetaCatalogView is the representative meta source's resolution state.
type MetaCatalogView struct {
	Content   loadable.Loadable[MetaItemView] `json:"content"`
	AddonName *string                         `json:"addonName"`
}

// StreamsCatalogView is one stream source's resolution state. Stream sources
// are never collapsed; every addon's list is shown alongside the others.
type StreamsCatalogView struct {
	Content   loadable.Loadable[[]StreamView] `json:"content"`
	AddonName *string                         `json:"addonName"`
}

// MetaDetails is the item-details view model.
type MetaDetails struct {
	Selected        *state.MetaDetailsSelected `json:"selected"`
	MetaCatalog     *MetaCatalogView           `json:"metaCatalog"`
	StreamsCatalogs []StreamsCatalogView       `json:"streamsCatalogs"`
	MetaExtensions  []MetaExtension            `json:"metaExtensions"`
}

// FromMetaDetails projects the item-details slice: one representative meta
// source drives the top-level fields, every stream source is projected in
// parallel, and meta extensions are collected across all meta sources.
func FromMetaDetails(details state.MetaDetails, ctx Context) MetaDetails {
	gen := ctx.generator()
	now := ctx.now()

	repr := representative(details.MetaCatalogs)
	var metaCatalog *MetaCatalogView
	if repr != nil {
		metaCatalog = &MetaCatalogView{
			Content: loadable.Map(repr.Content, func(meta state.MetaItem) MetaItemView {
				videos := make([]VideoView, 0, len(meta.Videos))
				for _, video := range meta.Videos {
					videos = append(videos, VideoView{
						Video:          video,
						TrailerStreams: wrapStreams(video.TrailerStreams, gen),
						Upcoming:       upcoming(meta.MetaItemPreview, now),
						Watched:        false,
						Progress:       nil,
						Scheduled:      meta.BehaviorHints.HasScheduledVideos,
						DeepLinks:      gen.Video(video, repr.Request),
					})
				}
				return MetaItemView{
					MetaItem:       meta,
					Videos:         videos,
					TrailerStreams: wrapStreams(meta.TrailerStreams, gen),
					InLibrary:      ctx.Library.Has(meta.ID),
					DeepLinks:      gen.MetaItem(meta.MetaItemPreview),
				}
			}),
			AddonName: addonNameRef(repr.Request.Base, ctx.Profile),
		}
	}

	streams := make([]StreamsCatalogView, 0, len(details.StreamsCatalogs))
	for _, source := range details.StreamsCatalogs {
		request := source.Request
		streams = append(streams, StreamsCatalogView{
			Content: loadable.Map(source.Content, func(list []state.Stream) []StreamView {
				wrapped := make([]StreamView, 0, len(list))
				for _, stream := range list {
					var bundle links.Bundle
					if repr != nil {
						bundle = gen.StreamInContext(stream, request, repr.Request)
					} else {
						bundle = gen.Stream(stream)
					}
					wrapped = append(wrapped, StreamView{Stream: stream, DeepLinks: bundle})
				}
				return wrapped
			}),
			AddonName: addonNameRef(request.Base, ctx.Profile),
		})
	}

	return MetaDetails{
		Selected:        details.Selected,
		MetaCatalog:     metaCatalog,
		StreamsCatalogs: streams,
		MetaExtensions:  metaExtensions(details.MetaCatalogs, ctx.Profile),
	}
}
