package links

import (
	"encoding/json"

	"marquee/internal/state"
)

// Bundle is an opaque, surface-specific set of navigation targets produced
// by the external link generator. The projection layer never looks inside
// one; it only decides when to request it and with what input.
type Bundle = json.RawMessage

// Generator produces navigation-link bundles for entities and requests. The
// real implementation lives outside this module; projection code depends on
// this interface only.
type Generator interface {
	// MetaItem produces links for a meta item (preview or detail form).
	MetaItem(meta state.MetaItemPreview) Bundle
	// MetaPath produces meta-item links derived from a bare resource path.
	MetaPath(path state.ResourcePath) Bundle
	// Stream produces links for a stream with no surrounding context.
	Stream(stream state.Stream) Bundle
	// StreamInContext produces links for a stream shown on a details surface,
	// from the stream, its own source request, and the meta request that
	// drives the surface.
	StreamInContext(stream state.Stream, streamsRequest, metaRequest state.ResourceRequest) Bundle
	// Video produces links for a video and the request it was fetched by.
	Video(video state.Video, request state.ResourceRequest) Bundle
	// Discover produces links for a discovery catalog request.
	Discover(request state.ResourceRequest) Bundle
	// Addons produces links for a remote addon-catalog request.
	Addons(request state.ResourceRequest) Bundle
	// InstalledAddons produces links for an installed-addons listing.
	InstalledAddons(request state.InstalledAddonsRequest) Bundle
	// Library produces links for a library listing under the given root
	// path segment.
	Library(root string, request *state.LibraryRequest) Bundle
	// LibraryItem produces links for one library entry.
	LibraryItem(item state.LibraryItem) Bundle
}
