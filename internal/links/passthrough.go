package links

import (
	"encoding/json"

	"marquee/internal/state"
)

// Passthrough is a Generator that echoes its inputs back as the bundle,
// tagged with the kind of link requested. It stands in for the external
// generator in tooling and tests; it invents no navigation payloads of its
// own.
type Passthrough struct{}

func (Passthrough) MetaItem(meta state.MetaItemPreview) Bundle {
	return wrap("metaItem", map[string]any{"id": meta.ID, "type": meta.Type})
}

func (Passthrough) MetaPath(path state.ResourcePath) Bundle {
	return wrap("metaPath", path)
}

func (Passthrough) Stream(stream state.Stream) Bundle {
	return wrap("stream", stream)
}

func (Passthrough) StreamInContext(stream state.Stream, streamsRequest, metaRequest state.ResourceRequest) Bundle {
	return wrap("stream", map[string]any{
		"stream":         stream,
		"streamsRequest": streamsRequest,
		"metaRequest":    metaRequest,
	})
}

func (Passthrough) Video(video state.Video, request state.ResourceRequest) Bundle {
	return wrap("video", map[string]any{"id": video.ID, "request": request})
}

func (Passthrough) Discover(request state.ResourceRequest) Bundle {
	return wrap("discover", request)
}

func (Passthrough) Addons(request state.ResourceRequest) Bundle {
	return wrap("addons", request)
}

func (Passthrough) InstalledAddons(request state.InstalledAddonsRequest) Bundle {
	return wrap("installedAddons", request)
}

func (Passthrough) Library(root string, request *state.LibraryRequest) Bundle {
	payload := map[string]any{"root": root}
	if request != nil {
		payload["request"] = request
	}
	return wrap("library", payload)
}

func (Passthrough) LibraryItem(item state.LibraryItem) Bundle {
	return wrap("libraryItem", map[string]any{"id": item.ID, "type": item.Type})
}

func wrap(kind string, input any) Bundle {
	raw, err := json.Marshal(struct {
		Kind  string `json:"kind"`
		Input any    `json:"input"`
	}{Kind: kind, Input: input})
	if err != nil {
		return nil
	}
	return raw
}
