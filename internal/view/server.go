package view

import (
	"marquee/internal/links"
	"marquee/internal/loadable"
	"marquee/internal/state"
)

// TorrentDetails pairs a created torrent's resource path with its navigation
// bundle.
type TorrentDetails struct {
	Path      state.ResourcePath `json:"path"`
	DeepLinks links.Bundle       `json:"deepLinks"`
}

// TorrentView is the torrent slot's resolution state.
type TorrentView struct {
	InfoHash string                            `json:"infoHash"`
	Content  loadable.Loadable[TorrentDetails] `json:"content"`
}

// StreamingServer is the streaming-server view model.
type StreamingServer struct {
	Selected        state.ServerSelected                       `json:"selected"`
	Settings        loadable.Loadable[state.ServerSettings]    `json:"settings"`
	BaseURL         loadable.Loadable[string]                  `json:"baseUrl"`
	PlaybackDevices loadable.Loadable[[]state.PlaybackDevice]  `json:"playbackDevices"`
	Torrent         *TorrentView                               `json:"torrent"`
	Statistics      *loadable.Loadable[state.ServerStatistics] `json:"statistics"`
}

// FromStreamingServer projects the streaming-server slice. A Ready torrent
// resource is augmented with a navigation bundle derived from its path;
// Loading and Err states pass through unchanged.
func FromStreamingServer(server state.StreamingServer, ctx Context) StreamingServer {
	gen := ctx.generator()
	var torrent *TorrentView
	if server.Torrent != nil {
		torrent = &TorrentView{
			InfoHash: server.Torrent.InfoHash,
			Content: loadable.Map(server.Torrent.Content, func(path state.ResourcePath) TorrentDetails {
				return TorrentDetails{Path: path, DeepLinks: gen.MetaPath(path)}
			}),
		}
	}
	return StreamingServer{
		Selected:        server.Selected,
		Settings:        server.Settings,
		BaseURL:         server.BaseURL,
		PlaybackDevices: server.PlaybackDevices,
		Torrent:         torrent,
		Statistics:      server.Statistics,
	}
}
