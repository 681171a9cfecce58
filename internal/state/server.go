package state

import "marquee/internal/loadable"

// ServerSelected identifies the streaming server instance in use.
type ServerSelected struct {
	TransportURL string `json:"transportUrl"`
}

// ServerSettings mirrors the streaming server's reported configuration.
type ServerSettings struct {
	AppPath          string   `json:"appPath"`
	CacheRoot        string   `json:"cacheRoot"`
	CacheSize        *float64 `json:"cacheSize"`
	BtMaxConnections uint64   `json:"btMaxConnections"`
	BtDownloadSpeed  *float64 `json:"btDownloadSpeedHardLimit"`
}

// PlaybackDevice is one casting target reported by the streaming server.
type PlaybackDevice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ServerStatistics reports live transfer statistics for the active torrent.
type ServerStatistics struct {
	Name          string  `json:"name"`
	InfoHash      string  `json:"infoHash"`
	StreamLen     uint64  `json:"streamLen"`
	Peers         uint64  `json:"peers"`
	DownloadSpeed float64 `json:"downloadSpeed"`
	UploadSpeed   float64 `json:"uploadSpeed"`
}

// ServerTorrent pairs a torrent info hash with the resolution state of its
// created resource path.
type ServerTorrent struct {
	InfoHash string                          `json:"infoHash"`
	Content  loadable.Loadable[ResourcePath] `json:"content"`
}

// StreamingServer is the streaming-server state slice.
type StreamingServer struct {
	Selected        ServerSelected                       `json:"selected"`
	Settings        loadable.Loadable[ServerSettings]    `json:"settings"`
	BaseURL         loadable.Loadable[string]            `json:"baseUrl"`
	PlaybackDevices loadable.Loadable[[]PlaybackDevice]  `json:"playbackDevices"`
	Torrent         *ServerTorrent                       `json:"torrent"`
	Statistics      *loadable.Loadable[ServerStatistics] `json:"statistics"`
}
