package config

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Paths: Paths{
			Snapshot:  "~/.local/share/marquee/state.json",
			LibraryDB: "~/.local/share/marquee/library.db",
		},
		Render: Render{
			Root:   "library",
			Format: "auto",
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
