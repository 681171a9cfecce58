// Package config loads and validates the marquee CLI's TOML configuration:
// snapshot and library database locations, render defaults, and logging
// options. The projection core itself takes no configuration.
package config
