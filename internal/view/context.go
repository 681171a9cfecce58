package view

import (
	"time"

	"marquee/internal/links"
	"marquee/internal/state"
)

// Context carries the cross-cutting lookup inputs for one projection pass:
// the profile's installed addons, the library index, the external link
// generator, and the clock used for upcoming-flag computation.
type Context struct {
	Profile state.Profile
	Library state.LibraryIndex
	Links   links.Generator
	Now     func() time.Time
}

func (c Context) generator() links.Generator {
	if c.Links == nil {
		return links.Passthrough{}
	}
	return c.Links
}

func (c Context) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now()
}
