package state

import (
	"slices"

	"marquee/internal/loadable"
)

const (
	// CatalogPageSize is the fixed number of items per catalog page.
	CatalogPageSize = 100
	// SkipExtraName is the extra-parameter name carrying the pagination offset.
	SkipExtraName = "skip"
	// MetaResourceName is the resource category identifying meta links.
	MetaResourceName = "meta"
)

// ExtraValue is one named filter or pagination parameter on a resource path.
type ExtraValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResourcePath addresses one resource on an addon: a resource kind, a content
// type, an item id, and optional extra parameters.
type ResourcePath struct {
	Resource string       `json:"resource"`
	Type     string       `json:"type"`
	ID       string       `json:"id"`
	Extra    []ExtraValue `json:"extra"`
}

// ExtraFirst returns the first extra value with the given name.
func (p ResourcePath) ExtraFirst(name string) (string, bool) {
	for _, extra := range p.Extra {
		if extra.Name == name {
			return extra.Value, true
		}
	}
	return "", false
}

// Equal reports whether two paths address the same resource with the same
// extra parameters.
func (p ResourcePath) Equal(other ResourcePath) bool {
	return p.Resource == other.Resource &&
		p.Type == other.Type &&
		p.ID == other.ID &&
		slices.Equal(p.Extra, other.Extra)
}

// ResourceRequest identifies one fetch: the addon origin address plus the
// resource path requested from it.
type ResourceRequest struct {
	Base string       `json:"base"`
	Path ResourcePath `json:"path"`
}

// Equal reports whether two requests identify the same fetch.
func (r ResourceRequest) Equal(other ResourceRequest) bool {
	return r.Base == other.Base && r.Path.Equal(other.Path)
}

// ResourceLoadable pairs a request with the current resolution state of its
// fetch. Several may exist for the same logical UI concept when multiple
// addons are queried in parallel.
type ResourceLoadable[T any] struct {
	Request ResourceRequest      `json:"request"`
	Content loadable.Loadable[T] `json:"content"`
}

// ResourceError is the opaque failure payload attached to an Err resolution
// state by the external fetch layer. The projection layer carries it through
// untouched.
type ResourceError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *ResourceError) Error() string {
	if e.Message == "" {
		return e.Type
	}
	return e.Type + ": " + e.Message
}
