package view

import (
	"marquee/internal/links"
	"marquee/internal/state"
)

// LibraryTypeFacet is one content-type facet on the library surface.
type LibraryTypeFacet struct {
	Type      *string      `json:"type"`
	Selected  bool         `json:"selected"`
	DeepLinks links.Bundle `json:"deepLinks"`
}

// LibrarySortFacet is one sort facet on the library surface.
type LibrarySortFacet struct {
	Sort      state.Sort   `json:"sort"`
	Selected  bool         `json:"selected"`
	DeepLinks links.Bundle `json:"deepLinks"`
}

// LibrarySelectable groups the library surface's facets.
type LibrarySelectable struct {
	Types []LibraryTypeFacet `json:"types"`
	Sorts []LibrarySortFacet `json:"sorts"`
}

// Library is the filtered library view model.
type Library struct {
	Selected   *state.LibrarySelected `json:"selected"`
	Selectable LibrarySelectable      `json:"selectable"`
	Catalog    []LibraryItemView      `json:"catalog"`
}

// FromLibrary projects the filtered library slice. Facet bundles are scoped
// to the caller-supplied root path segment.
func FromLibrary(library state.LibraryWithFilters, root string, ctx Context) Library {
	gen := ctx.generator()
	selectable := LibrarySelectable{
		Types: make([]LibraryTypeFacet, 0, len(library.Selectable.Types)),
		Sorts: make([]LibrarySortFacet, 0, len(library.Selectable.Sorts)),
	}
	for _, facet := range library.Selectable.Types {
		request := facet.Request
		selectable.Types = append(selectable.Types, LibraryTypeFacet{
			Type:      facet.Type,
			Selected:  facet.Selected,
			DeepLinks: gen.Library(root, &request),
		})
	}
	for _, facet := range library.Selectable.Sorts {
		request := facet.Request
		selectable.Sorts = append(selectable.Sorts, LibrarySortFacet{
			Sort:      facet.Sort,
			Selected:  facet.Selected,
			DeepLinks: gen.Library(root, &request),
		})
	}
	catalog := make([]LibraryItemView, 0, len(library.Catalog))
	for _, item := range library.Catalog {
		catalog = append(catalog, LibraryItemView{
			LibraryItem: item,
			DeepLinks:   gen.LibraryItem(item),
		})
	}
	return Library{Selected: library.Selected, Selectable: selectable, Catalog: catalog}
}

// ContinueWatchingPreview is the board preview of in-progress library items.
type ContinueWatchingPreview struct {
	LibraryItems []LibraryItemView `json:"libraryItems"`
	DeepLinks    links.Bundle      `json:"deepLinks"`
}

// FromContinueWatching projects the continue-watching preview.
func FromContinueWatching(preview state.ContinueWatchingPreview, ctx Context) ContinueWatchingPreview {
	gen := ctx.generator()
	items := make([]LibraryItemView, 0, len(preview.LibraryItems))
	for _, item := range preview.LibraryItems {
		items = append(items, LibraryItemView{
			LibraryItem: item,
			DeepLinks:   gen.LibraryItem(item),
		})
	}
	return ContinueWatchingPreview{
		LibraryItems: items,
		DeepLinks:    gen.Library("continuewatching", nil),
	}
}
