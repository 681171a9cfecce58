package view

import (
	"marquee/internal/links"
	"marquee/internal/loadable"
	"marquee/internal/state"
)

// DiscoverPreview flattens a meta preview with its trailer streams, library
// membership, and navigation bundle.
type DiscoverPreview struct {
	state.MetaItemPreview
	TrailerStreams []StreamView `json:"trailerStreams"`
	InLibrary      bool         `json:"inLibrary"`
	DeepLinks      links.Bundle `json:"deepLinks"`
}

// DiscoverSelectable groups every selectable dimension of the discovery
// surface, each with its navigation bundle.
type DiscoverSelectable struct {
	Types    []TypeFacet    `json:"types"`
	Catalogs []CatalogFacet `json:"catalogs"`
	Extra    []ExtraFacet   `json:"extra"`
	PrevPage *PageFacet     `json:"prevPage"`
	NextPage *PageFacet     `json:"nextPage"`
}

// DiscoverCatalog is the selected catalog's resolution state with its addon
// display name.
type DiscoverCatalog struct {
	Content   loadable.Loadable[[]DiscoverPreview] `json:"content"`
	AddonName *string                              `json:"addonName"`
}

// Discover is the discovery view model.
type Discover struct {
	Selected       *state.CatalogSelected `json:"selected"`
	Selectable     DiscoverSelectable     `json:"selectable"`
	Catalog        *DiscoverCatalog       `json:"catalog"`
	DefaultRequest *state.ResourceRequest `json:"defaultRequest"`
	Page           uint32                 `json:"page"`
}

// FromDiscover projects the filtered discovery catalog.
func FromDiscover(discover state.CatalogWithFilters[state.MetaItemPreview], ctx Context) Discover {
	gen := ctx.generator()
	selectable := DiscoverSelectable{
		Types:    make([]TypeFacet, 0, len(discover.Selectable.Types)),
		Catalogs: make([]CatalogFacet, 0, len(discover.Selectable.Catalogs)),
		Extra:    make([]ExtraFacet, 0, len(discover.Selectable.Extra)),
	}
	for _, facet := range discover.Selectable.Types {
		selectable.Types = append(selectable.Types, TypeFacet{
			Type:      facet.Type,
			Selected:  facet.Selected,
			Request:   facet.Request,
			DeepLinks: gen.Discover(facet.Request),
		})
	}
	for _, facet := range discover.Selectable.Catalogs {
		selectable.Catalogs = append(selectable.Catalogs, CatalogFacet{
			Catalog:   facet.Catalog,
			AddonName: facet.AddonName,
			Selected:  facet.Selected,
			Request:   facet.Request,
			DeepLinks: gen.Discover(facet.Request),
		})
	}
	for _, extra := range discover.Selectable.Extra {
		options := make([]ExtraOptionFacet, 0, len(extra.Options))
		for _, option := range extra.Options {
			options = append(options, ExtraOptionFacet{
				Value:     option.Value,
				Selected:  option.Selected,
				DeepLinks: gen.Discover(option.Request),
			})
		}
		selectable.Extra = append(selectable.Extra, ExtraFacet{
			Name:       extra.Name,
			IsRequired: extra.IsRequired,
			Options:    options,
		})
	}
	if prev := discover.Selectable.PrevPage; prev != nil {
		selectable.PrevPage = &PageFacet{DeepLinks: gen.Discover(prev.Request)}
	}
	if next := discover.Selectable.NextPage; next != nil {
		selectable.NextPage = &PageFacet{DeepLinks: gen.Discover(next.Request)}
	}

	var catalog *DiscoverCatalog
	if source := discover.Catalog; source != nil {
		catalog = &DiscoverCatalog{
			Content: loadable.Map(source.Content, func(items []state.MetaItemPreview) []DiscoverPreview {
				previews := make([]DiscoverPreview, 0, len(items))
				for _, item := range items {
					previews = append(previews, DiscoverPreview{
						MetaItemPreview: item,
						TrailerStreams:  wrapStreams(item.TrailerStreams, gen),
						InLibrary:       ctx.Library.Has(item.ID),
						DeepLinks:       gen.MetaItem(item),
					})
				}
				return previews
			}),
			AddonName: addonNameRef(source.Request.Base, ctx.Profile),
		}
	}

	var defaultRequest *state.ResourceRequest
	if len(discover.Selectable.Types) > 0 {
		request := discover.Selectable.Types[0].Request
		defaultRequest = &request
	}

	page := uint32(1)
	if discover.Selected != nil {
		page = PageNumber(discover.Selected.Request)
	}

	return Discover{
		Selected:       discover.Selected,
		Selectable:     selectable,
		Catalog:        catalog,
		DefaultRequest: defaultRequest,
		Page:           page,
	}
}
