package view

import (
	"marquee/internal/links"
	"marquee/internal/loadable"
	"marquee/internal/state"
)

// CatalogPreview flattens a catalog meta preview with its trailer streams
// and navigation bundle.
type CatalogPreview struct {
	state.MetaItemPreview
	TrailerStreams []StreamView `json:"trailerStreams"`
	DeepLinks      links.Bundle `json:"deepLinks"`
}

// CatalogRow is one addon's catalog page on the grouped catalogs surface.
type CatalogRow struct {
	Request   state.ResourceRequest               `json:"request"`
	Content   loadable.Loadable[[]CatalogPreview] `json:"content"`
	AddonName *string                             `json:"addonName"`
	DeepLinks links.Bundle                        `json:"deepLinks"`
}

// CatalogsWithExtra is the grouped catalogs view model.
type CatalogsWithExtra struct {
	Selected *state.CatalogsWithExtraSelected `json:"selected"`
	Catalogs []CatalogRow                     `json:"catalogs"`
}

// FromCatalogsWithExtra projects the grouped catalogs slice: every source
// keeps its resolution state, Ready pages get per-item navigation bundles,
// and each row resolves its addon's display name.
func FromCatalogsWithExtra(catalogs state.CatalogsWithExtra, ctx Context) CatalogsWithExtra {
	gen := ctx.generator()
	rows := make([]CatalogRow, 0, len(catalogs.Catalogs))
	for _, source := range catalogs.Catalogs {
		rows = append(rows, CatalogRow{
			Request: source.Request,
			Content: loadable.Map(source.Content, func(items []state.MetaItemPreview) []CatalogPreview {
				previews := make([]CatalogPreview, 0, len(items))
				for _, item := range items {
					previews = append(previews, CatalogPreview{
						MetaItemPreview: item,
						TrailerStreams:  wrapStreams(item.TrailerStreams, gen),
						DeepLinks:       gen.MetaItem(item),
					})
				}
				return previews
			}),
			AddonName: addonNameRef(source.Request.Base, ctx.Profile),
			DeepLinks: gen.Discover(source.Request),
		})
	}
	return CatalogsWithExtra{Selected: catalogs.Selected, Catalogs: rows}
}
