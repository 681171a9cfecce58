package view

import (
	"marquee/internal/links"
	"marquee/internal/loadable"
	"marquee/internal/state"
)

// AddonRow flattens an addon descriptor with its installed flag.
type AddonRow struct {
	state.DescriptorPreview
	Installed bool `json:"installed"`
}

// AddonsSelectable groups the remote addon catalog's facets.
type AddonsSelectable struct {
	Catalogs []CatalogFacet `json:"catalogs"`
	Types    []TypeFacet    `json:"types"`
}

// AddonsCatalog is the selected addon catalog's resolution state.
type AddonsCatalog struct {
	Content loadable.Loadable[[]AddonRow] `json:"content"`
}

// RemoteAddons is the remote addon catalog view model.
type RemoteAddons struct {
	Selected   *state.CatalogSelected `json:"selected"`
	Selectable AddonsSelectable       `json:"selectable"`
	Catalog    *AddonsCatalog         `json:"catalog"`
}

// FromRemoteAddons projects a remote addon catalog. Each listed addon is
// marked installed iff its origin address matches some installed addon's.
func FromRemoteAddons(addons state.CatalogWithFilters[state.DescriptorPreview], ctx Context) RemoteAddons {
	gen := ctx.generator()
	selectable := AddonsSelectable{
		Catalogs: make([]CatalogFacet, 0, len(addons.Selectable.Catalogs)),
		Types:    make([]TypeFacet, 0, len(addons.Selectable.Types)),
	}
	for _, facet := range addons.Selectable.Catalogs {
		selectable.Catalogs = append(selectable.Catalogs, CatalogFacet{
			Catalog:   facet.Catalog,
			AddonName: facet.AddonName,
			Selected:  facet.Selected,
			Request:   facet.Request,
			DeepLinks: gen.Addons(facet.Request),
		})
	}
	for _, facet := range addons.Selectable.Types {
		selectable.Types = append(selectable.Types, TypeFacet{
			Type:      facet.Type,
			Selected:  facet.Selected,
			Request:   facet.Request,
			DeepLinks: gen.Addons(facet.Request),
		})
	}
	var catalog *AddonsCatalog
	if source := addons.Catalog; source != nil {
		catalog = &AddonsCatalog{
			Content: loadable.Map(source.Content, func(items []state.DescriptorPreview) []AddonRow {
				rows := make([]AddonRow, 0, len(items))
				for _, item := range items {
					rows = append(rows, AddonRow{
						DescriptorPreview: item,
						Installed:         IsInstalled(item.TransportURL, ctx.Profile),
					})
				}
				return rows
			}),
		}
	}
	return RemoteAddons{Selected: addons.Selected, Selectable: selectable, Catalog: catalog}
}

// InstalledTypeFacet is one content-type facet on the installed-addons
// surface.
type InstalledTypeFacet struct {
	Type      *string      `json:"type"`
	Selected  bool         `json:"selected"`
	DeepLinks links.Bundle `json:"deepLinks"`
}

// InstalledCatalogFacet is one catalog facet on the installed-addons
// surface.
type InstalledCatalogFacet struct {
	Catalog   string       `json:"catalog"`
	Selected  bool         `json:"selected"`
	DeepLinks links.Bundle `json:"deepLinks"`
}

// InstalledSelectable groups the installed-addons facets.
type InstalledSelectable struct {
	Types    []InstalledTypeFacet    `json:"types"`
	Catalogs []InstalledCatalogFacet `json:"catalogs"`
}

// InstalledAddons is the installed-addons view model.
type InstalledAddons struct {
	Selected   *state.InstalledAddonsSelected `json:"selected"`
	Selectable InstalledSelectable            `json:"selectable"`
	Catalog    []AddonRow                     `json:"catalog"`
}

// FromInstalledAddons projects the installed-addons listing. The catalog is
// the installed set itself, so every entry is installed by construction, and
// a single synthetic "Installed" facet is always present.
func FromInstalledAddons(addons state.InstalledAddonsWithFilters, ctx Context) InstalledAddons {
	gen := ctx.generator()
	types := make([]InstalledTypeFacet, 0, len(addons.Selectable.Types))
	for _, facet := range addons.Selectable.Types {
		types = append(types, InstalledTypeFacet{
			Type:      facet.Type,
			Selected:  facet.Selected,
			DeepLinks: gen.InstalledAddons(facet.Request),
		})
	}
	catalog := make([]AddonRow, 0, len(addons.Catalog))
	for _, item := range addons.Catalog {
		catalog = append(catalog, AddonRow{DescriptorPreview: item, Installed: true})
	}
	return InstalledAddons{
		Selected: addons.Selected,
		Selectable: InstalledSelectable{
			Types: types,
			Catalogs: []InstalledCatalogFacet{{
				Catalog:   "Installed",
				Selected:  addons.Selected != nil,
				DeepLinks: gen.InstalledAddons(state.InstalledAddonsRequest{}),
			}},
		},
		Catalog: catalog,
	}
}
