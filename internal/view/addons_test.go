package view

import (
	"testing"

	"marquee/internal/loadable"
	"marquee/internal/state"
)

func TestFromRemoteAddonsInstalledFlag(t *testing.T) {
	remote := state.CatalogWithFilters[state.DescriptorPreview]{
		Catalog: &state.ResourceLoadable[[]state.DescriptorPreview]{
			Request: state.ResourceRequest{Base: "https://community.example/manifest.json"},
			Content: loadable.Ready([]state.DescriptorPreview{
				{TransportURL: "https://cinemeta.example/manifest.json", Manifest: state.ManifestPreview{Name: "Cinemeta Listing"}},
				{TransportURL: "https://fresh.example/manifest.json", Manifest: state.ManifestPreview{Name: "Fresh"}},
				{TransportURL: "https://cinemeta.example/manifest.json", Manifest: state.ManifestPreview{Name: "Second Listing"}},
			}),
		},
	}
	projected := FromRemoteAddons(remote, Context{Profile: testProfile()})
	rows, ok := projected.Catalog.Content.Value()
	if !ok || len(rows) != 3 {
		t.Fatalf("catalog content not Ready with 3 rows")
	}
	// Matching is by origin address, so both listings of the same origin are
	// installed regardless of any other field.
	if !rows[0].Installed || !rows[2].Installed {
		t.Fatalf("installed flags = %v/%v for installed origin, want true/true", rows[0].Installed, rows[2].Installed)
	}
	if rows[1].Installed {
		t.Fatalf("installed = true for unknown origin, want false")
	}
}

func TestFromRemoteAddonsLoadingPassesThrough(t *testing.T) {
	remote := state.CatalogWithFilters[state.DescriptorPreview]{
		Catalog: &state.ResourceLoadable[[]state.DescriptorPreview]{
			Content: loadable.Loading[[]state.DescriptorPreview](),
		},
	}
	projected := FromRemoteAddons(remote, Context{Profile: testProfile()})
	if !projected.Catalog.Content.IsLoading() {
		t.Fatalf("loading catalog lost its state")
	}
}

func TestFromInstalledAddons(t *testing.T) {
	movie := "movie"
	installed := state.InstalledAddonsWithFilters{
		Selected: &state.InstalledAddonsSelected{Request: state.InstalledAddonsRequest{Type: &movie}},
		Selectable: state.InstalledAddonsSelectable{
			Types: []state.SelectableInstalledType{
				{Type: nil, Selected: false, Request: state.InstalledAddonsRequest{}},
				{Type: &movie, Selected: true, Request: state.InstalledAddonsRequest{Type: &movie}},
			},
		},
		Catalog: []state.DescriptorPreview{
			{TransportURL: "https://cinemeta.example/manifest.json"},
			{TransportURL: "https://not-even-in-profile.example/manifest.json"},
		},
	}
	projected := FromInstalledAddons(installed, Context{Profile: testProfile()})

	if len(projected.Selectable.Catalogs) != 1 {
		t.Fatalf("catalog facets = %d, want exactly the synthetic one", len(projected.Selectable.Catalogs))
	}
	facet := projected.Selectable.Catalogs[0]
	if facet.Catalog != "Installed" || !facet.Selected {
		t.Fatalf("synthetic facet = %+v", facet)
	}
	for i, row := range projected.Catalog {
		if !row.Installed {
			t.Fatalf("catalog[%d].Installed = false, want true by construction", i)
		}
	}
}

func TestFromInstalledAddonsWithoutSelection(t *testing.T) {
	projected := FromInstalledAddons(state.InstalledAddonsWithFilters{}, Context{})
	if len(projected.Selectable.Catalogs) != 1 || projected.Selectable.Catalogs[0].Selected {
		t.Fatalf("synthetic facet = %+v, want present and unselected", projected.Selectable.Catalogs)
	}
}
