package state

// CatalogsWithExtraSelected records the type and extra filters driving the
// grouped catalogs surface.
type CatalogsWithExtraSelected struct {
	Type  *string      `json:"type"`
	Extra []ExtraValue `json:"extra"`
}

// CatalogsWithExtra is the grouped catalogs slice: one independently loading
// catalog page per installed addon.
type CatalogsWithExtra struct {
	Selected *CatalogsWithExtraSelected           `json:"selected"`
	Catalogs []ResourceLoadable[[]MetaItemPreview] `json:"catalogs"`
}

// CatalogSelected records the request driving a filtered catalog surface.
type CatalogSelected struct {
	Request ResourceRequest `json:"request"`
}

// SelectableType is one content-type facet on a filtered catalog.
type SelectableType struct {
	Type     string          `json:"type"`
	Selected bool            `json:"selected"`
	Request  ResourceRequest `json:"request"`
}

// SelectableCatalog is one specific-catalog facet on a filtered catalog.
type SelectableCatalog struct {
	Catalog   string          `json:"catalog"`
	AddonName string          `json:"addonName"`
	Selected  bool            `json:"selected"`
	Request   ResourceRequest `json:"request"`
}

// SelectableExtraOption is one value of an extra filter dimension.
type SelectableExtraOption struct {
	Value    *string         `json:"value"`
	Selected bool            `json:"selected"`
	Request  ResourceRequest `json:"request"`
}

// SelectableExtra is one extra filter dimension with its options.
type SelectableExtra struct {
	Name       string                  `json:"name"`
	IsRequired bool                    `json:"isRequired"`
	Options    []SelectableExtraOption `json:"options"`
}

// SelectablePage points at the previous or next catalog page.
type SelectablePage struct {
	Request ResourceRequest `json:"request"`
}

// Selectable groups every selectable dimension of a filtered catalog.
type Selectable struct {
	Types    []SelectableType    `json:"types"`
	Catalogs []SelectableCatalog `json:"catalogs"`
	Extra    []SelectableExtra   `json:"extra"`
	PrevPage *SelectablePage     `json:"prevPage"`
	NextPage *SelectablePage     `json:"nextPage"`
}

// CatalogWithFilters is a single filtered catalog slice over entity type T
// (meta previews for discovery, descriptor previews for remote addons).
type CatalogWithFilters[T any] struct {
	Selected   *CatalogSelected      `json:"selected"`
	Selectable Selectable            `json:"selectable"`
	Catalog    *ResourceLoadable[[]T] `json:"catalog"`
}

// Sort orders library listings.
type Sort string

const (
	SortLastWatched  Sort = "lastwatched"
	SortName         Sort = "name"
	SortTimesWatched Sort = "timeswatched"
)

// LibraryRequest identifies a library listing by type filter and sort order.
type LibraryRequest struct {
	Type *string `json:"type"`
	Sort Sort    `json:"sort"`
}

// LibrarySelected records the request driving the library surface.
type LibrarySelected struct {
	Request LibraryRequest `json:"request"`
}

// SelectableLibraryType is one content-type facet on the library surface.
type SelectableLibraryType struct {
	Type     *string        `json:"type"`
	Selected bool           `json:"selected"`
	Request  LibraryRequest `json:"request"`
}

// SelectableLibrarySort is one sort facet on the library surface.
type SelectableLibrarySort struct {
	Sort     Sort           `json:"sort"`
	Selected bool           `json:"selected"`
	Request  LibraryRequest `json:"request"`
}

// LibrarySelectable groups the library surface's facets.
type LibrarySelectable struct {
	Types []SelectableLibraryType `json:"types"`
	Sorts []SelectableLibrarySort `json:"sorts"`
}

// LibraryWithFilters is the filtered library slice.
type LibraryWithFilters struct {
	Selected   *LibrarySelected  `json:"selected"`
	Selectable LibrarySelectable `json:"selectable"`
	Catalog    []LibraryItem     `json:"catalog"`
}

// ContinueWatchingPreview is the board preview of in-progress library items.
type ContinueWatchingPreview struct {
	LibraryItems []LibraryItem `json:"libraryItems"`
}

// InstalledAddonsRequest identifies an installed-addons listing by type.
type InstalledAddonsRequest struct {
	Type *string `json:"type"`
}

// InstalledAddonsSelected records the filter driving the installed-addons
// surface.
type InstalledAddonsSelected struct {
	Request InstalledAddonsRequest `json:"request"`
}

// SelectableInstalledType is one content-type facet on the installed-addons
// surface.
type SelectableInstalledType struct {
	Type     *string                `json:"type"`
	Selected bool                   `json:"selected"`
	Request  InstalledAddonsRequest `json:"request"`
}

// InstalledAddonsSelectable groups the installed-addons facets.
type InstalledAddonsSelectable struct {
	Types []SelectableInstalledType `json:"types"`
}

// InstalledAddonsWithFilters is the installed-addons slice. The catalog is
// the installed set itself, so it needs no resolution state.
type InstalledAddonsWithFilters struct {
	Selected   *InstalledAddonsSelected  `json:"selected"`
	Selectable InstalledAddonsSelectable `json:"selectable"`
	Catalog    []DescriptorPreview       `json:"catalog"`
}

// MetaDetailsSelected records the paths driving the details surface.
type MetaDetailsSelected struct {
	MetaPath    ResourcePath  `json:"metaPath"`
	StreamsPath *ResourcePath `json:"streamsPath"`
}

// MetaDetails is the item-details slice: parallel per-addon meta fetches and
// parallel per-addon stream list fetches.
type MetaDetails struct {
	Selected        *MetaDetailsSelected         `json:"selected"`
	MetaCatalogs    []ResourceLoadable[MetaItem] `json:"metaCatalogs"`
	StreamsCatalogs []ResourceLoadable[[]Stream] `json:"streamsCatalogs"`
}
