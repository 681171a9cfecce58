// Package view projects resolved domain state into flattened, display-ready
// view models, one assembler per UI surface.
//
// # Assemblers
//
// FromCatalogsWithExtra: grouped per-addon catalog rows for the board.
//
// FromDiscover: the filtered discovery catalog with selectable facets,
// library membership flags, and the current page number.
//
// FromLibrary / FromContinueWatching: library listings with per-item and
// per-facet navigation bundles.
//
// FromRemoteAddons / FromInstalledAddons: addon catalogs with installed
// flags.
//
// FromMetaDetails: item details; picks one representative meta source,
// projects every stream source in parallel, and collects deduplicated meta
// extensions across all meta sources.
//
// FromStreamingServer: streaming server status with torrent links.
//
// FromCtx: session profile plus notifications regrouped by meta item id.
//
// # Design Notes
//
// Every assembler is a pure function of a domain slice and a Context; inputs
// are immutable snapshots and no state survives a call. Loading and Err
// resolution states pass through structurally, error payloads by reference.
// Assemblers never fail; a resolution state outside the three known variants
// is a programming bug and panics.
package view
