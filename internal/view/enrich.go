package view

import (
	"strconv"
	"time"

	"marquee/internal/state"
)

// PageNumber derives the 1-based page index from a request's skip extra:
// 1 + skip/CatalogPageSize. A missing or unparsable skip yields page 1.
func PageNumber(request state.ResourceRequest) uint32 {
	raw, ok := request.Path.ExtraFirst(state.SkipExtraName)
	if !ok {
		return 1
	}
	skip, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 1
	}
	return 1 + uint32(skip)/state.CatalogPageSize
}

// upcoming reports whether a meta item may still have videos ahead: it
// declares scheduled videos and its release timestamp is absent or strictly
// in the future. An absent timestamp is permissive on purpose.
func upcoming(meta state.MetaItemPreview, now time.Time) bool {
	if !meta.BehaviorHints.HasScheduledVideos {
		return false
	}
	return meta.Released == nil || meta.Released.After(now)
}
