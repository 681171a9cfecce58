package view

import (
	"reflect"
	"testing"
	"time"

	"marquee/internal/loadable"
	"marquee/internal/state"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func detailsFixture() state.MetaDetails {
	future := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	meta := state.MetaItem{
		MetaItemPreview: state.MetaItemPreview{
			ID:            "tt1",
			Type:          "series",
			Name:          "Example Show",
			Released:      &future,
			BehaviorHints: state.MetaBehaviorHints{HasScheduledVideos: true},
			Links:         []state.MetaLink{metaLink("ext-1")},
		},
		Videos: []state.Video{{ID: "tt1:1:1", Title: "Pilot"}},
	}
	return state.MetaDetails{
		MetaCatalogs: []state.ResourceLoadable[state.MetaItem]{
			{
				Request: state.ResourceRequest{Base: "https://unknown.example/manifest.json"},
				Content: loadable.Err[state.MetaItem](&state.ResourceError{Type: "Offline"}),
			},
			{
				Request: state.ResourceRequest{Base: "https://cinemeta.example/manifest.json"},
				Content: loadable.Ready(meta),
			},
		},
		StreamsCatalogs: []state.ResourceLoadable[[]state.Stream]{
			{
				Request: state.ResourceRequest{Base: "https://torrents.example/manifest.json"},
				Content: loadable.Ready([]state.Stream{{InfoHash: "abc"}}),
			},
			{
				Request: state.ResourceRequest{Base: "https://unknown.example/manifest.json"},
				Content: loadable.Loading[[]state.Stream](),
			},
		},
	}
}

func TestFromMetaDetailsRepresentativeDrivesTopLevel(t *testing.T) {
	ctx := Context{
		Profile: testProfile(),
		Library: state.LibraryIndex{"tt1": {ID: "tt1"}},
		Now:     fixedClock(),
	}
	projected := FromMetaDetails(detailsFixture(), ctx)

	if projected.MetaCatalog == nil {
		t.Fatalf("metaCatalog missing")
	}
	if projected.MetaCatalog.AddonName == nil || *projected.MetaCatalog.AddonName != "Cinemeta" {
		t.Fatalf("metaCatalog addon = %v, want Cinemeta", projected.MetaCatalog.AddonName)
	}
	item, ok := projected.MetaCatalog.Content.Value()
	if !ok {
		t.Fatalf("metaCatalog content not Ready; representative should skip the Err source")
	}
	if !item.InLibrary {
		t.Fatalf("inLibrary = false for library member")
	}
	if len(item.Videos) != 1 {
		t.Fatalf("videos = %d, want 1", len(item.Videos))
	}
	video := item.Videos[0]
	if !video.Upcoming || !video.Scheduled {
		t.Fatalf("video upcoming/scheduled = %v/%v, want true/true", video.Upcoming, video.Scheduled)
	}
	if video.Watched || video.Progress != nil {
		t.Fatalf("watched/progress stubs violated: %v/%v", video.Watched, video.Progress)
	}
}

func TestFromMetaDetailsProjectsAllStreamSources(t *testing.T) {
	ctx := Context{Profile: testProfile(), Now: fixedClock()}
	projected := FromMetaDetails(detailsFixture(), ctx)

	if len(projected.StreamsCatalogs) != 2 {
		t.Fatalf("streamsCatalogs = %d, want all 2 sources projected", len(projected.StreamsCatalogs))
	}
	if !projected.StreamsCatalogs[0].Content.IsReady() {
		t.Fatalf("first stream source lost its Ready state")
	}
	if !projected.StreamsCatalogs[1].Content.IsLoading() {
		t.Fatalf("second stream source lost its Loading state")
	}
	if projected.StreamsCatalogs[0].AddonName == nil || *projected.StreamsCatalogs[0].AddonName != "Torrents" {
		t.Fatalf("stream source addon = %v, want Torrents", projected.StreamsCatalogs[0].AddonName)
	}
	if projected.StreamsCatalogs[1].AddonName != nil {
		t.Fatalf("unknown stream source addon = %v, want nil", projected.StreamsCatalogs[1].AddonName)
	}
}

func TestFromMetaDetailsExtensionsUseAllMetaSources(t *testing.T) {
	details := detailsFixture()
	// Make the first (Err) source Ready too: its links must be collected even
	// though the second source is selected first in Ready order.
	other := state.MetaItem{
		MetaItemPreview: state.MetaItemPreview{ID: "tt1", Links: []state.MetaLink{metaLink("ext-2")}},
	}
	details.MetaCatalogs[0] = state.ResourceLoadable[state.MetaItem]{
		Request: state.ResourceRequest{Base: "https://torrents.example/manifest.json"},
		Content: loadable.Ready(other),
	}
	projected := FromMetaDetails(details, Context{Profile: testProfile(), Now: fixedClock()})
	if len(projected.MetaExtensions) != 2 {
		t.Fatalf("metaExtensions = %d, want links from every Ready meta source", len(projected.MetaExtensions))
	}
}

func TestFromMetaDetailsAllErrKeepsErrorContext(t *testing.T) {
	cause := &state.ResourceError{Type: "Offline"}
	details := state.MetaDetails{
		MetaCatalogs: []state.ResourceLoadable[state.MetaItem]{
			{
				Request: state.ResourceRequest{Base: "https://cinemeta.example/manifest.json"},
				Content: loadable.Err[state.MetaItem](cause),
			},
			{
				Request: state.ResourceRequest{Base: "https://torrents.example/manifest.json"},
				Content: loadable.Err[state.MetaItem](&state.ResourceError{Type: "Other"}),
			},
		},
	}
	projected := FromMetaDetails(details, Context{Profile: testProfile(), Now: fixedClock()})
	if projected.MetaCatalog == nil {
		t.Fatalf("metaCatalog missing in all-Err state, want first source kept for context")
	}
	if got := projected.MetaCatalog.Content.Error(); got != error(cause) {
		t.Fatalf("error payload = %v, want the first source's payload by reference", got)
	}
	if *projected.MetaCatalog.AddonName != "Cinemeta" {
		t.Fatalf("addonName = %q, want Cinemeta", *projected.MetaCatalog.AddonName)
	}
}

func TestFromMetaDetailsEmptySources(t *testing.T) {
	projected := FromMetaDetails(state.MetaDetails{}, Context{Now: fixedClock()})
	if projected.MetaCatalog != nil {
		t.Fatalf("metaCatalog = %+v for empty sources, want nil", projected.MetaCatalog)
	}
	if len(projected.StreamsCatalogs) != 0 || len(projected.MetaExtensions) != 0 {
		t.Fatalf("empty details produced content: %+v", projected)
	}
}

func TestFromMetaDetailsDeterministic(t *testing.T) {
	ctx := Context{
		Profile: testProfile(),
		Library: state.LibraryIndex{"tt1": {ID: "tt1"}},
		Now:     fixedClock(),
	}
	first := FromMetaDetails(detailsFixture(), ctx)
	second := FromMetaDetails(detailsFixture(), ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two invocations with identical inputs differ")
	}
}
