package view

import "marquee/internal/state"

// representative picks the one source whose state drives a surface's
// top-level fields: the first Ready entry; if every entry is Err, the first
// entry in original order so the surface keeps an error and addon context to
// show; otherwise the first Loading entry. An empty list has no
// representative. Ties are always broken by original list order.
func representative[T any](sources []state.ResourceLoadable[T]) *state.ResourceLoadable[T] {
	for i := range sources {
		if sources[i].Content.IsReady() {
			return &sources[i]
		}
	}
	if len(sources) == 0 {
		return nil
	}
	allErr := true
	for i := range sources {
		if !sources[i].Content.IsErr() {
			allErr = false
			break
		}
	}
	if allErr {
		return &sources[0]
	}
	for i := range sources {
		if sources[i].Content.IsLoading() {
			return &sources[i]
		}
	}
	return nil
}
