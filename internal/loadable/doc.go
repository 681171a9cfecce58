// Package loadable wraps the outcome of asynchronous fetches owned by the
// external data layer as a tri-state value: Loading, Ready, or Err.
//
// Projection code must branch on all three states explicitly; a Loadable is
// never implicitly Ready. Error payloads are opaque upstream values carried
// through by reference, never transformed here.
package loadable
