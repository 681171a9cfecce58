// Package state declares the read-only domain records the projection layer
// consumes: resource requests, per-surface state slices, the user profile
// with its installed addons, the library index, notifications, and the
// streaming server status.
//
// Everything here is owned by the external data layer and treated as an
// immutable snapshot for the duration of one projection call. JSON tags use
// camelCase for JavaScript consumers.
package state
