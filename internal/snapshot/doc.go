// Package snapshot loads resolved application state documents from disk.
//
// A snapshot is a single JSON document: the session data (profile, library
// items, notifications) plus whichever surface slices the producer resolved.
// Locally stored library rows can be overlaid with MergeLibrary before the
// document is projected.
package snapshot
