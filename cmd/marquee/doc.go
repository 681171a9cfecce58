// Package main hosts the Marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree loads resolved state snapshots, overlays the
// local library database, projects the requested surface into its view model,
// and prints it as JSON or a terminal table. It centralizes configuration
// resolution, output format selection, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: the projection semantics live in internal/view and
// the storage plumbing in internal/librarydb and internal/snapshot. Surface
// new behavior through dedicated commands or flags here.
package main
