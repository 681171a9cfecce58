// Package librarydb persists library entries and notification records in
// SQLite for the marquee CLI.
//
// The Store manages connections, schema initialization, and a file lock
// guarding against concurrent importers. Removal is a tombstone, not a
// delete: removed entries stay in the database so they can be reported to
// sync peers, and the projection layer treats them as non-members.
//
// Schema changes bump the version in schema.go; databases with an older
// version must be re-imported.
package librarydb
