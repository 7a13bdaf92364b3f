// Package sqlite provides a SQLite-backed implementation of the export
// state store port. The database lives under the notemill data
// directory and carries one row per exported page.
package sqlite
