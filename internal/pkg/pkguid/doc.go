// Package pkguid provides helpers for generating unique identifiers.
//
// String IDs (UUIDv7) tag HTTP requests with a correlation ID. Numeric IDs
// (Snowflake, or a plain Counter) identify sequencer log entries.
package pkguid
