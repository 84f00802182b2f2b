// Package pkgmongo is the optional MongoDB hook of the server.
//
// The database is never required: when it is disabled in configuration, has
// no URI, or cannot be reached, Connect still returns a usable Client whose
// methods are no-ops. Nothing in the send path depends on it.
package pkgmongo
