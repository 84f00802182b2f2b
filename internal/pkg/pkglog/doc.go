// Package pkglog contains logging helpers shared by the server and the
// udpsend client.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON handler with stable keys.
//   - Attaching request correlation IDs (when present) to each log record.
//   - Exposing a runtime-adjustable level driven by configuration.
package pkglog
