// Package pkgmetrics holds the Prometheus collectors exported by the server.
//
// Every Metrics value owns its registry, so tests and multiple app instances
// never collide on global registration.
package pkgmetrics
