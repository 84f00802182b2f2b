// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, logging, recovery and correlation ID
// propagation. Payloads are written flat, without an envelope: clients read
// "success" and "error" from the top-level object.
package pkgrouter
