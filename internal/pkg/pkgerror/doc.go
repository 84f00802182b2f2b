// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It helps keep error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, and code,
//     which can be mapped to HTTP status codes at the edge (handlers).
//
// Transport errors are special: their message is the network failure itself
// (for example "UDP error: dial udp4: lookup nowhere: no such host") so the
// operator sees why a datagram could not leave the host.
package pkgerror
