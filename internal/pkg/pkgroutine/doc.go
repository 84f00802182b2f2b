// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics so that background work does not crash the process silently. The
// sequencer runs its send loop on a single-slot Manager so at most one loop
// goroutine exists per client.
package pkgroutine
