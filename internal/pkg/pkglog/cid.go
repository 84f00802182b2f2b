package pkglog

import "context"

type correlationIDKey struct{}

// CorrelationID returns the id stored with WithCorrelationID. The router sets
// it per request and the udpsend client sets one per run, so a run's server
// logs can be found by the header it sends.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	return cid, ok && cid != ""
}

// WithCorrelationID returns a copy of ctx carrying cid.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
