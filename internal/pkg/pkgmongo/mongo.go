package pkgmongo

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultTimeout bounds server selection, connect and socket operations.
const DefaultTimeout = 5 * time.Second

// ErrDisabled is returned by Ping when no database is configured.
var ErrDisabled = errors.New("mongodb disabled")

// Options configures Connect.
type Options struct {
	Enabled bool
	URI     string
	Timeout time.Duration
}

// Client wraps an optional *mongo.Client.
type Client struct {
	client    *mongo.Client
	connected atomic.Bool
}

// Disabled returns a Client that does nothing.
func Disabled() *Client {
	return &Client{}
}

// Connect builds the client for opts. It never fails: problems are logged and
// a disabled Client is returned instead. The first ping runs in the
// background so startup is not delayed by an unreachable server.
func Connect(ctx context.Context, opts Options) *Client {
	if !opts.Enabled || opts.URI == "" {
		slog.InfoContext(ctx, "mongodb not configured, skipping database connection")
		return Disabled()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		SetSocketTimeout(timeout)

	mc, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create mongodb client, continuing without database", "error", err)
		return Disabled()
	}

	c := &Client{client: mc}
	go func() {
		pingCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := c.Ping(pingCtx); err != nil {
			slog.ErrorContext(pingCtx, "mongodb unreachable, continuing without database", "error", err)
			return
		}
		slog.InfoContext(pingCtx, "mongodb connected successfully")
	}()

	return c
}

// Enabled reports whether a client was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Connected reports whether the last ping succeeded.
func (c *Client) Connected() bool {
	return c.Enabled() && c.connected.Load()
}

// Ping checks the primary and records the result.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	err := c.client.Ping(ctx, readpref.Primary())
	c.connected.Store(err == nil)
	return err
}

// Close disconnects the client if one exists.
func (c *Client) Close(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	c.connected.Store(false)
	return c.client.Disconnect(ctx)
}
