package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgconfig"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkglog"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgmetrics"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgmongo"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgroutine"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkguid"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/entity"
	"github.com/rs/cors"
)

const defaultAllowedOrigin = "https://udp-tester.qarhami.com"

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if lvl := cfg.GetString("log.level"); lvl != "" && !pkglog.SetLevel(lvl) {
		slog.Warn("unknown log level, keeping default", "level", lvl)
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()
}

func (a *App) initResources() {
	a.metrics = pkgmetrics.NewMetrics()

	timeout := a.config.GetDuration("database.mongodb.timeout")
	if timeout <= 0 {
		timeout = pkgmongo.DefaultTimeout
	}

	a.mongo = pkgmongo.Connect(a.ctx, pkgmongo.Options{
		Enabled: a.config.GetBool("database.enabled"),
		URI:     a.config.GetString("database.mongodb.uri"),
		Timeout: timeout,
	})
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Use(a.metrics.Middleware)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())

	origins := a.config.GetArray("server.cors.allowed_origins")
	if len(origins) == 0 {
		origins = []string{defaultAllowedOrigin}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", entity.HTTPPort),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
	a.closerFn["MongoDB"] = func(ctx context.Context) error {
		return a.mongo.Close(ctx)
	}
}
