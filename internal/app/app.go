package app

import (
	"context"
	"net/http"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgconfig"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkglog"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgmetrics"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgmongo"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgroutine"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager

	// resources
	metrics *pkgmetrics.Metrics
	mongo   *pkgmongo.Client

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initResources()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
