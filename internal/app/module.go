package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.sender.enabled") {
		closer, err := sender.New(sender.Dependency{
			Config:   a.config,
			Router:   a.router,
			Recorder: a.metrics,
		})
		if err != nil {
			slog.Error("failed to init module sender", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Sender"] = closer
		}
	}
}
