package main

import (
	"context"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/app"
)

func main() {
	application := app.New()
	<-application.Start()

	// the shutdown budget starts once the signal arrives
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx)
}
