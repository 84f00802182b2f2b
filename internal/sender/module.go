package sender

import (
	"context"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgconfig"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/inbound"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/outbound"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/usecase"
)

type Dependency struct {
	Config   pkgconfig.Config
	Router   *pkgrouter.Router
	Recorder usecase.Recorder
}

// New wires the Dispatcher endpoints. The module holds no resources, so the
// returned closer is always nil.
func New(dep Dependency) (func(context.Context) error, error) {
	ipURL := outbound.DefaultIPInfoURL
	ipTimeout := 10 * time.Second
	if dep.Config != nil {
		if v := dep.Config.GetString("ipinfo.url"); v != "" {
			ipURL = v
		}
		if v := dep.Config.GetDuration("ipinfo.timeout"); v > 0 {
			ipTimeout = v
		}
	}

	uc := usecase.New(usecase.Dependency{
		Transport: outbound.NewUDPTransport(),
		IPLookup:  outbound.NewIPInfoClient(ipURL, ipTimeout),
		Recorder:  dep.Recorder,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil, nil
}
