package inbound

import (
	"context"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/usecase"
)

// APIPrefix is the path prefix the browser client historically used.
const APIPrefix = "/api"

type uc interface {
	SendPacket(ctx context.Context, in usecase.SendInput) (usecase.SendResult, error)
	IPInfo(ctx context.Context) (usecase.IPInfoResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	for _, prefix := range []string{"", APIPrefix} {
		r.POST(prefix+"/send-packet", end.SendPacket)
		r.GET(prefix+"/ipinfo", end.IPInfo)
	}
}
