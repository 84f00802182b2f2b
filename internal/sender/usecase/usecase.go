package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgerror"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/entity"
)

// ErrMissingField is the client-facing text for an incomplete send request.
const ErrMissingField = "host and message required"

type Transport interface {
	Send(ctx context.Context, host string, port int, payload []byte) error
}

type IPLookup interface {
	Lookup(ctx context.Context) ([]byte, error)
}

type Recorder interface {
	RecordSend(ok bool, payloadBytes int, elapsed time.Duration)
	RecordRejection()
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Transport Transport
	IPLookup  IPLookup
	Recorder  Recorder
	Clock     Clock
}

type Usecase struct {
	transport Transport
	ipLookup  IPLookup
	recorder  Recorder
	clock     Clock
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	recorder := dep.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Usecase{
		transport: dep.Transport,
		ipLookup:  dep.IPLookup,
		recorder:  recorder,
		clock:     clock,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type noopRecorder struct{}

func (noopRecorder) RecordSend(bool, int, time.Duration) {}
func (noopRecorder) RecordRejection()                    {}

// SendPacket emits exactly one datagram carrying in.Message to in.Host on
// entity.DestinationPort. A nil error only means the local write succeeded.
func (u *Usecase) SendPacket(ctx context.Context, in SendInput) (SendResult, error) {
	packet := entity.Packet{Host: strings.TrimSpace(in.Host), Message: in.Message}
	if packet.Host == "" || packet.Message == "" {
		u.recorder.RecordRejection()
		return SendResult{}, pkgerror.NewMissingField(ErrMissingField)
	}

	if u.transport == nil {
		return SendResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	payload := packet.Payload()
	start := u.clock.Now()
	err := u.transport.Send(ctx, packet.Host, entity.DestinationPort, payload)
	u.recorder.RecordSend(err == nil, len(payload), u.clock.Now().Sub(start))

	if err != nil {
		slog.WarnContext(ctx, "failed to send datagram", "host", packet.Host, "port", entity.DestinationPort, "error", err)
		return SendResult{}, pkgerror.NewTransport(err)
	}

	slog.DebugContext(ctx, "datagram sent", "host", packet.Host, "port", entity.DestinationPort, "bytes", len(payload))
	return SendResult{Port: entity.DestinationPort}, nil
}

// IPInfo relays the geolocation document of the server's public address.
func (u *Usecase) IPInfo(ctx context.Context) (IPInfoResult, error) {
	if u.ipLookup == nil {
		return IPInfoResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	body, err := u.ipLookup.Lookup(ctx)
	if err != nil {
		slog.WarnContext(ctx, "ip info lookup failed", "error", err)
		return IPInfoResult{}, pkgerror.NewTransport(err)
	}

	return IPInfoResult{Body: body}, nil
}
