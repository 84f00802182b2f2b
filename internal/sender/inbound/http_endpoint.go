package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgerror"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/usecase"
)

const maxRequestBytes = 64 * 1024

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) SendPacket(ctx context.Context, r *http.Request) (any, error) {
	var req SendPacketRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.SendPacket(ctx, usecase.SendInput{
		Host:    req.Host,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}

	return SendPacketResponse{Success: true, Port: result.Port}, nil
}

func (h *HTTPEndpoint) IPInfo(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.IPInfo(ctx)
	if err != nil {
		return nil, err
	}

	// upstream document is relayed as-is
	return json.RawMessage(result.Body), nil
}

// decodeJSON reads a JSON object body. An absent body decodes to the zero
// value so that field validation, not parsing, reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return pkgerror.NewInvalidFormat()
	}

	return nil
}
