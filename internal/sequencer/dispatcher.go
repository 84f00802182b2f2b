package sequencer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkglog"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
)

const (
	// DefaultAPIBase is the hosted Dispatcher API.
	DefaultAPIBase = "https://api-udp-tester.qarhami.com/api"

	fallbackDispatchError = "Failed to send packet"
	maxResponseBytes      = 64 * 1024
)

// DispatchError is a failure reported by the Dispatcher API.
type DispatchError struct {
	StatusCode int
	Message    string
}

func (e *DispatchError) Error() string {
	return e.Message
}

type sendPacketRequest struct {
	Host    string `json:"host"`
	Message string `json:"message"`
}

type sendPacketResponse struct {
	Success bool `json:"success"`
	Port    int  `json:"port"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPDispatcher calls POST <base>/send-packet once per message.
type HTTPDispatcher struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDispatcher returns a Dispatcher for the API at base. A nil client
// gets a default one without a per-request timeout.
func NewHTTPDispatcher(base string, client *http.Client) *HTTPDispatcher {
	if base == "" {
		base = DefaultAPIBase
	}
	if client == nil {
		client = &http.Client{Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		}}
	}

	return &HTTPDispatcher{
		endpoint: strings.TrimRight(base, "/") + "/send-packet",
		client:   client,
	}
}

func (d *HTTPDispatcher) Endpoint() string {
	return d.endpoint
}

func (d *HTTPDispatcher) Dispatch(ctx context.Context, host, message string) error {
	body, err := json.Marshal(sendPacketRequest{Host: host, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cid, ok := pkglog.CorrelationID(ctx); ok {
		req.Header.Set(pkgrouter.HeaderCorrelationID, cid)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	reader := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.NewDecoder(reader).Decode(&e); err != nil || e.Error == "" {
			return &DispatchError{StatusCode: resp.StatusCode, Message: fallbackDispatchError}
		}
		return &DispatchError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	var ok sendPacketResponse
	if err := json.NewDecoder(reader).Decode(&ok); err != nil {
		return fmt.Errorf("decode send-packet response: %w", err)
	}
	if !ok.Success {
		return &DispatchError{StatusCode: resp.StatusCode, Message: fallbackDispatchError}
	}

	return nil
}
