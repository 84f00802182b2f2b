package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkgrouter"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkguid"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/entity"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sender/usecase"
)

type recordingTransport struct {
	mu       sync.Mutex
	payloads []string
	err      error
}

func (t *recordingTransport) Send(ctx context.Context, host string, port int, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.payloads = append(t.payloads, host+"|"+string(payload))
	return nil
}

type staticLookup struct{}

func (staticLookup) Lookup(ctx context.Context) ([]byte, error) {
	return []byte(`{"ip":"198.51.100.1","city":"Lahore"}`), nil
}

func newTestRouter(transport usecase.Transport) *pkgrouter.Router {
	uc := usecase.New(usecase.Dependency{
		Transport: transport,
		IPLookup:  staticLookup{},
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)
	return router
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSendPacketEndpoint(t *testing.T) {
	transport := &recordingTransport{}
	router := newTestRouter(transport)

	for _, path := range []string{"/send-packet", "/api/send-packet"} {
		rec := postJSON(t, router, path, `{"host":"10.0.0.5","message":"ping"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d: %s", path, rec.Code, rec.Body.String())
		}

		var resp SendPacketResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.Success || resp.Port != entity.DestinationPort {
			t.Fatalf("unexpected response: %+v", resp)
		}
	}

	if len(transport.payloads) != 2 || transport.payloads[0] != "10.0.0.5|ping" {
		t.Fatalf("unexpected datagrams: %v", transport.payloads)
	}
}

func TestSendPacketEndpointValidation(t *testing.T) {
	transport := &recordingTransport{}
	router := newTestRouter(transport)

	for _, body := range []string{`{"host":"10.0.0.5"}`, `{"message":"ping"}`, `{}`, ``} {
		rec := postJSON(t, router, "/send-packet", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: unexpected status %d", body, rec.Code)
		}

		var resp pkgrouter.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if resp.Error != usecase.ErrMissingField {
			t.Fatalf("body %q: unexpected error %q", body, resp.Error)
		}
	}

	if len(transport.payloads) != 0 {
		t.Fatalf("expected zero datagrams, got %v", transport.payloads)
	}
}

func TestSendPacketEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(&recordingTransport{})

	rec := postJSON(t, router, "/send-packet", `{"host":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestSendPacketEndpointTransportError(t *testing.T) {
	router := newTestRouter(&recordingTransport{err: errors.New("UDP error: network is unreachable")})

	rec := postJSON(t, router, "/send-packet", `{"host":"10.0.0.5","message":"ping"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var resp pkgrouter.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error != "UDP error: network is unreachable" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestIPInfoEndpoint(t *testing.T) {
	router := newTestRouter(&recordingTransport{})

	req := httptest.NewRequest(http.MethodGet, "/api/ipinfo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"ip":"198.51.100.1","city":"Lahore"}` {
		t.Fatalf("unexpected body %s", got)
	}
}
