package outbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPInfoClientLookup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"203.0.113.7","country":"PK"}`))
	}))
	defer srv.Close()

	body, err := NewIPInfoClient(srv.URL, time.Second).Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() err = %v", err)
	}
	if string(body) != `{"ip":"203.0.113.7","country":"PK"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestIPInfoClientUpstreamStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewIPInfoClient(srv.URL, time.Second).Lookup(context.Background())
	if err == nil || err.Error() != "HTTP error! status: 429" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIPInfoClientInvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	if _, err := NewIPInfoClient(srv.URL, time.Second).Lookup(context.Background()); err == nil {
		t.Fatal("expected invalid JSON error")
	}
}
