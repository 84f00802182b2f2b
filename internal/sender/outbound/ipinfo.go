package outbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultIPInfoURL is the public geolocation endpoint proxied by /ipinfo.
const DefaultIPInfoURL = "https://ipapi.co/json/"

const maxIPInfoBytes = 1 << 20

// IPInfoClient fetches the geolocation document of the server's public IP.
type IPInfoClient struct {
	url    string
	client *http.Client
}

func NewIPInfoClient(url string, timeout time.Duration) *IPInfoClient {
	if url == "" {
		url = DefaultIPInfoURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &IPInfoClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Lookup returns the upstream JSON body unchanged.
func (c *IPInfoClient) Lookup(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIPInfoBytes))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errors.New("upstream returned invalid JSON")
	}

	return body, nil
}
