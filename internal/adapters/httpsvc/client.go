// Package httpsvc implements the request/response collaborator ports over
// HTTP with JSON bodies: the boundary, frontier, transform, and localizer
// services.
package httpsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

const healthEndpoint = "/healthz"

// readyPollInterval is how often waitReady re-probes the health endpoint.
const readyPollInterval = 250 * time.Millisecond

// client is the shared HTTP/JSON machinery behind the service clients.
type client struct {
	name   string
	base   string
	http   ports.HTTPClient
	logger log.Logger
}

func newClient(name, base string, httpClient ports.HTTPClient, logger log.Logger) client {
	return client{name: name, base: base, http: httpClient, logger: logger}
}

// waitReady polls the service health endpoint until it answers 200 or ctx
// expires. Expiry is reported as domain.ErrUnavailable.
func (c client) waitReady(ctx context.Context) error {
	return WaitReady(ctx, c.http, c.base, c.name)
}

// WaitReady polls base's health endpoint until it answers 200 or ctx
// expires. Expiry is reported as an error wrapping domain.ErrUnavailable.
// It is shared by every HTTP collaborator client, including the navigation
// adapter.
func WaitReady(ctx context.Context, httpClient ports.HTTPClient, base, name string) error {
	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+healthEndpoint, nil)
		if err != nil {
			return fmt.Errorf("%s health request: %w", name, err)
		}
		resp, err := httpClient.Do(req)
		if err == nil {
			drain(resp)
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s did not become ready: %v", domain.ErrUnavailable, name, ctx.Err())
		case <-ticker.C:
		}
	}
}

// postJSON sends in as a JSON body and decodes the 2xx response into out.
func (c client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", c.name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// getJSON issues a GET and decodes the 2xx response into out.
func (c client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", c.name, err)
	}
	return c.do(req, out)
}

func (c client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s returned %d: %s", c.name, resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.name, err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
