package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mingle-backend/internal/apperr"
)

const (
	RankPath  = "/ai/rank-contacts"
	DraftPath = "/ai/draft-outreach"

	DefaultTimeout = 60 * time.Second

	maxResponseBytes = 8 << 20
)

// Observer receives one observation per forwarded call. status is 0 when the
// AI service could not be reached.
type Observer interface {
	ObserveUpstream(endpoint string, status int, elapsed time.Duration)
}

// Proxy forwards ranking and drafting requests to the AI service. Each call is
// a single attempt bounded by the configured timeout.
type Proxy struct {
	baseURL  string
	timeout  time.Duration
	client   *http.Client
	observer Observer
}

type Option func(*Proxy)

func WithHTTPClient(c *http.Client) Option {
	return func(p *Proxy) { p.client = c }
}

func WithObserver(o Observer) Option {
	return func(p *Proxy) { p.observer = o }
}

func NewProxy(baseURL string, timeout time.Duration, opts ...Option) *Proxy {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &Proxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rank relays a ranking request body and returns the upstream body unmodified.
func (p *Proxy) Rank(ctx context.Context, body []byte) ([]byte, error) {
	return p.forward(ctx, RankPath, body)
}

// Draft relays a drafting request body and returns the upstream body unmodified.
func (p *Proxy) Draft(ctx context.Context, body []byte) ([]byte, error) {
	return p.forward(ctx, DraftPath, body)
}

func (p *Proxy) forward(ctx context.Context, path string, body []byte) ([]byte, error) {
	if !json.Valid(body) {
		return nil, apperr.Validation("request body must be valid JSON")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Upstream(0, err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.observe(path, 0, start)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Upstream(0, fmt.Sprintf("timeout of %dms exceeded", p.timeout.Milliseconds()), err)
		}
		return nil, apperr.Upstream(0, err.Error(), err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	p.observe(path, resp.StatusCode, start)
	if err != nil {
		return nil, apperr.Upstream(0, err.Error(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Upstream(resp.StatusCode, upstreamMessage(resp.StatusCode, payload), nil)
	}
	return payload, nil
}

func (p *Proxy) observe(path string, status int, start time.Time) {
	if p.observer != nil {
		p.observer.ObserveUpstream(path, status, time.Since(start))
	}
}

// upstreamMessage prefers the service's "detail" field. Structured details are
// relayed as their JSON text.
func upstreamMessage(status int, payload []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && len(body.Detail) > 0 && string(body.Detail) != "null" {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil {
			if s != "" {
				return s
			}
		} else {
			return string(body.Detail)
		}
	}
	return fmt.Sprintf("Request failed with status code %d", status)
}
