package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mingle-backend/internal/dto"
)

// DefaultTimeout leaves room for the server's 60s AI bound.
const DefaultTimeout = 75 * time.Second

// APIError is a non-2xx reply from the backend
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// Client calls the backend REST API
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New returns a client for baseURL, e.g. http://localhost:8080/api
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateProfile(ctx context.Context, req dto.ProfileRequest) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(ctx, http.MethodPost, "/profiles", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProfiles(ctx context.Context) ([]dto.ProfileResponse, error) {
	var out []dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, req dto.ProfileRequest) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/profiles/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetQR(ctx context.Context, profileID string) (*dto.QRResponse, error) {
	var out dto.QRResponse
	if err := c.do(ctx, http.MethodGet, "/qr/"+url.PathEscape(profileID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNetwork(ctx context.Context, userID string) ([]dto.SavedContactResponse, error) {
	var out []dto.SavedContactResponse
	q := url.Values{"userId": {userID}}
	if err := c.do(ctx, http.MethodGet, "/network", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveContact(ctx context.Context, userID, profileID string) error {
	body := dto.NetworkSaveRequest{UserID: userID, ProfileID: profileID}
	return c.do(ctx, http.MethodPost, "/network", nil, body, &dto.NetworkStatusResponse{})
}

func (c *Client) RemoveContact(ctx context.Context, userID, profileID string) error {
	q := url.Values{"userId": {userID}}
	return c.do(ctx, http.MethodDelete, "/network/"+url.PathEscape(profileID), q, nil, &dto.NetworkStatusResponse{})
}

func (c *Client) RankContacts(ctx context.Context, req dto.RankRequest) (*dto.RankResponse, error) {
	var out dto.RankResponse
	if err := c.do(ctx, http.MethodPost, "/outreach/rank", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DraftOutreach(ctx context.Context, req dto.DraftRequest) (*dto.DraftResponse, error) {
	var out dto.DraftResponse
	if err := c.do(ctx, http.MethodPost, "/outreach/draft", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e dto.ErrorResponse
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Message = e.Error
			apiErr.Code = e.Code
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
