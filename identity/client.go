// Package identity forwards credential checks and other API calls to the
// external identity backend. The backend is the sole source of truth for
// users and token validity; this layer only relays and reshapes.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prachw/go-pos-gateway/internal/config"
	errs "github.com/prachw/go-pos-gateway/internal/errors"
	"github.com/prachw/go-pos-gateway/internal/metrics"
)

const backendContentType = "application/json"

// Credentials is the transient login input. Never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Result is the backend's answer to a successful credential check.
type Result struct {
	ID       int
	Username string
	Token    string
}

// loginResponse mirrors the backend's success body:
// {"user":{"id":..,"username":..},"token":".."}
// The id is a pointer so an absent field is distinguishable from a
// legitimate id of 0.
type loginResponse struct {
	User struct {
		ID       *int   `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	Token string `json:"token"`
}

// Client calls the backend identity API. The zero http.Client is shared;
// every call is bounded by the configured backend timeout via context.
type Client struct {
	cfg  config.EnvConfig
	http *http.Client
}

func NewClient(cfg config.EnvConfig) *Client {
	return &Client{cfg: cfg, http: &http.Client{}}
}

// Login validates the credential pair against the backend.
//
// Empty fields fail with ErrMissingCredentials before any network call.
// A non-2xx backend status collapses to ErrInvalidCredentials without
// distinguishing the cause. Transport faults and unusable success bodies
// collapse to ErrBackend; the raw detail is for the server-side log only.
func (c *Client) Login(ctx context.Context, creds Credentials) (Result, error) {
	if creds.Username == "" || creds.Password == "" {
		return Result{}, errs.ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.GetBackendTimeout())
	defer cancel()

	body, err := json.Marshal(creds)
	if err != nil {
		return Result{}, errs.Wrapf(err, "marshal credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GetAPIBaseURL()+"/login", bytes.NewReader(body))
	if err != nil {
		return Result{}, errs.Wrapf(err, "build login request")
	}
	req.Header.Set("Content-Type", backendContentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RecordBackendRequest("login", time.Since(start))
	if err != nil {
		return Result{}, fmt.Errorf("%w: login call: %v", errs.ErrBackend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, errs.ErrInvalidCredentials
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("%w: decode login response: %v", errs.ErrBackend, err)
	}
	if decoded.User.ID == nil || decoded.User.Username == "" || decoded.Token == "" {
		// A partial success body must not reach issuance.
		return Result{}, fmt.Errorf("%w: incomplete login response", errs.ErrBackend)
	}

	return Result{
		ID:       *decoded.User.ID,
		Username: decoded.User.Username,
		Token:    decoded.Token,
	}, nil
}

// Register forwards a registration body verbatim and relays the backend's
// status code and body transparently.
func (c *Client) Register(ctx context.Context, body []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.GetBackendTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GetAPIBaseURL()+"/register", bytes.NewReader(body))
	if err != nil {
		return 0, nil, errs.Wrapf(err, "build register request")
	}
	req.Header.Set("Content-Type", backendContentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RecordBackendRequest("register", time.Since(start))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: register call: %v", errs.ErrBackend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read register response: %v", errs.ErrBackend, err)
	}
	return resp.StatusCode, respBody, nil
}

// ProxyResponse is a fully buffered backend response, ready to relay.
type ProxyResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forward relays an arbitrary API request to the backend, attaching the
// bearer token when one is supplied.
func (c *Client) Forward(ctx context.Context, method, path, rawQuery string, body io.Reader, token string) (*ProxyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.GetBackendTimeout())
	defer cancel()

	url := c.cfg.GetAPIBaseURL() + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errs.Wrapf(err, "build proxy request")
	}
	req.Header.Set("Content-Type", backendContentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RecordBackendRequest("proxy", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", errs.ErrBackend, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read proxy response: %v", errs.ErrBackend, err)
	}
	return &ProxyResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}
