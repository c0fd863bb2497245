package client

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

	"github.com/dmitrijs2005/taskease/internal/client/gate"
	"github.com/dmitrijs2005/taskease/internal/common"
	"github.com/dmitrijs2005/taskease/internal/logging"
	"github.com/google/uuid"
)

// CredentialSource is the part of the credential store the client needs.
type CredentialSource interface {
	Get(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// Navigator exposes the current location and lets the client force a redirect.
type Navigator interface {
	Location() string
	Navigate(path string)
}

// HTTPClient talks to the TaskEase REST API.
type HTTPClient struct {
	baseURL          string
	http             *http.Client
	store            CredentialSource
	nav              Navigator
	log              logging.Logger
	onCredentialLost func(ctx context.Context)
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the underlying *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithCredentialLostHook registers fn to run during the recovery sequence,
// right after the stored credential has been cleared.
func WithCredentialLostHook(fn func(ctx context.Context)) Option {
	return func(c *HTTPClient) { c.onCredentialLost = fn }
}

// New builds an HTTPClient for the API rooted at baseURL.
func New(baseURL string, store CredentialSource, nav Navigator, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
		nav:     nav,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// prepareRequest is the outbound step: JSON headers, a request id and the
// bearer credential when the store holds one.
func (c *HTTPClient) prepareRequest(ctx context.Context, req *http.Request) (*http.Request, error) {
	req.Header.Set("Accept", common.JSONContentType)
	if req.Body != nil {
		req.Header.Set("Content-Type", common.JSONContentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	credential, ok, err := c.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if ok {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+credential)
	}
	return req, nil
}

// observeResponse is the inbound step. A 401 triggers the recovery sequence
// and comes back as an *APIError wrapping ErrUnauthorized; transport failures
// wrap ErrUnavailable; other non-2xx responses become *APIError. 2xx
// responses are returned unchanged.
func (c *HTTPClient) observeResponse(ctx context.Context, resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := newAPIError(resp)
		if resp.StatusCode == http.StatusUnauthorized {
			c.log.Warn(ctx, "received 401 unauthorized", "message", apiErr.Message)
			c.recover(ctx)
		}
		return nil, apiErr
	}
	return resp, nil
}

// recover is the recovery sequence run once per 401 response. It is
// idempotent: with no stored credential only the redirect may happen.
func (c *HTTPClient) recover(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential", "error", err)
	}

	if c.onCredentialLost != nil {
		c.onCredentialLost(ctx)
	}

	if c.nav == nil {
		return
	}
	if loc := c.nav.Location(); gate.IsAuthEntry(loc) {
		c.log.Debug(ctx, "already on an auth entry point, not redirecting", "location", loc)
		return
	}
	c.log.Info(ctx, "redirecting to login after 401")
	c.nav.Navigate(gate.LoginPath)
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req, err = c.prepareRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	resp, err = c.observeResponse(ctx, resp, err)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	c.log.Debug(ctx, "api request",
		"method", method,
		"path", path,
		"status", status,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"duration", time.Since(start),
	)

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
