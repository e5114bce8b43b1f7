// Package usersapi talks to a remote REST API exposing /api/users.
package usersapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"userbench/userbench/types"
	httputils "userbench/userbench/utils/http"
	"userbench/userbench/utils/jsonutils"
	"userbench/userbench/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const usersPath = "/api/users"

// ErrUserNotFound is returned for a 404 on an id-addressed call.
var ErrUserNotFound = errors.New("User not found")

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds each request. Zero keeps whatever timeout the
// underlying http.Client already has.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// Copy so a caller's shared client keeps its own settings.
		cp := *c.http
		cp.Timeout = c.timeout
		c.http = &cp
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) List(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "List", http.MethodGet, "", nil, false)
}

func (c *Client) Create(ctx context.Context, req types.CreateUserRequest) (json.RawMessage, error) {
	return c.do(ctx, "Create", http.MethodPost, "", req, false)
}

func (c *Client) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, "Get", http.MethodGet, id, nil, true)
}

func (c *Client) Update(ctx context.Context, id string, req types.UpdateUserRequest) (json.RawMessage, error) {
	return c.do(ctx, "Update", http.MethodPut, id, req, true)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, "Delete", http.MethodDelete, id, nil, true)
	return err
}

func (c *Client) endpoint(id string) string {
	if id == "" {
		return c.baseURL + usersPath
	}
	return c.baseURL + usersPath + "/" + url.PathEscape(id)
}

// do performs a single round trip. byID marks calls where 404 means the user
// does not exist rather than the endpoint being missing.
func (c *Client) do(ctx context.Context, op, method, id string, body any, byID bool) (json.RawMessage, error) {
	requestID := uuid.NewString()
	ctx = context.WithValue(ctx, logging.RequestIDKey, requestID)
	defer logging.LogDuration(ctx, "usersapi."+op)()

	endpoint := c.endpoint(id)
	header := http.Header{}
	header.Set("X-Request-ID", requestID)

	resp, err := httputils.DoJSON(ctx, c.http, method, endpoint, body, header)
	if err != nil {
		logging.ErrorLogger.Error("users api request failed",
			zap.String("op", op),
			zap.String("url", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logging.AppLogger.Info("users api call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
	)

	if resp.OK() {
		if len(resp.Body) == 0 {
			return nil, nil
		}
		return json.RawMessage(resp.Body), nil
	}
	if byID && resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if msg, ok := jsonutils.Message(resp.Body); ok {
		apiErr.Message = msg
	}
	return nil, apiErr
}
