// Package backend forwards requests to the lead-processing backend service.
package backend

import (
	"context"
	"net/http"
	"strings"
	"time"

	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultPostPath is used when a POST is proxied without an explicit path.
const DefaultPostPath = "/api/leads/process-url"

// Response is the backend reply, relayed verbatim.
type Response struct {
	Status      int
	Body        []byte
	ContentType string
}

type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient returns a client for baseURL. Quote characters and a trailing slash
// are stripped, so shell-quoted environment values work.
func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSuffix(strings.NewReplacer(`"`, "", `'`, "").Replace(baseURL), "/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	hc := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{baseURL: base, http: hc}
}

// Configured reports whether a backend URL is set.
func (c *Client) Configured() bool { return c != nil && c.baseURL != "" }

// URL joins the base URL with path.
func (c *Client) URL(path string) string { return c.baseURL + path }

// Forward sends method to path with an optional JSON body. No retries: the
// backend's POST endpoints are not idempotent.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte) (*Response, error) {
	if !c.Configured() {
		return nil, appErr.New(appErr.CodeInternal, "Backend URL not configured")
	}
	target := c.URL(path)

	req := c.http.R().SetContext(ctx)
	if body != nil && method != http.MethodGet {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	logger.L().Info("proxy forward", zap.String("method", method), zap.String("url", target))
	resp, err := req.Execute(method, target)
	if err != nil {
		logger.L().Warn("proxy forward failed", zap.String("url", target), zap.Error(err))
		return nil, appErr.Wrap(err, appErr.CodeUpstream, err.Error()).WithMeta("debug_url", target)
	}
	return &Response{
		Status:      resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}
