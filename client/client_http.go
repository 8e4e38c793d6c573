// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/internal/logging"
)

// RequestIDHeader carries a per-call id so API logs can be matched to ours.
const RequestIDHeader = "X-Request-Id"

type HTTPClient struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = NewDefaultConfig().BaseURL
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", cfg.BaseURL)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &HTTPClient{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout, Transport: transport},
	}, nil
}

func (c *HTTPClient) Close(ctx context.Context) error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) ListCurrencies(ctx context.Context, page model.PageRequest) (model.Page[model.Currency], error) {
	var out model.Page[model.Currency]
	query := url.Values{}
	query.Set("pageNumber", strconv.Itoa(page.PageNumber))
	query.Set("pageSize", strconv.Itoa(page.PageSize))
	err := c.do(ctx, http.MethodGet, "/currencies", query, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateCurrency(ctx context.Context, form model.CurrencyForm) (model.Currency, error) {
	var out model.Currency
	err := c.do(ctx, http.MethodPost, "/currencies", nil, form, &out)
	return out, err
}

func (c *HTTPClient) CreateRate(ctx context.Context, req model.CreateRateRequest) (model.ExchangeRate, error) {
	var out model.ExchangeRate
	err := c.do(ctx, http.MethodPost, "/rates", nil, req, &out)
	return out, err
}

func (c *HTTPClient) Exchange(ctx context.Context, q model.ExchangeForm) (model.ExchangeResult, error) {
	var out model.ExchangeResult
	query := url.Values{}
	query.Set("base", q.Base)
	query.Set("target", q.Target)
	query.Set("amount", q.Amount)
	err := c.do(ctx, http.MethodGet, "/exchange", query, nil, &out)
	return out, err
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and decodes a 2xx body into out. Anything else comes
// back as *ResponseError or a wrapped transport/decode error.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debugf("%s %s failed after %s id=%s: %v", method, req.URL.RequestURI(), time.Since(start), requestID, err)
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	logging.Debugf("%s %s %d %dB %s id=%s", method, req.URL.RequestURI(), resp.StatusCode, len(data), time.Since(start), requestID)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newResponseError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
