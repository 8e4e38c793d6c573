// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/internal/sandbox"
)

func newSandboxClient(t *testing.T) *HTTPClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(sandbox.New(sandbox.NewSeededStore()))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "::not a url", "localhost:8080"} {
		_, err := NewHTTPClient(Config{BaseURL: raw})
		assert.Error(t, err, raw)
	}

	c, err := NewHTTPClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/currencies", c.endpoint("/currencies", nil))
}

func TestHTTPClient_ListCurrencies(t *testing.T) {
	c := newSandboxClient(t)

	page, err := c.ListCurrencies(context.Background(), model.PageRequest{PageNumber: 1, PageSize: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 6, page.PageSize)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, "USD", page.Items[0].Code)
}

func TestHTTPClient_CreateCurrency(t *testing.T) {
	c := newSandboxClient(t)
	ctx := context.Background()

	created, err := c.CreateCurrency(ctx, model.CurrencyForm{Code: "SEK", FullName: "Swedish Krona", Sign: "kr"})
	require.NoError(t, err)
	assert.Equal(t, "SEK", created.Code)
	assert.NotZero(t, created.ID)

	_, err = c.CreateCurrency(ctx, model.CurrencyForm{Code: "SEK", FullName: "Swedish Krona", Sign: "kr"})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusConflict, respErr.StatusCode)
	assert.Equal(t, "currency already exists", respErr.Message)
}

func TestHTTPClient_CreateRateAndExchange(t *testing.T) {
	c := newSandboxClient(t)
	ctx := context.Background()

	rate := json.Number("190.25")
	created, err := c.CreateRate(ctx, model.CreateRateRequest{BaseCode: "GBP", TargetCode: "JPY", Rate: &rate})
	require.NoError(t, err)
	assert.Equal(t, model.DecimalText("190.25"), created.Rate)

	result, err := c.Exchange(ctx, model.ExchangeForm{Base: "GBP", Target: "JPY", Amount: "2"})
	require.NoError(t, err)
	assert.Equal(t, model.DecimalText("380.5"), result.ConvertAmount)
	assert.Equal(t, "¥", result.ExchangeRate.TargetCurrency.Sign)

	_, err = c.CreateRate(ctx, model.CreateRateRequest{BaseCode: "XXX", TargetCode: "JPY", Rate: &rate})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "base currency not found", respErr.Message)
}

func TestHTTPClient_SendsHeadersAndBody(t *testing.T) {
	var got *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"rate":"0.5"}`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(Config{BaseURL: srv.URL, UserAgent: "fxconsole-test"})
	require.NoError(t, err)

	_, err = c.CreateRate(context.Background(), model.CreateRateRequest{BaseCode: "USD", TargetCode: "EUR"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/rates", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "fxconsole-test", got.Header.Get("User-Agent"))
	assert.NotEmpty(t, got.Header.Get(RequestIDHeader))
	assert.JSONEq(t, `{"baseCode":"USD","targetCode":"EUR","rate":null}`, string(body))
}

func TestHTTPClient_ErrorBodies(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message", http.StatusBadRequest, `{"message":"invalid currency code"}`, "invalid currency code"},
		{"no message", http.StatusInternalServerError, `{}`, ""},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := NewHTTPClient(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = c.ListCurrencies(context.Background(), model.PageRequest{PageNumber: 1, PageSize: 6})
			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tc.status, respErr.StatusCode)
			assert.Equal(t, tc.message, respErr.Message)
		})
	}
}

func TestHTTPClient_TransportAndDecodeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	c, err := NewHTTPClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Exchange(context.Background(), model.ExchangeForm{Base: "USD", Target: "EUR", Amount: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")

	srv.Close()
	_, err = c.Exchange(context.Background(), model.ExchangeForm{Base: "USD", Target: "EUR", Amount: "1"})
	require.Error(t, err)
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
	assert.Contains(t, err.Error(), "send request")
}
