// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"net/http"
	"time"
)

type Config struct {
	BaseURL string
	// Timeout of zero leaves request lifetime to the transport.
	Timeout   time.Duration
	UserAgent string
	// Transport overrides http.DefaultTransport, mostly for tests.
	Transport http.RoundTripper
}

func NewDefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8080",
		UserAgent: "fxconsole",
	}
}
