// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ResponseError is a non-2xx answer from the API. Message holds the optional
// "message" field of the body and is empty when the body had none.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Message string `json:"message"`
}

// newResponseError never fails: an unreadable body just yields no message.
func newResponseError(status int, body []byte) *ResponseError {
	var payload errorBody
	_ = json.Unmarshal(body, &payload)
	return &ResponseError{StatusCode: status, Message: payload.Message}
}
