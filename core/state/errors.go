// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"errors"

	"github.com/toeirei/fxconsole/client"
)

// ErrorText turns any failure of a remote call into the text shown next to
// the form that caused it: the API's own message when it sent one, the
// operation's fallback otherwise (transport errors, unparsable bodies).
func ErrorText(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var respErr *client.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return fallback
}
