// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package decimalinput shapes numeric text typed into rate and amount fields.
// It is applied keystroke by keystroke and does not validate: malformed
// numbers are rejected by the remote API, not here.
package decimalinput

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaxDecimals is the fractional precision allowed for rates and amounts.
const DefaultMaxDecimals = 6

// Normalize replaces comma separators with periods, treats the first period
// as the decimal point, merges everything after it into one fractional run
// and truncates that run to maxDecimals runes. Input without a period is
// returned unchanged.
//
// Normalize(Normalize(s, n), n) == Normalize(s, n) for every s and n >= 0.
func Normalize(raw string, maxDecimals int) string {
	normalized := strings.ReplaceAll(raw, ",", ".")

	head, tail, found := strings.Cut(normalized, ".")
	if !found {
		return normalized
	}

	fraction := []rune(strings.ReplaceAll(tail, ".", ""))
	if maxDecimals < 0 {
		maxDecimals = 0
	}
	if len(fraction) > maxDecimals {
		fraction = fraction[:maxDecimals]
	}
	return head + "." + string(fraction)
}

// FormatMoney renders a stored decimal text for display. Empty text renders
// as "0", everything else passes through untouched.
func FormatMoney(value string) string {
	if value == "" {
		return "0"
	}
	return value
}

// ToNumber converts normalized text into the JSON number sent to the API.
// Blank text is zero, a dangling or leading decimal point is tolerated.
// Text that still does not parse returns nil, which encodes as null.
func ToNumber(text string) *json.Number {
	text = strings.TrimSpace(text)
	if text == "" {
		zero := json.Number("0")
		return &zero
	}

	sign := ""
	if text[0] == '-' || text[0] == '+' {
		sign, text = text[:1], text[1:]
	}
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	text = strings.TrimSuffix(text, ".")

	d, err := decimal.NewFromString(sign + text)
	if err != nil {
		return nil
	}
	n := json.Number(d.String())
	return &n
}
