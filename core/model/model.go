// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecimalText is a decimal value kept as the text the API sent. It accepts
// JSON strings, bare JSON numbers and null.
type DecimalText string

func (d *DecimalText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*d = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DecimalText(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decimal text: %w", err)
		}
		*d = DecimalText(n.String())
	}
	return nil
}

func (d DecimalText) String() string { return string(d) }

// Currency is identified by its code in every list.
type Currency struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Sign     string `json:"sign"`
}

// ExchangeRate is a directed conversion factor from base to target.
type ExchangeRate struct {
	ID             int64       `json:"id"`
	BaseCurrency   Currency    `json:"baseCurrency"`
	TargetCurrency Currency    `json:"targetCurrency"`
	Rate           DecimalText `json:"rate"`
}

// ExchangeResult only lives as the outcome of the latest conversion query.
type ExchangeResult struct {
	ExchangeRate  ExchangeRate `json:"exchangeRate"`
	Amount        DecimalText  `json:"amount"`
	ConvertAmount DecimalText  `json:"convertAmount"`
}

type PageRequest struct {
	PageNumber int
	PageSize   int
}

// Page is one server-side slice of a list. It is replaced as a whole.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
}

// --- forms ---

type CurrencyForm struct {
	Code     string `json:"code" mapstructure:"code"`
	FullName string `json:"fullName" mapstructure:"fullName"`
	Sign     string `json:"sign" mapstructure:"sign"`
}

type RateForm struct {
	BaseCode   string `mapstructure:"baseCode"`
	TargetCode string `mapstructure:"targetCode"`
	Rate       string `mapstructure:"rate"`
}

type ExchangeForm struct {
	Base   string `mapstructure:"base"`
	Target string `mapstructure:"target"`
	Amount string `mapstructure:"amount"`
}

// CreateRateRequest is the POST /rates body. A nil Rate encodes as null.
type CreateRateRequest struct {
	BaseCode   string       `json:"baseCode"`
	TargetCode string       `json:"targetCode"`
	Rate       *json.Number `json:"rate"`
}
