// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/fxconsole/core/model"
)

type Client interface {
	// Close releases idle connections held by the client.
	Close(ctx context.Context) error

	// --- Currencies ---

	ListCurrencies(ctx context.Context, page model.PageRequest) (model.Page[model.Currency], error)

	CreateCurrency(ctx context.Context, form model.CurrencyForm) (model.Currency, error)

	// --- Rates ---

	CreateRate(ctx context.Context, req model.CreateRateRequest) (model.ExchangeRate, error)

	// --- Exchange ---

	Exchange(ctx context.Context, query model.ExchangeForm) (model.ExchangeResult, error)
}
