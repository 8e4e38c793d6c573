// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"context"

	"github.com/toeirei/fxconsole/client"
	"github.com/toeirei/fxconsole/core/model"
)

// Msg is anything Reduce understands. It is deliberately as wide as tea.Msg.
type Msg interface{}

// Effect is a remote call requested by a transition. Run performs it and
// returns the result message to reduce next.
type Effect interface {
	Run(ctx context.Context, c client.Client) Msg
}

// --- intents ---

type SetPageNumber struct{ PageNumber int }

type SetPageSize struct{ PageSize int }

type Refresh struct{}

type EditCurrencyForm struct{ Form model.CurrencyForm }

type SubmitCurrency struct{}

type EditRateForm struct{ Form model.RateForm }

type SubmitRate struct{}

type EditExchangeForm struct{ Form model.ExchangeForm }

type SubmitExchange struct{}

// --- results ---

type CurrenciesLoaded struct {
	Seq     uint64
	Request model.PageRequest
	Page    model.Page[model.Currency]
	Err     error
}

type CurrencyCreated struct {
	Currency model.Currency
	Err      error
}

type RateCreated struct {
	Rate model.ExchangeRate
	Err  error
}

type ExchangeCompleted struct {
	Result model.ExchangeResult
	Err    error
}

// --- effects ---

type ListCurrenciesCall struct {
	Seq  uint64
	Page model.PageRequest
}

func (e ListCurrenciesCall) Run(ctx context.Context, c client.Client) Msg {
	page, err := c.ListCurrencies(ctx, e.Page)
	return CurrenciesLoaded{Seq: e.Seq, Request: e.Page, Page: page, Err: err}
}

type CreateCurrencyCall struct{ Form model.CurrencyForm }

func (e CreateCurrencyCall) Run(ctx context.Context, c client.Client) Msg {
	currency, err := c.CreateCurrency(ctx, e.Form)
	return CurrencyCreated{Currency: currency, Err: err}
}

type CreateRateCall struct{ Request model.CreateRateRequest }

func (e CreateRateCall) Run(ctx context.Context, c client.Client) Msg {
	rate, err := c.CreateRate(ctx, e.Request)
	return RateCreated{Rate: rate, Err: err}
}

type ExchangeCall struct{ Query model.ExchangeForm }

func (e ExchangeCall) Run(ctx context.Context, c client.Client) Msg {
	result, err := c.Exchange(ctx, e.Query)
	return ExchangeCompleted{Result: result, Err: err}
}
