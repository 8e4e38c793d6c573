// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/fxconsole/core/model"
)

type MockClient struct {
	BaseClient Client
	Overwrites MockClientOverwrites
}

type MockClientOverwrites struct {
	Close          func(ctx context.Context) error
	ListCurrencies func(ctx context.Context, page model.PageRequest) (model.Page[model.Currency], error)
	CreateCurrency func(ctx context.Context, form model.CurrencyForm) (model.Currency, error)
	CreateRate     func(ctx context.Context, req model.CreateRateRequest) (model.ExchangeRate, error)
	Exchange       func(ctx context.Context, query model.ExchangeForm) (model.ExchangeResult, error)
}

var _ Client = (*MockClient)(nil)

// client := NewMockClient(nil, MockClientOverwrites{ /* overwrite Client methods here... */ })
func NewMockClient(base Client, overwrites MockClientOverwrites) *MockClient {
	return &MockClient{
		BaseClient: base,
		Overwrites: overwrites,
	}
}

// --- Client implementation ---

func (m *MockClient) Close(ctx context.Context) error {
	if m.Overwrites.Close != nil {
		return m.Overwrites.Close(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.Close(ctx)
	}
	return nil
}
func (m *MockClient) ListCurrencies(ctx context.Context, page model.PageRequest) (model.Page[model.Currency], error) {
	if m.Overwrites.ListCurrencies != nil {
		return m.Overwrites.ListCurrencies(ctx, page)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListCurrencies(ctx, page)
	}
	panic("MockClient.ListCurrencies not implemented")
}
func (m *MockClient) CreateCurrency(ctx context.Context, form model.CurrencyForm) (model.Currency, error) {
	if m.Overwrites.CreateCurrency != nil {
		return m.Overwrites.CreateCurrency(ctx, form)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateCurrency(ctx, form)
	}
	panic("MockClient.CreateCurrency not implemented")
}
func (m *MockClient) CreateRate(ctx context.Context, req model.CreateRateRequest) (model.ExchangeRate, error) {
	if m.Overwrites.CreateRate != nil {
		return m.Overwrites.CreateRate(ctx, req)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateRate(ctx, req)
	}
	panic("MockClient.CreateRate not implemented")
}
func (m *MockClient) Exchange(ctx context.Context, query model.ExchangeForm) (model.ExchangeResult, error) {
	if m.Overwrites.Exchange != nil {
		return m.Overwrites.Exchange(ctx, query)
	} else if m.BaseClient != nil {
		return m.BaseClient.Exchange(ctx, query)
	}
	panic("MockClient.Exchange not implemented")
}
