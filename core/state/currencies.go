// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/internal/logging"
)

// CurrencyList is the fetched page plus the creation form and the status of
// both operations.
type CurrencyList struct {
	Items     []model.Currency
	IsLoading bool
	Error     string
	Message   string
	Form      model.CurrencyForm

	// seq is the sequence number of the last load issued.
	seq uint64
}

// LatestSeq reports the sequence number of the last issued load.
func (l CurrencyList) LatestSeq() uint64 { return l.seq }

func (s State) load(req model.PageRequest) (State, []Effect) {
	s.Currencies.seq++
	s.Currencies.IsLoading = true
	s.Currencies.Error = ""
	return s, []Effect{ListCurrenciesCall{Seq: s.Currencies.seq, Page: req}}
}

func (s State) currenciesLoaded(msg CurrenciesLoaded) (State, []Effect) {
	if s.opts.DiscardStale && msg.Seq != s.Currencies.seq {
		logging.Debugf("discarding stale currency page %d (seq %d, latest %d)", msg.Request.PageNumber, msg.Seq, s.Currencies.seq)
		return s, nil
	}

	s.Currencies.IsLoading = false
	if msg.Err != nil {
		s.Currencies.Error = ErrorText(msg.Err, i18n.T("currencies.error.load"))
		logging.Warnf("load currencies page=%d size=%d: %v", msg.Request.PageNumber, msg.Request.PageSize, msg.Err)
		return s, nil
	}

	page := msg.Page
	items := page.Items
	if items == nil {
		items = []model.Currency{}
	}
	s.Currencies.Items = items
	s.Pager.PageNumber = orDefault(page.PageNumber, msg.Request.PageNumber)
	s.Pager.PageSize = orDefault(page.PageSize, msg.Request.PageSize)
	s.Pager.Total = max(page.Total, 0)
	return s, nil
}

func (s State) submitCurrency() (State, []Effect) {
	s.Currencies.Message = ""
	s.Currencies.Error = ""
	return s, []Effect{CreateCurrencyCall{Form: s.Currencies.Form}}
}

func (s State) currencyCreated(msg CurrencyCreated) (State, []Effect) {
	if msg.Err != nil {
		s.Currencies.Error = ErrorText(msg.Err, i18n.T("currencies.error.create"))
		logging.Warnf("create currency %q: %v", s.Currencies.Form.Code, msg.Err)
		return s, nil
	}
	s.Currencies.Message = i18n.T("currencies.added", msg.Currency.Code)
	s.Currencies.Form = model.CurrencyForm{}
	// reload where the user is; the new currency may live on another page
	return s.load(s.Pager.Request())
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
