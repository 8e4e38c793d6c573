// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"slices"

	"github.com/toeirei/fxconsole/core/decimalinput"
	"github.com/toeirei/fxconsole/internal/logging"
)

const DefaultPageSize = 6

// DefaultPageSizes is the set offered by the page-size selector.
var DefaultPageSizes = []int{5, 6, 10, 20, 50}

type Options struct {
	PageSize    int
	PageSizes   []int
	MaxDecimals int
	// DiscardStale drops list responses that are not the answer to the most
	// recently issued load. Off means the last response to arrive wins.
	DiscardStale bool
}

func DefaultOptions() Options {
	return Options{
		PageSize:     DefaultPageSize,
		PageSizes:    slices.Clone(DefaultPageSizes),
		MaxDecimals:  decimalinput.DefaultMaxDecimals,
		DiscardStale: true,
	}
}

// State is a snapshot of the whole console. It is a value: copies handed to
// views cannot change the store.
type State struct {
	Pager      Pager
	Currencies CurrencyList
	Rate       RateFlow
	Exchange   ExchangeFlow

	opts Options
}

func New(opts Options) State {
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = slices.Clone(DefaultPageSizes)
	}
	if opts.PageSize == 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.MaxDecimals < 0 {
		opts.MaxDecimals = decimalinput.DefaultMaxDecimals
	}
	return State{
		Pager: NewPager(opts.PageSize, opts.PageSizes),
		opts:  opts,
	}
}

func (s State) Options() Options { return s.opts }

// Init loads the first page.
func (s State) Init() (State, []Effect) {
	return Reduce(s, Refresh{})
}

// Reduce applies msg and returns the next state with the remote calls it
// requests. Unknown messages leave the state untouched.
func Reduce(s State, msg Msg) (State, []Effect) {
	switch msg := msg.(type) {
	// pagination
	case SetPageNumber:
		pager, req := s.Pager.SetPageNumber(msg.PageNumber)
		s.Pager = pager
		return s.load(req)
	case SetPageSize:
		pager, req, ok := s.Pager.SetPageSize(msg.PageSize)
		if !ok {
			logging.Debugf("ignoring page size %d, allowed %v", msg.PageSize, s.Pager.AllowedSizes)
			return s, nil
		}
		s.Pager = pager
		return s.load(req)
	case Refresh:
		return s.load(s.Pager.Request())
	case CurrenciesLoaded:
		return s.currenciesLoaded(msg)

	// currency creation
	case EditCurrencyForm:
		s.Currencies.Form = msg.Form
		return s, nil
	case SubmitCurrency:
		return s.submitCurrency()
	case CurrencyCreated:
		return s.currencyCreated(msg)

	// rates
	case EditRateForm:
		return s.editRateForm(msg.Form), nil
	case SubmitRate:
		return s.submitRate()
	case RateCreated:
		return s.rateCreated(msg), nil

	// exchange
	case EditExchangeForm:
		return s.editExchangeForm(msg.Form), nil
	case SubmitExchange:
		return s.submitExchange()
	case ExchangeCompleted:
		return s.exchangeCompleted(msg), nil
	}
	return s, nil
}
