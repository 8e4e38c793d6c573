// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"github.com/toeirei/fxconsole/core/decimalinput"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/internal/logging"
)

// ExchangeFlow keeps its form across queries so the user can tweak the
// amount and resubmit without retyping the codes.
type ExchangeFlow struct {
	Form   model.ExchangeForm
	Result *model.ExchangeResult
	Error  string
}

// ResultLabel renders the converted amount followed by the target sign, or
// the target code when the currency has no sign. Empty without a result.
func (e ExchangeFlow) ResultLabel() string {
	if e.Result == nil {
		return ""
	}
	target := e.Result.ExchangeRate.TargetCurrency
	symbol := target.Sign
	if symbol == "" {
		symbol = target.Code
	}
	return decimalinput.FormatMoney(e.Result.ConvertAmount.String()) + " " + symbol
}

func (s State) editExchangeForm(form model.ExchangeForm) State {
	form.Amount = decimalinput.Normalize(form.Amount, s.opts.MaxDecimals)
	s.Exchange.Form = form
	return s
}

func (s State) submitExchange() (State, []Effect) {
	s.Exchange.Error = ""
	s.Exchange.Result = nil
	return s, []Effect{ExchangeCall{Query: s.Exchange.Form}}
}

func (s State) exchangeCompleted(msg ExchangeCompleted) State {
	if msg.Err != nil {
		s.Exchange.Error = ErrorText(msg.Err, i18n.T("exchange.error"))
		s.Exchange.Result = nil
		logging.Warnf("exchange %s->%s: %v", s.Exchange.Form.Base, s.Exchange.Form.Target, msg.Err)
		return s
	}
	result := msg.Result
	s.Exchange.Result = &result
	return s
}
