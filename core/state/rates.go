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

type RateFlow struct {
	Form    model.RateForm
	Message string
	Error   string
}

func (s State) editRateForm(form model.RateForm) State {
	form.Rate = decimalinput.Normalize(form.Rate, s.opts.MaxDecimals)
	s.Rate.Form = form
	return s
}

func (s State) submitRate() (State, []Effect) {
	s.Rate.Message = ""
	s.Rate.Error = ""
	form := s.Rate.Form
	return s, []Effect{CreateRateCall{Request: model.CreateRateRequest{
		BaseCode:   form.BaseCode,
		TargetCode: form.TargetCode,
		Rate:       decimalinput.ToNumber(form.Rate),
	}}}
}

func (s State) rateCreated(msg RateCreated) State {
	if msg.Err != nil {
		s.Rate.Error = ErrorText(msg.Err, i18n.T("rates.error.create"))
		logging.Warnf("create rate %s->%s: %v", s.Rate.Form.BaseCode, s.Rate.Form.TargetCode, msg.Err)
		return s
	}
	s.Rate.Message = i18n.T("rates.created")
	s.Rate.Form = model.RateForm{}
	return s
}
