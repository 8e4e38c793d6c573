// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package exchange

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/ui/tui/util"
)

func withResult() state.State {
	s := state.New(state.DefaultOptions())
	s, _ = state.Reduce(s, state.ExchangeCompleted{Result: model.ExchangeResult{
		ExchangeRate:  model.ExchangeRate{TargetCurrency: model.Currency{Code: "EUR", Sign: "€"}},
		ConvertAmount: "92.30",
	}})
	return s
}

func TestCopyResult(t *testing.T) {
	i18n.Init("en")
	var dispatched []state.Msg
	m := New(util.DispatchFunc(func(msg state.Msg) tea.Cmd {
		dispatched = append(dispatched, msg)
		return nil
	}))
	var copied string
	m.Copy = func(s string) error {
		copied = s
		return nil
	}
	m.Focus()
	m.Sync(withResult())

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	m.Update(cmd())
	if copied != "92.30 €" {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if !strings.Contains(m.View(), "Copied to clipboard") {
		t.Fatalf("expected copy notice in view")
	}
	if len(dispatched) != 0 {
		t.Fatalf("copy must not touch the state, got %v", dispatched)
	}
}

func TestCopyWithoutResultIsNoop(t *testing.T) {
	i18n.Init("en")
	m := New(util.DispatchFunc(func(state.Msg) tea.Cmd { return nil }))
	m.Copy = func(string) error { return errors.New("must not be called") }
	m.Focus()
	m.Sync(state.New(state.DefaultOptions()))

	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY}); cmd != nil {
		t.Fatalf("expected no command without a result")
	}
}

func TestTypingDispatchesEdits(t *testing.T) {
	i18n.Init("en")
	var edits []model.ExchangeForm
	m := New(util.DispatchFunc(func(msg state.Msg) tea.Cmd {
		if e, ok := msg.(state.EditExchangeForm); ok {
			edits = append(edits, e.Form)
		}
		return nil
	}))
	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("U")})
	if len(edits) != 1 || edits[0].Base != "U" {
		t.Fatalf("unexpected edits %+v", edits)
	}
}
