// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/fxconsole/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/fxconsole/ui/tui/models/helpers/form/input"
)

type pair struct {
	Left  string `mapstructure:"left"`
	Right string `mapstructure:"right"`
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPairForm(changes *[]pair, submits *[]pair) *form.Form[pair] {
	f := form.New(
		form.WithInput[pair]("left", forminput.NewText("Left", "")),
		form.WithInput[pair]("right", forminput.NewText("Right", "")),
		form.WithButton[pair](forminput.NewButton("Go")),
		form.WithOnChange(func(p pair, err error) tea.Cmd {
			*changes = append(*changes, p)
			return nil
		}),
		form.WithOnSubmit(func(p pair, err error) tea.Cmd {
			*submits = append(*submits, p)
			return nil
		}),
	)
	return &f
}

func TestForm_TypingReportsChanges(t *testing.T) {
	var changes, submits []pair
	f := newPairForm(&changes, &submits)
	f.Focus()

	f.Update(runes("a"))
	f.Update(runes("b"))
	if len(changes) != 2 || changes[1].Left != "ab" {
		t.Fatalf("unexpected changes %+v", changes)
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.ActiveIndex() != 1 {
		t.Fatalf("expected second field active, got %d", f.ActiveIndex())
	}
	f.Update(runes("z"))
	got, err := f.Get()
	if err != nil || got != (pair{Left: "ab", Right: "z"}) {
		t.Fatalf("unexpected values %+v %v", got, err)
	}
}

func TestForm_EnterAdvancesThenSubmits(t *testing.T) {
	var changes, submits []pair
	f := newPairForm(&changes, &submits)
	f.Focus()

	f.Update(runes("x"))
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.ActiveIndex() != 2 {
		t.Fatalf("expected button active, got %d", f.ActiveIndex())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(submits) != 1 || submits[0].Left != "x" {
		t.Fatalf("unexpected submits %+v", submits)
	}
}

func TestForm_ShiftTabWraps(t *testing.T) {
	var changes, submits []pair
	f := newPairForm(&changes, &submits)
	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.ActiveIndex() != 2 {
		t.Fatalf("expected wrap to last input, got %d", f.ActiveIndex())
	}
}

func TestForm_SetSkipsUnchangedAndIgnoresBlurred(t *testing.T) {
	var changes, submits []pair
	f := newPairForm(&changes, &submits)

	f.Update(runes("ignored"))
	if len(changes) != 0 {
		t.Fatalf("blurred form reacted to keys")
	}

	if err := f.Set(pair{Left: "1.5", Right: "EUR"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := f.Get()
	if got != (pair{Left: "1.5", Right: "EUR"}) {
		t.Fatalf("unexpected %+v", got)
	}
	if len(changes) != 0 {
		t.Fatalf("Set must not report changes")
	}

	f.Reset()
	got, _ = f.Get()
	if got != (pair{}) || f.ActiveIndex() != 0 {
		t.Fatalf("reset failed: %+v at %d", got, f.ActiveIndex())
	}
}
