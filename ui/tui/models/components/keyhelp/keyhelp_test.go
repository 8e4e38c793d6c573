// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

func bindings() []key.Binding {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)
	return []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		disabled,
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func TestShortHelpView_SkipsDisabled(t *testing.T) {
	m := help.New()
	m.Width = 200
	out := ShortHelpView(m, bindings())
	if !strings.Contains(out, "exit") || !strings.Contains(out, "help") {
		t.Fatalf("missing bindings in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("disabled binding rendered: %q", out)
	}
}

func TestShortHelpView_Truncates(t *testing.T) {
	m := help.New()
	m.Width = 12
	out := ShortHelpView(m, bindings())
	if strings.Contains(out, "help") {
		t.Fatalf("expected truncation, got %q", out)
	}
	if !strings.Contains(out, m.Ellipsis) {
		t.Fatalf("expected ellipsis in %q", out)
	}
}

func TestFullHelpView_SkipsDisabledGroups(t *testing.T) {
	m := help.New()
	m.Width = 200
	onlyDisabled := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "nothing"))
	onlyDisabled.SetEnabled(false)

	out := FullHelpView(m, [][]key.Binding{bindings(), {onlyDisabled}})
	if strings.Contains(out, "nothing") || strings.Contains(out, "hidden") {
		t.Fatalf("disabled bindings rendered: %q", out)
	}
	if !strings.Contains(out, "exit") {
		t.Fatalf("missing binding in %q", out)
	}
}

func TestModelToggle(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Fatalf("expected empty view without keymap")
	}
	m.ToggleExpanded()
	if !m.Expanded {
		t.Fatalf("expected expanded")
	}
}
