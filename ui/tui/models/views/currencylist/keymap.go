// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package currencylist

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/fxconsole/internal/i18n"
)

type KeyMap struct {
	PrevPage key.Binding
	NextPage key.Binding
	Smaller  key.Binding
	Larger   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.PrevPage, km.NextPage, km.Smaller, km.Larger}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.PrevPage, km.NextPage}, {km.Smaller, km.Larger}}
}

var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", i18n.T("keys.prev_page")),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", i18n.T("keys.next_page")),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", i18n.T("keys.smaller")),
		),
		Larger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", i18n.T("keys.larger")),
		),
	}
}
