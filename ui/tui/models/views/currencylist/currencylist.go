// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package currencylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/ui/tui/styles"
	"github.com/toeirei/fxconsole/ui/tui/util"
	"github.com/toeirei/fxconsole/util/slicest"
)

type Model struct {
	dispatcher util.Dispatcher
	keyMap     KeyMap
	pager      state.Pager
	list       state.CurrencyList
	focused    bool
	size       util.Size
}

func New(d util.Dispatcher) *Model {
	return &Model{dispatcher: d, keyMap: DefaultKeyMap()}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}

	switch {
	case key.Matches(kmsg, m.keyMap.PrevPage):
		return m.dispatcher.Dispatch(state.SetPageNumber{PageNumber: m.pager.PageNumber - 1})
	case key.Matches(kmsg, m.keyMap.NextPage):
		return m.dispatcher.Dispatch(state.SetPageNumber{PageNumber: m.pager.PageNumber + 1})
	case key.Matches(kmsg, m.keyMap.Smaller):
		return m.dispatcher.Dispatch(state.SetPageSize{PageSize: m.pager.StepSize(-1)})
	case key.Matches(kmsg, m.keyMap.Larger):
		return m.dispatcher.Dispatch(state.SetPageSize{PageSize: m.pager.StepSize(1)})
	}
	return nil
}

// Sync enables only the page and size moves that lead somewhere.
func (m *Model) Sync(s state.State) {
	m.pager = s.Pager
	m.list = s.Currencies

	m.keyMap.PrevPage.SetEnabled(m.pager.HasPrev())
	m.keyMap.NextPage.SetEnabled(m.pager.HasNext())
	m.keyMap.Smaller.SetEnabled(m.pager.StepSize(-1) != m.pager.PageSize)
	m.keyMap.Larger.SetEnabled(m.pager.StepSize(1) != m.pager.PageSize)
}

func (m *Model) View() string {
	lines := []string{styles.Title.Render(i18n.T("currencies.title"))}

	switch {
	case m.list.IsLoading:
		lines = append(lines, styles.Subtle.Render(i18n.T("currencies.loading")))
	case len(m.list.Items) == 0:
		lines = append(lines, styles.Subtle.Render(i18n.T("currencies.empty")))
	default:
		lines = append(lines, slicest.Map(m.list.Items, row)...)
	}
	if m.list.Error != "" {
		lines = append(lines, styles.Error.Render(m.list.Error))
	}
	lines = append(lines, m.pagination())

	return styles.
		PanelStyle(m.focused, m.size.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func row(c model.Currency) string {
	return fmt.Sprintf("%-4s %-3s %s", c.Code, c.Sign, styles.Subtle.Render(c.FullName))
}

func (m *Model) pagination() string {
	arrow := func(s string, enabled bool) string {
		if enabled {
			return styles.Title.Render(s)
		}
		return styles.Subtle.Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		arrow("‹ ", m.pager.HasPrev()),
		i18n.T("currencies.page", m.pager.PageNumber, m.pager.TotalPages()),
		arrow(" ›", m.pager.HasNext()),
		styles.Subtle.Render("  "+i18n.T("currencies.size", m.pager.PageSize)),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Panel
var _ util.Panel = (*Model)(nil)
