// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/ui/tui/styles"
	"github.com/toeirei/fxconsole/ui/tui/util"
)

type Model struct {
	Version string
	size    util.Size
}

func New(version string) *Model {
	return &Model{Version: version}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	title := styles.Title.Render(i18n.T("header.title"))
	if m.Version != "" {
		title += " " + styles.Subtle.Render(m.Version)
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				styles.Special.Render(i18n.T("header.eyebrow")),
				title,
				styles.Subtle.Render(i18n.T("header.lead")),
			),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
