// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package rates

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/internal/logging"
	"github.com/toeirei/fxconsole/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/fxconsole/ui/tui/models/helpers/form/input"
	"github.com/toeirei/fxconsole/ui/tui/styles"
	"github.com/toeirei/fxconsole/ui/tui/util"
)

type Model struct {
	form    form.Form[model.RateForm]
	flow    state.RateFlow
	focused bool
	size    util.Size
}

func New(d util.Dispatcher) *Model {
	return &Model{
		form: form.New(
			form.WithInput[model.RateForm]("baseCode", forminput.NewText(i18n.T("rates.field.base"), "USD", forminput.WithCharLimit(3))),
			form.WithInput[model.RateForm]("targetCode", forminput.NewText(i18n.T("rates.field.target"), "EUR", forminput.WithCharLimit(3))),
			form.WithInput[model.RateForm]("rate", forminput.NewText(i18n.T("rates.field.rate"), "0.923")),
			form.WithButton[model.RateForm](forminput.NewButton(i18n.T("rates.submit"))),
			form.WithOnChange(func(f model.RateForm, err error) tea.Cmd {
				if err != nil {
					return nil
				}
				return d.Dispatch(state.EditRateForm{Form: f})
			}),
			form.WithOnSubmit(func(_ model.RateForm, _ error) tea.Cmd {
				return d.Dispatch(state.SubmitRate{})
			}),
		),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	return m.form.Update(msg)
}

func (m *Model) Sync(s state.State) {
	m.flow = s.Rate
	if err := m.form.Set(s.Rate.Form); err != nil {
		logging.Debugf("sync rate form: %v", err)
	}
}

func (m *Model) View() string {
	lines := []string{
		styles.Title.Render(i18n.T("rates.title")),
		m.form.View(styles.InnerWidth(m.size.Width)),
	}
	if status := styles.Status(m.flow.Message, m.flow.Error); status != "" {
		lines = append(lines, status)
	}
	return styles.
		PanelStyle(m.focused, m.size.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.form.Blur()
}

// *Model implements util.Panel
var _ util.Panel = (*Model)(nil)
