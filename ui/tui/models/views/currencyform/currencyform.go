// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package currencyform

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
	form    form.Form[model.CurrencyForm]
	message string
	err     string
	focused bool
	size    util.Size
}

func New(d util.Dispatcher) *Model {
	return &Model{
		form: form.New(
			form.WithInput[model.CurrencyForm]("code", forminput.NewText(i18n.T("currencies.field.code"), "EUR", forminput.WithCharLimit(3))),
			form.WithInput[model.CurrencyForm]("fullName", forminput.NewText(i18n.T("currencies.field.full_name"), "Euro", forminput.WithCharLimit(40))),
			form.WithInput[model.CurrencyForm]("sign", forminput.NewText(i18n.T("currencies.field.sign"), "€", forminput.WithCharLimit(3))),
			form.WithButton[model.CurrencyForm](forminput.NewButton(i18n.T("currencies.submit"))),
			form.WithOnChange(func(f model.CurrencyForm, err error) tea.Cmd {
				if err != nil {
					return nil
				}
				return d.Dispatch(state.EditCurrencyForm{Form: f})
			}),
			form.WithOnSubmit(func(_ model.CurrencyForm, _ error) tea.Cmd {
				return d.Dispatch(state.SubmitCurrency{})
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
	m.message, m.err = s.Currencies.Message, s.Currencies.Error
	if err := m.form.Set(s.Currencies.Form); err != nil {
		logging.Debugf("sync currency form: %v", err)
	}
}

func (m *Model) View() string {
	lines := []string{
		styles.Title.Render(i18n.T("currencies.submit")),
		m.form.View(styles.InnerWidth(m.size.Width)),
	}
	if status := styles.Status(m.message, m.err); status != "" {
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
