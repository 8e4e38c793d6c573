// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// package exchange is the quick conversion card at the top of the console.
package exchange

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
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

// CopiedMsg reports the outcome of writing the result to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}

type Model struct {
	// Copy writes to the system clipboard; replaced in tests.
	Copy func(string) error

	keyMap  KeyMap
	form    form.Form[model.ExchangeForm]
	flow    state.ExchangeFlow
	notice  string
	focused bool
	size    util.Size
}

func New(d util.Dispatcher) *Model {
	return &Model{
		Copy:   clipboard.WriteAll,
		keyMap: DefaultKeyMap(),
		form: form.New(
			form.WithInput[model.ExchangeForm]("base", forminput.NewText(i18n.T("exchange.field.base"), "USD", forminput.WithCharLimit(3))),
			form.WithInput[model.ExchangeForm]("target", forminput.NewText(i18n.T("exchange.field.target"), "EUR", forminput.WithCharLimit(3))),
			form.WithInput[model.ExchangeForm]("amount", forminput.NewText(i18n.T("exchange.field.amount"), "100")),
			form.WithButton[model.ExchangeForm](forminput.NewButton(i18n.T("exchange.submit"))),
			form.WithOnChange(func(f model.ExchangeForm, err error) tea.Cmd {
				if err != nil {
					return nil
				}
				return d.Dispatch(state.EditExchangeForm{Form: f})
			}),
			form.WithOnSubmit(func(_ model.ExchangeForm, _ error) tea.Cmd {
				return d.Dispatch(state.SubmitExchange{})
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

	switch msg := msg.(type) {
	case CopiedMsg:
		if msg.Err != nil {
			logging.Warnf("copy exchange result: %v", msg.Err)
			m.notice = ""
			return nil
		}
		m.notice = i18n.T("exchange.copied")
		return nil
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		if key.Matches(msg, m.keyMap.Copy) {
			return m.copyResult()
		}
	}

	return m.form.Update(msg)
}

func (m *Model) copyResult() tea.Cmd {
	label := m.flow.ResultLabel()
	if label == "" {
		return nil
	}
	write := m.Copy
	return func() tea.Msg {
		return CopiedMsg{Text: label, Err: write(label)}
	}
}

// Sync takes over the flow and puts the normalized form back into the inputs.
func (m *Model) Sync(s state.State) {
	if m.flow.Result != s.Exchange.Result {
		m.notice = ""
	}
	m.flow = s.Exchange
	if err := m.form.Set(s.Exchange.Form); err != nil {
		logging.Debugf("sync exchange form: %v", err)
	}
}

func (m *Model) View() string {
	width := styles.InnerWidth(m.size.Width)

	result := styles.Subtle.Render(i18n.T("exchange.result") + ": -")
	if label := m.flow.ResultLabel(); label != "" {
		result = styles.Subtle.Render(i18n.T("exchange.result")+": ") + styles.Special.Render(label)
	}
	lines := []string{
		styles.Title.Render(i18n.T("exchange.title")),
		m.form.View(width),
		result,
	}
	if status := styles.Status(m.notice, m.flow.Error); status != "" {
		lines = append(lines, status)
	}

	return styles.
		PanelStyle(m.focused, m.size.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	cmd, formKeys := m.form.Focus()
	return cmd, util.MergeKeyMaps(formKeys, m.keyMap)
}

func (m *Model) Blur() {
	m.focused = false
	m.form.Blur()
}

// *Model implements util.Panel
var _ util.Panel = (*Model)(nil)
