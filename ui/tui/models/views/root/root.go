// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fxconsole/client"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/ui/tui/models/components/header"
	"github.com/toeirei/fxconsole/ui/tui/models/views/currencyform"
	"github.com/toeirei/fxconsole/ui/tui/models/views/currencylist"
	"github.com/toeirei/fxconsole/ui/tui/models/views/exchange"
	"github.com/toeirei/fxconsole/ui/tui/models/views/footer"
	"github.com/toeirei/fxconsole/ui/tui/models/views/rates"
	"github.com/toeirei/fxconsole/ui/tui/util"
	"github.com/toeirei/fxconsole/util/slicest"
)

type Options struct {
	Client  client.Client
	State   state.Options
	Version string
	// Context bounds every remote call; defaults to context.Background.
	Context context.Context
}

// resultMsg carries the outcome of a remote call back into the loop.
type resultMsg struct {
	msg state.Msg
}

// Model owns the console state. Every change goes through Dispatch, so the
// bubbletea loop is the only writer.
type Model struct {
	ctx    context.Context
	client client.Client
	state  state.State
	keyMap KeyMap

	header   *header.Model
	footer   *footer.Model
	exchange *exchange.Model
	list     *currencylist.Model
	currency *currencyform.Model
	rates    *rates.Model

	// focus order
	panels []util.Panel
	focus  int
	size   util.Size
}

func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:    ctx,
		client: opts.Client,
		state:  state.New(opts.State),
		keyMap: DefaultKeyMap(),
		header: header.New(opts.Version),
	}
	m.footer = footer.New(m.keyMap)
	m.exchange = exchange.New(m)
	m.list = currencylist.New(m)
	m.currency = currencyform.New(m)
	m.rates = rates.New(m)
	m.panels = []util.Panel{m.exchange, m.list, m.currency, m.rates}
	m.sync()
	return m
}

// Dispatch reduces msg and returns the remote calls as commands.
func (m *Model) Dispatch(msg state.Msg) tea.Cmd {
	next, effects := state.Reduce(m.state, msg)
	m.state = next
	m.sync()
	return m.run(effects)
}

func (m *Model) State() state.State { return m.state }

func (m *Model) run(effects []state.Effect) tea.Cmd {
	ctx, c := m.ctx, m.client
	return tea.Batch(slicest.Map(effects, func(e state.Effect) tea.Cmd {
		return func() tea.Msg {
			return resultMsg{msg: e.Run(ctx, c)}
		}
	})...)
}

func (m *Model) sync() {
	for _, p := range m.panels {
		p.Sync(m.state)
	}
}

func (m *Model) Init() tea.Cmd {
	next, effects := m.state.Init()
	m.state = next
	m.sync()

	initCmds := slicest.Map(m.panels, func(p util.Panel) tea.Cmd { return p.Init() })
	return tea.Sequence(
		tea.SetWindowTitle(i18n.T("header.title")),
		tea.Batch(initCmds...),
		m.focusPanel(0),
		m.run(effects),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		return m, m.resize()
	case resultMsg:
		return m, m.Dispatch(msg.msg)
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, nil
		case key.Matches(msg, m.keyMap.NextPanel):
			return m, m.focusPanel(m.focus + 1)
		case key.Matches(msg, m.keyMap.PrevPanel):
			return m, m.focusPanel(m.focus - 1)
		case key.Matches(msg, m.keyMap.Refresh):
			return m, m.Dispatch(state.Refresh{})
		}
		return m, m.panels[m.focus].Update(msg)
	}

	// everything else (clipboard results, cursor blinks) goes to all panels
	return m, tea.Batch(slicest.Map(m.panels, func(p util.Panel) tea.Cmd {
		return p.Update(msg)
	})...)
}

func (m *Model) focusPanel(i int) tea.Cmd {
	n := len(m.panels)
	i = ((i % n) + n) % n

	m.panels[m.focus].Blur()
	m.focus = i
	cmd, keyMap := m.panels[i].Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (m *Model) Focused() int { return m.focus }

// resize gives the exchange card the full width and splits the rest between
// the currency column and the rate panel.
func (m *Model) resize() tea.Cmd {
	full := tea.WindowSizeMsg{Width: m.size.Width, Height: m.size.Height}
	left := tea.WindowSizeMsg{Width: m.size.Width / 2}
	right := tea.WindowSizeMsg{Width: m.size.Width - left.Width}

	return tea.Batch(
		m.header.Update(full),
		m.footer.Update(full),
		m.exchange.Update(full),
		m.list.Update(left),
		m.currency.Update(left),
		m.rates.Update(right),
	)
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.exchange.View(),
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.currency.View()),
			m.rates.View(),
		),
		m.footer.View(),
	)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// *Model implements util.Dispatcher
var _ util.Dispatcher = (*Model)(nil)
