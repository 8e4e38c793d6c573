// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/fxconsole/core/state"
)

type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Panel is a Model that renders a console state snapshot.
type Panel interface {
	Model
	Sync(state.State)
}

// Dispatcher reduces a console message right away and returns the commands
// for the remote calls it caused. Views only ever call it from Update.
type Dispatcher interface {
	Dispatch(state.Msg) tea.Cmd
}

type DispatchFunc func(state.Msg) tea.Cmd

func (f DispatchFunc) Dispatch(msg state.Msg) tea.Cmd { return f(msg) }
