// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"maps"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/fxconsole/util/slicest"
)

type FormInput interface {
	Focus() tea.Cmd
	Blur()
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

// Form moves focus between its inputs and decodes their values into T.
type Form[T any] struct {
	OnSubmit func(result T, err error) tea.Cmd
	OnChange func(result T, err error) tea.Cmd

	items       []formItem
	activeIndex int
	focused     bool
	keyMap      KeyMap
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f.changeActiveIndex(-1)
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View(width int) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.items, func(item formItem) string {
			return item.input.View(width)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	if len(f.items) == 0 {
		return nil, f.keyMap
	}
	f.focused = true
	return f.items[f.activeIndex].input.Focus(), f.keyMap
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

func (f *Form[T]) Focused() bool { return f.focused }

func (f *Form[T]) ActiveIndex() int { return f.activeIndex }

func (f *Form[T]) KeyMap() help.KeyMap { return f.keyMap }

// Reset clears every input and moves back to the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(f.Get())
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		updateCmd tea.Cmd
		changeCmd tea.Cmd
		actionCmd tea.Cmd
		action    Action
	)

	before := f.values()
	updateCmd, action = f.items[f.activeIndex].input.Update(msg)
	if f.OnChange != nil && !maps.Equal(before, f.values()) {
		changeCmd = f.OnChange(f.Get())
	}

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	}

	return tea.Batch(updateCmd, changeCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(index int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	index = index % len(f.items)

	if index != 0 {
		oldActiveIndex := f.activeIndex
		f.activeIndex += index

		if f.activeIndex > len(f.items)-1 {
			f.activeIndex = 0
		}
		if f.activeIndex < 0 {
			f.activeIndex = len(f.items) - 1
		}

		f.items[oldActiveIndex].input.Blur()
	}

	if !f.focused {
		return nil
	}
	return f.items[f.activeIndex].input.Focus()
}

func (f *Form[T]) values() map[string]any {
	values := make(map[string]any, len(f.items))
	for _, item := range f.items {
		if item.id != "" {
			values[item.id] = item.input.Get()
		}
	}
	return values
}

func (f *Form[T]) Get() (T, error) {
	var data T
	err := mapstructure.Decode(f.values(), &data)
	return data, err
}

// Set writes data into the inputs. Inputs already holding the value are left
// alone so their cursor does not move.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		item := f.items[i]
		if item.id == "" {
			continue
		}
		if value, ok := values[item.id]; ok && item.input.Get() != value {
			item.input.Set(value)
		}
	}

	return nil
}
