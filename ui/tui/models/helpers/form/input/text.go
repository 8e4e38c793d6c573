// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/fxconsole/ui/tui/models/helpers/form"
	"github.com/toeirei/fxconsole/ui/tui/styles"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

type TextOpt = func(t *Text)

// WithCharLimit caps the number of runes the field accepts.
func WithCharLimit(n int) TextOpt {
	return func(t *Text) { t.input.CharLimit = n }
}

func NewText(label, placeholder string, opts ...TextOpt) *Text {
	t := &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(key.WithKeys("enter")),
		},
		input: textinput.New(),
	}
	t.input.Prompt = "> "
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	label := styles.Subtle.Render(t.Label)
	if t.focused {
		label = styles.Title.Render(t.Label)
	}

	t.input.Width = max(width-lipgloss.Width(t.input.Prompt)-1, 1)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.FormInput = (*Text)(nil)
