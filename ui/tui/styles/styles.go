// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// package styles holds the lipgloss styles shared by all views.
package styles

import "github.com/charmbracelet/lipgloss"

const (
	ColorSubtle    = lipgloss.Color("240") // Muted gray
	ColorHighlight = lipgloss.Color("81")  // Teal
	ColorSpecial   = lipgloss.Color("208") // Orange
	ColorError     = lipgloss.Color("196")
	ColorSuccess   = lipgloss.Color("40")
)

var (
	Subtle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Special = lipgloss.NewStyle().Foreground(ColorSpecial).Bold(true)

	Title = lipgloss.NewStyle().
		Foreground(ColorHighlight).
		Bold(true)

	// Panels get a highlighted border while focused.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSubtle).
		Padding(0, 1)
	FocusedPanel = Panel.
			BorderForeground(ColorHighlight)
)

// PanelStyle picks the border style for a panel of the given outer width.
func PanelStyle(focused bool, width int) lipgloss.Style {
	style := Panel
	if focused {
		style = FocusedPanel
	}
	if width > 0 {
		style = style.Width(max(width-style.GetHorizontalFrameSize(), 1))
	}
	return style
}

// InnerWidth is the content width left inside a panel of the given width.
func InnerWidth(width int) int {
	return max(width-Panel.GetHorizontalFrameSize(), 1)
}

// Status renders the error if there is one, else the message.
func Status(message, err string) string {
	switch {
	case err != "":
		return Error.Render(err)
	case message != "":
		return Success.Render(message)
	}
	return ""
}
