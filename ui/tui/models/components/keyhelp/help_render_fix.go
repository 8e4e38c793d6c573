// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help line of the footer.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line, cutting off with an ellipsis
// once the width is used up. help.Model.ShortHelpView miscounts separators
// of skipped bindings.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	if len(bindings) == 0 {
		return ""
	}

	var b strings.Builder
	var usedWidth int
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}

		var sep string
		if len(items) > 0 {
			sep = separator
		}

		str := sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)

		items = append(items, str)
	}

	for i, item := range items {
		itemLen := lipgloss.Width(item)
		if i < len(items)-1 {
			if usedWidth+itemLen+tailLen <= m.Width {
				usedWidth += itemLen
				b.WriteString(item)
			} else {
				b.WriteString(tail)
				break
			}
		} else {
			if usedWidth+itemLen <= m.Width {
				b.WriteString(item)
			} else if usedWidth+tailLen <= m.Width {
				b.WriteString(tail)
			}
		}
	}

	return b.String()
}

// FullHelpView renders one column per group, skipping groups without an
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	if len(groups) == 0 {
		return ""
	}

	var cols []string
	var result []string
	var usedWidth int
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var (
			sep          string
			keys         []string
			descriptions []string
		)

		if len(cols) > 0 {
			sep = separator
		}

		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		col := lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		)

		cols = append(cols, col)
	}

	for i, col := range cols {
		colLen := lipgloss.Width(col)
		if i < len(cols)-1 {
			if usedWidth+colLen+tailLen <= m.Width {
				usedWidth += colLen
				result = append(result, col)
			} else {
				result = append(result, tail)
				break
			}
		} else {
			if usedWidth+colLen <= m.Width {
				result = append(result, col)
			} else if usedWidth+tailLen <= m.Width {
				result = append(result, tail)
			}
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, result...)
}
