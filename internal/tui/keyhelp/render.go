// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line, ending in an ellipsis when
// they do not all fit. help.Model.ShortHelpView mis-measures separators of
// skipped bindings.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	return fit(m, items, func(parts []string) string { return strings.Join(parts, "") })
}

// FullHelpView renders each group as a column of keys and descriptions.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	return fit(m, cols, func(parts []string) string { return lipgloss.JoinHorizontal(lipgloss.Top, parts...) })
}

// fit keeps as many parts as fit in m.Width and appends the ellipsis when
// some had to go. A zero width means unlimited.
func fit(m help.Model, parts []string, join func([]string) string) string {
	if len(parts) == 0 {
		return ""
	}
	if m.Width <= 0 {
		return join(parts)
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var out []string
	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= m.Width) || (!last && used+w+tailLen <= m.Width) {
			used += w
			out = append(out, part)
			continue
		}
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return join(out)
}
