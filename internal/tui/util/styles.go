// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	ColorSubtle    = lipgloss.Color("240") // Muted gray
	ColorHighlight = lipgloss.Color("81")  // Teal
	ColorSpecial   = lipgloss.Color("208") // Orange
	ColorError     = lipgloss.Color("196")
	ColorSuccess   = lipgloss.Color("40")
	ColorWhite     = lipgloss.Color("231")
)

var (
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	SpecialStyle = lipgloss.NewStyle().Foreground(ColorSpecial)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Padding(0, 1)

	ItemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	SelectedItemStyle = lipgloss.NewStyle().Foreground(ColorHighlight).PaddingLeft(1).SetString(">")
	DriverBadgeStyle  = lipgloss.NewStyle().Foreground(ColorSpecial)
	RiderBadgeStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)

	FocusedLabelStyle = lipgloss.NewStyle().Foreground(ColorHighlight)

	StatusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(ColorWhite).
				Background(ColorHighlight)
)
