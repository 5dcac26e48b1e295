// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     playground
// Description: Styles for the playground TUI
// Author:      msto63
// Created:     2025-11-08
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F9FAFB")
	ColorSpanBg    = lipgloss.Color("#4C1D95")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(10)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(10)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// SpanStyle marks the selected characters inside the source
	SpanStyle = lipgloss.NewStyle().
			Background(ColorSpanBg).
			Foreground(ColorText).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	OpStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Width(22)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	RangeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
