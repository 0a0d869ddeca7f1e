// Package tui renders footprint figures for the terminal: a boxed summary
// for interactive terminals and a bubbletea preview that recalculates while
// input fields are edited.
package tui

import "github.com/charmbracelet/lipgloss"

// Terminal colors.
//
//nolint:gochecknoglobals // Palette constants.
var (
	ColorHeader    = lipgloss.Color("34")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("220")
	ColorError     = lipgloss.Color("196")
	ColorBorder    = lipgloss.Color("28")
)

// Shared styles.
//
//nolint:gochecknoglobals // Style constants.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(ColorHighlight)
)
