package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive color palette shared by all views.
//
//nolint:gochecknoglobals // Lip Gloss styles are package-level by convention.
var (
	ColorHeader    = lipgloss.Color("205")
	ColorLabel     = lipgloss.Color("241")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorWarning   = lipgloss.Color("214")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("57")
)

// Shared styles for headers, labels, and table chrome.
//
//nolint:gochecknoglobals // Lip Gloss styles are package-level by convention.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorValue).
				Background(ColorHighlight).
				Bold(false)
)

// newTableStyles returns the bubbles table styles with the shared header
// and selection treatment applied.
func newTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	return s
}
