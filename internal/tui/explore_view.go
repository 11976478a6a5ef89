package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current view (Bubble Tea interface).
func (m ExploreModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.table.View(),
		m.renderStatusBar(),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader shows the current region and view title.
func (m ExploreModel) renderHeader() string {
	title := "HISTORICAL SERIES"
	if m.view == viewFuelMix {
		title = "FUEL MIX (LATEST YEAR)"
	}

	return HeaderStyle.Render(m.Region()) + SubtleStyle.Render("  "+title)
}

// renderStatusBar shows position and active query options.
func (m ExploreModel) renderStatusBar() string {
	status := fmt.Sprintf("Region %d/%d | GDP: %s", m.regionIdx+1, len(m.regions), m.gdp)
	if m.view == viewFuelMix {
		mode := "six categories"
		if m.collapse {
			mode = "renewables collapsed"
		}
		status = fmt.Sprintf("Region %d/%d | %s", m.regionIdx+1, len(m.regions), mode)
	}
	return SubtleStyle.Render(status)
}

// renderHelp shows the keyboard shortcuts.
func (m ExploreModel) renderHelp() string {
	shortcuts := "tab: next region | p: MER/PPP | f: fuel mix | r: collapse renewables | q: quit"
	if m.view == viewFuelMix {
		shortcuts = "tab: next region | f: historical | r: collapse renewables | q: quit"
	}
	return LabelStyle.Render(shortcuts)
}
