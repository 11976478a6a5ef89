package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kayatools/kayadata"
)

// exploreView selects which data table the explorer is showing.
type exploreView int

const (
	// viewHistorical shows the region's historical Kaya series.
	viewHistorical exploreView = iota
	// viewFuelMix shows the region's latest-year fuel mix.
	viewFuelMix
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyPPP      = "p"
	keyFuelMix  = "f"
	keyCollapse = "r"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 28
	// chromeHeight is the vertical space taken by the header, status bar,
	// and help line around the table.
	chromeHeight   = 6
	minTableHeight = 5
)

// ExploreModel is the Bubble Tea model for the interactive dataset explorer.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ExploreModel struct {
	ctx context.Context
	ds  *kayadata.Dataset

	// Navigation state
	regions   []string
	regionIdx int
	view      exploreView
	gdp       kayadata.GDPConvention
	collapse  bool

	// Interactive components
	table table.Model

	// Display dimensions
	width  int
	height int

	quitting bool
}

// NewExploreModel creates an explorer over the given dataset, positioned on
// the named region. An empty region starts on the first region in the
// historical table; an unknown one is an error.
func NewExploreModel(ctx context.Context, ds *kayadata.Dataset, region string) (ExploreModel, error) {
	regions := ds.Regions()
	if len(regions) == 0 {
		return ExploreModel{}, fmt.Errorf("dataset has no historical regions")
	}

	idx := 0
	if region != "" {
		found := false
		for i, name := range regions {
			if strings.EqualFold(name, region) {
				idx = i
				found = true
				break
			}
		}
		if !found {
			return ExploreModel{}, fmt.Errorf("unknown region %q", region)
		}
	}

	m := ExploreModel{
		ctx:       ctx,
		ds:        ds,
		regions:   regions,
		regionIdx: idx,
		gdp:       kayadata.MER,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.table = m.buildTable()
	return m, nil
}

// Region returns the region currently shown.
func (m ExploreModel) Region() string {
	return m.regions[m.regionIdx]
}

// Init initializes the model (Bubble Tea interface).
func (m ExploreModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}

	return m, nil
}

// handleKeypress processes keyboard input in any view.
func (m ExploreModel) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case keyTab, "right":
		m.regionIdx = (m.regionIdx + 1) % len(m.regions)
		m.rebuildTable()
		return m, nil

	case keyShiftTab, "left":
		m.regionIdx = (m.regionIdx - 1 + len(m.regions)) % len(m.regions)
		m.rebuildTable()
		return m, nil

	case keyPPP:
		if m.gdp == kayadata.MER {
			m.gdp = kayadata.PPP
		} else {
			m.gdp = kayadata.MER
		}
		m.rebuildTable()
		return m, nil

	case keyFuelMix:
		if m.view == viewHistorical {
			m.view = viewFuelMix
		} else {
			m.view = viewHistorical
		}
		m.rebuildTable()
		return m, nil

	case keyCollapse:
		m.collapse = !m.collapse
		m.rebuildTable()
		return m, nil

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

// rebuildTable reconstructs the table for the current region and view,
// preserving nothing but the dimensions.
func (m *ExploreModel) rebuildTable() {
	m.table = m.buildTable()
}

// buildTable creates a table model for the current view.
func (m *ExploreModel) buildTable() table.Model {
	if m.view == viewFuelMix {
		return m.buildFuelMixTable()
	}
	return m.buildHistoricalTable()
}

func (m *ExploreModel) tableHeight() int {
	h := m.height - chromeHeight
	if h < minTableHeight {
		h = minTableHeight
	}
	return h
}

// buildHistoricalTable lists the region's historical series, one year per
// row. Query errors cannot occur here: the convention is always one of the
// two valid values.
func (m *ExploreModel) buildHistoricalTable() table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},       //nolint:mnd // Column width.
		{Title: "Pop(B)", Width: 8},     //nolint:mnd // Column width.
		{Title: "GDP($T)", Width: 9},    //nolint:mnd // Column width.
		{Title: "GDP/cap", Width: 9},    //nolint:mnd // Column width.
		{Title: "Quads", Width: 9},      //nolint:mnd // Column width.
		{Title: "CO2(MMT)", Width: 10},  //nolint:mnd // Column width.
		{Title: "E/GDP", Width: 8},      //nolint:mnd // Column width.
		{Title: "CO2/E", Width: 8},      //nolint:mnd // Column width.
		{Title: "CO2/GDP", Width: 9},    //nolint:mnd // Column width.
	}

	query := kayadata.RegionQuery{Names: []string{m.Region()}}
	series, _ := m.ds.Historical(query, m.gdp, nil)

	rows := make([]table.Row, len(series))
	for i, r := range series {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Year),
			fmt.Sprintf("%.3f", r.P),
			fmt.Sprintf("%.2f", r.G),
			fmt.Sprintf("%.2f", r.GPC),
			fmt.Sprintf("%.1f", r.E),
			fmt.Sprintf("%.0f", r.F),
			fmt.Sprintf("%.2f", r.EI),
			fmt.Sprintf("%.2f", r.CI),
			fmt.Sprintf("%.1f", r.EF),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	t.SetStyles(newTableStyles())

	// Start on the most recent year.
	if len(rows) > 0 {
		t.GotoBottom()
	}

	return t
}

// buildFuelMixTable lists the region's latest-year fuel mix.
func (m *ExploreModel) buildFuelMixTable() table.Model {
	columns := []table.Column{
		{Title: "Fuel", Width: 14},  //nolint:mnd // Column width.
		{Title: "Year", Width: 6},   //nolint:mnd // Column width.
		{Title: "Quads", Width: 10}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},  //nolint:mnd // Column width.
	}

	query := kayadata.RegionQuery{Names: []string{m.Region()}}
	mix := m.ds.FuelMix(query, m.collapse, nil)

	rows := make([]table.Row, len(mix))
	for i, r := range mix {
		rows[i] = table.Row{
			r.Fuel.String(),
			fmt.Sprintf("%d", r.Year),
			fmt.Sprintf("%.3f", r.Quads),
			fmt.Sprintf("%.1f%%", r.Frac*100), //nolint:mnd // Percentage display.
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	t.SetStyles(newTableStyles())

	return t
}
