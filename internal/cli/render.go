package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/config"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// tabwriterPadding is the minimum padding between columns in table output.
const tabwriterPadding = 2

// resolveOutputFormat returns the effective output format: the --output flag
// when set, otherwise the configured default.
func resolveOutputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = configFromCmd(cmd).Output.Format
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: table, json, csv)", format)
	}
}

// reportDiagnostics logs collected data quality warnings unless --quiet.
func reportDiagnostics(cmd *cobra.Command, diag *kayadata.Diagnostics) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return
	}
	for _, msg := range diag.Messages() {
		logger.Warn().Ctx(cmd.Context()).Msg(msg)
	}
}

// formatCell formats a table cell value with the given precision. Missing
// values (NaN) render as "-".
func formatCell(v float64, precision int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// csvCell formats a numeric CSV field at full precision, without locale
// grouping so the output parses back cleanly.
func csvCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderKayaRows writes derived Kaya rows in the requested format.
func renderKayaRows(w io.Writer, format string, rows []kayadata.KayaRow) error {
	switch format {
	case config.FormatJSON:
		if rows == nil {
			rows = []kayadata.KayaRow{}
		}
		return renderJSON(w, rows)
	case config.FormatCSV:
		return renderKayaCSV(w, rows)
	default:
		return renderKayaTable(w, rows)
	}
}

// renderKayaTable writes Kaya rows as an aligned table. Units follow the
// dataset conventions: population in billions, GDP in trillion dollars,
// per-capita GDP in thousand dollars, energy in quads, emissions in MMT CO2.
func renderKayaTable(w io.Writer, rows []kayadata.KayaRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	header := "REGION\tCODE\tGEOGRAPHY\tYEAR\tPOP(B)\tGDP($T)\tGDP/CAP($K)\tENERGY(QUADS)\tCO2(MMT)\tE/GDP\tCO2/E\tCO2/GDP\n"
	if _, err := fmt.Fprint(tw, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Region, r.Code, r.Geography, r.Year,
			formatCell(r.P, 3), formatCell(r.G, 2), formatCell(r.GPC, 2),
			formatCell(r.E, 1), formatCell(r.F, 0),
			formatCell(r.EI, 3), formatCell(r.CI, 3), formatCell(r.EF, 3),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	return tw.Flush()
}

// renderKayaCSV writes Kaya rows as CSV with a header record.
func renderKayaCSV(w io.Writer, rows []kayadata.KayaRow) error {
	cw := csv.NewWriter(w)
	head := []string{
		"region", "region_code", "geography", "year",
		"P", "G", "g", "E", "F", "e", "f", "ef",
	}
	if err := cw.Write(head); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Region, r.Code, r.Geography.String(), strconv.Itoa(r.Year),
			csvCell(r.P), csvCell(r.G), csvCell(r.GPC), csvCell(r.E),
			csvCell(r.F), csvCell(r.EI), csvCell(r.CI), csvCell(r.EF),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderFuelMixRows writes fuel mix rows in the requested format.
func renderFuelMixRows(w io.Writer, format string, rows []kayadata.FuelMixRow) error {
	switch format {
	case config.FormatJSON:
		if rows == nil {
			rows = []kayadata.FuelMixRow{}
		}
		return renderJSON(w, rows)
	case config.FormatCSV:
		return renderFuelMixCSV(w, rows)
	default:
		return renderFuelMixTable(w, rows)
	}
}

func renderFuelMixTable(w io.Writer, rows []kayadata.FuelMixRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprint(tw, "REGION\tCODE\tYEAR\tFUEL\tQUADS\tSHARE\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.Region, r.Code, r.Year, r.Fuel,
			formatCell(r.Quads, 3), formatCell(r.Frac, 4),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

func renderFuelMixCSV(w io.Writer, rows []kayadata.FuelMixRow) error {
	cw := csv.NewWriter(w)
	head := []string{"region", "region_code", "geography", "year", "fuel", "quads", "frac"}
	if err := cw.Write(head); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Region, r.Code, r.Geography.String(), strconv.Itoa(r.Year),
			r.Fuel.String(), csvCell(r.Quads), csvCell(r.Frac),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderTrendRows writes projection growth rate rows in the requested format.
func renderTrendRows(w io.Writer, format string, rows []kayadata.TrendRow) error {
	switch format {
	case config.FormatJSON:
		if rows == nil {
			rows = []kayadata.TrendRow{}
		}
		return renderJSON(w, rows)
	case config.FormatCSV:
		return renderTrendCSV(w, rows)
	default:
		return renderTrendTable(w, rows)
	}
}

func renderTrendTable(w io.Writer, rows []kayadata.TrendRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprint(tw, "REGION\tCODE\tPOP\tGDP\tENERGY\tCO2\tGDP/CAP\tE/GDP\tCO2/E\tCO2/GDP\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Region, r.Code,
			formatCell(r.P, 4), formatCell(r.G, 4), formatCell(r.E, 4), formatCell(r.F, 4),
			formatCell(r.GPC, 4), formatCell(r.EI, 4), formatCell(r.CI, 4), formatCell(r.EF, 4),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

func renderTrendCSV(w io.Writer, rows []kayadata.TrendRow) error {
	cw := csv.NewWriter(w)
	head := []string{"region", "region_code", "geography", "P", "G", "E", "F", "g", "e", "f", "ef"}
	if err := cw.Write(head); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Region, r.Code, r.Geography.String(),
			csvCell(r.P), csvCell(r.G), csvCell(r.E), csvCell(r.F),
			csvCell(r.GPC), csvCell(r.EI), csvCell(r.CI), csvCell(r.EF),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderRegionList writes the distinct region list in the requested format.
func renderRegionList(w io.Writer, format string, regions []string) error {
	switch format {
	case config.FormatJSON:
		if regions == nil {
			regions = []string{}
		}
		return renderJSON(w, regions)
	case config.FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"region"}); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
		for _, name := range regions {
			if err := cw.Write([]string{name}); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		for _, name := range regions {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return fmt.Errorf("writing region: %w", err)
			}
		}
		return nil
	}
}
