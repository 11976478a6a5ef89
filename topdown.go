package kayadata

// TopDownTrends returns the projected log-rate growth trends for the
// requested regions, with the derived rate columns filled in.
//
// The growth rate of a ratio is the difference of its parts' growth rates,
// so the derived columns are log-rate differences: g=G-P, e=E-G, f=F-E,
// ef=F-G. This is the first-order identity the trend table is published
// with, not a compounded ratio of growth factors.
func (d *Dataset) TopDownTrends(q RegionQuery, diag *Diagnostics) []TrendRow {
	names, codeFailed := d.resolveQuery(q, TableTopDownTrends, diag)
	want := nameSet(names)

	out := make([]TrendRow, 0, len(names))
	for i := range d.tdTrends {
		tr := d.tdTrends[i]
		if !want[tr.Region] {
			continue
		}
		tr.GPC = tr.G - tr.P
		tr.EI = tr.E - tr.G
		tr.CI = tr.F - tr.E
		tr.EF = tr.F - tr.G
		out = append(out, tr)
	}
	if len(out) == 0 && !codeFailed {
		warnEmpty(diag, "top-down trend", q)
	}
	return out
}

// TopDownValues returns the stored projection point values for the requested
// regions with ratios derived from the levels: g=G/P, e=E/G, f=F/E, ef=F/G.
// Only stored years appear; use ProjectTopDown for intermediate years.
func (d *Dataset) TopDownValues(q RegionQuery, diag *Diagnostics) []KayaRow {
	names, codeFailed := d.resolveQuery(q, TableTopDownValues, diag)
	want := nameSet(names)

	out := make([]KayaRow, 0, len(names)*7)
	for i := range d.tdValues {
		tv := &d.tdValues[i]
		if !want[tv.Region] {
			continue
		}
		out = append(out, deriveKayaRow(tv.Region, tv.Code, tv.Geography, tv.Year, tv.P, tv.G, tv.E, tv.F))
	}
	if len(out) == 0 && !codeFailed {
		warnEmpty(diag, "top-down value", q)
	}
	return out
}

// deriveKayaRow assembles a result row, deriving the four ratios from the
// base levels. NaN levels propagate into NaN ratios.
func deriveKayaRow(region, code string, geo Geography, year int, p, g, e, f float64) KayaRow {
	return KayaRow{
		Region:    region,
		Code:      code,
		Geography: geo,
		Year:      year,
		P:         p,
		G:         g,
		GPC:       g / p,
		E:         e,
		F:         f,
		EI:        e / g,
		CI:        f / e,
		EF:        f / g,
	}
}
