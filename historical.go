package kayadata

// Historical returns the historical Kaya-variable rows for the requested
// regions under the chosen GDP convention.
//
// Under MER (the default) the stored values and stored derived ratios are
// returned unchanged. Under PPP the GDP column is replaced with its PPP
// counterpart and the GDP-dependent ratios are recomputed from the row's own
// values: g=G/P, e=E/G, ef=F/G. Carbon intensity f=F/E involves no GDP term
// and is retained either way. Alternate-convention GDP columns never appear
// in results.
//
// All requested regions are selected in one pass over the table, so rows
// keep the table's stored order rather than the order regions were listed
// in. An unknown convention is a fatal error; a filter that matches nothing
// yields an empty slice and one diagnostic on the sink.
func (d *Dataset) Historical(q RegionQuery, gdp GDPConvention, diag *Diagnostics) ([]KayaRow, error) {
	if err := gdp.Validate(); err != nil {
		return nil, err
	}
	names, codeFailed := d.resolveQuery(q, TableHistorical, diag)
	want := nameSet(names)

	out := make([]KayaRow, 0, len(names)*48)
	for i := range d.historical {
		hr := &d.historical[i]
		if !want[hr.Region] {
			continue
		}
		row := KayaRow{
			Region:    hr.Region,
			Code:      hr.Code,
			Geography: hr.Geography,
			Year:      hr.Year,
			P:         hr.P,
			G:         hr.G,
			GPC:       hr.GPC,
			E:         hr.E,
			F:         hr.F,
			EI:        hr.EI,
			CI:        hr.CI,
			EF:        hr.EF,
		}
		if gdp == PPP {
			row.G = hr.GPPP
			row.GPC = row.G / row.P
			row.EI = row.E / row.G
			row.EF = row.F / row.G
		}
		out = append(out, row)
	}
	if len(out) == 0 && !codeFailed {
		warnEmpty(diag, "historical", q)
	}
	return out, nil
}
