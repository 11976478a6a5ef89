package kayadata

import "strings"

// Regions returns the distinct region names present in the historical table,
// in first-appearance order. The slice is freshly allocated on every call.
func (d *Dataset) Regions() []string {
	seen := make(map[string]bool, 16)
	names := make([]string, 0, 16)
	for i := range d.historical {
		r := d.historical[i].Region
		if !seen[r] {
			seen[r] = true
			names = append(names, r)
		}
	}
	return names
}

// ResolveCode resolves a three-letter region code to the unique region name
// carrying it in the target table. Matching is exact and case-sensitive.
//
// A code that matches no region, or that matches more than one distinct
// region, resolves to ("", false) and records one diagnostic on the sink.
// Region coverage differs between tables, so the same code can resolve in
// one table and not another.
func (d *Dataset) ResolveCode(code string, table TableID, diag *Diagnostics) (string, bool) {
	seen := make(map[string]bool, 1)
	var names []string
	d.eachRegionCode(table, func(region, rc string) {
		if rc != code || seen[region] {
			return
		}
		seen[region] = true
		names = append(names, region)
	})
	switch len(names) {
	case 1:
		return names[0], true
	case 0:
		diag.Warnf("no region with code %q in table %s", code, table)
		return "", false
	default:
		diag.Warnf("code %q is ambiguous in table %s (matches %s)", code, table, strings.Join(names, ", "))
		return "", false
	}
}

// eachRegionCode visits every (region, code) pair of the target table in
// stored order. Unknown tables visit nothing.
func (d *Dataset) eachRegionCode(table TableID, fn func(region, code string)) {
	switch table {
	case TableHistorical:
		for i := range d.historical {
			fn(d.historical[i].Region, d.historical[i].Code)
		}
	case TableFuelMix:
		for i := range d.fuelMix {
			fn(d.fuelMix[i].Region, d.fuelMix[i].Code)
		}
	case TableTopDownValues:
		for i := range d.tdValues {
			fn(d.tdValues[i].Region, d.tdValues[i].Code)
		}
	case TableTopDownTrends:
		for i := range d.tdTrends {
			fn(d.tdTrends[i].Region, d.tdTrends[i].Code)
		}
	}
}

// resolveQuery expands a RegionQuery into concrete region names for the
// given table. When the query carries a code, a failed or ambiguous lookup
// already produced its diagnostic; codeFailed tells callers to skip their
// own empty-result message so each failure warns exactly once.
func (d *Dataset) resolveQuery(q RegionQuery, table TableID, diag *Diagnostics) (names []string, codeFailed bool) {
	if q.Code == "" {
		return q.Names, false
	}
	name, ok := d.ResolveCode(q.Code, table, diag)
	if !ok {
		return nil, true
	}
	return []string{name}, false
}

// nameSet builds a membership set over region names.
func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// warnEmpty records the single non-fatal diagnostic for a query whose
// region filter matched nothing.
func warnEmpty(diag *Diagnostics, op string, q RegionQuery) {
	switch {
	case q.Code != "":
		diag.Warnf("no %s data for code %q", op, q.Code)
	case len(q.Names) == 0:
		diag.Warnf("%s query requested no regions", op)
	default:
		diag.Warnf("no %s data for region(s) %s", op, strings.Join(q.Names, ", "))
	}
}
