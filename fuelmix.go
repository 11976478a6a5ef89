package kayadata

import (
	"math"
	"sort"
)

// FuelMix returns each requested region's most recent fuel mix. Regions are
// windowed independently: one region's latest stored year can differ from
// another's, and each keeps only its own maximum year.
//
// With collapseRenewables set, the Hydro category is folded into Renewables
// and the reduced category set is re-expanded, so every remaining fuel
// appears for each observed (region, year) even when its total is zero.
// Results are sorted by region name, then by fuel in category order.
//
// Shares are returned as published. The two documented region-years whose
// fuel totals do not reconcile with total primary energy pass through
// unchanged; no renormalisation happens anywhere in the query.
func (d *Dataset) FuelMix(q RegionQuery, collapseRenewables bool, diag *Diagnostics) []FuelMixRow {
	names, codeFailed := d.resolveQuery(q, TableFuelMix, diag)
	want := nameSet(names)

	latest := make(map[string]int, len(names))
	for i := range d.fuelMix {
		r := &d.fuelMix[i]
		if !want[r.Region] {
			continue
		}
		if y, ok := latest[r.Region]; !ok || r.Year > y {
			latest[r.Region] = r.Year
		}
	}

	var rows []FuelMixRow
	for i := range d.fuelMix {
		r := d.fuelMix[i]
		if !want[r.Region] || r.Year != latest[r.Region] {
			continue
		}
		rows = append(rows, r)
	}

	if collapseRenewables {
		rows = collapseHydro(rows)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		return rows[i].Fuel < rows[j].Fuel
	})

	if len(rows) == 0 && !codeFailed {
		warnEmpty(diag, "fuel mix", q)
	}
	return rows
}

// collapseHydro folds Hydro into Renewables and emits the full reduced
// category set per region, zero-filled where a category had no rows.
// Input must already be windowed to a single year per region; missing
// values contribute zero to the sums.
func collapseHydro(rows []FuelMixRow) []FuelMixRow {
	type regionMeta struct {
		code      string
		geography Geography
		year      int
	}
	order := make([]string, 0, 8)
	meta := make(map[string]regionMeta, 8)
	quads := make(map[string]*[fuelCount]float64, 8)
	fracs := make(map[string]*[fuelCount]float64, 8)

	for _, r := range rows {
		if _, ok := meta[r.Region]; !ok {
			order = append(order, r.Region)
			meta[r.Region] = regionMeta{code: r.Code, geography: r.Geography, year: r.Year}
			quads[r.Region] = new([fuelCount]float64)
			fracs[r.Region] = new([fuelCount]float64)
		}
		fuel := r.Fuel
		if fuel == FuelHydro {
			fuel = FuelRenewables
		}
		if !math.IsNaN(r.Quads) {
			quads[r.Region][fuel] += r.Quads
		}
		if !math.IsNaN(r.Frac) {
			fracs[r.Region][fuel] += r.Frac
		}
	}

	out := make([]FuelMixRow, 0, len(order)*(int(fuelCount)-1))
	for _, region := range order {
		m := meta[region]
		for f := FuelCoal; f < fuelCount; f++ {
			if f == FuelHydro {
				continue
			}
			out = append(out, FuelMixRow{
				Region:    region,
				Code:      m.code,
				Geography: m.geography,
				Year:      m.year,
				Fuel:      f,
				Quads:     quads[region][f],
				Frac:      fracs[region][f],
			})
		}
	}
	return out
}
