package kayadata

import (
	"fmt"
	"math"
	"sort"
)

// knot is one (year, value) interpolation anchor.
type knot struct {
	year  float64
	value float64
}

// ProjectTopDown linearly interpolates the projected point values for the
// requested regions to the target year, then derives the ratios from the
// interpolated levels exactly as TopDownValues does. One row is returned per
// matched region, carrying the requested year.
//
// The year must lie within the projection table's overall span; outside it
// the call fails with ErrYearOutOfRange regardless of the diagnostics sink.
// Within the span, each region interpolates over its own sorted knots: a
// stored knot year reproduces the stored values exactly, while a region with
// fewer than two knots, or a target outside that region's own knot span,
// yields NaN for every variable. An empty projection table has no span, so
// every year is out of range.
func (d *Dataset) ProjectTopDown(q RegionQuery, year int, diag *Diagnostics) ([]KayaRow, error) {
	minYear, maxYear, ok := d.projectionSpan()
	if !ok {
		return nil, fmt.Errorf("%w: %d (projection table is empty)", ErrYearOutOfRange, year)
	}
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("%w: %d (projection table covers %d-%d)",
			ErrYearOutOfRange, year, minYear, maxYear)
	}

	names, codeFailed := d.resolveQuery(q, TableTopDownValues, diag)
	want := nameSet(names)

	// Collect per-region knots in first-appearance order.
	type regionKnots struct {
		code      string
		geography Geography
		p, g      []knot
		e, f      []knot
	}
	order := make([]string, 0, len(names))
	byRegion := make(map[string]*regionKnots, len(names))
	for i := range d.tdValues {
		tv := &d.tdValues[i]
		if !want[tv.Region] {
			continue
		}
		rk, seen := byRegion[tv.Region]
		if !seen {
			rk = &regionKnots{code: tv.Code, geography: tv.Geography}
			byRegion[tv.Region] = rk
			order = append(order, tv.Region)
		}
		y := float64(tv.Year)
		rk.p = append(rk.p, knot{y, tv.P})
		rk.g = append(rk.g, knot{y, tv.G})
		rk.e = append(rk.e, knot{y, tv.E})
		rk.f = append(rk.f, knot{y, tv.F})
	}

	out := make([]KayaRow, 0, len(order))
	x := float64(year)
	for _, region := range order {
		rk := byRegion[region]
		sortKnots(rk.p)
		sortKnots(rk.g)
		sortKnots(rk.e)
		sortKnots(rk.f)
		out = append(out, deriveKayaRow(region, rk.code, rk.geography, year,
			interpolate(rk.p, x),
			interpolate(rk.g, x),
			interpolate(rk.e, x),
			interpolate(rk.f, x)))
	}
	if len(out) == 0 && !codeFailed {
		warnEmpty(diag, "top-down projection", q)
	}
	return out, nil
}

// projectionSpan reports the overall [min, max] year of the projection
// table. ok is false when the table is empty.
func (d *Dataset) projectionSpan() (minYear, maxYear int, ok bool) {
	for i := range d.tdValues {
		y := d.tdValues[i].Year
		if !ok {
			minYear, maxYear, ok = y, y, true
			continue
		}
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	return minYear, maxYear, ok
}

// sortKnots orders knots by year, ascending.
func sortKnots(ks []knot) {
	sort.Slice(ks, func(i, j int) bool { return ks[i].year < ks[j].year })
}

// interpolate evaluates the piecewise-linear function through the sorted
// knots at x. Fewer than two knots, or x outside the knot span, produce
// NaN. An exact knot year returns the stored value untouched, so knots are
// reproduced without floating-point drift.
func interpolate(ks []knot, x float64) float64 {
	if len(ks) < 2 {
		return math.NaN()
	}
	for _, k := range ks {
		if x == k.year {
			return k.value
		}
	}
	if x < ks[0].year || x > ks[len(ks)-1].year {
		return math.NaN()
	}
	for i := 1; i < len(ks); i++ {
		if x < ks[i].year {
			x0, y0 := ks[i-1].year, ks[i-1].value
			x1, y1 := ks[i].year, ks[i].value
			return y0 + (y1-y0)*(x-x0)/(x1-x0)
		}
	}
	return math.NaN()
}
