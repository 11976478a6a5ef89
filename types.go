package kayadata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Geography classifies what a row's region identity covers: a single nation,
// a multi-nation region, or the whole world.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Geography int

const (
	// GeoNation indicates a single country.
	GeoNation Geography = iota
	// GeoRegion indicates a multi-nation aggregate such as Africa or Europe.
	GeoRegion
	// GeoWorld indicates the world total.
	GeoWorld
)

// String returns the dataset label for a Geography.
func (g Geography) String() string {
	switch g {
	case GeoNation:
		return "nation"
	case GeoRegion:
		return "region"
	case GeoWorld:
		return "world"
	default:
		return fmt.Sprintf("unknown(%d)", int(g))
	}
}

// MarshalJSON implements json.Marshaler to output Geography as string.
func (g Geography) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Geography from string.
func (g *Geography) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing geography: %w", err)
	}
	parsed, err := ParseGeography(str)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGeography converts a dataset label into a Geography.
func ParseGeography(s string) (Geography, error) {
	switch s {
	case "nation":
		return GeoNation, nil
	case "region":
		return GeoRegion, nil
	case "world":
		return GeoWorld, nil
	default:
		return 0, fmt.Errorf("%w: unknown geography %q", ErrDataFormat, s)
	}
}

// GDPConvention selects how GDP is expressed in historical queries.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type GDPConvention int

const (
	// MER uses market exchange rates. This is the default convention and the
	// one the stored derived ratios are consistent with.
	MER GDPConvention = iota
	// PPP uses purchasing power parity. Selecting it swaps the GDP column
	// and forces recomputation of the GDP-dependent ratios.
	PPP
)

// String returns the conventional short label for a GDPConvention.
func (c GDPConvention) String() string {
	switch c {
	case MER:
		return "MER"
	case PPP:
		return "PPP"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// MarshalJSON implements json.Marshaler to output GDPConvention as string.
func (c GDPConvention) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse GDPConvention from string.
func (c *GDPConvention) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing GDP convention: %w", err)
	}
	parsed, err := ParseGDPConvention(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseGDPConvention converts a label such as "MER" or "ppp" into a
// GDPConvention. Matching is case-insensitive.
func ParseGDPConvention(s string) (GDPConvention, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MER":
		return MER, nil
	case "PPP":
		return PPP, nil
	default:
		return 0, fmt.Errorf("%w: %q (want MER or PPP)", ErrInvalidConvention, s)
	}
}

// Validate checks that the convention is one of the supported values.
func (c GDPConvention) Validate() error {
	if c != MER && c != PPP {
		return fmt.Errorf("%w: %d (want MER or PPP)", ErrInvalidConvention, int(c))
	}
	return nil
}

// Fuel identifies a primary-energy fuel category. The declaration order is
// the canonical display and sort order of the fuel-mix table.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Fuel int

const (
	// FuelCoal is coal and coal products.
	FuelCoal Fuel = iota
	// FuelNaturalGas is natural gas.
	FuelNaturalGas
	// FuelOil is petroleum and other liquids.
	FuelOil
	// FuelNuclear is nuclear electricity.
	FuelNuclear
	// FuelHydro is hydroelectricity. Collapsed queries fold it into
	// FuelRenewables.
	FuelHydro
	// FuelRenewables is non-hydro renewables (wind, solar, geothermal,
	// biomass).
	FuelRenewables

	fuelCount
)

// String returns the dataset label for a Fuel.
func (f Fuel) String() string {
	switch f {
	case FuelCoal:
		return "Coal"
	case FuelNaturalGas:
		return "Natural Gas"
	case FuelOil:
		return "Oil"
	case FuelNuclear:
		return "Nuclear"
	case FuelHydro:
		return "Hydro"
	case FuelRenewables:
		return "Renewables"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// MarshalJSON implements json.Marshaler to output Fuel as string.
func (f Fuel) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Fuel from string.
func (f *Fuel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing fuel: %w", err)
	}
	parsed, err := ParseFuel(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFuel converts a dataset label into a Fuel.
func ParseFuel(s string) (Fuel, error) {
	switch s {
	case "Coal":
		return FuelCoal, nil
	case "Natural Gas":
		return FuelNaturalGas, nil
	case "Oil":
		return FuelOil, nil
	case "Nuclear":
		return FuelNuclear, nil
	case "Hydro":
		return FuelHydro, nil
	case "Renewables":
		return FuelRenewables, nil
	default:
		return 0, fmt.Errorf("%w: unknown fuel %q", ErrDataFormat, s)
	}
}

// TableID names one of the four backing tables a query can target.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type TableID int

const (
	// TableHistorical is the annual historical Kaya-variable series and the
	// default code-resolution target.
	TableHistorical TableID = iota
	// TableFuelMix is the fuel-mix series.
	TableFuelMix
	// TableTopDownValues is the sparse projected point-value table.
	TableTopDownValues
	// TableTopDownTrends is the projected log-rate trend table.
	TableTopDownTrends
)

// String returns the short label for a TableID.
func (t TableID) String() string {
	switch t {
	case TableHistorical:
		return "historical"
	case TableFuelMix:
		return "fuel_mix"
	case TableTopDownValues:
		return "td_values"
	case TableTopDownTrends:
		return "td_trends"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// MarshalJSON implements json.Marshaler to output TableID as string.
func (t TableID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse TableID from string.
func (t *TableID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing table id: %w", err)
	}
	switch str {
	case "historical":
		*t = TableHistorical
	case "fuel_mix":
		*t = TableFuelMix
	case "td_values":
		*t = TableTopDownValues
	case "td_trends":
		*t = TableTopDownTrends
	default:
		return fmt.Errorf("%w: %q", ErrBadTable, str)
	}
	return nil
}

// Validate checks that the table id names a real table.
func (t TableID) Validate() error {
	if t < TableHistorical || t > TableTopDownTrends {
		return fmt.Errorf("%w: %d", ErrBadTable, int(t))
	}
	return nil
}

// HistoricalRow is one region-year record of the historical series as stored.
//
// Units: P in billions of people, GDP columns in trillions of real USD,
// E in quads, F in million metric tons of CO2. The derived ratios are stored
// consistent with the MER convention; PPP queries recompute them.
type HistoricalRow struct {
	Region    string    `json:"region"`
	Code      string    `json:"regionCode"`
	Geography Geography `json:"geography"`
	Year      int       `json:"year"`
	P         float64   `json:"P"`
	G         float64   `json:"G"`
	E         float64   `json:"E"`
	F         float64   `json:"F"`
	GPC       float64   `json:"g"`
	EI        float64   `json:"e"`
	CI        float64   `json:"f"`
	EF        float64   `json:"ef"`
	GPPP      float64   `json:"G_ppp"`
	GMER      float64   `json:"G_mer"`
}

// FuelMixRow is one region-year-fuel record of the fuel-mix series.
// Quads is primary energy supplied by the fuel; Frac is its share of the
// region-year total. Two documented region-years carry shares that do not
// sum to one; they are shipped as published.
type FuelMixRow struct {
	Region    string    `json:"region"`
	Code      string    `json:"regionCode"`
	Geography Geography `json:"geography"`
	Year      int       `json:"year"`
	Fuel      Fuel      `json:"fuel"`
	Quads     float64   `json:"quads"`
	Frac      float64   `json:"frac"`
}

// TopDownRow is one region-year record of the projected point-value table.
// Only the four base variables are stored; ratios are derived at query time.
type TopDownRow struct {
	Region    string    `json:"region"`
	Code      string    `json:"regionCode"`
	Geography Geography `json:"geography"`
	Year      int       `json:"year"`
	P         float64   `json:"P"`
	G         float64   `json:"G"`
	E         float64   `json:"E"`
	F         float64   `json:"F"`
}

// TrendRow is one region record of the projected trend table. The base
// fields are log-rate growth trends (fractional change per year) for the
// four Kaya variables. The derived rate fields are zero in stored rows and
// populated by TopDownTrends as log-rate differences.
type TrendRow struct {
	Region    string    `json:"region"`
	Code      string    `json:"regionCode"`
	Geography Geography `json:"geography"`
	P         float64   `json:"P"`
	G         float64   `json:"G"`
	E         float64   `json:"E"`
	F         float64   `json:"F"`
	GPC       float64   `json:"g"`
	EI        float64   `json:"e"`
	CI        float64   `json:"f"`
	EF        float64   `json:"ef"`
}

// KayaRow is the query result shape shared by Historical, TopDownValues, and
// ProjectTopDown. It carries the four base variables plus the derived ratios
// for exactly one GDP column; the alternate-convention columns never appear.
//
// Derived fields: GPC is per-capita GDP g=G/P (thousands of USD per person
// given the base units), EI is primary energy intensity of GDP e=E/G
// (quads per trillion USD), CI is carbon intensity of energy f=F/E
// (MMT CO2 per quad), EF is emissions intensity of GDP ef=F/G
// (MMT CO2 per trillion USD).
type KayaRow struct {
	Region    string    `json:"region"`
	Code      string    `json:"regionCode"`
	Geography Geography `json:"geography"`
	Year      int       `json:"year"`
	P         float64   `json:"P"`
	G         float64   `json:"G"`
	GPC       float64   `json:"g"`
	E         float64   `json:"E"`
	F         float64   `json:"F"`
	EI        float64   `json:"e"`
	CI        float64   `json:"f"`
	EF        float64   `json:"ef"`
}

// RegionQuery selects the regions a query operates on. Either list region
// names in Names, or set Code to a three-letter region code; a non-empty
// Code is resolved against the query's backing table and replaces Names.
type RegionQuery struct {
	Names []string
	Code  string
}
