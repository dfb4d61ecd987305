package models

// YieldPoint is a single maturity point on a Treasury curve.
type YieldPoint struct {
	Maturity string  `json:"maturity"`
	Yield    float64 `json:"yield_value"`
	Date     string  `json:"date"`
}

// YieldCurve is a dated set of maturity points.
type YieldCurve struct {
	Date string       `json:"date"`
	Data []YieldPoint `json:"data"`
}

// Point returns the curve point for a maturity, if present.
func (c YieldCurve) Point(maturity string) (YieldPoint, bool) {
	for _, p := range c.Data {
		if p.Maturity == maturity {
			return p, true
		}
	}
	return YieldPoint{}, false
}

// BondYields carries the current and prior-month curves.
type BondYields struct {
	CurrentCurve  YieldCurve `json:"current_curve"`
	PreviousCurve YieldCurve `json:"previous_curve"`
}

// GlobalBondYield is one country's 10Y benchmark.
type GlobalBondYield struct {
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Flag        string  `json:"flag"`
	Yield10Y    float64 `json:"yield_10y"`
	Change24H   float64 `json:"change_24h"`
	SpreadVsUS  float64 `json:"spread_vs_us"`
	Trend       string  `json:"trend"`
}

// BondFlow is a capital flow edge between sovereign bond markets.
type BondFlow struct {
	FromCountry string  `json:"from_country"`
	ToCountry   string  `json:"to_country"`
	Volume      float64 `json:"volume"`
	FlowType    string  `json:"flow_type"`
}

// GlobalBondData is the cross-country bond view.
type GlobalBondData struct {
	GlobalBonds []GlobalBondYield `json:"global_bonds"`
	BondFlows   []BondFlow        `json:"bond_flows"`
	USYield10Y  float64           `json:"us_yield_10y"`
}

// BondMarket merges the two bond sub-requests into one snapshot.
// Spread fields are derived from the current curve's 2Y/10Y points.
type BondMarket struct {
	Yields     BondYields     `json:"yields"`
	Global     GlobalBondData `json:"global"`
	SpreadBps  *float64       `json:"spread_bps,omitempty"`
	CurveState string         `json:"curve_state,omitempty"`
}
