package mockdata

import (
	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/market"
)

// Inverted base curve: short end above the long end, matching the
// late-cycle Treasury shape the dashboard was designed around.
var treasuryCurve = []struct {
	maturity string
	base     float64
}{
	{"1M", 5.45},
	{"3M", 5.40},
	{"6M", 5.35},
	{"1Y", 5.10},
	{"2Y", 4.85},
	{"3Y", 4.60},
	{"5Y", 4.45},
	{"7Y", 4.50},
	{"10Y", 4.55},
	{"20Y", 4.80},
	{"30Y", 4.70},
}

var globalBonds = []struct {
	country    string
	code       string
	flag       string
	yield10Y   float64
	yieldSpan  float64
	changeSpan float64
}{
	{"United States", "US", "🇺🇸", 4.55, 0, 0.10},
	{"Germany", "DE", "🇩🇪", 2.35, 0.20, 0.08},
	{"Japan", "JP", "🇯🇵", 0.95, 0.10, 0.05},
	{"United Kingdom", "GB", "🇬🇧", 4.15, 0.20, 0.08},
	{"China", "CN", "🇨🇳", 2.25, 0.10, 0.04},
	{"France", "FR", "🇫🇷", 2.95, 0.15, 0.06},
	{"Italy", "IT", "🇮🇹", 3.65, 0.20, 0.10},
	{"Australia", "AU", "🇦🇺", 4.25, 0.15, 0.08},
}

var bondFlows = []models.BondFlow{
	{FromCountry: "JP", ToCountry: "US", Volume: 0.8, FlowType: "flight_to_safety"},
	{FromCountry: "EU", ToCountry: "US", Volume: 0.6, FlowType: "yield_seeking"},
	{FromCountry: "CN", ToCountry: "US", Volume: 0.5, FlowType: "diversification"},
	{FromCountry: "US", ToCountry: "DE", Volume: 0.3, FlowType: "diversification"},
	{FromCountry: "GB", ToCountry: "US", Volume: 0.4, FlowType: "yield_seeking"},
	{FromCountry: "AU", ToCountry: "US", Volume: 0.35, FlowType: "yield_seeking"},
}

// Bonds builds the merged bond snapshot: a jittered Treasury curve, the
// prior-month curve shifted down 15bps, and the cross-country 10Y table.
func (g *Generator) Bonds() models.BondMarket {
	today := g.now()
	stamp := today.Format("2006-01-02")
	prevStamp := today.AddDate(0, -1, 0).Format("2006-01-02")

	current := models.YieldCurve{Date: stamp}
	previous := models.YieldCurve{Date: prevStamp}
	for _, p := range treasuryCurve {
		y := round2(p.base + g.jit(0.10))
		current.Data = append(current.Data, models.YieldPoint{
			Maturity: p.maturity, Yield: y, Date: stamp,
		})
		previous.Data = append(previous.Data, models.YieldPoint{
			Maturity: p.maturity, Yield: round2(y - 0.15), Date: prevStamp,
		})
	}

	usYield10Y := 4.55
	if p, ok := current.Point("10Y"); ok {
		usYield10Y = p.Yield
	}

	global := models.GlobalBondData{USYield10Y: usYield10Y, BondFlows: bondFlows}
	for _, b := range globalBonds {
		y := usYield10Y
		if b.code != "US" {
			y = round2(b.yield10Y + g.jit(b.yieldSpan))
		}
		global.GlobalBonds = append(global.GlobalBonds, models.GlobalBondYield{
			Country:     b.country,
			CountryCode: b.code,
			Flag:        b.flag,
			Yield10Y:    y,
			Change24H:   round2(g.jit(b.changeSpan)),
			SpreadVsUS:  round2(y - usYield10Y),
			Trend:       g.trend(),
		})
	}

	snapshot := models.BondMarket{
		Yields: models.BondYields{CurrentCurve: current, PreviousCurve: previous},
		Global: global,
	}
	if bps, state, ok := market.CurveSpread(current); ok {
		snapshot.SpreadBps = &bps
		snapshot.CurveState = string(state)
	}
	return snapshot
}
