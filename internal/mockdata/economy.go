package mockdata

import (
	"fmt"
	"math"

	"InsightFlow/internal/domain/models"
)

var pmiCountries = []struct {
	code, name, flag string
	base             float64
}{
	{"US", "United States", "🇺🇸", 52.5},
	{"CN", "China", "🇨🇳", 49.5},
	{"DE", "Germany", "🇩🇪", 47.8},
	{"JP", "Japan", "🇯🇵", 50.2},
	{"KR", "South Korea", "🇰🇷", 51.0},
	{"GB", "United Kingdom", "🇬🇧", 48.5},
}

var cpiCountries = []struct {
	code, name, flag string
	base, target     float64
}{
	{"US", "United States", "🇺🇸", 3.4, 2.0},
	{"EU", "Eurozone", "🇪🇺", 2.8, 2.0},
	{"JP", "Japan", "🇯🇵", 2.6, 2.0},
	{"GB", "United Kingdom", "🇬🇧", 4.0, 2.0},
	{"KR", "South Korea", "🇰🇷", 2.8, 2.0},
	{"CN", "China", "🇨🇳", 0.7, 3.0},
}

var calendarEvents = []struct {
	name, country, code, flag, impact, unit, category string

	forecast, previous float64
}{
	{"US CPI (YoY)", "United States", "US", "🇺🇸", "high", "%", "inflation", 3.2, 3.4},
	{"Fed Interest Rate Decision", "United States", "US", "🇺🇸", "high", "%", "policy", 5.5, 5.5},
	{"US Non-Farm Payrolls", "United States", "US", "🇺🇸", "high", "K", "employment", 180, 275},
	{"China Manufacturing PMI", "China", "CN", "🇨🇳", "high", "index", "manufacturing", 50.2, 49.5},
	{"ECB Interest Rate Decision", "Eurozone", "EU", "🇪🇺", "high", "%", "policy", 4.5, 4.5},
	{"Japan GDP (QoQ)", "Japan", "JP", "🇯🇵", "medium", "%", "growth", 0.3, -0.1},
}

// Economy builds the real-economy snapshot: the three bellwether
// commodities with a combined regime read, PMI and CPI tables, and the
// upcoming release calendar.
func (g *Generator) Economy() models.EconomyData {
	return models.EconomyData{
		Commodities:    g.commodities(),
		PMIData:        g.pmi(),
		CPIData:        g.cpi(),
		UpcomingEvents: g.events(),
	}
}

func (g *Generator) commodities() models.CommoditySignals {
	oilChange1M := round2(g.jit(10))
	goldChange1M := round2((g.r.Float64() - 0.3) * 8)
	copperChange1M := round2(g.jit(12))

	oilSignal := signalFor(oilChange1M, 5)
	goldSignal := signalFor(goldChange1M, 3)
	copperSignal := signalFor(copperChange1M, 5)

	oil := models.Commodity{
		Symbol: "CL=F", Name: "WTI Crude Oil", ShortName: "WTI",
		Price:     round2(75 + g.jit(10)),
		Change24H: round2(g.jit(4)),
		Change1W:  round2(g.jit(6)),
		Change1M:  oilChange1M,
		High52W:   95, Low52W: 65,
		Unit: "$/barrel", Signal: oilSignal,
	}
	oil.PercentOfRange = percentOfRange(oil.Price, oil.Low52W, oil.High52W)
	oil.Interpretation = pickInterp(oilSignal, "Oil up = inflation pressure", "Oil down = inflation easing", "Oil stable")

	gold := models.Commodity{
		Symbol: "GC=F", Name: "Gold Futures", ShortName: "Gold",
		Price:     round2(2350 + g.jit(100)),
		Change24H: round2(g.jit(2)),
		Change1W:  round2(g.jit(4)),
		Change1M:  goldChange1M,
		High52W:   2500, Low52W: 1900,
		Unit: "$/oz", Signal: goldSignal,
	}
	gold.PercentOfRange = percentOfRange(gold.Price, gold.Low52W, gold.High52W)
	gold.Interpretation = pickInterp(goldSignal, "Gold up = fear/inflation hedge", "Gold down = risk-on", "Gold stable")

	copper := models.Commodity{
		Symbol: "HG=F", Name: "Copper Futures", ShortName: "Copper",
		Price:     round2(4.2 + g.jit(0.5)),
		Change24H: round2(g.jit(3)),
		Change1W:  round2(g.jit(5)),
		Change1M:  copperChange1M,
		High52W:   5.0, Low52W: 3.5,
		Unit: "$/lb", Signal: copperSignal,
	}
	copper.PercentOfRange = percentOfRange(copper.Price, copper.Low52W, copper.High52W)
	copper.Interpretation = pickInterp(copperSignal, "Dr. Copper up = manufacturing growth", "Dr. Copper down = slowdown warning", "Copper stable")

	overall, interpretation := overallCommoditySignal(oilSignal, goldSignal, copperSignal)
	return models.CommoditySignals{
		Oil:            oil,
		Gold:           gold,
		Copper:         copper,
		OverallSignal:  overall,
		Interpretation: interpretation,
	}
}

func overallCommoditySignal(oil, gold, copper string) (string, string) {
	switch {
	case oil == "bearish" && copper == "bullish" && gold == "neutral":
		return "goldilocks", "Goldilocks scenario: Inflation easing + manufacturing recovery. Ideal for equities."
	case gold == "bullish" && copper == "bearish":
		return "risk_off", "Risk-off: Safe haven (gold) up, industrial (copper) down. Recession fears."
	case oil == "bullish" && copper == "bullish":
		return "risk_on", "Risk-on: Commodities broadly rising. Inflation pressure but growth is strong."
	default:
		return "mixed", "Mixed signals: Commodity markets showing no clear direction."
	}
}

func signalFor(change1M, threshold float64) string {
	if change1M > threshold {
		return "bullish"
	}
	if change1M < -threshold {
		return "bearish"
	}
	return "neutral"
}

func pickInterp(signal, bullish, bearish, neutral string) string {
	switch signal {
	case "bullish":
		return bullish
	case "bearish":
		return bearish
	default:
		return neutral
	}
}

func percentOfRange(price, low, high float64) float64 {
	if high == low {
		return 50
	}
	return math.Round((price - low) / (high - low) * 100)
}

func (g *Generator) pmi() []models.PMI {
	rows := make([]models.PMI, 0, len(pmiCountries))
	for _, c := range pmiCountries {
		value := round1(c.base + g.jit(4))
		previous := round1(c.base + g.jit(3))
		consensus := round1(c.base + g.jit(2))

		trend := "stable"
		if value > previous {
			trend = "improving"
		} else if value < previous {
			trend = "worsening"
		}

		rows = append(rows, models.PMI{
			Country:       c.name,
			CountryCode:   c.code,
			Flag:          c.flag,
			Value:         value,
			PreviousValue: previous,
			Consensus:     consensus,
			Change:        round1(value - previous),
			Surprise:      round1(value - consensus),
			IsExpansion:   value > 50,
			Trend:         trend,
		})
	}
	return rows
}

func (g *Generator) cpi() []models.CPI {
	rows := make([]models.CPI, 0, len(cpiCountries))
	for _, c := range cpiCountries {
		value := round1(c.base + g.jit(0.6))
		previous := round1(c.base + g.jit(0.4))

		rows = append(rows, models.CPI{
			Country:       c.name,
			CountryCode:   c.code,
			Flag:          c.flag,
			Value:         value,
			PreviousValue: previous,
			TargetRate:    c.target,
			Change:        round1(value - previous),
			Surprise:      round1(g.jit(0.4)),
			IsAboveTarget: value > c.target,
		})
	}
	return rows
}

func (g *Generator) events() []models.EconomicEvent {
	now := g.now()
	rows := make([]models.EconomicEvent, 0, len(calendarEvents))
	for i, e := range calendarEvents {
		forecast, previous := e.forecast, e.previous
		rows = append(rows, models.EconomicEvent{
			ID:          fmt.Sprintf("event-%d", i),
			Name:        e.name,
			Country:     e.country,
			CountryCode: e.code,
			Flag:        e.flag,
			Date:        now.AddDate(0, 0, (i+1)*2).Format("2006-01-02"),
			Time:        fmt.Sprintf("%d:30", 8+i),
			Impact:      e.impact,
			Forecast:    &forecast,
			Previous:    &previous,
			Unit:        e.unit,
			Category:    e.category,
		})
	}
	return rows
}
