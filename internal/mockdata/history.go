package mockdata

import (
	"fmt"
	"strings"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/market"
)

// Representative market states from Shiller's long-run dataset, used
// when the upstream parallel finder is unreachable. Forward returns are
// filled in where the subsequent path is well documented.
var referenceEras = []market.Era{
	{Year: 1929, PeriodName: "1929 Peak, Maximum Euphoria", Conditions: models.MarketConditions{CAPE: 32.6, Rate: 4.5, Inflation: 0.0, Unemployment: 3.2}, ForwardReturn3Y: -83.0, Description: "Credit-fueled mania unwound into the Great Depression"},
	{Year: 1932, PeriodName: "Great Depression Bottom", Conditions: models.MarketConditions{CAPE: 5.6, Rate: 3.0, Inflation: -10.0, Unemployment: 23.6}, ForwardReturn1Y: 121.0, Description: "Maximum despair marked the secular low"},
	{Year: 1965, PeriodName: "Nifty Fifty Mania Begins", Conditions: models.MarketConditions{CAPE: 23.5, Rate: 4.6, Inflation: 1.9, Unemployment: 4.0}, Description: "One-decision growth stocks at any price"},
	{Year: 1973, PeriodName: "Pre-Oil Crisis Peak", Conditions: models.MarketConditions{CAPE: 18.6, Rate: 6.5, Inflation: 3.6, Unemployment: 4.9}, ForwardReturn3Y: -48.0, Description: "Oil embargo and stagflation ended the post-war regime"},
	{Year: 1980, PeriodName: "Volcker Era, Peak Inflation", Conditions: models.MarketConditions{CAPE: 9.0, Rate: 12.8, Inflation: 14.8, Unemployment: 6.3}, Description: "Double-digit rates broke the inflation spiral"},
	{Year: 1982, PeriodName: "Generational Bottom", Conditions: models.MarketConditions{CAPE: 7.4, Rate: 13.0, Inflation: 5.8, Unemployment: 9.8}, ForwardReturn3Y: 40.0, Description: "Start of the great bull market"},
	{Year: 1987, PeriodName: "Post-Black Monday", Conditions: models.MarketConditions{CAPE: 13.5, Rate: 8.5, Inflation: 4.5, Unemployment: 5.9}, ForwardReturn1Y: 15.0, Description: "Portfolio insurance crash, quick recovery"},
	{Year: 1994, PeriodName: "Bond Massacre Year", Conditions: models.MarketConditions{CAPE: 19.8, Rate: 7.8, Inflation: 2.7, Unemployment: 5.5}, Description: "Surprise tightening repriced the whole curve"},
	{Year: 1999, PeriodName: "Dot-com Bubble Peak", Conditions: models.MarketConditions{CAPE: 44.2, Rate: 6.4, Inflation: 2.7, Unemployment: 4.0}, ForwardReturn3Y: -38.0, Description: "Tech valuations detached from earnings"},
	{Year: 2007, PeriodName: "Housing Bubble Peak", Conditions: models.MarketConditions{CAPE: 27.3, Rate: 4.7, Inflation: 3.5, Unemployment: 4.7}, ForwardReturn1Y: -37.0, ForwardReturn3Y: 25.0, Description: "Leverage in housing credit collapsed into the GFC"},
	{Year: 2009, PeriodName: "GFC Bottom, QE Begins", Conditions: models.MarketConditions{CAPE: 13.3, Rate: 2.9, Inflation: -0.4, Unemployment: 8.7}, Description: "Policy floor under asset prices"},
	{Year: 2020, PeriodName: "COVID Crash Bottom", Conditions: models.MarketConditions{CAPE: 24.8, Rate: 0.7, Inflation: 1.5, Unemployment: 4.4}, ForwardReturn1Y: 75.0, Description: "Fastest bear market and fastest recovery on record"},
	{Year: 2021, PeriodName: "Post-COVID Peak, Inflation Awakening", Conditions: models.MarketConditions{CAPE: 38.3, Rate: 1.5, Inflation: 7.0, Unemployment: 3.9}, Description: "Stimulus-era excess met returning inflation"},
	{Year: 2022, PeriodName: "Peak Inflation, Fed Hawkish Pivot", Conditions: models.MarketConditions{CAPE: 28.8, Rate: 3.0, Inflation: 9.1, Unemployment: 3.6}, Description: "Fed aggressive hikes to fight 40-year high inflation"},
	{Year: 2024, PeriodName: "Soft Landing Hope, AI Boom", Conditions: models.MarketConditions{CAPE: 33.5, Rate: 4.0, Inflation: 3.1, Unemployment: 3.7}, Description: "Disinflation with full employment, AI capex cycle"},
}

// History builds the historical parallels snapshot by scoring the
// reference eras against lightly jittered present-day conditions.
func (g *Generator) History() models.HistoricalParallels {
	current := models.MarketConditions{
		CAPE:         round1(30 + g.jit(4)),
		Rate:         round2(4.5 + g.jit(0.4)),
		Inflation:    round1(3.0 + g.jit(0.6)),
		Unemployment: round1(4.0 + g.jit(0.4)),
		YieldSpread:  round2(g.jit(0.6)),
	}

	matches := market.RankParallels(current, referenceEras, 5)

	return models.HistoricalParallels{
		Matches:           matches,
		HistoricalContext: historicalContext(matches),
		CurrentConditions: current,
	}
}

func historicalContext(matches []models.HistoricalMatch) string {
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]

	var b strings.Builder
	b.WriteString("=== Historical Pattern Match ===\n")
	fmt.Fprintf(&b, "Current conditions most resemble %d (%s), similarity %.1f%%.\n", best.Year, best.PeriodName, best.Similarity)
	fmt.Fprintf(&b, "Then: CAPE %.1f, rates %.1f%%, inflation %.1f%%.\n", best.CAPE, best.InterestRate, best.Inflation)
	if best.ForwardReturn1Y != 0 {
		fmt.Fprintf(&b, "Subsequent 12-month return: %+.1f%%.\n", best.ForwardReturn1Y)
	}
	if len(matches) > 1 {
		second := matches[1]
		fmt.Fprintf(&b, "Second closest: %d (%s) at %.1f%%.\n", second.Year, second.PeriodName, second.Similarity)
	}
	return b.String()
}
