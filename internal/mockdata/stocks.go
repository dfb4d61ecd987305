package mockdata

import (
	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/market"
)

var globalIndices = []struct {
	symbol, name, country, region, flag string

	priceBase, priceSpan float64
	changeBase, chSpan   float64
	valueBase, valSpan   float64
	marketCap            float64
}{
	{"^GSPC", "S&P 500", "United States", "US", "🇺🇸", 5850, 100, 0.5, 3, 25, 100, 45000},
	{"^IXIC", "NASDAQ", "United States", "US", "🇺🇸", 18500, 300, 0.7, 4, 100, 300, 25000},
	{"^DJI", "Dow Jones", "United States", "US", "🇺🇸", 42500, 500, 0.3, 2, 100, 400, 15000},
	{"^N225", "Nikkei 225", "Japan", "Asia", "🇯🇵", 38500, 500, -0.2, 3, -50, 300, 6000},
	{"^KS11", "KOSPI", "South Korea", "Asia", "🇰🇷", 2650, 50, -0.5, 3, -10, 40, 1800},
	{"^HSI", "Hang Seng", "Hong Kong", "Asia", "🇭🇰", 19500, 300, -0.8, 4, -100, 300, 4500},
	{"^GDAXI", "DAX", "Germany", "EU", "🇩🇪", 19200, 200, 0.2, 2.5, 30, 150, 2200},
	{"^FTSE", "FTSE 100", "United Kingdom", "EU", "🇬🇧", 8150, 100, 0.1, 2, 10, 80, 2800},
}

var sectors = []struct {
	sector, short, topStock string

	changeBase, chSpan float64
	topBase, topSpan   float64
	marketCap          float64
}{
	{"Information Technology", "Tech", "NVDA", 1.2, 4, 2.5, 6, 14000},
	{"Health Care", "Health", "UNH", 0.3, 2.5, 0.5, 3, 7500},
	{"Financials", "Finance", "JPM", 0.4, 2.5, 0.6, 2.5, 6800},
	{"Consumer Discretionary", "Consumer", "AMZN", 0.6, 3, 1.0, 4, 5500},
	{"Communication Services", "Comm", "META", 0.8, 3.5, 1.5, 5, 4800},
	{"Industrials", "Industrial", "CAT", 0.2, 2, 0.3, 2, 4500},
	{"Consumer Staples", "Staples", "PG", -0.1, 1.5, 0.1, 1.5, 4000},
	{"Energy", "Energy", "XOM", -0.5, 3, -0.3, 2.5, 2200},
	{"Utilities", "Utilities", "NEE", -0.2, 1.5, 0.1, 1.5, 1600},
	{"Real Estate", "Real Est", "PLD", -0.4, 2, -0.2, 2, 1400},
	{"Materials", "Materials", "LIN", 0.1, 2, 0.2, 1.8, 1200},
}

// Stocks builds the global equities snapshot. Equity flows follow the
// average US index move: green pulls money from bonds and overseas into
// US equities, red reverses every edge.
func (g *Generator) Stocks() models.StockMarket {
	indices := make([]models.MarketIndex, 0, len(globalIndices))
	usSum, usCount := 0.0, 0
	for _, idx := range globalIndices {
		change := round2(idx.changeBase + g.jit(idx.chSpan))
		indices = append(indices, models.MarketIndex{
			Symbol:      idx.symbol,
			Name:        idx.name,
			Country:     idx.country,
			Region:      idx.region,
			Flag:        idx.flag,
			Price:       round2(idx.priceBase + g.r.Float64()*idx.priceSpan),
			Change:      change,
			ChangeValue: round2(idx.valueBase + g.jit(idx.valSpan)),
			MarketCap:   idx.marketCap,
		})
		if idx.region == "US" {
			usSum += change
			usCount++
		}
	}

	sectorRows := make([]models.Sector, 0, len(sectors))
	for _, s := range sectors {
		sectorRows = append(sectorRows, models.Sector{
			Sector:         s.sector,
			ShortName:      s.short,
			Change:         round2(s.changeBase + g.jit(s.chSpan)),
			MarketCap:      s.marketCap,
			TopStock:       s.topStock,
			TopStockChange: round2(s.topBase + g.jit(s.topSpan)),
		})
	}

	vixValue := round2(15 + g.r.Float64()*20)
	level, description := market.VIXLevel(vixValue)
	vix := models.VIX{
		Value:       vixValue,
		Change:      round2(g.jit(4)),
		Level:       level,
		Description: description,
	}

	usAvg := 0.0
	if usCount > 0 {
		usAvg = usSum / float64(usCount)
	}

	return models.StockMarket{
		GlobalIndices: indices,
		Sectors:       sectorRows,
		VIX:           vix,
		EquityFlows:   equityFlows(usAvg),
	}
}

func equityFlows(usAvg float64) []models.EquityFlow {
	riskOn := usAvg > 0
	vol := usAvg / 5
	if vol < 0 {
		vol = -vol
	}
	if riskOn {
		return []models.EquityFlow{
			{FromRegion: "Bonds", ToRegion: "US", Volume: vol, FlowType: "risk_on"},
			{FromRegion: "EU", ToRegion: "US", Volume: 0.4, FlowType: "rotation"},
			{FromRegion: "Asia", ToRegion: "US", Volume: 0.35, FlowType: "rotation"},
		}
	}
	return []models.EquityFlow{
		{FromRegion: "US", ToRegion: "Bonds", Volume: vol, FlowType: "risk_off"},
		{FromRegion: "US", ToRegion: "EU", Volume: 0.4, FlowType: "rotation"},
		{FromRegion: "US", ToRegion: "Asia", Volume: 0.35, FlowType: "rotation"},
	}
}
