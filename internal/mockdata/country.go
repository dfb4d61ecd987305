package mockdata

import (
	"math"
	"strings"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/market"
)

type countrySeed struct {
	profile     models.CountryProfile
	fxPair      string
	indexName   string
	centralBank string

	baseRate      float64
	baseYield     float64
	basePrice     float64
	basePolicy    float64
	baseInflation float64

	statusWeights [4]int // hiking, paused, cutting, low
}

var defaultStatusWeights = [4]int{10, 50, 30, 10}

var countrySeeds = map[string]countrySeed{
	"US": {models.CountryProfile{Code: "US", Name: "United States", Flag: "🇺🇸", Region: "Americas", Currency: "US Dollar", CurrencyCode: "USD"}, "DXY", "S&P 500", "Federal Reserve (Fed)", 104.5, 4.55, 5850, 5.50, 3.4, [4]int{0, 70, 25, 5}},
	"KR": {models.CountryProfile{Code: "KR", Name: "South Korea", Flag: "🇰🇷", Region: "Asia", Currency: "Korean Won", CurrencyCode: "KRW"}, "USD/KRW", "KOSPI", "Bank of Korea (BOK)", 1380, 3.45, 2650, 3.50, 2.8, defaultStatusWeights},
	"JP": {models.CountryProfile{Code: "JP", Name: "Japan", Flag: "🇯🇵", Region: "Asia", Currency: "Japanese Yen", CurrencyCode: "JPY"}, "USD/JPY", "Nikkei 225", "Bank of Japan (BOJ)", 154.5, 0.95, 38500, 0.10, 2.6, [4]int{60, 30, 5, 5}},
	"DE": {models.CountryProfile{Code: "DE", Name: "Germany", Flag: "🇩🇪", Region: "Europe", Currency: "Euro", CurrencyCode: "EUR"}, "EUR/USD", "DAX", "European Central Bank (ECB)", 1.085, 2.35, 19200, 4.50, 2.8, defaultStatusWeights},
	"GB": {models.CountryProfile{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Region: "Europe", Currency: "British Pound", CurrencyCode: "GBP"}, "GBP/USD", "FTSE 100", "Bank of England (BOE)", 1.27, 4.15, 8150, 5.25, 4.0, defaultStatusWeights},
	"CN": {models.CountryProfile{Code: "CN", Name: "China", Flag: "🇨🇳", Region: "Asia", Currency: "Chinese Yuan", CurrencyCode: "CNY"}, "USD/CNY", "Shanghai Composite", "People's Bank of China (PBOC)", 7.24, 2.25, 3800, 3.45, 0.7, [4]int{5, 20, 70, 5}},
	"IN": {models.CountryProfile{Code: "IN", Name: "India", Flag: "🇮🇳", Region: "Asia", Currency: "Indian Rupee", CurrencyCode: "INR"}, "USD/INR", "Nifty 50", "Reserve Bank of India (RBI)", 83.2, 7.1, 22500, 6.50, 5.1, defaultStatusWeights},
	"BR": {models.CountryProfile{Code: "BR", Name: "Brazil", Flag: "🇧🇷", Region: "Americas", Currency: "Brazilian Real", CurrencyCode: "BRL"}, "USD/BRL", "Bovespa", "Central Bank of Brazil (BCB)", 4.95, 11.5, 128000, 11.25, 4.5, defaultStatusWeights},
	"AU": {models.CountryProfile{Code: "AU", Name: "Australia", Flag: "🇦🇺", Region: "Oceania", Currency: "Australian Dollar", CurrencyCode: "AUD"}, "AUD/USD", "ASX 200", "Reserve Bank of Australia (RBA)", 0.66, 4.25, 7800, 4.35, 4.1, defaultStatusWeights},
	"CA": {models.CountryProfile{Code: "CA", Name: "Canada", Flag: "🇨🇦", Region: "Americas", Currency: "Canadian Dollar", CurrencyCode: "CAD"}, "USD/CAD", "TSX Composite", "Bank of Canada (BOC)", 1.36, 3.8, 21500, 5.00, 2.9, defaultStatusWeights},
	"CH": {models.CountryProfile{Code: "CH", Name: "Switzerland", Flag: "🇨🇭", Region: "Europe", Currency: "Swiss Franc", CurrencyCode: "CHF"}, "USD/CHF", "SMI", "Swiss National Bank (SNB)", 0.88, 0.95, 11800, 1.75, 1.3, defaultStatusWeights},
	"MX": {models.CountryProfile{Code: "MX", Name: "Mexico", Flag: "🇲🇽", Region: "Americas", Currency: "Mexican Peso", CurrencyCode: "MXN"}, "USD/MXN", "IPC", "Bank of Mexico (Banxico)", 17.2, 9.2, 55000, 11.25, 4.9, defaultStatusWeights},
}

// usBenchmarkYield10Y anchors every country's vs-US spread.
const usBenchmarkYield10Y = 4.55

// SupportedCountries lists the scannable country codes.
func SupportedCountries() []string {
	codes := make([]string, 0, len(countrySeeds))
	for code := range countrySeeds {
		codes = append(codes, code)
	}
	return codes
}

// Country builds a full profile for one country code. Unknown codes
// return false.
func (g *Generator) Country(code string) (models.CountryData, bool) {
	seed, ok := countrySeeds[strings.ToUpper(code)]
	if !ok {
		return models.CountryData{}, false
	}

	rate := round2(seed.baseRate * (1 + g.jit(0.05)))
	high52W := round2(rate * 1.15)
	low52W := round2(rate * 0.85)
	fx := models.CountryFX{
		Pair:           seed.fxPair,
		Rate:           rate,
		Change24H:      round2(g.jit(2)),
		Change1W:       round2(g.jit(4)),
		Change1M:       round2(g.jit(6)),
		High52W:        high52W,
		Low52W:         low52W,
		PercentOfRange: round1((rate - low52W) / (high52W - low52W) * 100),
	}

	yield10Y := round2(seed.baseYield + g.jit(0.3))
	yield2Y := round2(yield10Y + (g.r.Float64()-0.6)*0.5)
	spread := round2(yield10Y - yield2Y)
	vsUS := 0.0
	if seed.profile.Code != "US" {
		vsUS = round2(yield10Y - usBenchmarkYield10Y)
	}
	bond := models.CountryBond{
		Yield10Y:   yield10Y,
		Yield2Y:    yield2Y,
		Spread:     spread,
		IsInverted: spread < 0,
		VsUSSpread: vsUS,
	}

	stock := models.CountryStock{
		IndexName: seed.indexName,
		Price:     math.Round(seed.basePrice * (1 + g.jit(0.1))),
		Change1D:  round2(g.jit(3)),
		Change1M:  round2(g.jit(8)),
		Change3M:  round2(g.jit(15)),
		ChangeYTD: round2(g.jit(25)),
		PER:       round1(15 + g.r.Float64()*15),
		PBR:       round2(1.0 + g.r.Float64()*3),
	}

	policyRate := round2(seed.basePolicy + g.jit(0.2))
	inflationRate := round1(seed.baseInflation + g.jit(0.3))
	realRate := round2(policyRate - inflationRate)
	nextMeetingDays := 7 + g.r.Intn(39)
	policy := models.CountryPolicy{
		CentralBank:     seed.centralBank,
		PolicyRate:      policyRate,
		RealRate:        realRate,
		InflationRate:   inflationRate,
		Status:          g.weightedStatus(seed.statusWeights),
		NextMeetingDate: g.now().AddDate(0, 0, nextMeetingDays).Format("2006-01-02"),
		NextMeetingDays: nextMeetingDays,
	}

	metrics := models.EconomicMetrics{
		CurrencyPower:   round1(clamp(50-fx.Change1M*5+g.r.Float64()*20, 0, 100)),
		MarketSentiment: round1(clamp(50+stock.Change3M*2+g.r.Float64()*20, 0, 100)),
		CreditRisk:      round1(clamp(80-math.Abs(spread)*20-invertedPenalty(bond.IsInverted), 0, 100)),
		Liquidity:       round1(clamp(50+realRate*10+g.r.Float64()*20, 0, 100)),
		Inflation:       round1(clamp(100-math.Abs(inflationRate-2)*15, 0, 100)),
		Growth:          round1(clamp(50+stock.ChangeYTD*1.5+g.r.Float64()*20, 0, 100)),
	}
	score := market.CompositeScore(metrics)

	return models.CountryData{
		Profile:      seed.profile,
		Metrics:      metrics,
		FX:           fx,
		Bond:         bond,
		Stock:        stock,
		Policy:       policy,
		OverallGrade: market.Grade(score),
		OverallScore: score,
	}, true
}

var bankStatuses = [4]string{"hiking", "paused", "cutting", "low"}

func (g *Generator) weightedStatus(weights [4]int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := g.r.Intn(total)
	for i, w := range weights {
		if pick < w {
			return bankStatuses[i]
		}
		pick -= w
	}
	return bankStatuses[1]
}

func invertedPenalty(inverted bool) float64 {
	if inverted {
		return 10
	}
	return 0
}
