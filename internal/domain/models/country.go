package models

// CountryFX is the currency leg of a country profile.
type CountryFX struct {
	Pair           string  `json:"pair"`
	Rate           float64 `json:"rate"`
	Change24H      float64 `json:"change24h"`
	Change1W       float64 `json:"change1w"`
	Change1M       float64 `json:"change1m"`
	High52W        float64 `json:"high52w"`
	Low52W         float64 `json:"low52w"`
	PercentOfRange float64 `json:"percentOfRange"`
}

// CountryBond is the rates leg of a country profile.
type CountryBond struct {
	Yield10Y   float64 `json:"yield10y"`
	Yield2Y    float64 `json:"yield2y"`
	Spread     float64 `json:"spread"`
	IsInverted bool    `json:"isInverted"`
	VsUSSpread float64 `json:"vsUSSpread"`
}

// CountryStock is the equity leg of a country profile.
type CountryStock struct {
	IndexName string  `json:"indexName"`
	Price     float64 `json:"price"`
	Change1D  float64 `json:"change1d"`
	Change1M  float64 `json:"change1m"`
	Change3M  float64 `json:"change3m"`
	ChangeYTD float64 `json:"changeYTD"`
	PER       float64 `json:"per"`
	PBR       float64 `json:"pbr"`
}

// CountryPolicy is the central-bank leg of a country profile.
type CountryPolicy struct {
	CentralBank     string  `json:"centralBank"`
	PolicyRate      float64 `json:"policyRate"`
	RealRate        float64 `json:"realRate"`
	InflationRate   float64 `json:"inflationRate"`
	Status          string  `json:"status"`
	NextMeetingDate string  `json:"nextMeetingDate"`
	NextMeetingDays int     `json:"nextMeetingDays"`
}

// EconomicMetrics are the six scored axes, each 0-100.
type EconomicMetrics struct {
	CurrencyPower   float64 `json:"currencyPower"`
	MarketSentiment float64 `json:"marketSentiment"`
	CreditRisk      float64 `json:"creditRisk"`
	Liquidity       float64 `json:"liquidity"`
	Inflation       float64 `json:"inflation"`
	Growth          float64 `json:"growth"`
}

// CountryProfile is the static identity of a scanned country.
type CountryProfile struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Flag         string `json:"flag"`
	Region       string `json:"region"`
	Currency     string `json:"currency"`
	CurrencyCode string `json:"currencyCode"`
}

// CountryData is the full country scanner snapshot.
type CountryData struct {
	Profile      CountryProfile  `json:"profile"`
	Metrics      EconomicMetrics `json:"metrics"`
	FX           CountryFX       `json:"fx"`
	Bond         CountryBond     `json:"bond"`
	Stock        CountryStock    `json:"stock"`
	Policy       CountryPolicy   `json:"policy"`
	OverallGrade string          `json:"overallGrade"`
	OverallScore int             `json:"overallScore"`
}
