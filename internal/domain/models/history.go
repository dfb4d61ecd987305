package models

// MarketConditions is the indicator vector compared across eras.
type MarketConditions struct {
	CAPE         float64 `json:"cape"`
	Rate         float64 `json:"rate"`
	Inflation    float64 `json:"inflation"`
	Unemployment float64 `json:"unemployment"`
	YieldSpread  float64 `json:"yield_spread"`
}

// HistoricalMatch is one past period scored against today.
type HistoricalMatch struct {
	Year            int     `json:"year"`
	PeriodName      string  `json:"period_name"`
	Similarity      float64 `json:"similarity"`
	CAPE            float64 `json:"cape"`
	InterestRate    float64 `json:"interest_rate"`
	Inflation       float64 `json:"inflation"`
	ForwardReturn1Y float64 `json:"forward_return_1y"`
	ForwardReturn3Y float64 `json:"forward_return_3y"`
	ForwardReturn5Y float64 `json:"forward_return_5y"`
	Description     string  `json:"description"`
}

// HistoricalParallels is the "rhymes of history" snapshot.
type HistoricalParallels struct {
	Matches           []HistoricalMatch `json:"matches"`
	HistoricalContext string            `json:"historical_context"`
	CurrentConditions MarketConditions  `json:"current_conditions"`
}
