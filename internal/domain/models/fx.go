package models

// DollarIndex is the DXY gauge.
type DollarIndex struct {
	Value     float64 `json:"value"`
	Change24H float64 `json:"change24h"`
	Trend     string  `json:"trend"`
}

// FXPair is a quoted major currency pair.
type FXPair struct {
	Pair      string  `json:"pair"`
	Rate      float64 `json:"rate"`
	Change24H float64 `json:"change24h"`
	High24H   float64 `json:"high24h"`
	Low24H    float64 `json:"low24h"`
	Timestamp string  `json:"timestamp"`
}

// CapitalFlow is a currency capital flow edge.
type CapitalFlow struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Volume   float64 `json:"volume"`
	FlowType string  `json:"flow_type"`
}

// FXMarket is the FX dashboard snapshot.
type FXMarket struct {
	DollarIndex   DollarIndex   `json:"dollarIndex"`
	MajorPairs    []FXPair      `json:"majorPairs"`
	CapitalFlows  []CapitalFlow `json:"capitalFlows"`
	RiskSentiment string        `json:"riskSentiment"`
	LastUpdated   string        `json:"lastUpdated"`
}
