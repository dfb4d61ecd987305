package models

// MarketIndex is one global equity index.
type MarketIndex struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	Flag        string  `json:"flag"`
	Price       float64 `json:"price"`
	Change      float64 `json:"change"`
	ChangeValue float64 `json:"change_value"`
	MarketCap   float64 `json:"market_cap"`
}

// Sector is one S&P sector's daily move.
type Sector struct {
	Sector         string  `json:"sector"`
	ShortName      string  `json:"short_name"`
	Change         float64 `json:"change"`
	MarketCap      float64 `json:"market_cap"`
	TopStock       string  `json:"top_stock"`
	TopStockChange float64 `json:"top_stock_change"`
}

// VIX is the fear gauge with its banded level.
type VIX struct {
	Value       float64 `json:"value"`
	Change      float64 `json:"change"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// EquityFlow is a regional equity capital flow edge.
type EquityFlow struct {
	FromRegion string  `json:"from_region"`
	ToRegion   string  `json:"to_region"`
	Volume     float64 `json:"volume"`
	FlowType   string  `json:"flow_type"`
}

// StockMarket is the global equities snapshot.
type StockMarket struct {
	GlobalIndices []MarketIndex `json:"global_indices"`
	Sectors       []Sector      `json:"sectors"`
	VIX           VIX           `json:"vix"`
	EquityFlows   []EquityFlow  `json:"equity_flows"`
}
