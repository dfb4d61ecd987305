package models

// Commodity is one tracked commodity with its demand signal.
type Commodity struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	ShortName      string  `json:"short_name"`
	Price          float64 `json:"price"`
	Change24H      float64 `json:"change_24h"`
	Change1W       float64 `json:"change_1w"`
	Change1M       float64 `json:"change_1m"`
	High52W        float64 `json:"high_52w"`
	Low52W         float64 `json:"low_52w"`
	PercentOfRange float64 `json:"percent_of_range"`
	Unit           string  `json:"unit"`
	Signal         string  `json:"signal"`
	Interpretation string  `json:"interpretation"`
}

// CommoditySignals combines the three bellwethers into an overall read.
type CommoditySignals struct {
	Oil            Commodity `json:"oil"`
	Gold           Commodity `json:"gold"`
	Copper         Commodity `json:"copper"`
	OverallSignal  string    `json:"overall_signal"`
	Interpretation string    `json:"interpretation"`
}

// PMI is one country's purchasing managers index print.
type PMI struct {
	Country       string  `json:"country"`
	CountryCode   string  `json:"country_code"`
	Flag          string  `json:"flag"`
	Value         float64 `json:"value"`
	PreviousValue float64 `json:"previous_value"`
	Consensus     float64 `json:"consensus"`
	Change        float64 `json:"change"`
	Surprise      float64 `json:"surprise"`
	IsExpansion   bool    `json:"is_expansion"`
	Trend         string  `json:"trend"`
}

// CPI is one country's inflation print against target.
type CPI struct {
	Country       string  `json:"country"`
	CountryCode   string  `json:"country_code"`
	Flag          string  `json:"flag"`
	Value         float64 `json:"value"`
	PreviousValue float64 `json:"previous_value"`
	TargetRate    float64 `json:"target_rate"`
	Change        float64 `json:"change"`
	Surprise      float64 `json:"surprise"`
	IsAboveTarget bool    `json:"is_above_target"`
}

// EconomicEvent is an upcoming calendar release.
type EconomicEvent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Flag        string   `json:"flag"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Impact      string   `json:"impact"`
	Actual      *float64 `json:"actual,omitempty"`
	Forecast    *float64 `json:"forecast,omitempty"`
	Previous    *float64 `json:"previous,omitempty"`
	Unit        string   `json:"unit"`
	Category    string   `json:"category"`
}

// EconomyData is the real-economy snapshot.
type EconomyData struct {
	Commodities    CommoditySignals `json:"commodities"`
	PMIData        []PMI            `json:"pmi_data"`
	CPIData        []CPI            `json:"cpi_data"`
	UpcomingEvents []EconomicEvent  `json:"upcoming_events"`
}
