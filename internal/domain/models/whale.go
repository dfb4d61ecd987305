package models

// WhaleAlert is one detected institutional or insider move.
type WhaleAlert struct {
	AlertType   string `json:"alert_type"`
	Symbol      string `json:"symbol"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Signal      string `json:"signal"`
	Magnitude   string `json:"magnitude"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
}

// RadarBlip positions an alert on the sonar display.
type RadarBlip struct {
	Symbol    string  `json:"symbol"`
	Angle     float64 `json:"angle"`
	Distance  float64 `json:"distance"`
	Strength  float64 `json:"strength"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Type      string  `json:"type"`
	Signal    string  `json:"signal"`
	Timestamp string  `json:"timestamp"`
}

// RadarSummary tallies signals by direction.
type RadarSummary struct {
	TotalSignals int    `json:"total_signals"`
	Bullish      int    `json:"bullish"`
	Bearish      int    `json:"bearish"`
	Sentiment    string `json:"sentiment"`
}

// WhaleRadar is the whale tracking snapshot.
type WhaleRadar struct {
	Timestamp string       `json:"timestamp"`
	Summary   RadarSummary `json:"summary"`
	Alerts    []WhaleAlert `json:"alerts"`
	Clusters  []WhaleAlert `json:"clusters"`
	Blips     []RadarBlip  `json:"blips"`
	AIContext string       `json:"ai_context"`
}
