package models

// CentralBank is one bank's policy stance.
type CentralBank struct {
	Country         string  `json:"country"`
	Code            string  `json:"code"`
	Flag            string  `json:"flag"`
	Bank            string  `json:"bank"`
	CurrentRate     float64 `json:"current_rate"`
	PreviousRate    float64 `json:"previous_rate"`
	InflationRate   float64 `json:"inflation_rate"`
	RealRate        float64 `json:"real_rate"`
	Status          string  `json:"status"`
	CyclePosition   int     `json:"cycle_position"`
	LastChange      string  `json:"last_change"`
	LastMeetingDate string  `json:"last_meeting_date"`
	NextMeetingDate string  `json:"next_meeting_date"`
}

// UpcomingMeeting is a scheduled policy decision.
type UpcomingMeeting struct {
	Country           string `json:"country"`
	Flag              string `json:"flag"`
	Bank              string `json:"bank"`
	Date              string `json:"date"`
	DaysUntil         int    `json:"days_until"`
	ExpectedAction    string `json:"expected_action"`
	MarketProbability int    `json:"market_probability"`
}

// PolicyData is the global central bank snapshot.
type PolicyData struct {
	CentralBanks     []CentralBank     `json:"central_banks"`
	UpcomingMeetings []UpcomingMeeting `json:"upcoming_meetings"`
}
