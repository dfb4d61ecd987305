package mockdata

import (
	"sort"
	"time"

	"InsightFlow/internal/domain/models"
)

type bankSeed struct {
	models.CentralBank
	meetingMin, meetingMax int
}

var centralBanks = []bankSeed{
	{models.CentralBank{Country: "United States", Code: "US", Flag: "🇺🇸", Bank: "Federal Reserve (Fed)", CurrentRate: 5.50, PreviousRate: 5.50, InflationRate: 3.4, Status: "paused", CyclePosition: 75, LastChange: "0.00%", LastMeetingDate: "2024-01-31"}, 15, 45},
	{models.CentralBank{Country: "European Union", Code: "EU", Flag: "🇪🇺", Bank: "European Central Bank (ECB)", CurrentRate: 4.50, PreviousRate: 4.50, InflationRate: 2.8, Status: "paused", CyclePosition: 70, LastChange: "0.00%", LastMeetingDate: "2024-01-25"}, 10, 35},
	{models.CentralBank{Country: "Japan", Code: "JP", Flag: "🇯🇵", Bank: "Bank of Japan (BOJ)", CurrentRate: 0.10, PreviousRate: -0.10, InflationRate: 2.6, Status: "hiking", CyclePosition: 15, LastChange: "+0.20%", LastMeetingDate: "2024-01-23"}, 20, 50},
	{models.CentralBank{Country: "United Kingdom", Code: "GB", Flag: "🇬🇧", Bank: "Bank of England (BOE)", CurrentRate: 5.25, PreviousRate: 5.25, InflationRate: 4.0, Status: "paused", CyclePosition: 72, LastChange: "0.00%", LastMeetingDate: "2024-02-01"}, 12, 40},
	{models.CentralBank{Country: "China", Code: "CN", Flag: "🇨🇳", Bank: "People's Bank of China (PBOC)", CurrentRate: 3.45, PreviousRate: 3.55, InflationRate: 0.7, Status: "cutting", CyclePosition: 55, LastChange: "-0.10%", LastMeetingDate: "2024-02-20"}, 18, 48},
	{models.CentralBank{Country: "South Korea", Code: "KR", Flag: "🇰🇷", Bank: "Bank of Korea (BOK)", CurrentRate: 3.50, PreviousRate: 3.50, InflationRate: 2.8, Status: "paused", CyclePosition: 68, LastChange: "0.00%", LastMeetingDate: "2024-02-22"}, 25, 55},
	{models.CentralBank{Country: "Australia", Code: "AU", Flag: "🇦🇺", Bank: "Reserve Bank of Australia (RBA)", CurrentRate: 4.35, PreviousRate: 4.35, InflationRate: 4.1, Status: "paused", CyclePosition: 70, LastChange: "0.00%", LastMeetingDate: "2024-02-06"}, 15, 42},
	{models.CentralBank{Country: "Canada", Code: "CA", Flag: "🇨🇦", Bank: "Bank of Canada (BOC)", CurrentRate: 5.00, PreviousRate: 5.00, InflationRate: 2.9, Status: "paused", CyclePosition: 73, LastChange: "0.00%", LastMeetingDate: "2024-01-24"}, 8, 30},
	{models.CentralBank{Country: "Switzerland", Code: "CH", Flag: "🇨🇭", Bank: "Swiss National Bank (SNB)", CurrentRate: 1.75, PreviousRate: 1.75, InflationRate: 1.3, Status: "paused", CyclePosition: 65, LastChange: "0.00%", LastMeetingDate: "2023-12-14"}, 20, 50},
	{models.CentralBank{Country: "Brazil", Code: "BR", Flag: "🇧🇷", Bank: "Central Bank of Brazil (BCB)", CurrentRate: 11.25, PreviousRate: 11.75, InflationRate: 4.5, Status: "cutting", CyclePosition: 50, LastChange: "-0.50%", LastMeetingDate: "2024-01-31"}, 12, 38},
	{models.CentralBank{Country: "India", Code: "IN", Flag: "🇮🇳", Bank: "Reserve Bank of India (RBI)", CurrentRate: 6.50, PreviousRate: 6.50, InflationRate: 5.1, Status: "paused", CyclePosition: 68, LastChange: "0.00%", LastMeetingDate: "2024-02-08"}, 30, 60},
	{models.CentralBank{Country: "Mexico", Code: "MX", Flag: "🇲🇽", Bank: "Bank of Mexico (Banxico)", CurrentRate: 11.25, PreviousRate: 11.25, InflationRate: 4.9, Status: "paused", CyclePosition: 72, LastChange: "0.00%", LastMeetingDate: "2024-02-08"}, 18, 45},
}

// Policy builds the central-bank snapshot. Rates get a small jitter and
// real rates are recomputed so the two columns never disagree. Meeting
// expectations follow the bank's stated cycle: cutters are expected to
// cut, hikers to hike, deeply negative real rates force a hike call and
// very positive ones read as uncertain.
func (g *Generator) Policy() models.PolicyData {
	now := g.now()

	banks := make([]models.CentralBank, 0, len(centralBanks))
	for _, seed := range centralBanks {
		b := seed.CentralBank
		b.CurrentRate = round2(b.CurrentRate + g.jit(0.1))
		b.InflationRate = round2(b.InflationRate + g.jit(0.2))
		b.RealRate = round2(b.CurrentRate - b.InflationRate)

		daysAhead := seed.meetingMin + g.r.Intn(seed.meetingMax-seed.meetingMin+1)
		b.NextMeetingDate = now.AddDate(0, 0, daysAhead).Format("2006-01-02")
		banks = append(banks, b)
	}

	meetings := make([]models.UpcomingMeeting, 0, len(banks))
	for _, b := range banks {
		meetingDate, err := time.Parse("2006-01-02", b.NextMeetingDate)
		if err != nil {
			continue
		}
		daysUntil := int(meetingDate.Sub(now).Hours() / 24)
		if daysUntil <= 0 {
			continue
		}

		action, probability := "hold", 85
		switch {
		case b.Status == "cutting":
			action, probability = "cut", 70
		case b.Status == "hiking":
			action, probability = "hike", 60
		case b.RealRate < 0:
			action, probability = "hike", 55
		case b.RealRate > 2:
			action, probability = "uncertain", 45
		}

		meetings = append(meetings, models.UpcomingMeeting{
			Country:           b.Country,
			Flag:              b.Flag,
			Bank:              b.Bank,
			Date:              b.NextMeetingDate,
			DaysUntil:         daysUntil,
			ExpectedAction:    action,
			MarketProbability: probability,
		})
	}
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].DaysUntil < meetings[j].DaysUntil
	})

	return models.PolicyData{CentralBanks: banks, UpcomingMeetings: meetings}
}
