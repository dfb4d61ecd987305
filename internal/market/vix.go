package market

// VIXLevel bands the fear gauge the way the dashboard presents it.
func VIXLevel(value float64) (level, description string) {
	switch {
	case value < 12:
		return "low", "Extreme complacency - markets are calm"
	case value < 20:
		return "moderate", "Normal volatility - typical market conditions"
	case value < 25:
		return "elevated", "Elevated fear - investors are cautious"
	case value < 35:
		return "high", "High fear - significant market stress"
	default:
		return "extreme", "Extreme fear - panic mode"
	}
}
