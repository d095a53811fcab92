package dashboard

import "github.com/shopspring/decimal"

// Trend is the direction of a KPI between two readings
type Trend string

const (
	TrendUp     Trend = "UP"
	TrendDown   Trend = "DOWN"
	TrendStable Trend = "STABLE"
)

// TrendChange is the outcome of comparing two readings.
type TrendChange struct {
	Direction  Trend
	Percentage decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeTrend returns (current-previous)/previous*100 rounded to two places,
// classified by sign. It reports false when previous is nil or zero, in which
// case no trend can be derived.
func ComputeTrend(current decimal.Decimal, previous *decimal.Decimal) (TrendChange, bool) {
	if previous == nil || previous.IsZero() {
		return TrendChange{}, false
	}
	pct := current.Sub(*previous).DivRound(*previous, 16).Mul(hundred).Round(2)

	direction := TrendStable
	switch pct.Sign() {
	case 1:
		direction = TrendUp
	case -1:
		direction = TrendDown
	}
	return TrendChange{Direction: direction, Percentage: pct}, true
}
