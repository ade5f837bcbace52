package render

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// RoundProgress clamps a progress percentage to [0, 100] and rounds it
// down for display, so an unfinished badge never shows 100.
//
//	Progress >= 1%: Max Decimals = 0
//	Progress <  1%: Max Decimals = 1
func RoundProgress(progress decimal.Decimal) decimal.Decimal {
	switch {
	case progress.IsNegative():
		return decimal.Zero
	case progress.GreaterThanOrEqual(hundred):
		return hundred
	case progress.LessThan(one):
		return progress.RoundFloor(1)
	default:
		return progress.RoundFloor(0)
	}
}
