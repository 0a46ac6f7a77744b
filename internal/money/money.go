// Package money holds the fixed-point helpers every amount in the system
// goes through. All currency math is decimal with two places; binary
// floating point never touches a salary figure.
package money

import "github.com/shopspring/decimal"

// workingDaysPerMonth is a business rule, not a calendar fact: daily salary
// is always base divided by 22 regardless of the month.
const workingDaysPerMonth = 22

var (
	Zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
	days    = decimal.NewFromInt(workingDaysPerMonth)
)

// Round normalizes an amount to currency precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent computes pct percent of base, rounded to currency precision.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred).Round(2)
}

// DailyRate is the per-working-day salary for a monthly base.
func DailyRate(base decimal.Decimal) decimal.Decimal {
	return base.DivRound(days, 2)
}

// MustParse converts a literal into an amount, for fixtures and seeds.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
