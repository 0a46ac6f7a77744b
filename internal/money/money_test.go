package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, "10.01", Round(MustParse("10.005")).StringFixed(2))
	assert.Equal(t, "10.00", Round(MustParse("10.004")).StringFixed(2))
	assert.Equal(t, "-3.33", Round(MustParse("-3.333")).StringFixed(2))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "1000.00", Percent(MustParse("10000"), MustParse("10")).StringFixed(2))
	assert.Equal(t, "412.50", Percent(MustParse("5000"), MustParse("8.25")).StringFixed(2))
	assert.Equal(t, "0.00", Percent(decimal.Zero, MustParse("15")).StringFixed(2))
}

func TestDailyRate(t *testing.T) {
	// 4400 / 22 working days.
	assert.Equal(t, "200.00", DailyRate(MustParse("4400")).StringFixed(2))
	// Non-terminating division still lands on two places.
	assert.Equal(t, "227.27", DailyRate(MustParse("5000")).StringFixed(2))
}
