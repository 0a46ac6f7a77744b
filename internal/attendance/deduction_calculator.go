package attendance

import (
	"context"
	"time"

	"go-payroll/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DeductionBreakdown is the categorized result of one employee-month of
// attendance deductions. Total is always the sum of the three
// categories so nothing is dropped by a misclassified status.
type DeductionBreakdown struct {
	Late    decimal.Decimal
	Absence decimal.Decimal
	Other   decimal.Decimal
	Total   decimal.Decimal
}

func ZeroBreakdown() DeductionBreakdown {
	return DeductionBreakdown{
		Late:    decimal.Zero,
		Absence: decimal.Zero,
		Other:   decimal.Zero,
		Total:   decimal.Zero,
	}
}

// DeductionCalculator turns a month of attendance records into
// deduction amounts. Ratio-unit statuses are charged against the daily
// salary (base / 22 working days); fixed-unit statuses are charged
// verbatim.
type DeductionCalculator struct {
	repo   Repository
	logger *zap.Logger
}

func NewDeductionCalculator(repo Repository) *DeductionCalculator {
	return &DeductionCalculator{
		repo:   repo,
		logger: zap.L().Named("attendance.deduction"),
	}
}

func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (c *DeductionCalculator) MonthlyDeduction(
	ctx context.Context,
	employeeID uuid.UUID,
	baseSalary decimal.Decimal,
	year, month int,
) (DeductionBreakdown, error) {
	from, to := monthRange(year, month)

	records, err := c.repo.FindRecordsByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return DeductionBreakdown{}, err
	}

	breakdown := ZeroBreakdown()
	dailySalary := money.DailyRate(baseSalary)

	for _, record := range records {
		status := record.Status
		if status == nil || !status.IsDeduction {
			continue
		}

		var amount decimal.Decimal
		switch status.DeductionUnit {
		case UnitRatio:
			amount = money.Round(dailySalary.Mul(status.DeductionValue))
		default:
			amount = money.Round(status.DeductionValue)
		}

		switch status.Category {
		case CategoryLate:
			breakdown.Late = breakdown.Late.Add(amount)
		case CategoryAbsence:
			breakdown.Absence = breakdown.Absence.Add(amount)
		default:
			// Unrecognized categories still count so the total
			// stays conserved.
			breakdown.Other = breakdown.Other.Add(amount)
		}
		breakdown.Total = breakdown.Total.Add(amount)
	}

	if breakdown.Total.IsPositive() {
		c.logger.Debug("monthly attendance deduction computed",
			zap.String("employee_id", employeeID.String()),
			zap.Int("year", year),
			zap.Int("month", month),
			zap.String("total", breakdown.Total.StringFixed(2)),
		)
	}

	return breakdown, nil
}
