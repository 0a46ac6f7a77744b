package salary

import (
	"sort"

	"go-payroll/internal/attendance"
	"go-payroll/internal/money"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/salaryconfig"
	"go-payroll/internal/salaryitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttendanceRoute decides which bucket the uncategorized ("other")
// share of the attendance deduction lands in. Late and absence amounts
// always go to their own buckets.
type AttendanceRoute int

const (
	// RouteAbsence folds the uncategorized share into the absence
	// deduction bucket.
	RouteAbsence AttendanceRoute = iota
	// RouteGeneric folds it into the generic deduction bucket instead.
	RouteGeneric
)

type EngineInput struct {
	BaseSalary decimal.Decimal
	Resolution salaryconfig.Resolution
	Catalog    salaryitem.Catalog
	Attendance attendance.DeductionBreakdown
	Route      AttendanceRoute
}

type DetailAmount struct {
	ItemID uuid.UUID
	Amount decimal.Decimal
}

type EngineResult struct {
	Components Components
	NetSalary  decimal.Decimal
	Details    []DetailAmount
}

// Compute builds the component breakdown for one employee-period. It is
// pure: all reads happen before it is called. Malformed configuration
// (a percentage entry with an unresolvable base reference, or a catalog
// with no base-salary item) is an error, never a silent zero.
func Compute(in EngineInput) (EngineResult, error) {
	comps := ZeroComponents()
	comps.Base = money.Round(in.BaseSalary)

	entries := make([]salaryconfig.Entry, 0, len(in.Resolution.Entries))
	for _, e := range in.Resolution.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ItemID.String() < entries[j].ItemID.String()
	})

	details := make([]DetailAmount, 0, len(entries)+1)
	hasBaseEntry := false

	for _, entry := range entries {
		item, ok := in.Catalog[entry.ItemID]
		if !ok {
			// Entry references a deleted item; resolution should have
			// filtered it, skip rather than fail the whole employee.
			continue
		}

		var amount decimal.Decimal
		if item.IsPercentage {
			if entry.BaseItem == nil || *entry.BaseItem != salaryconfig.BaseItemBaseSalary {
				return EngineResult{}, salaryerrors.ErrUnknownBaseItem
			}
			amount = money.Percent(in.BaseSalary, entry.Value)
		} else {
			amount = money.Round(entry.Value)
		}

		if item.Bucket == salaryitem.BucketBase {
			comps.Base = amount
			hasBaseEntry = true
		} else {
			addToBucket(&comps, item.Bucket, amount)
		}

		details = append(details, DetailAmount{ItemID: entry.ItemID, Amount: amount})
	}

	if !hasBaseEntry {
		baseItem, ok := in.Catalog.BaseSalaryItem()
		if !ok {
			return EngineResult{}, salaryerrors.ErrMissingBaseSalaryItem
		}
		details = append(details, DetailAmount{ItemID: baseItem.ID, Amount: comps.Base})
	}

	comps.LateDeduction = comps.LateDeduction.Add(in.Attendance.Late)
	comps.AbsenceDeduction = comps.AbsenceDeduction.Add(in.Attendance.Absence)
	switch in.Route {
	case RouteGeneric:
		comps.Deduction = comps.Deduction.Add(in.Attendance.Other)
	default:
		comps.AbsenceDeduction = comps.AbsenceDeduction.Add(in.Attendance.Other)
	}

	comps = comps.Round()

	return EngineResult{
		Components: comps,
		NetSalary:  comps.Net().Round(2),
		Details:    details,
	}, nil
}

func addToBucket(c *Components, bucket salaryitem.Bucket, amount decimal.Decimal) {
	switch bucket {
	case salaryitem.BucketOvertime:
		c.Overtime = c.Overtime.Add(amount)
	case salaryitem.BucketBonus:
		c.Bonus = c.Bonus.Add(amount)
	case salaryitem.BucketPerformanceBonus:
		c.PerformanceBonus = c.PerformanceBonus.Add(amount)
	case salaryitem.BucketAttendanceBonus:
		c.AttendanceBonus = c.AttendanceBonus.Add(amount)
	case salaryitem.BucketTransportAllowance:
		c.TransportAllowance = c.TransportAllowance.Add(amount)
	case salaryitem.BucketMealAllowance:
		c.MealAllowance = c.MealAllowance.Add(amount)
	case salaryitem.BucketSocialSecurity:
		c.SocialSecurity = c.SocialSecurity.Add(amount)
	case salaryitem.BucketPersonalTax:
		c.PersonalTax = c.PersonalTax.Add(amount)
	case salaryitem.BucketLateDeduction:
		c.LateDeduction = c.LateDeduction.Add(amount)
	case salaryitem.BucketAbsenceDeduction:
		c.AbsenceDeduction = c.AbsenceDeduction.Add(amount)
	default:
		c.Deduction = c.Deduction.Add(amount)
	}
}
