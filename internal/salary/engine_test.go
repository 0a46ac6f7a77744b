package salary

import (
	"testing"
	"time"

	"go-payroll/internal/attendance"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/salaryconfig"
	"go-payroll/internal/salaryitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func catalogItem(name string, bucket salaryitem.Bucket, isPercentage bool) salaryitem.SalaryItem {
	return salaryitem.SalaryItem{
		ID:           uuid.New(),
		Name:         name,
		Kind:         bucket.KindFor(),
		Bucket:       bucket,
		IsPercentage: isPercentage,
	}
}

func baseCatalog() (salaryitem.Catalog, salaryitem.SalaryItem) {
	baseItem := catalogItem("Base Salary", salaryitem.BucketBase, false)
	baseItem.IsSystem = true
	return salaryitem.NewCatalog([]salaryitem.SalaryItem{baseItem}), baseItem
}

func resolutionOf(entries ...salaryconfig.Entry) salaryconfig.Resolution {
	m := make(map[uuid.UUID]salaryconfig.Entry, len(entries))
	for _, e := range entries {
		m[e.ItemID] = e
	}
	source := salaryconfig.SourcePolicy
	if len(entries) == 0 {
		source = salaryconfig.SourceEmpty
	}
	return salaryconfig.Resolution{Source: source, Entries: m}
}

func configEntry(itemID uuid.UUID, value string, baseItem *string) salaryconfig.Entry {
	return salaryconfig.Entry{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		ItemID:        itemID,
		Value:         dec(value),
		BaseItem:      baseItem,
		IsActive:      true,
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCompute_EmptyConfigFallsBackToEmployeeBase(t *testing.T) {
	catalog, baseItem := baseCatalog()

	result, err := Compute(EngineInput{
		BaseSalary: dec("7500.00"),
		Resolution: resolutionOf(),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "7500.00", result.Components.Base.StringFixed(2))
	assert.Equal(t, "7500.00", result.NetSalary.StringFixed(2))

	// A synthesized detail row points at the canonical base item.
	assert.Len(t, result.Details, 1)
	assert.Equal(t, baseItem.ID, result.Details[0].ItemID)
	assert.Equal(t, "7500.00", result.Details[0].Amount.StringFixed(2))
}

func TestCompute_MissingBaseSalaryItemIsConfigurationError(t *testing.T) {
	catalog := salaryitem.NewCatalog([]salaryitem.SalaryItem{
		catalogItem("Bonus", salaryitem.BucketBonus, false),
	})

	_, err := Compute(EngineInput{
		BaseSalary: dec("7500.00"),
		Resolution: resolutionOf(),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.ErrorIs(t, err, salaryerrors.ErrMissingBaseSalaryItem)
}

func TestCompute_PercentageOfBaseSalary(t *testing.T) {
	catalog, _ := baseCatalog()
	pension := catalogItem("Pension", salaryitem.BucketSocialSecurity, true)
	catalog[pension.ID] = pension

	baseRef := salaryconfig.BaseItemBaseSalary
	result, err := Compute(EngineInput{
		BaseSalary: dec("10000.00"),
		Resolution: resolutionOf(configEntry(pension.ID, "10", &baseRef)),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "1000.00", result.Components.SocialSecurity.StringFixed(2))
	assert.Equal(t, "9000.00", result.NetSalary.StringFixed(2))
}

func TestCompute_UnknownBaseReferenceIsConfigurationError(t *testing.T) {
	catalog, _ := baseCatalog()
	pension := catalogItem("Pension", salaryitem.BucketSocialSecurity, true)
	catalog[pension.ID] = pension

	badRef := "commission"
	_, err := Compute(EngineInput{
		BaseSalary: dec("10000.00"),
		Resolution: resolutionOf(configEntry(pension.ID, "10", &badRef)),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.ErrorIs(t, err, salaryerrors.ErrUnknownBaseItem)
}

func TestCompute_BaseEntryOverridesEmployeeBase(t *testing.T) {
	catalog, baseItem := baseCatalog()

	result, err := Compute(EngineInput{
		BaseSalary: dec("5000.00"),
		Resolution: resolutionOf(configEntry(baseItem.ID, "6000.00", nil)),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "6000.00", result.Components.Base.StringFixed(2))
	// No synthesized row: the configured entry already covers base.
	assert.Len(t, result.Details, 1)
	assert.Equal(t, baseItem.ID, result.Details[0].ItemID)
	assert.Equal(t, "6000.00", result.Details[0].Amount.StringFixed(2))
}

func TestCompute_NetIsSignedSumOfAllComponents(t *testing.T) {
	catalog, _ := baseCatalog()

	fixtures := []struct {
		bucket salaryitem.Bucket
		value  string
	}{
		{salaryitem.BucketBase, "5000"},
		{salaryitem.BucketOvertime, "200"},
		{salaryitem.BucketBonus, "100"},
		{salaryitem.BucketPerformanceBonus, "150"},
		{salaryitem.BucketAttendanceBonus, "50"},
		{salaryitem.BucketTransportAllowance, "100"},
		{salaryitem.BucketMealAllowance, "50"},
		{salaryitem.BucketDeduction, "20"},
		{salaryitem.BucketSocialSecurity, "400"},
		{salaryitem.BucketPersonalTax, "80"},
		{salaryitem.BucketLateDeduction, "30"},
		{salaryitem.BucketAbsenceDeduction, "40"},
	}

	entries := make([]salaryconfig.Entry, 0, len(fixtures))
	for _, f := range fixtures {
		item := catalogItem(string(f.bucket), f.bucket, false)
		catalog[item.ID] = item
		entries = append(entries, configEntry(item.ID, f.value, nil))
	}

	result, err := Compute(EngineInput{
		BaseSalary: dec("9999.00"), // overridden by the base entry
		Resolution: resolutionOf(entries...),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.NoError(t, err)
	// additions 5000+200+100+150+50+100+50 = 5650
	// deductions 20+400+80+30+40 = 570
	assert.Equal(t, "5080.00", result.NetSalary.StringFixed(2))
	assert.Len(t, result.Details, len(fixtures))
}

func TestCompute_AttendanceRouting(t *testing.T) {
	breakdown := attendance.DeductionBreakdown{
		Late:    dec("30.00"),
		Absence: dec("200.00"),
		Other:   dec("15.00"),
		Total:   dec("245.00"),
	}

	t.Run("default routes other into absence deduction", func(t *testing.T) {
		catalog, _ := baseCatalog()
		result, err := Compute(EngineInput{
			BaseSalary: dec("4400.00"),
			Resolution: resolutionOf(),
			Catalog:    catalog,
			Attendance: breakdown,
			Route:      RouteAbsence,
		})

		assert.NoError(t, err)
		assert.Equal(t, "30.00", result.Components.LateDeduction.StringFixed(2))
		assert.Equal(t, "215.00", result.Components.AbsenceDeduction.StringFixed(2))
		assert.Equal(t, "0.00", result.Components.Deduction.StringFixed(2))
		assert.Equal(t, "4155.00", result.NetSalary.StringFixed(2))
	})

	t.Run("generic route sends other into generic deduction", func(t *testing.T) {
		catalog, _ := baseCatalog()
		result, err := Compute(EngineInput{
			BaseSalary: dec("4400.00"),
			Resolution: resolutionOf(),
			Catalog:    catalog,
			Attendance: breakdown,
			Route:      RouteGeneric,
		})

		assert.NoError(t, err)
		assert.Equal(t, "30.00", result.Components.LateDeduction.StringFixed(2))
		assert.Equal(t, "200.00", result.Components.AbsenceDeduction.StringFixed(2))
		assert.Equal(t, "15.00", result.Components.Deduction.StringFixed(2))
		assert.Equal(t, "4155.00", result.NetSalary.StringFixed(2))
	})
}

func TestCompute_EntryForDeletedItemIsSkipped(t *testing.T) {
	catalog, _ := baseCatalog()

	ghostEntry := configEntry(uuid.New(), "500", nil)
	result, err := Compute(EngineInput{
		BaseSalary: dec("4000.00"),
		Resolution: resolutionOf(ghostEntry),
		Catalog:    catalog,
		Attendance: attendance.ZeroBreakdown(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "4000.00", result.NetSalary.StringFixed(2))
	for _, d := range result.Details {
		assert.NotEqual(t, ghostEntry.ItemID, d.ItemID)
	}
}
