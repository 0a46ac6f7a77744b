package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusCategory classifies an attendance status for deduction routing.
// It is assigned when the status is defined, never inferred from the
// display name.
type StatusCategory string

const (
	CategoryLate    StatusCategory = "late"
	CategoryAbsence StatusCategory = "absence"
	CategoryOther   StatusCategory = "other"
)

func (c StatusCategory) Valid() bool {
	switch c {
	case CategoryLate, CategoryAbsence, CategoryOther:
		return true
	}
	return false
}

// DeductionUnit says how a status's deduction value is interpreted:
// as a ratio of the daily salary, or as a fixed currency amount.
type DeductionUnit string

const (
	UnitRatio DeductionUnit = "ratio"
	UnitFixed DeductionUnit = "fixed"
)

func (u DeductionUnit) Valid() bool {
	return u == UnitRatio || u == UnitFixed
}

// LegacyUnitFor applies the historical import convention: deduction
// values at or below 2 were ratios of daily salary, anything larger a
// fixed amount. It decides the unit for statuses created or imported
// without an explicit one; new statuses should declare their unit.
func LegacyUnitFor(deductionValue decimal.Decimal) DeductionUnit {
	if deductionValue.LessThanOrEqual(decimal.NewFromInt(2)) {
		return UnitRatio
	}
	return UnitFixed
}

type Status struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_attendance_status_name"`
	Description    *string         `gorm:"type:varchar(100)"`
	Category       StatusCategory  `gorm:"type:varchar(10);not null;default:'other'"`
	IsDeduction    bool            `gorm:"not null;default:false"`
	DeductionValue decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	DeductionUnit  DeductionUnit   `gorm:"type:varchar(10);not null;default:'fixed'"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (Status) TableName() string {
	return "attendance_statuses"
}

type Record struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Date          time.Time       `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	StatusID      uuid.UUID       `gorm:"type:uuid;not null"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Remarks       *string         `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`

	Status *Status `gorm:"foreignKey:StatusID"`
}

func (Record) TableName() string {
	return "attendance_records"
}
