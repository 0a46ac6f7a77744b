package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordStatus string

const (
	StatusPending RecordStatus = "pending"
	StatusPaid    RecordStatus = "paid"
)

// Components is the fixed set of buckets a salary record is built from.
// Additions and deductions are kept as positive amounts; Net applies
// the signs.
type Components struct {
	Base               decimal.Decimal
	Overtime           decimal.Decimal
	Bonus              decimal.Decimal
	PerformanceBonus   decimal.Decimal
	AttendanceBonus    decimal.Decimal
	TransportAllowance decimal.Decimal
	MealAllowance      decimal.Decimal
	Deduction          decimal.Decimal
	SocialSecurity     decimal.Decimal
	PersonalTax        decimal.Decimal
	LateDeduction      decimal.Decimal
	AbsenceDeduction   decimal.Decimal
}

func ZeroComponents() Components {
	z := decimal.Zero
	return Components{
		Base: z, Overtime: z, Bonus: z, PerformanceBonus: z,
		AttendanceBonus: z, TransportAllowance: z, MealAllowance: z,
		Deduction: z, SocialSecurity: z, PersonalTax: z,
		LateDeduction: z, AbsenceDeduction: z,
	}
}

// Net is the signed sum: additions minus deductions.
func (c Components) Net() decimal.Decimal {
	additions := c.Base.
		Add(c.Overtime).
		Add(c.Bonus).
		Add(c.PerformanceBonus).
		Add(c.AttendanceBonus).
		Add(c.TransportAllowance).
		Add(c.MealAllowance)
	deductions := c.Deduction.
		Add(c.SocialSecurity).
		Add(c.PersonalTax).
		Add(c.LateDeduction).
		Add(c.AbsenceDeduction)
	return additions.Sub(deductions)
}

func (c Components) Round() Components {
	round := func(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
	return Components{
		Base:               round(c.Base),
		Overtime:           round(c.Overtime),
		Bonus:              round(c.Bonus),
		PerformanceBonus:   round(c.PerformanceBonus),
		AttendanceBonus:    round(c.AttendanceBonus),
		TransportAllowance: round(c.TransportAllowance),
		MealAllowance:      round(c.MealAllowance),
		Deduction:          round(c.Deduction),
		SocialSecurity:     round(c.SocialSecurity),
		PersonalTax:        round(c.PersonalTax),
		LateDeduction:      round(c.LateDeduction),
		AbsenceDeduction:   round(c.AbsenceDeduction),
	}
}

// Record is one employee's payroll result for a (year, month) period.
// Unique on (employee_id, year, month); immutable once paid. Reads go
// through gorm; the generation write path uses raw SQL inside the
// per-employee transaction.
type Record struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_employee_period;index"`
	Year               int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Month              int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Base               decimal.Decimal `gorm:"column:base_salary;type:numeric(12,2);not null"`
	Overtime           decimal.Decimal `gorm:"column:overtime_pay;type:numeric(12,2);not null"`
	Bonus              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PerformanceBonus   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AttendanceBonus    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TransportAllowance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MealAllowance      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Deduction          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SocialSecurity     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PersonalTax        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LateDeduction      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AbsenceDeduction   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetSalary          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status             RecordStatus    `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaymentDate        *time.Time
	Remark             *string   `gorm:"type:varchar(255)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Record) TableName() string {
	return "salary_records"
}

func (r *Record) SetComponents(c Components) {
	r.Base = c.Base
	r.Overtime = c.Overtime
	r.Bonus = c.Bonus
	r.PerformanceBonus = c.PerformanceBonus
	r.AttendanceBonus = c.AttendanceBonus
	r.TransportAllowance = c.TransportAllowance
	r.MealAllowance = c.MealAllowance
	r.Deduction = c.Deduction
	r.SocialSecurity = c.SocialSecurity
	r.PersonalTax = c.PersonalTax
	r.LateDeduction = c.LateDeduction
	r.AbsenceDeduction = c.AbsenceDeduction
	r.NetSalary = c.Net().Round(2)
}

func (r *Record) ComponentsOf() Components {
	return Components{
		Base:               r.Base,
		Overtime:           r.Overtime,
		Bonus:              r.Bonus,
		PerformanceBonus:   r.PerformanceBonus,
		AttendanceBonus:    r.AttendanceBonus,
		TransportAllowance: r.TransportAllowance,
		MealAllowance:      r.MealAllowance,
		Deduction:          r.Deduction,
		SocialSecurity:     r.SocialSecurity,
		PersonalTax:        r.PersonalTax,
		LateDeduction:      r.LateDeduction,
		AbsenceDeduction:   r.AbsenceDeduction,
	}
}

// Detail is one line item contributing to a record. The detail set is
// fully replaced whenever a pending record is regenerated.
type Detail struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecordID uuid.UUID       `gorm:"column:salary_id;type:uuid;not null;index"`
	ItemID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (Detail) TableName() string {
	return "salary_details"
}
