package socialsecurity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config is a named set of contribution rates. Rates are percentages of
// the enrollment's contribution base. At most one config is the default.
type Config struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"type:varchar(50);not null;uniqueIndex:uq_social_security_config_name"`
	PensionRate      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	MedicalRate      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	UnemploymentRate decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	InjuryRate       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	MaternityRate    decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	HousingFundRate  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IsDefault        bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

func (Config) TableName() string {
	return "social_security_configs"
}

// Enrollment assigns a config to one employee with that employee's
// contribution bases.
type Enrollment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ConfigID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BaseNumber      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	HousingFundBase decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EffectiveDate   time.Time       `gorm:"type:date;not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`

	Config   *Config      `gorm:"foreignKey:ConfigID"`
	Employee *employeeRef `gorm:"foreignKey:EmployeeID"`
}

func (Enrollment) TableName() string {
	return "employee_social_security"
}

type employeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string
	EmployeeNumber string
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
}

func (employeeRef) TableName() string {
	return "employees"
}
