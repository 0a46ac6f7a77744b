package salaryconfig

import (
	"time"

	"go-payroll/internal/salaryitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseItemBaseSalary is the only base reference the engine currently
// supports for percentage items.
const BaseItemBaseSalary = "base_salary"

// Entry is one effective-dated configuration row. Updates never rewrite
// history: a new row with a later effective date is inserted and
// resolution picks the latest applicable one per item.
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_config_employee_item_date;index"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_config_employee_item_date"`
	Value         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	BaseItem      *string         `gorm:"type:varchar(50)"`
	IsActive      bool            `gorm:"not null;default:true"`
	EffectiveDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_config_employee_item_date"`
	ExpiryDate    *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`

	Item *salaryitem.SalaryItem `gorm:"foreignKey:ItemID"`
}

func (Entry) TableName() string {
	return "employee_salary_configs"
}
