package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index"`
	PositionID     *uuid.UUID `gorm:"type:uuid"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Email          string     `gorm:"uniqueIndex:uq_employee_email"`
	EmployeeNumber string     `gorm:"type:varchar(20);uniqueIndex:uq_employee_number"`
	Phone          *string    `gorm:"type:varchar(30)"`
	HireDate       time.Time  `gorm:"type:date;not null"`
	// BaseSalary is the monthly gross base. All component math starts here.
	BaseSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive   bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`

	Department *departmentRef `gorm:"foreignKey:DepartmentID"`
	Position   *positionRef   `gorm:"foreignKey:PositionID"`
}

func (Employee) TableName() string {
	return "employees"
}

type departmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (departmentRef) TableName() string {
	return "departments"
}

type positionRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (positionRef) TableName() string {
	return "positions"
}
