package salaryitem

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	KindAddition  Kind = "addition"
	KindDeduction Kind = "deduction"
)

// Bucket is the explicit component a salary item contributes to.
// Classification is a catalog-time decision, never derived from the
// item's display name.
type Bucket string

const (
	BucketBase               Bucket = "base_salary"
	BucketOvertime           Bucket = "overtime_pay"
	BucketBonus              Bucket = "bonus"
	BucketPerformanceBonus   Bucket = "performance_bonus"
	BucketAttendanceBonus    Bucket = "attendance_bonus"
	BucketTransportAllowance Bucket = "transport_allowance"
	BucketMealAllowance      Bucket = "meal_allowance"
	BucketDeduction          Bucket = "deduction"
	BucketSocialSecurity     Bucket = "social_security"
	BucketPersonalTax        Bucket = "personal_tax"
	BucketLateDeduction      Bucket = "late_deduction"
	BucketAbsenceDeduction   Bucket = "absence_deduction"
)

var additionBuckets = map[Bucket]bool{
	BucketBase:               true,
	BucketOvertime:           true,
	BucketBonus:              true,
	BucketPerformanceBonus:   true,
	BucketAttendanceBonus:    true,
	BucketTransportAllowance: true,
	BucketMealAllowance:      true,
}

var deductionBuckets = map[Bucket]bool{
	BucketDeduction:        true,
	BucketSocialSecurity:   true,
	BucketPersonalTax:      true,
	BucketLateDeduction:    true,
	BucketAbsenceDeduction: true,
}

func (b Bucket) Valid() bool {
	return additionBuckets[b] || deductionBuckets[b]
}

// KindFor returns the item kind a bucket belongs to. An item's kind and
// bucket must agree; the service rejects mismatched pairs.
func (b Bucket) KindFor() Kind {
	if additionBuckets[b] {
		return KindAddition
	}
	return KindDeduction
}

type SalaryItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(50);not null;uniqueIndex:uq_salary_item_name"`
	Kind         Kind           `gorm:"type:varchar(10);not null"`
	Bucket       Bucket         `gorm:"type:varchar(30);not null"`
	IsPercentage bool           `gorm:"not null;default:false"`
	IsSystem     bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (SalaryItem) TableName() string {
	return "salary_items"
}

// Catalog is a read-only snapshot of all salary items, keyed by id.
// The batch generator loads it once per run.
type Catalog map[uuid.UUID]SalaryItem

func NewCatalog(items []SalaryItem) Catalog {
	c := make(Catalog, len(items))
	for _, item := range items {
		c[item.ID] = item
	}
	return c
}

// BaseSalaryItem returns the canonical base-salary catalog item. The
// engine synthesizes a detail row against it when no configuration
// entry covers the base bucket.
func (c Catalog) BaseSalaryItem() (SalaryItem, bool) {
	for _, item := range c {
		if item.Bucket == BucketBase {
			return item, true
		}
	}
	return SalaryItem{}, false
}
