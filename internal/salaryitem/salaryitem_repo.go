package salaryitem

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *SalaryItem) error
	FindAll(ctx context.Context) ([]SalaryItem, error)
	FindByID(ctx context.Context, id string) (*SalaryItem, error)
	Update(ctx context.Context, item *SalaryItem) error
	Delete(ctx context.Context, id string) error
	CountDetails(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, item *SalaryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryItem, error) {
	var items []SalaryItem
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryItem, error) {
	var item SalaryItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ?", id).Error
	return &item, err
}

func (r *repository) Update(ctx context.Context, item *SalaryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryItem{}, "id = ?", id).Error
}

// CountDetails reports how many persisted salary detail rows reference
// the item. Referenced items are historical and must not be deleted.
func (r *repository) CountDetails(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("salary_details").
		Where("item_id = ?", id).
		Count(&count).Error
	return count, err
}
