package salaryconfig

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindByEmployee returns the employee's full configuration history
	// with items preloaded, newest first.
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Entry, error)
	InsertEntries(ctx context.Context, entries []Entry) error
	DeleteByEmployeeAndItem(ctx context.Context, employeeID, itemID uuid.UUID) error
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

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&entries).Error
	return entries, err
}

// InsertEntries writes new dated rows through the surrounding
// transaction when one is set, so a multi-item PUT commits atomically.
func (r *repository) InsertEntries(ctx context.Context, entries []Entry) error {
	query := `
        INSERT INTO employee_salary_configs (
            id, employee_id, item_id, value, base_item, is_active, effective_date, expiry_date
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	exec := r.execer()
	for _, e := range entries {
		_, err := exec.ExecContext(
			ctx, query,
			e.ID, e.EmployeeID, e.ItemID, e.Value,
			e.BaseItem, e.IsActive, e.EffectiveDate, e.ExpiryDate,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteByEmployeeAndItem(ctx context.Context, employeeID, itemID uuid.UUID) error {
	query := `
        DELETE FROM employee_salary_configs
        WHERE employee_id = $1 AND item_id = $2
    `
	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, employeeID, itemID)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
