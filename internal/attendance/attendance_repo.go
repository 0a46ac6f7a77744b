package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateStatus(ctx context.Context, status *Status) error
	FindAllStatuses(ctx context.Context) ([]Status, error)
	FindStatusByID(ctx context.Context, id string) (*Status, error)
	UpdateStatus(ctx context.Context, status *Status) error
	DeleteStatus(ctx context.Context, id string) error
	CountRecordsByStatus(ctx context.Context, statusID string) (int64, error)

	CreateRecord(ctx context.Context, record *Record) error
	FindRecordByID(ctx context.Context, id string) (*Record, error)
	// FindRecordsByEmployeeAndRange returns records with their status
	// joined, for dates in [from, to).
	FindRecordsByEmployeeAndRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]Record, error)
	UpdateRecord(ctx context.Context, record *Record) error
	DeleteRecord(ctx context.Context, id string) error
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

func (r *repository) CreateStatus(ctx context.Context, status *Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *repository) FindAllStatuses(ctx context.Context) ([]Status, error) {
	var statuses []Status
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&statuses).Error
	return statuses, err
}

func (r *repository) FindStatusByID(ctx context.Context, id string) (*Status, error) {
	var status Status
	err := r.db.WithContext(ctx).
		First(&status, "id = ?", id).Error
	return &status, err
}

func (r *repository) UpdateStatus(ctx context.Context, status *Status) error {
	return r.db.WithContext(ctx).Save(status).Error
}

func (r *repository) DeleteStatus(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Status{}, "id = ?", id).Error
}

func (r *repository) CountRecordsByStatus(ctx context.Context, statusID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("status_id = ?", statusID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateRecord(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindRecordByID(ctx context.Context, id string) (*Record, error) {
	var record Record
	err := r.db.WithContext(ctx).
		Preload("Status").
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindRecordsByEmployeeAndRange(
	ctx context.Context,
	employeeID uuid.UUID,
	from, to time.Time,
) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Preload("Status").
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) UpdateRecord(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) DeleteRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Record{}, "id = ?", id).Error
}
