package employee

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// FindActive returns active employees for a generation run, optionally
	// narrowed to a department or an explicit id list.
	FindActive(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]Employee, error)
	GetDepartmentIDByPosition(ctx context.Context, positionID string) (string, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error) {
	var empls []Employee
	query := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Order("full_name ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	err := query.Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "email", "employee_number", "hire_date", "base_salary", "is_active").
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindActive(
	ctx context.Context,
	departmentID *uuid.UUID,
	ids []uuid.UUID,
) ([]Employee, error) {
	var empls []Employee
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_number ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	err := query.Find(&empls).Error
	return empls, err
}

func (r *repository) GetDepartmentIDByPosition(ctx context.Context, positionID string) (string, error) {
	var departmentID string
	err := r.db.WithContext(ctx).
		Table("positions").
		Select("department_id").
		Where("id = ?", positionID).
		Where("deleted_at IS NULL").
		Scan(&departmentID).Error
	return departmentID, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
