package socialsecurity

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateConfig(ctx context.Context, config *Config) error
	FindAllConfigs(ctx context.Context) ([]Config, error)
	FindConfigByID(ctx context.Context, id string) (*Config, error)
	UpdateConfig(ctx context.Context, config *Config) error
	// ClearDefaults unsets the default flag on every config except the
	// given one, so "at most one default" survives concurrent writes.
	ClearDefaults(ctx context.Context, exceptID uuid.UUID) error

	FindEnrollments(ctx context.Context, departmentID, employeeID *uuid.UUID) ([]Enrollment, error)
	FindEnrollmentByID(ctx context.Context, id string) (*Enrollment, error)
	// InsertEnrollments writes all rows through the surrounding
	// transaction when one is set, so a batch assignment commits
	// atomically.
	InsertEnrollments(ctx context.Context, enrollments []Enrollment) error
	UpdateEnrollment(ctx context.Context, enrollment *Enrollment) error

	// FilterExistingEmployees narrows ids to employees that exist and
	// are not soft-deleted, preserving input order.
	FilterExistingEmployees(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
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

func (r *repository) CreateConfig(ctx context.Context, config *Config) error {
	query := `
        INSERT INTO social_security_configs (
            id, name, pension_rate, medical_rate, unemployment_rate,
            injury_rate, maternity_rate, housing_fund_rate, is_default
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		config.ID, config.Name, config.PensionRate, config.MedicalRate,
		config.UnemploymentRate, config.InjuryRate, config.MaternityRate,
		config.HousingFundRate, config.IsDefault,
	)
	return err
}

func (r *repository) FindAllConfigs(ctx context.Context) ([]Config, error) {
	var configs []Config
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) FindConfigByID(ctx context.Context, id string) (*Config, error) {
	var config Config
	err := r.db.WithContext(ctx).
		First(&config, "id = ?", id).Error
	return &config, err
}

func (r *repository) UpdateConfig(ctx context.Context, config *Config) error {
	query := `
        UPDATE social_security_configs
        SET name = $2, pension_rate = $3, medical_rate = $4,
            unemployment_rate = $5, injury_rate = $6, maternity_rate = $7,
            housing_fund_rate = $8, is_default = $9, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		config.ID, config.Name, config.PensionRate, config.MedicalRate,
		config.UnemploymentRate, config.InjuryRate, config.MaternityRate,
		config.HousingFundRate, config.IsDefault,
	)
	return err
}

func (r *repository) ClearDefaults(ctx context.Context, exceptID uuid.UUID) error {
	query := `
        UPDATE social_security_configs
        SET is_default = FALSE, updated_at = NOW()
        WHERE is_default = TRUE AND id <> $1
    `
	_, err := r.execer().ExecContext(ctx, query, exceptID)
	return err
}

func (r *repository) FindEnrollments(
	ctx context.Context,
	departmentID, employeeID *uuid.UUID,
) ([]Enrollment, error) {
	var enrollments []Enrollment
	query := r.db.WithContext(ctx).
		Preload("Config").
		Preload("Employee").
		Order("effective_date DESC")
	if departmentID != nil {
		query = query.
			Joins("JOIN employees ON employees.id = employee_social_security.employee_id").
			Where("employees.department_id = ?", *departmentID)
	}
	if employeeID != nil {
		query = query.Where("employee_social_security.employee_id = ?", *employeeID)
	}
	err := query.Find(&enrollments).Error
	return enrollments, err
}

func (r *repository) FindEnrollmentByID(ctx context.Context, id string) (*Enrollment, error) {
	var enrollment Enrollment
	err := r.db.WithContext(ctx).
		Preload("Config").
		Preload("Employee").
		First(&enrollment, "id = ?", id).Error
	return &enrollment, err
}

func (r *repository) InsertEnrollments(ctx context.Context, enrollments []Enrollment) error {
	query := `
        INSERT INTO employee_social_security (
            id, employee_id, config_id, base_number, housing_fund_base, effective_date
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `
	exec := r.execer()
	for _, e := range enrollments {
		_, err := exec.ExecContext(
			ctx, query,
			e.ID, e.EmployeeID, e.ConfigID,
			e.BaseNumber, e.HousingFundBase, e.EffectiveDate,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) UpdateEnrollment(ctx context.Context, enrollment *Enrollment) error {
	query := `
        UPDATE employee_social_security
        SET config_id = $2, base_number = $3, housing_fund_base = $4,
            effective_date = $5, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		enrollment.ID, enrollment.ConfigID,
		enrollment.BaseNumber, enrollment.HousingFundBase, enrollment.EffectiveDate,
	)
	return err
}

func (r *repository) FilterExistingEmployees(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var found []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id IN ?", ids).
		Where("deleted_at IS NULL").
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	exists := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	ordered := make([]uuid.UUID, 0, len(found))
	for _, id := range ids {
		if exists[id] {
			ordered = append(ordered, id)
		}
	}
	return ordered, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
