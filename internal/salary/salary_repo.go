package salary

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Year       *int
	Month      *int
	EmployeeID *uuid.UUID
	Status     *RecordStatus
	Page       int
	PageSize   int
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// FindByEmployeeAndPeriod reads through the transaction when one is
	// set, so a generation run sees its own uncommitted state and gets
	// a serialized answer to "does a record exist".
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error)
	Insert(ctx context.Context, record *Record) error
	UpdateComponents(ctx context.Context, record *Record) error
	// ReplaceDetails deletes every detail row of the record and inserts
	// the new set.
	ReplaceDetails(ctx context.Context, recordID uuid.UUID, details []Detail) error
	MarkPaid(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error

	FindAll(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	FindDetails(ctx context.Context, recordID uuid.UUID) ([]Detail, error)
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

const recordColumns = `
	id::text, employee_id::text, year, month,
	base_salary, overtime_pay, bonus, performance_bonus, attendance_bonus,
	transport_allowance, meal_allowance, deduction, social_security,
	personal_tax, late_deduction, absence_deduction, net_salary, status
`

func (r *repository) FindByEmployeeAndPeriod(
	ctx context.Context,
	employeeID uuid.UUID,
	year, month int,
) (*Record, error) {
	query := `
SELECT ` + recordColumns + `
FROM salary_records
WHERE employee_id = $1 AND year = $2 AND month = $3
`

	row := r.querier().QueryRowContext(ctx, query, employeeID, year, month)

	var (
		rec              Record
		idStr, emplIDStr string
	)
	err := row.Scan(
		&idStr, &emplIDStr, &rec.Year, &rec.Month,
		&rec.Base, &rec.Overtime, &rec.Bonus, &rec.PerformanceBonus, &rec.AttendanceBonus,
		&rec.TransportAllowance, &rec.MealAllowance, &rec.Deduction, &rec.SocialSecurity,
		&rec.PersonalTax, &rec.LateDeduction, &rec.AbsenceDeduction, &rec.NetSalary, &rec.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rec.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	rec.EmployeeID, err = uuid.Parse(emplIDStr)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) Insert(ctx context.Context, record *Record) error {
	query := `
INSERT INTO salary_records (
	id, employee_id, year, month,
	base_salary, overtime_pay, bonus, performance_bonus, attendance_bonus,
	transport_allowance, meal_allowance, deduction, social_security,
	personal_tax, late_deduction, absence_deduction, net_salary, status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)
`
	_, err := r.execer().ExecContext(
		ctx, query,
		record.ID, record.EmployeeID, record.Year, record.Month,
		record.Base, record.Overtime, record.Bonus, record.PerformanceBonus, record.AttendanceBonus,
		record.TransportAllowance, record.MealAllowance, record.Deduction, record.SocialSecurity,
		record.PersonalTax, record.LateDeduction, record.AbsenceDeduction, record.NetSalary, record.Status,
	)
	return err
}

func (r *repository) UpdateComponents(ctx context.Context, record *Record) error {
	query := `
UPDATE salary_records
SET
	base_salary = $2,
	overtime_pay = $3,
	bonus = $4,
	performance_bonus = $5,
	attendance_bonus = $6,
	transport_allowance = $7,
	meal_allowance = $8,
	deduction = $9,
	social_security = $10,
	personal_tax = $11,
	late_deduction = $12,
	absence_deduction = $13,
	net_salary = $14,
	updated_at = NOW()
WHERE id = $1 AND status = $15
`
	result, err := r.execer().ExecContext(
		ctx, query,
		record.ID,
		record.Base, record.Overtime, record.Bonus, record.PerformanceBonus, record.AttendanceBonus,
		record.TransportAllowance, record.MealAllowance, record.Deduction, record.SocialSecurity,
		record.PersonalTax, record.LateDeduction, record.AbsenceDeduction, record.NetSalary,
		StatusPending,
	)
	if err != nil {
		return err
	}

	// A zero-row update means the record flipped to paid between read
	// and write; the caller treats that as immutable.
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) ReplaceDetails(ctx context.Context, recordID uuid.UUID, details []Detail) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx, `DELETE FROM salary_details WHERE salary_id = $1`, recordID); err != nil {
		return err
	}

	insert := `
INSERT INTO salary_details (id, salary_id, item_id, amount)
VALUES ($1, $2, $3, $4)
`
	for _, d := range details {
		if _, err := exec.ExecContext(ctx, insert, d.ID, recordID, d.ItemID, d.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) MarkPaid(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error {
	query := `
UPDATE salary_records
SET status = $2, payment_date = $3, updated_at = NOW()
WHERE id = $1 AND status = $4
`
	result, err := r.execer().ExecContext(ctx, query, recordID, StatusPaid, paymentDate, StatusPending)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Record, int64, error) {
	query := r.db.WithContext(ctx).Model(&Record{})

	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	var records []Record
	err := query.
		Order("year DESC, month DESC, employee_id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	return records, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var record Record
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindDetails(ctx context.Context, recordID uuid.UUID) ([]Detail, error) {
	var details []Detail
	err := r.db.WithContext(ctx).
		Where("salary_id = ?", recordID).
		Find(&details).Error
	return details, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
