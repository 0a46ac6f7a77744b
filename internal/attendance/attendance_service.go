package attendance

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrStatusNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance status not found",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrStatusInUse = apperror.New(
		apperror.CodeConflict,
		"Attendance status is referenced by existing records",
		http.StatusConflict,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"Employee already has an attendance record for this date",
		http.StatusConflict,
	)
)

type Service interface {
	CreateStatus(ctx context.Context, req CreateStatusRequest) (StatusResponse, error)
	GetAllStatuses(ctx context.Context) ([]StatusResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (StatusResponse, error)
	DeleteStatus(ctx context.Context, id string) error

	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	GetRecords(ctx context.Context, employeeID uuid.UUID, year, month int) ([]RecordResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{
		db:     db,
		repo:   repo,
		logger: zap.L().Named("attendance.service"),
	}
}

func parseStatusFields(category, rawValue, rawUnit string, isDeduction bool) (StatusCategory, decimal.Decimal, DeductionUnit, error) {
	cat := StatusCategory(category)
	if !cat.Valid() {
		return "", decimal.Zero, "", apperror.InvalidField("category")
	}

	value := decimal.Zero
	if rawValue != "" {
		parsed, err := decimal.NewFromString(rawValue)
		if err != nil || parsed.IsNegative() {
			return "", decimal.Zero, "", apperror.InvalidField("deduction_value")
		}
		value = parsed.Round(2)
	}

	unit := UnitFixed
	switch {
	case rawUnit != "":
		unit = DeductionUnit(rawUnit)
		if !unit.Valid() {
			return "", decimal.Zero, "", apperror.InvalidField("deduction_unit")
		}
	case isDeduction:
		// Statuses imported without an explicit unit follow the
		// historical value convention.
		unit = LegacyUnitFor(value)
	}

	if isDeduction && value.IsZero() {
		return "", decimal.Zero, "", apperror.InvalidField("deduction_value")
	}

	return cat, value, unit, nil
}

func (s *service) CreateStatus(ctx context.Context, req CreateStatusRequest) (StatusResponse, error) {
	category, value, unit, err := parseStatusFields(req.Category, req.DeductionValue, req.DeductionUnit, req.IsDeduction)
	if err != nil {
		return StatusResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StatusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := &Status{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Category:       category,
		IsDeduction:    req.IsDeduction,
		DeductionValue: value,
		DeductionUnit:  unit,
	}

	if err := qtx.CreateStatus(ctx, status); err != nil {
		return StatusResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StatusResponse{}, err
	}

	return mapStatusToResponse(*status), nil
}

func (s *service) GetAllStatuses(ctx context.Context) ([]StatusResponse, error) {
	statuses, err := s.repo.FindAllStatuses(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]StatusResponse, len(statuses))
	for i, st := range statuses {
		res[i] = mapStatusToResponse(st)
	}
	return res, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (StatusResponse, error) {
	category, value, unit, err := parseStatusFields(req.Category, req.DeductionValue, req.DeductionUnit, req.IsDeduction)
	if err != nil {
		return StatusResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StatusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status, err := qtx.FindStatusByID(ctx, id)
	if err != nil {
		return StatusResponse{}, mapRepositoryError(err)
	}

	status.Name = req.Name
	status.Description = req.Description
	status.Category = category
	status.IsDeduction = req.IsDeduction
	status.DeductionValue = value
	status.DeductionUnit = unit

	if err := qtx.UpdateStatus(ctx, status); err != nil {
		return StatusResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StatusResponse{}, err
	}

	return mapStatusToResponse(*status), nil
}

func (s *service) DeleteStatus(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	count, err := qtx.CountRecordsByStatus(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}

	if err := qtx.DeleteStatus(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("employee_id")
	}
	statusID, err := uuid.Parse(req.StatusID)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("status_id")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("date")
	}

	overtime := decimal.Zero
	if req.OvertimeHours != "" {
		overtime, err = decimal.NewFromString(req.OvertimeHours)
		if err != nil || overtime.IsNegative() {
			return RecordResponse{}, apperror.InvalidField("overtime_hours")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record := &Record{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		Date:          date,
		StatusID:      statusID,
		OvertimeHours: overtime,
		Remarks:       req.Remarks,
	}

	if err := qtx.CreateRecord(ctx, record); err != nil {
		s.logger.Error("create attendance record failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	return mapRecordToResponse(*record), nil
}

func (s *service) GetRecords(ctx context.Context, employeeID uuid.UUID, year, month int) ([]RecordResponse, error) {
	from, to := monthRange(year, month)
	records, err := s.repo.FindRecordsByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]RecordResponse, len(records))
	for i, rec := range records {
		res[i] = mapRecordToResponse(rec)
	}
	return res, nil
}

func (s *service) UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error) {
	statusID, err := uuid.Parse(req.StatusID)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("status_id")
	}

	overtime := decimal.Zero
	if req.OvertimeHours != "" {
		overtime, err = decimal.NewFromString(req.OvertimeHours)
		if err != nil || overtime.IsNegative() {
			return RecordResponse{}, apperror.InvalidField("overtime_hours")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindRecordByID(ctx, id)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	record.StatusID = statusID
	record.OvertimeHours = overtime
	record.Remarks = req.Remarks
	record.Status = nil

	if err := qtx.UpdateRecord(ctx, record); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	return mapRecordToResponse(*record), nil
}

func (s *service) DeleteRecord(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteRecord(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return ErrDuplicateRecord
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return ErrDuplicateRecord
	}

	return err
}

func mapStatusToResponse(status Status) StatusResponse {
	return StatusResponse{
		ID:             status.ID.String(),
		Name:           status.Name,
		Description:    status.Description,
		Category:       string(status.Category),
		IsDeduction:    status.IsDeduction,
		DeductionValue: status.DeductionValue.StringFixed(2),
		DeductionUnit:  string(status.DeductionUnit),
	}
}

func mapRecordToResponse(record Record) RecordResponse {
	resp := RecordResponse{
		ID:            record.ID.String(),
		EmployeeID:    record.EmployeeID.String(),
		Date:          record.Date.Format("2006-01-02"),
		StatusID:      record.StatusID.String(),
		OvertimeHours: record.OvertimeHours.StringFixed(2),
		Remarks:       record.Remarks,
	}
	if record.Status != nil {
		status := mapStatusToResponse(*record.Status)
		resp.Status = &status
	}
	return resp
}
