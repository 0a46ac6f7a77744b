package salary

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/salaryconfig"
	"go-payroll/internal/salaryitem"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const generateLockTTL = 10 * time.Minute

func generateLockKey(year, month int) string {
	return fmt.Sprintf("salary:generate:%d-%02d", year, month)
}

// DeductionSource computes one employee-month of attendance deductions.
// Satisfied by attendance.DeductionCalculator.
type DeductionSource interface {
	MonthlyDeduction(ctx context.Context, employeeID uuid.UUID, baseSalary decimal.Decimal, year, month int) (attendance.DeductionBreakdown, error)
}

// CatalogSource snapshots the salary item catalog for a run.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (salaryitem.Catalog, error)
}

type Service interface {
	// Generate runs the batch for one period. Per-employee failures are
	// collected in the result; only connectivity-level errors abort.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
	GetAll(ctx context.Context, filter ListFilter) ([]RecordResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (RecordDetailResponse, error)
	MarkAsPaid(ctx context.Context, id string, req MarkPaidRequest) (RecordResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	configs    salaryconfig.Repository
	catalog    CatalogSource
	deductions DeductionSource
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	route      AttendanceRoute
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	configs salaryconfig.Repository,
	catalog CatalogSource,
	deductions DeductionSource,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		configs:    configs,
		catalog:    catalog,
		deductions: deductions,
		outbox:     outbox,
		rdb:        rdb,
		route:      RouteAbsence,
		logger:     zap.L().Named("salary.service"),
	}
}

// lastDayOfMonth anchors configuration resolution so a mid-month change
// is captured by that month's run.
func lastDayOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	if s.rdb != nil {
		lockKey := generateLockKey(req.Year, req.Month)
		acquired, err := s.rdb.SetNX(ctx, lockKey, rid, generateLockTTL).Result()
		if err != nil {
			log.Error("acquire generation lock failed", zap.Error(err))
			return GenerateResult{}, err
		}
		if !acquired {
			return GenerateResult{}, salaryerrors.ErrGenerationInProgress
		}
		defer s.rdb.Del(context.WithoutCancel(ctx), lockKey)
	}

	catalog, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return GenerateResult{}, err
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != nil {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return GenerateResult{}, apperror.InvalidField("department_id")
		}
		departmentID = &id
	}

	employeeIDs := make([]uuid.UUID, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return GenerateResult{}, apperror.InvalidField("employee_ids")
		}
		employeeIDs = append(employeeIDs, id)
	}

	empls, err := s.employees.FindActive(ctx, departmentID, employeeIDs)
	if err != nil {
		return GenerateResult{}, err
	}

	log.Info("salary generation started", zap.Int("employees", len(empls)))

	asOf := lastDayOfMonth(req.Year, req.Month)
	result := GenerateResult{Errors: []string{}}

	for _, empl := range empls {
		// Cancellation between employees is safe: completed employees
		// are committed and a retry resumes idempotently.
		if err := ctx.Err(); err != nil {
			log.Warn("salary generation cancelled",
				zap.Int("generated", result.GeneratedCount),
				zap.Error(err),
			)
			return result, err
		}

		if err := s.generateOne(ctx, empl, req.Year, req.Month, asOf, catalog); err != nil {
			if isFatal(err) {
				log.Error("salary generation aborted",
					zap.String("employee_id", empl.ID.String()),
					zap.Error(err),
				)
				return result, err
			}

			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", empl.FullName, errorMessage(err)))
			continue
		}

		result.GeneratedCount++
	}

	if err := s.queueBatchCompletedEvent(ctx, rid, req.Year, req.Month, result); err != nil {
		// The batch itself succeeded; a missing event is log-worthy but
		// not worth failing the caller.
		log.Error("queue batch completed event failed", zap.Error(err))
	}

	log.Info("salary generation finished",
		zap.Int("generated", result.GeneratedCount),
		zap.Int("failed", result.FailedCount),
	)

	return result, nil
}

func (s *service) generateOne(
	ctx context.Context,
	empl employee.Employee,
	year, month int,
	asOf time.Time,
	catalog salaryitem.Catalog,
) error {
	entries, err := s.configs.FindByEmployee(ctx, empl.ID)
	if err != nil {
		return err
	}

	resolution := salaryconfig.Resolve(entries, asOf)
	if resolution.Source == salaryconfig.SourceFallback {
		s.logger.Warn("configuration resolved via fallback",
			zap.String("employee_id", empl.ID.String()),
			zap.Int("year", year),
			zap.Int("month", month),
		)
	}

	breakdown, err := s.deductions.MonthlyDeduction(ctx, empl.ID, empl.BaseSalary, year, month)
	if err != nil {
		return err
	}

	computed, err := Compute(EngineInput{
		BaseSalary: empl.BaseSalary,
		Resolution: resolution,
		Catalog:    catalog,
		Attendance: breakdown,
		Route:      s.route,
	})
	if err != nil {
		return err
	}

	// One transaction per employee: the record and its detail rows
	// commit together or not at all.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndPeriod(ctx, empl.ID, year, month)
	if err != nil {
		return err
	}

	var recordID uuid.UUID
	if existing != nil {
		if existing.Status == StatusPaid {
			return salaryerrors.ErrRecordAlreadyPaid
		}

		existing.SetComponents(computed.Components)
		if err := qtx.UpdateComponents(ctx, existing); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return salaryerrors.ErrRecordAlreadyPaid
			}
			return err
		}
		recordID = existing.ID
	} else {
		record := &Record{
			ID:         uuid.New(),
			EmployeeID: empl.ID,
			Year:       year,
			Month:      month,
			Status:     StatusPending,
		}
		record.SetComponents(computed.Components)
		if err := qtx.Insert(ctx, record); err != nil {
			return err
		}
		recordID = record.ID
	}

	details := make([]Detail, len(computed.Details))
	for i, d := range computed.Details {
		details[i] = Detail{
			ID:       uuid.New(),
			RecordID: recordID,
			ItemID:   d.ItemID,
			Amount:   d.Amount,
		}
	}
	if err := qtx.ReplaceDetails(ctx, recordID, details); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) queueBatchCompletedEvent(ctx context.Context, rid string, year, month int, result GenerateResult) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SalaryBatchCompletedEvent{
		EventType:      "salary_batch_completed",
		Year:           year,
		Month:          month,
		GeneratedCount: result.GeneratedCount,
		SkippedCount:   result.FailedCount,
		Errors:         result.Errors,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary_batch",
		AggregateID:   fmt.Sprintf("%d-%02d", year, month),
		EventType:     event.EventType,
		Topic:         events.SalaryBatchCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

// isFatal separates connectivity-level failures, which abort the run,
// from per-employee business errors, which are collected and skipped.
func isFatal(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exceptions. Class 57: operator
		// intervention (shutdown etc).
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57") {
			return true
		}
	}

	return false
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]RecordResponse, *response.PaginationMeta, error) {
	records, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	meta := response.NewPaginationMeta(total, page, pageSize)

	res := make([]RecordResponse, len(records))
	for i, rec := range records {
		res[i] = mapRecordToResponse(rec)
	}
	return res, &meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RecordDetailResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordDetailResponse{}, salaryerrors.ErrRecordNotFound
		}
		return RecordDetailResponse{}, err
	}

	details, err := s.repo.FindDetails(ctx, record.ID)
	if err != nil {
		return RecordDetailResponse{}, err
	}

	catalog, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return RecordDetailResponse{}, err
	}

	resp := RecordDetailResponse{
		RecordResponse: mapRecordToResponse(*record),
		IncomeItems:    []DetailResponse{},
		DeductionItems: []DetailResponse{},
	}

	for _, d := range details {
		dr := DetailResponse{
			ItemID: d.ItemID.String(),
			Amount: d.Amount.StringFixed(2),
		}
		item, ok := catalog[d.ItemID]
		if ok {
			dr.ItemName = item.Name
			dr.Kind = string(item.Kind)
		}
		if ok && item.Kind == salaryitem.KindDeduction {
			resp.DeductionItems = append(resp.DeductionItems, dr)
		} else {
			resp.IncomeItems = append(resp.IncomeItems, dr)
		}
	}

	return resp, nil
}

func (s *service) MarkAsPaid(ctx context.Context, id string, req MarkPaidRequest) (RecordResponse, error) {
	paymentDate := time.Now().UTC()
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return RecordResponse{}, apperror.InvalidField("payment_date")
		}
		paymentDate = parsed
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, salaryerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}
	if record.Status == StatusPaid {
		return RecordResponse{}, salaryerrors.ErrRecordAlreadyPaid
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.MarkPaid(ctx, record.ID, paymentDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RecordResponse{}, salaryerrors.ErrRecordAlreadyPaid
		}
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	record.Status = StatusPaid
	record.PaymentDate = &paymentDate

	s.logger.Info("salary record marked paid", zap.String("record_id", id))

	return mapRecordToResponse(*record), nil
}

func mapRecordToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:                 rec.ID.String(),
		EmployeeID:         rec.EmployeeID.String(),
		Year:               rec.Year,
		Month:              rec.Month,
		BaseSalary:         rec.Base.StringFixed(2),
		OvertimePay:        rec.Overtime.StringFixed(2),
		Bonus:              rec.Bonus.StringFixed(2),
		PerformanceBonus:   rec.PerformanceBonus.StringFixed(2),
		AttendanceBonus:    rec.AttendanceBonus.StringFixed(2),
		TransportAllowance: rec.TransportAllowance.StringFixed(2),
		MealAllowance:      rec.MealAllowance.StringFixed(2),
		Deduction:          rec.Deduction.StringFixed(2),
		SocialSecurity:     rec.SocialSecurity.StringFixed(2),
		PersonalTax:        rec.PersonalTax.StringFixed(2),
		LateDeduction:      rec.LateDeduction.StringFixed(2),
		AbsenceDeduction:   rec.AbsenceDeduction.StringFixed(2),
		NetSalary:          rec.NetSalary.StringFixed(2),
		Status:             string(rec.Status),
	}
	if rec.PaymentDate != nil {
		formatted := rec.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &formatted
	}
	return resp
}
