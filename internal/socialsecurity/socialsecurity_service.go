package socialsecurity

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"Social security config not found",
		http.StatusNotFound,
	)
	ErrEnrollmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee social security record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateConfigName = apperror.New(
		apperror.CodeConflict,
		"A social security config with this name already exists",
		http.StatusConflict,
	)
)

type Service interface {
	CreateConfig(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error)
	GetAllConfigs(ctx context.Context) ([]ConfigResponse, error)
	UpdateConfig(ctx context.Context, id string, req UpdateConfigRequest) (ConfigResponse, error)
	// SetDefaultConfig makes the given config the single default.
	SetDefaultConfig(ctx context.Context, id string) (SetDefaultResponse, error)

	GetEnrollments(ctx context.Context, departmentID, employeeID *uuid.UUID) ([]EnrollmentResponse, error)
	CreateEnrollment(ctx context.Context, req CreateEnrollmentRequest) (EnrollmentResponse, error)
	UpdateEnrollment(ctx context.Context, id string, req UpdateEnrollmentRequest) (EnrollmentResponse, error)
	// BatchCreateEnrollments assigns one config to many employees in a
	// single transaction; unknown employee ids are skipped.
	BatchCreateEnrollments(ctx context.Context, req BatchCreateEnrollmentRequest) ([]EnrollmentResponse, error)
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
		logger: zap.L().Named("socialsecurity.service"),
	}
}

func parseRate(field, raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, apperror.InvalidField(field)
	}
	return rate.Round(2), nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, apperror.InvalidField(field)
	}
	return amount.Round(2), nil
}

func configFromRates(name string, isDefault bool, rates map[string]string) (*Config, error) {
	config := &Config{
		ID:        uuid.New(),
		Name:      name,
		IsDefault: isDefault,
	}

	targets := map[string]*decimal.Decimal{
		"pension_rate":      &config.PensionRate,
		"medical_rate":      &config.MedicalRate,
		"unemployment_rate": &config.UnemploymentRate,
		"injury_rate":       &config.InjuryRate,
		"maternity_rate":    &config.MaternityRate,
		"housing_fund_rate": &config.HousingFundRate,
	}
	for field, target := range targets {
		rate, err := parseRate(field, rates[field])
		if err != nil {
			return nil, err
		}
		*target = rate
	}
	return config, nil
}

func ratesOf(req CreateConfigRequest) map[string]string {
	return map[string]string{
		"pension_rate":      req.PensionRate,
		"medical_rate":      req.MedicalRate,
		"unemployment_rate": req.UnemploymentRate,
		"injury_rate":       req.InjuryRate,
		"maternity_rate":    req.MaternityRate,
		"housing_fund_rate": req.HousingFundRate,
	}
}

func (s *service) CreateConfig(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error) {
	config, err := configFromRates(req.Name, req.IsDefault, ratesOf(req))
	if err != nil {
		return ConfigResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Only one config may be the default at a time.
	if config.IsDefault {
		if err := qtx.ClearDefaults(ctx, config.ID); err != nil {
			return ConfigResponse{}, err
		}
	}

	if err := qtx.CreateConfig(ctx, config); err != nil {
		return ConfigResponse{}, mapConfigError(err)
	}

	if err := tx.Commit(); err != nil {
		return ConfigResponse{}, err
	}

	s.logger.Info("social security config created",
		zap.String("config_id", config.ID.String()),
		zap.Bool("is_default", config.IsDefault),
	)

	return mapConfigToResponse(*config), nil
}

func (s *service) GetAllConfigs(ctx context.Context) ([]ConfigResponse, error) {
	configs, err := s.repo.FindAllConfigs(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ConfigResponse, len(configs))
	for i, c := range configs {
		res[i] = mapConfigToResponse(c)
	}
	return res, nil
}

func (s *service) UpdateConfig(ctx context.Context, id string, req UpdateConfigRequest) (ConfigResponse, error) {
	existing, err := s.repo.FindConfigByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConfigResponse{}, ErrConfigNotFound
		}
		return ConfigResponse{}, err
	}

	updated, err := configFromRates(req.Name, req.IsDefault, ratesOf(CreateConfigRequest(req)))
	if err != nil {
		return ConfigResponse{}, err
	}
	updated.ID = existing.ID

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if updated.IsDefault {
		if err := qtx.ClearDefaults(ctx, updated.ID); err != nil {
			return ConfigResponse{}, err
		}
	}

	if err := qtx.UpdateConfig(ctx, updated); err != nil {
		return ConfigResponse{}, mapConfigError(err)
	}

	if err := tx.Commit(); err != nil {
		return ConfigResponse{}, err
	}

	return mapConfigToResponse(*updated), nil
}

func (s *service) SetDefaultConfig(ctx context.Context, id string) (SetDefaultResponse, error) {
	config, err := s.repo.FindConfigByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SetDefaultResponse{}, ErrConfigNotFound
		}
		return SetDefaultResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SetDefaultResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.ClearDefaults(ctx, config.ID); err != nil {
		return SetDefaultResponse{}, err
	}

	config.IsDefault = true
	if err := qtx.UpdateConfig(ctx, config); err != nil {
		return SetDefaultResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SetDefaultResponse{}, err
	}

	s.logger.Info("default social security config changed",
		zap.String("config_id", config.ID.String()),
	)

	return SetDefaultResponse{Success: true, Message: "Default config updated"}, nil
}

func (s *service) GetEnrollments(ctx context.Context, departmentID, employeeID *uuid.UUID) ([]EnrollmentResponse, error) {
	enrollments, err := s.repo.FindEnrollments(ctx, departmentID, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		res[i] = mapEnrollmentToResponse(e)
	}
	return res, nil
}

func (s *service) CreateEnrollment(ctx context.Context, req CreateEnrollmentRequest) (EnrollmentResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EnrollmentResponse{}, apperror.InvalidField("employee_id")
	}

	enrollment, config, err := s.buildEnrollment(ctx, req.ConfigID, req.BaseNumber, req.HousingFundBase, req.EffectiveDate)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	enrollment.EmployeeID = employeeID

	existing, err := s.repo.FilterExistingEmployees(ctx, []uuid.UUID{employeeID})
	if err != nil {
		return EnrollmentResponse{}, err
	}
	if len(existing) == 0 {
		return EnrollmentResponse{}, ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.InsertEnrollments(ctx, []Enrollment{*enrollment}); err != nil {
		return EnrollmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EnrollmentResponse{}, err
	}

	enrollment.Config = config
	return mapEnrollmentToResponse(*enrollment), nil
}

func (s *service) UpdateEnrollment(ctx context.Context, id string, req UpdateEnrollmentRequest) (EnrollmentResponse, error) {
	existing, err := s.repo.FindEnrollmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollmentResponse{}, ErrEnrollmentNotFound
		}
		return EnrollmentResponse{}, err
	}

	updated, config, err := s.buildEnrollment(ctx, req.ConfigID, req.BaseNumber, req.HousingFundBase, req.EffectiveDate)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	updated.ID = existing.ID
	updated.EmployeeID = existing.EmployeeID

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateEnrollment(ctx, updated); err != nil {
		return EnrollmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EnrollmentResponse{}, err
	}

	updated.Config = config
	updated.Employee = existing.Employee
	return mapEnrollmentToResponse(*updated), nil
}

func (s *service) BatchCreateEnrollments(ctx context.Context, req BatchCreateEnrollmentRequest) ([]EnrollmentResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperror.InvalidField("employee_ids")
		}
		ids = append(ids, id)
	}

	template, config, err := s.buildEnrollment(ctx, req.ConfigID, req.BaseNumber, req.HousingFundBase, req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	// Unknown employees are skipped, not fatal: a batch assignment is
	// best-effort over the roster it was given.
	existing, err := s.repo.FilterExistingEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}

	enrollments := make([]Enrollment, len(existing))
	for i, employeeID := range existing {
		enrollments[i] = Enrollment{
			ID:              uuid.New(),
			EmployeeID:      employeeID,
			ConfigID:        template.ConfigID,
			BaseNumber:      template.BaseNumber,
			HousingFundBase: template.HousingFundBase,
			EffectiveDate:   template.EffectiveDate,
		}
	}

	if len(enrollments) > 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)
		if err := qtx.InsertEnrollments(ctx, enrollments); err != nil {
			return nil, err
		}

		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}

	s.logger.Info("batch social security assignment",
		zap.String("config_id", template.ConfigID.String()),
		zap.Int("requested", len(ids)),
		zap.Int("assigned", len(enrollments)),
	)

	res := make([]EnrollmentResponse, len(enrollments))
	for i := range enrollments {
		enrollments[i].Config = config
		res[i] = mapEnrollmentToResponse(enrollments[i])
	}
	return res, nil
}

// buildEnrollment parses the shared enrollment fields and verifies the
// config exists.
func (s *service) buildEnrollment(
	ctx context.Context,
	rawConfigID, rawBase, rawHousingBase, rawEffectiveDate string,
) (*Enrollment, *Config, error) {
	configID, err := uuid.Parse(rawConfigID)
	if err != nil {
		return nil, nil, apperror.InvalidField("config_id")
	}

	baseNumber, err := parseAmount("base_number", rawBase)
	if err != nil {
		return nil, nil, err
	}
	housingBase, err := parseAmount("housing_fund_base", rawHousingBase)
	if err != nil {
		return nil, nil, err
	}

	effectiveDate, err := time.Parse("2006-01-02", rawEffectiveDate)
	if err != nil {
		return nil, nil, apperror.InvalidField("effective_date")
	}

	config, err := s.repo.FindConfigByID(ctx, configID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrConfigNotFound
		}
		return nil, nil, err
	}

	return &Enrollment{
		ID:              uuid.New(),
		ConfigID:        configID,
		BaseNumber:      baseNumber,
		HousingFundBase: housingBase,
		EffectiveDate:   effectiveDate,
	}, config, nil
}

func mapConfigError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateConfigName
	}
	return err
}

func mapConfigToResponse(c Config) ConfigResponse {
	return ConfigResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		PensionRate:      c.PensionRate.StringFixed(2),
		MedicalRate:      c.MedicalRate.StringFixed(2),
		UnemploymentRate: c.UnemploymentRate.StringFixed(2),
		InjuryRate:       c.InjuryRate.StringFixed(2),
		MaternityRate:    c.MaternityRate.StringFixed(2),
		HousingFundRate:  c.HousingFundRate.StringFixed(2),
		IsDefault:        c.IsDefault,
	}
}

func mapEnrollmentToResponse(e Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:              e.ID.String(),
		EmployeeID:      e.EmployeeID.String(),
		ConfigID:        e.ConfigID.String(),
		BaseNumber:      e.BaseNumber.StringFixed(2),
		HousingFundBase: e.HousingFundBase.StringFixed(2),
		EffectiveDate:   e.EffectiveDate.Format("2006-01-02"),
	}
	if e.Config != nil {
		config := mapConfigToResponse(*e.Config)
		resp.Config = &config
	}
	if e.Employee != nil {
		resp.Employee = &EnrollmentEmployee{
			ID:             e.Employee.ID.String(),
			FullName:       e.Employee.FullName,
			EmployeeNumber: e.Employee.EmployeeNumber,
		}
	}
	return resp
}
