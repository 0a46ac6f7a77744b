package salaryconfig

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrDuplicateEffectiveDate = apperror.New(
	apperror.CodeConflict,
	"A configuration entry for this item and effective date already exists",
	http.StatusConflict,
)

type Service interface {
	// Get returns the full configuration history, newest first.
	Get(ctx context.Context, employeeID uuid.UUID) ([]ConfigEntryResponse, error)
	// GetResolved returns the entries effective as of a date, tagged
	// with how they were resolved.
	GetResolved(ctx context.Context, employeeID uuid.UUID, asOf time.Time) (ResolvedConfigResponse, error)
	// Put appends new dated entries. History is never rewritten.
	Put(ctx context.Context, employeeID uuid.UUID, req PutConfigRequest) ([]ConfigEntryResponse, error)
	DeleteItem(ctx context.Context, employeeID, itemID uuid.UUID) error
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
		logger: zap.L().Named("salaryconfig.service"),
	}
}

func (s *service) Get(ctx context.Context, employeeID uuid.UUID) ([]ConfigEntryResponse, error) {
	entries, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

func (s *service) GetResolved(ctx context.Context, employeeID uuid.UUID, asOf time.Time) (ResolvedConfigResponse, error) {
	entries, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return ResolvedConfigResponse{}, err
	}

	resolution := Resolve(entries, asOf)
	if resolution.Source == SourceFallback {
		s.logger.Warn("salary configuration resolved via fallback",
			zap.String("employee_id", employeeID.String()),
			zap.Time("as_of", asOf),
		)
	}

	resolved := make([]Entry, 0, len(resolution.Entries))
	for _, e := range resolution.Entries {
		resolved = append(resolved, e)
	}
	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].ItemID.String() < resolved[j].ItemID.String()
	})

	return ResolvedConfigResponse{
		Source:  string(resolution.Source),
		Entries: mapToListResponse(resolved),
	}, nil
}

func (s *service) Put(ctx context.Context, employeeID uuid.UUID, req PutConfigRequest) ([]ConfigEntryResponse, error) {
	entries := make([]Entry, 0, len(req.Entries))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, item := range req.Entries {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			return nil, apperror.InvalidField("item_id")
		}

		value, err := decimal.NewFromString(item.Value)
		if err != nil {
			return nil, apperror.InvalidField("value")
		}

		effectiveDate := today
		if item.EffectiveDate != "" {
			effectiveDate, err = time.Parse("2006-01-02", item.EffectiveDate)
			if err != nil {
				return nil, apperror.InvalidField("effective_date")
			}
		}

		var expiryDate *time.Time
		if item.ExpiryDate != nil && *item.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", *item.ExpiryDate)
			if err != nil {
				return nil, apperror.InvalidField("expiry_date")
			}
			if parsed.Before(effectiveDate) {
				return nil, apperror.InvalidField("expiry_date")
			}
			expiryDate = &parsed
		}

		entries = append(entries, Entry{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			ItemID:        itemID,
			Value:         value.Round(2),
			BaseItem:      item.BaseItem,
			IsActive:      true,
			EffectiveDate: effectiveDate,
			ExpiryDate:    expiryDate,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.InsertEntries(ctx, entries); err != nil {
		s.logger.Error("put salary config persist failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("salary config updated",
		zap.String("employee_id", employeeID.String()),
		zap.Int("entries", len(entries)),
	)

	return mapToListResponse(entries), nil
}

func (s *service) DeleteItem(ctx context.Context, employeeID, itemID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteByEmployeeAndItem(ctx, employeeID, itemID); err != nil {
		return err
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_config_employee_item_date" {
			return ErrDuplicateEffectiveDate
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_config_employee_item_date") {
		return ErrDuplicateEffectiveDate
	}

	return err
}

func mapToResponse(e Entry) ConfigEntryResponse {
	resp := ConfigEntryResponse{
		ID:            e.ID.String(),
		ItemID:        e.ItemID.String(),
		Value:         e.Value.StringFixed(2),
		BaseItem:      e.BaseItem,
		IsActive:      e.IsActive,
		EffectiveDate: e.EffectiveDate.Format("2006-01-02"),
	}
	if e.ExpiryDate != nil {
		formatted := e.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &formatted
	}
	if e.Item != nil {
		resp.ItemName = e.Item.Name
		resp.Bucket = string(e.Item.Bucket)
		resp.IsPercentage = e.Item.IsPercentage
	}
	return resp
}

func mapToListResponse(entries []Entry) []ConfigEntryResponse {
	res := make([]ConfigEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
