package salaryitem

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	salaryitemerrors "go-payroll/internal/salaryitem/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateSalaryItemRequest) (SalaryItemResponse, error)
	GetAll(ctx context.Context) ([]SalaryItemResponse, error)
	GetByID(ctx context.Context, id string) (SalaryItemResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryItemRequest) (SalaryItemResponse, error)
	Delete(ctx context.Context, id string) error
	// LoadCatalog snapshots the full item set for a computation run.
	LoadCatalog(ctx context.Context) (Catalog, error)
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
		logger: zap.L().Named("salaryitem.service"),
	}
}

func validateBucket(rawBucket, rawKind string) (Bucket, Kind, error) {
	bucket := Bucket(rawBucket)
	if !bucket.Valid() {
		return "", "", salaryitemerrors.ErrInvalidBucket
	}
	kind := Kind(rawKind)
	if bucket.KindFor() != kind {
		return "", "", salaryitemerrors.ErrBucketKindMismatch
	}
	return bucket, kind, nil
}

func (s *service) Create(ctx context.Context, req CreateSalaryItemRequest) (SalaryItemResponse, error) {
	bucket, kind, err := validateBucket(req.Bucket, req.Kind)
	if err != nil {
		return SalaryItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item := &SalaryItem{
		ID:           uuid.New(),
		Name:         req.Name,
		Kind:         kind,
		Bucket:       bucket,
		IsPercentage: req.IsPercentage,
	}

	if err := qtx.Create(ctx, item); err != nil {
		s.logger.Error("create salary item persist failed", zap.Error(err))
		return SalaryItemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryItemResponse{}, err
	}

	s.logger.Info("create salary item success",
		zap.String("item_id", item.ID.String()),
		zap.String("bucket", string(item.Bucket)),
	)

	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryItemResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSalaryItemRequest) (SalaryItemResponse, error) {
	bucket, kind, err := validateBucket(req.Bucket, req.Kind)
	if err != nil {
		return SalaryItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SalaryItemResponse{}, mapRepositoryError(err)
	}

	// System items keep their kind and bucket forever; historical
	// records depend on the classification staying put.
	if item.IsSystem && (item.Kind != kind || item.Bucket != bucket) {
		return SalaryItemResponse{}, salaryitemerrors.ErrSystemItemProtected
	}

	item.Name = req.Name
	item.Kind = kind
	item.Bucket = bucket
	item.IsPercentage = req.IsPercentage

	if err := qtx.Update(ctx, item); err != nil {
		s.logger.Error("update salary item persist failed", zap.Error(err))
		return SalaryItemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryItemResponse{}, err
	}

	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if item.IsSystem {
		return salaryitemerrors.ErrSystemItemProtected
	}

	count, err := qtx.CountDetails(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return salaryitemerrors.ErrItemReferenced
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete salary item success", zap.String("item_id", id))
	return nil
}

func (s *service) LoadCatalog(ctx context.Context) (Catalog, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return NewCatalog(items), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryitemerrors.ErrItemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_item_name" {
			return salaryitemerrors.ErrItemAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_item_name") {
		return salaryitemerrors.ErrItemAlreadyExists
	}

	return err
}

func mapToResponse(item SalaryItem) SalaryItemResponse {
	return SalaryItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Kind:         string(item.Kind),
		Bucket:       string(item.Bucket),
		IsPercentage: item.IsPercentage,
		IsSystem:     item.IsSystem,
	}
}

func mapToListResponse(items []SalaryItem) []SalaryItemResponse {
	res := make([]SalaryItemResponse, len(items))
	for i, item := range items {
		res[i] = mapToResponse(item)
	}
	return res
}
