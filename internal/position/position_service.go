package position

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPositionInUse = apperror.New(
	apperror.CodeConflict,
	"Position still has employees assigned",
	http.StatusConflict,
)

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, departmentID *uuid.UUID) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, apperror.InvalidField("department_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos := &Position{
		ID:           uuid.New(),
		Name:         req.Name,
		DepartmentID: departmentID,
	}

	if err := qtx.Create(ctx, pos); err != nil {
		return PositionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context, departmentID *uuid.UUID) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}
	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, apperror.InvalidField("department_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}

	pos.Name = req.Name
	pos.DepartmentID = departmentID

	if err := qtx.Update(ctx, pos); err != nil {
		return PositionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	count, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPositionInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(pos Position) PositionResponse {
	return PositionResponse{
		ID:           pos.ID.String(),
		Name:         pos.Name,
		DepartmentID: pos.DepartmentID.String(),
	}
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
