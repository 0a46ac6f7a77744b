package employee

import (
	"context"
	"database/sql"
	"testing"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, empl *Employee) error
	findAllFn     func(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error)
	findOptionsFn func(ctx context.Context) ([]Employee, error)
	findByIDFn    func(ctx context.Context, id string) (*Employee, error)
	findActiveFn  func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]Employee, error)
	deptByPosFn   func(ctx context.Context, positionID string) (string, error)
	updateFn      func(ctx context.Context, empl *Employee) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	return f.createFn(ctx, empl)
}

func (f *fakeRepo) FindAll(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error) {
	return f.findAllFn(ctx, departmentID)
}

func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) {
	return f.findOptionsFn(ctx)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) FindActive(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]Employee, error) {
	return f.findActiveFn(ctx, departmentID, ids)
}

func (f *fakeRepo) GetDepartmentIDByPosition(ctx context.Context, positionID string) (string, error) {
	return f.deptByPosFn(ctx, positionID)
}

func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error {
	return f.updateFn(ctx, empl)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestEmployeeService_Create(t *testing.T) {
	departmentID := uuid.NewString()
	positionID := uuid.NewString()

	t.Run("generates employee number and queues outbox event", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *Employee
		repo := &fakeRepo{
			deptByPosFn: func(ctx context.Context, pid string) (string, error) {
				assert.Equal(t, positionID, pid)
				return departmentID, nil
			},
			createFn: func(ctx context.Context, empl *Employee) error {
				created = empl
				return nil
			},
		}
		outbox := &fakeOutbox{}

		svc := NewServiceWithOutbox(db, repo, &fakeCounter{}, outbox, nil)
		resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			HireDate:   "2024-01-15",
			PositionID: positionID,
			BaseSalary: "8000.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000001", resp.EmployeeNumber)
		assert.Equal(t, "8000.00", resp.BaseSalary)
		assert.True(t, created.IsActive)
		assert.True(t, created.BaseSalary.Equal(decimal.RequireFromString("8000.00")))
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, "employee_created", outbox.created[0].EventType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown position", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeRepo{
			deptByPosFn: func(ctx context.Context, pid string) (string, error) {
				return "", nil
			},
		}

		svc := NewService(db, repo, &fakeCounter{}, nil)
		_, err := svc.Create(context.Background(), CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			HireDate:   "2024-01-15",
			PositionID: positionID,
			BaseSalary: "8000.00",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrPositionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects negative base salary", func(t *testing.T) {
		db, _ := newMockDB(t)

		svc := NewService(db, &fakeRepo{}, &fakeCounter{}, nil)
		_, err := svc.Create(context.Background(), CreateEmployeeRequest{
			FullName:   "Jane Smith",
			Email:      "jane@example.com",
			HireDate:   "2024-01-15",
			PositionID: positionID,
			BaseSalary: "-100",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidBaseSalary)
	})
}

func TestEmployeeService_Update_TogglesActive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	departmentID := uuid.NewString()
	positionID := uuid.NewString()
	existing := &Employee{
		ID:             uuid.New(),
		FullName:       "Jane Smith",
		Email:          "jane@example.com",
		EmployeeNumber: "EMP-000001",
		BaseSalary:     decimal.RequireFromString("8000.00"),
		IsActive:       true,
	}

	repo := &fakeRepo{
		deptByPosFn: func(ctx context.Context, pid string) (string, error) {
			return departmentID, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, empl *Employee) error {
			assert.False(t, empl.IsActive)
			return nil
		},
	}

	inactive := false
	svc := NewService(db, repo, &fakeCounter{}, nil)
	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdateEmployeeRequest{
		FullName:       "Jane Smith",
		Email:          "jane@example.com",
		EmployeeNumber: "EMP-000001",
		HireDate:       "2024-01-15",
		PositionID:     positionID,
		BaseSalary:     "8500.00",
		IsActive:       &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "8500.00", resp.BaseSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}
