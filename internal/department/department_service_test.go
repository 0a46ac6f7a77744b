package department

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, dept *Department) error
	findAllFn        func(ctx context.Context) ([]Department, error)
	findByIDFn       func(ctx context.Context, id string) (*Department, error)
	updateFn         func(ctx context.Context, dept *Department) error
	deleteFn         func(ctx context.Context, id string) error
	countEmployeesFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, dept *Department) error {
	return f.createFn(ctx, dept)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Department, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Department, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) Update(ctx context.Context, dept *Department) error {
	return f.updateFn(ctx, dept)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeRepo) CountEmployees(ctx context.Context, id string) (int64, error) {
	return f.countEmployeesFn(ctx, id)
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectTxCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectTxRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

func TestDepartmentService_Create(t *testing.T) {
	t.Run("creates department and returns response", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectTxCommit(mock)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, dept *Department) error {
				assert.Equal(t, "Engineering", dept.Name)
				assert.NotEqual(t, uuid.Nil, dept.ID)
				return nil
			},
		}

		svc := NewService(db, repo, nil)
		resp, err := svc.Create(context.Background(), CreateDepartmentRequest{Name: "Engineering"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when repository fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectTxRollback(mock)

		repoErr := errors.New("insert failed")
		repo := &fakeRepo{
			createFn: func(ctx context.Context, dept *Department) error {
				return repoErr
			},
		}

		svc := NewService(db, repo, nil)
		_, err := svc.Create(context.Background(), CreateDepartmentRequest{Name: "Engineering"})

		assert.ErrorIs(t, err, repoErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	db, _ := newMockDB(t)

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Department, error) {
			return []Department{
				{ID: uuid.New(), Name: "Engineering"},
				{ID: uuid.New(), Name: "Finance"},
			}, nil
		},
	}

	svc := NewService(db, repo, nil)
	resp, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Engineering", resp[0].Name)
}

func TestDepartmentService_GetByID(t *testing.T) {
	t.Run("maps gorm not found to app error", func(t *testing.T) {
		db, _ := newMockDB(t)

		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(db, repo, nil)
		_, err := svc.GetByID(context.Background(), uuid.NewString())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	db, mock := newMockDB(t)
	expectTxCommit(mock)

	existing := &Department{ID: uuid.New(), Name: "Old Name"}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, dept *Department) error {
			assert.Equal(t, "New Name", dept.Name)
			return nil
		},
	}

	svc := NewService(db, repo, nil)
	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdateDepartmentRequest{Name: "New Name"})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_Delete(t *testing.T) {
	t.Run("refuses delete when employees are assigned", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectTxRollback(mock)

		repo := &fakeRepo{
			countEmployeesFn: func(ctx context.Context, id string) (int64, error) {
				return 3, nil
			},
		}

		svc := NewService(db, repo, nil)
		err := svc.Delete(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, ErrDepartmentInUse)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes when no employees are assigned", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectTxCommit(mock)

		deleted := false
		repo := &fakeRepo{
			countEmployeesFn: func(ctx context.Context, id string) (int64, error) {
				return 0, nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		svc := NewService(db, repo, nil)
		err := svc.Delete(context.Background(), uuid.NewString())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
