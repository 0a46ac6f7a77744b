package attendance

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeStatusRepo struct {
	Repository
	createStatusFn func(ctx context.Context, status *Status) error
}

func (f *fakeStatusRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeStatusRepo) CreateStatus(ctx context.Context, status *Status) error {
	return f.createStatusFn(ctx, status)
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

func TestCreateStatus_UnitDefaults(t *testing.T) {
	createCapturing := func(captured **Status) *fakeStatusRepo {
		return &fakeStatusRepo{
			createStatusFn: func(ctx context.Context, status *Status) error {
				*captured = status
				return nil
			},
		}
	}

	t.Run("omitted unit follows the legacy value convention", func(t *testing.T) {
		cases := []struct {
			value string
			want  DeductionUnit
		}{
			{"0.5", UnitRatio},
			{"2", UnitRatio},
			{"2.01", UnitFixed},
			{"50", UnitFixed},
		}

		for _, tc := range cases {
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			mock.ExpectCommit()

			var created *Status
			svc := NewService(db, createCapturing(&created))

			_, err := svc.CreateStatus(context.Background(), CreateStatusRequest{
				Name:           "Late " + tc.value,
				Category:       "late",
				IsDeduction:    true,
				DeductionValue: tc.value,
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.want, created.DeductionUnit, "value %s", tc.value)
			assert.NoError(t, mock.ExpectationsWereMet())
		}
	})

	t.Run("explicit unit wins over the convention", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *Status
		svc := NewService(db, createCapturing(&created))

		// 1.5 would be a ratio under the legacy rule.
		_, err := svc.CreateStatus(context.Background(), CreateStatusRequest{
			Name:           "Late fine",
			Category:       "late",
			IsDeduction:    true,
			DeductionValue: "1.5",
			DeductionUnit:  string(UnitFixed),
		})

		assert.NoError(t, err)
		assert.Equal(t, UnitFixed, created.DeductionUnit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid unit rejected", func(t *testing.T) {
		db, _ := newMockDB(t)
		svc := NewService(db, &fakeStatusRepo{})

		_, err := svc.CreateStatus(context.Background(), CreateStatusRequest{
			Name:           "Late",
			Category:       "late",
			IsDeduction:    true,
			DeductionValue: "50",
			DeductionUnit:  "percent",
		})

		assert.Error(t, err)
	})
}
