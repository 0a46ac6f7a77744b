package salary

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/salaryconfig"
	"go-payroll/internal/salaryitem"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryRepo struct {
	findByPeriodFn   func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error)
	insertFn         func(ctx context.Context, record *Record) error
	updateFn         func(ctx context.Context, record *Record) error
	replaceDetailsFn func(ctx context.Context, recordID uuid.UUID, details []Detail) error
	markPaidFn       func(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error
	findAllFn        func(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	findByIDFn       func(ctx context.Context, id string) (*Record, error)
	findDetailsFn    func(ctx context.Context, recordID uuid.UUID) ([]Detail, error)
}

func (f *fakeSalaryRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeSalaryRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
	return f.findByPeriodFn(ctx, employeeID, year, month)
}

func (f *fakeSalaryRepo) Insert(ctx context.Context, record *Record) error {
	return f.insertFn(ctx, record)
}

func (f *fakeSalaryRepo) UpdateComponents(ctx context.Context, record *Record) error {
	return f.updateFn(ctx, record)
}

func (f *fakeSalaryRepo) ReplaceDetails(ctx context.Context, recordID uuid.UUID, details []Detail) error {
	return f.replaceDetailsFn(ctx, recordID, details)
}

func (f *fakeSalaryRepo) MarkPaid(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error {
	return f.markPaidFn(ctx, recordID, paymentDate)
}

func (f *fakeSalaryRepo) FindAll(ctx context.Context, filter ListFilter) ([]Record, int64, error) {
	return f.findAllFn(ctx, filter)
}

func (f *fakeSalaryRepo) FindByID(ctx context.Context, id string) (*Record, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeSalaryRepo) FindDetails(ctx context.Context, recordID uuid.UUID) ([]Detail, error) {
	return f.findDetailsFn(ctx, recordID)
}

type fakeEmployees struct {
	employee.Repository
	findActiveFn func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error)
}

func (f *fakeEmployees) FindActive(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
	return f.findActiveFn(ctx, departmentID, ids)
}

type fakeConfigs struct {
	salaryconfig.Repository
	calls            int
	findByEmployeeFn func(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error)
}

func (f *fakeConfigs) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error) {
	f.calls++
	return f.findByEmployeeFn(ctx, employeeID)
}

type fakeCatalogSource struct {
	catalog salaryitem.Catalog
}

func (f *fakeCatalogSource) LoadCatalog(ctx context.Context) (salaryitem.Catalog, error) {
	return f.catalog, nil
}

type fakeDeductions struct {
	fn func(ctx context.Context, employeeID uuid.UUID, baseSalary decimal.Decimal, year, month int) (attendance.DeductionBreakdown, error)
}

func (f *fakeDeductions) MonthlyDeduction(ctx context.Context, employeeID uuid.UUID, baseSalary decimal.Decimal, year, month int) (attendance.DeductionBreakdown, error) {
	if f.fn != nil {
		return f.fn(ctx, employeeID, baseSalary, year, month)
	}
	return attendance.ZeroBreakdown(), nil
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

func testEmployee(name, baseSalary string) employee.Employee {
	return employee.Employee{
		ID:         uuid.New(),
		FullName:   name,
		BaseSalary: dec(baseSalary),
		IsActive:   true,
	}
}

func emptyConfigs() *fakeConfigs {
	return &fakeConfigs{
		findByEmployeeFn: func(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error) {
			return nil, nil
		},
	}
}

func TestSalaryService_Generate(t *testing.T) {
	t.Run("inserts new records and queues batch event", func(t *testing.T) {
		db, mock := newMockDB(t)
		// One transaction per employee plus one for the outbox event.
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectCommit()

		catalog, baseItem := baseCatalog()
		empls := []employee.Employee{
			testEmployee("Jane Smith", "8000.00"),
			testEmployee("John Doe", "6500.00"),
		}

		var inserted []*Record
		detailsByRecord := map[uuid.UUID][]Detail{}
		repo := &fakeSalaryRepo{
			findByPeriodFn: func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
				return nil, nil
			},
			insertFn: func(ctx context.Context, record *Record) error {
				inserted = append(inserted, record)
				return nil
			},
			replaceDetailsFn: func(ctx context.Context, recordID uuid.UUID, details []Detail) error {
				detailsByRecord[recordID] = details
				return nil
			},
		}
		outbox := &fakeOutbox{}

		svc := NewService(db, repo,
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return empls, nil
			}},
			emptyConfigs(),
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			outbox, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 3})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.GeneratedCount)
		assert.Equal(t, 0, result.FailedCount)
		assert.Empty(t, result.Errors)

		assert.Len(t, inserted, 2)
		assert.Equal(t, "8000.00", inserted[0].NetSalary.StringFixed(2))
		assert.Equal(t, "6500.00", inserted[1].NetSalary.StringFixed(2))
		assert.Equal(t, StatusPending, inserted[0].Status)

		for _, rec := range inserted {
			details := detailsByRecord[rec.ID]
			assert.Len(t, details, 1)
			assert.Equal(t, baseItem.ID, details[0].ItemID)
		}

		assert.Len(t, outbox.created, 1)
		assert.Equal(t, "salary_batch_completed", outbox.created[0].EventType)
		assert.Equal(t, "2024-03", outbox.created[0].AggregateID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips paid record with named error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		catalog, _ := baseCatalog()
		empl := testEmployee("John Doe", "6500.00")
		paid := &Record{
			ID:         uuid.New(),
			EmployeeID: empl.ID,
			Year:       2024,
			Month:      3,
			Status:     StatusPaid,
		}

		repo := &fakeSalaryRepo{
			findByPeriodFn: func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
				return paid, nil
			},
			updateFn: func(ctx context.Context, record *Record) error {
				t.Error("paid record must not be updated")
				return nil
			},
		}

		svc := NewService(db, repo,
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return []employee.Employee{empl}, nil
			}},
			emptyConfigs(),
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 3})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.GeneratedCount)
		assert.Equal(t, 1, result.FailedCount)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "John Doe")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("regenerates pending record in place", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		catalog, _ := baseCatalog()
		bonus := catalogItem("Quarterly Bonus", salaryitem.BucketBonus, false)
		catalog[bonus.ID] = bonus

		empl := testEmployee("Jane Smith", "5000.00")
		existing := &Record{
			ID:         uuid.New(),
			EmployeeID: empl.ID,
			Year:       2024,
			Month:      3,
			Status:     StatusPending,
		}
		existing.SetComponents(Components{Base: dec("4000.00")})

		var updated *Record
		var replacedWith []Detail
		repo := &fakeSalaryRepo{
			findByPeriodFn: func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
				return existing, nil
			},
			insertFn: func(ctx context.Context, record *Record) error {
				t.Error("regeneration must update, not insert")
				return nil
			},
			updateFn: func(ctx context.Context, record *Record) error {
				updated = record
				return nil
			},
			replaceDetailsFn: func(ctx context.Context, recordID uuid.UUID, details []Detail) error {
				assert.Equal(t, existing.ID, recordID)
				replacedWith = details
				return nil
			},
		}

		configs := &fakeConfigs{
			findByEmployeeFn: func(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error) {
				return []salaryconfig.Entry{configEntry(bonus.ID, "300", nil)}, nil
			},
		}

		svc := NewService(db, repo,
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return []employee.Employee{empl}, nil
			}},
			configs,
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 3})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.GeneratedCount)
		assert.NotNil(t, updated)
		assert.Equal(t, "5300.00", updated.NetSalary.StringFixed(2))
		// Bonus entry plus the synthesized base row.
		assert.Len(t, replacedWith, 2)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("captures entry effective on the month's last day", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		catalog, baseItem := baseCatalog()
		bonus := catalogItem("Year-End Bonus", salaryitem.BucketBonus, false)
		raise := catalogItem("March Raise", salaryitem.BucketBonus, false)
		catalog[bonus.ID] = bonus
		catalog[raise.ID] = raise

		empl := testEmployee("Jane Smith", "5000.00")
		configs := &fakeConfigs{
			findByEmployeeFn: func(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error) {
				return []salaryconfig.Entry{
					{
						// Resolution is anchored to Feb 29 in a leap year,
						// so this entry just makes the cut.
						ID:            uuid.New(),
						EmployeeID:    empl.ID,
						ItemID:        bonus.ID,
						Value:         dec("500"),
						IsActive:      true,
						EffectiveDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
					},
					{
						ID:            uuid.New(),
						EmployeeID:    empl.ID,
						ItemID:        raise.ID,
						Value:         dec("999"),
						IsActive:      true,
						EffectiveDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		var inserted *Record
		var details []Detail
		repo := &fakeSalaryRepo{
			findByPeriodFn: func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
				return nil, nil
			},
			insertFn: func(ctx context.Context, record *Record) error {
				inserted = record
				return nil
			},
			replaceDetailsFn: func(ctx context.Context, recordID uuid.UUID, ds []Detail) error {
				details = ds
				return nil
			},
		}

		svc := NewService(db, repo,
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return []employee.Employee{empl}, nil
			}},
			configs,
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 2})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.GeneratedCount)
		assert.Equal(t, "5500.00", inserted.NetSalary.StringFixed(2))

		// The Feb 29 entry and the synthesized base row; the March entry
		// is not yet effective.
		assert.Len(t, details, 2)
		itemIDs := make(map[uuid.UUID]bool, len(details))
		for _, d := range details {
			itemIDs[d.ItemID] = true
		}
		assert.True(t, itemIDs[bonus.ID])
		assert.True(t, itemIDs[baseItem.ID])
		assert.False(t, itemIDs[raise.ID])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("aborts on connectivity failure", func(t *testing.T) {
		db, mock := newMockDB(t)

		catalog, _ := baseCatalog()
		empls := []employee.Employee{
			testEmployee("Jane Smith", "8000.00"),
			testEmployee("John Doe", "6500.00"),
		}

		configs := &fakeConfigs{
			findByEmployeeFn: func(ctx context.Context, employeeID uuid.UUID) ([]salaryconfig.Entry, error) {
				return nil, driver.ErrBadConn
			},
		}

		svc := NewService(db, &fakeSalaryRepo{},
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return empls, nil
			}},
			configs,
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 3})

		assert.ErrorIs(t, err, driver.ErrBadConn)
		assert.Equal(t, 0, result.GeneratedCount)
		assert.Equal(t, 0, result.FailedCount)
		assert.Equal(t, 1, configs.calls)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("collects configuration errors per employee", func(t *testing.T) {
		db, mock := newMockDB(t)

		// No base salary item in the catalog.
		catalog := salaryitem.NewCatalog([]salaryitem.SalaryItem{
			catalogItem("Bonus", salaryitem.BucketBonus, false),
		})
		empls := []employee.Employee{
			testEmployee("Jane Smith", "8000.00"),
			testEmployee("John Doe", "6500.00"),
		}

		svc := NewService(db, &fakeSalaryRepo{},
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return empls, nil
			}},
			emptyConfigs(),
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(context.Background(), GenerateRequest{Year: 2024, Month: 3})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.GeneratedCount)
		assert.Equal(t, 2, result.FailedCount)
		assert.Len(t, result.Errors, 2)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes department and employee filters through", func(t *testing.T) {
		db, _ := newMockDB(t)

		catalog, _ := baseCatalog()
		departmentID := uuid.New()
		wantIDs := []uuid.UUID{uuid.New(), uuid.New()}

		var gotDept *uuid.UUID
		var gotIDs []uuid.UUID
		svc := NewService(db, &fakeSalaryRepo{},
			&fakeEmployees{findActiveFn: func(ctx context.Context, dept *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				gotDept = dept
				gotIDs = ids
				return nil, nil
			}},
			emptyConfigs(),
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		deptStr := departmentID.String()
		result, err := svc.Generate(context.Background(), GenerateRequest{
			Year:         2024,
			Month:        3,
			DepartmentID: &deptStr,
			EmployeeIDs:  []string{wantIDs[0].String(), wantIDs[1].String()},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.GeneratedCount)
		if assert.NotNil(t, gotDept) {
			assert.Equal(t, departmentID, *gotDept)
		}
		assert.Equal(t, wantIDs, gotIDs)
	})

	t.Run("stops between employees when cancelled", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		catalog, _ := baseCatalog()
		empls := []employee.Employee{
			testEmployee("Jane Smith", "8000.00"),
			testEmployee("John Doe", "6500.00"),
		}

		ctx, cancel := context.WithCancel(context.Background())
		repo := &fakeSalaryRepo{
			findByPeriodFn: func(ctx context.Context, employeeID uuid.UUID, year, month int) (*Record, error) {
				return nil, nil
			},
			insertFn: func(ctx context.Context, record *Record) error { return nil },
			replaceDetailsFn: func(ctx context.Context, recordID uuid.UUID, details []Detail) error {
				cancel()
				return nil
			},
		}

		svc := NewService(db, repo,
			&fakeEmployees{findActiveFn: func(ctx context.Context, departmentID *uuid.UUID, ids []uuid.UUID) ([]employee.Employee, error) {
				return empls, nil
			}},
			emptyConfigs(),
			&fakeCatalogSource{catalog: catalog},
			&fakeDeductions{},
			nil, nil,
		)

		result, err := svc.Generate(ctx, GenerateRequest{Year: 2024, Month: 3})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, result.GeneratedCount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalaryService_MarkAsPaid(t *testing.T) {
	pendingRecord := func(empl uuid.UUID) *Record {
		rec := &Record{
			ID:         uuid.New(),
			EmployeeID: empl,
			Year:       2024,
			Month:      3,
			Status:     StatusPending,
		}
		rec.SetComponents(Components{Base: dec("8000.00")})
		return rec
	}

	t.Run("rejects paid record", func(t *testing.T) {
		db, _ := newMockDB(t)

		rec := pendingRecord(uuid.New())
		rec.Status = StatusPaid
		repo := &fakeSalaryRepo{
			findByIDFn: func(ctx context.Context, id string) (*Record, error) {
				return rec, nil
			},
		}

		svc := NewService(db, repo, nil, nil, nil, nil, nil, nil)
		_, err := svc.MarkAsPaid(context.Background(), rec.ID.String(), MarkPaidRequest{})

		assert.ErrorIs(t, err, salaryerrors.ErrRecordAlreadyPaid)
	})

	t.Run("marks pending record paid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		rec := pendingRecord(uuid.New())
		var gotDate time.Time
		repo := &fakeSalaryRepo{
			findByIDFn: func(ctx context.Context, id string) (*Record, error) {
				return rec, nil
			},
			markPaidFn: func(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error {
				assert.Equal(t, rec.ID, recordID)
				gotDate = paymentDate
				return nil
			},
		}

		svc := NewService(db, repo, nil, nil, nil, nil, nil, nil)
		resp, err := svc.MarkAsPaid(context.Background(), rec.ID.String(), MarkPaidRequest{PaymentDate: "2024-04-01"})

		assert.NoError(t, err)
		assert.Equal(t, string(StatusPaid), resp.Status)
		assert.Equal(t, "2024-04-01", gotDate.Format("2006-01-02"))
		if assert.NotNil(t, resp.PaymentDate) {
			assert.Equal(t, "2024-04-01", *resp.PaymentDate)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("treats zero-row update as already paid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		rec := pendingRecord(uuid.New())
		repo := &fakeSalaryRepo{
			findByIDFn: func(ctx context.Context, id string) (*Record, error) {
				return rec, nil
			},
			markPaidFn: func(ctx context.Context, recordID uuid.UUID, paymentDate time.Time) error {
				return sql.ErrNoRows
			},
		}

		svc := NewService(db, repo, nil, nil, nil, nil, nil, nil)
		_, err := svc.MarkAsPaid(context.Background(), rec.ID.String(), MarkPaidRequest{})

		assert.ErrorIs(t, err, salaryerrors.ErrRecordAlreadyPaid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalaryService_GetByID_SplitsItemsByKind(t *testing.T) {
	db, _ := newMockDB(t)

	catalog, baseItem := baseCatalog()
	tax := catalogItem("Income Tax", salaryitem.BucketPersonalTax, false)
	catalog[tax.ID] = tax

	rec := &Record{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Year:       2024,
		Month:      3,
		Status:     StatusPending,
	}
	rec.SetComponents(Components{Base: dec("8000.00"), PersonalTax: dec("400.00")})

	repo := &fakeSalaryRepo{
		findByIDFn: func(ctx context.Context, id string) (*Record, error) {
			return rec, nil
		},
		findDetailsFn: func(ctx context.Context, recordID uuid.UUID) ([]Detail, error) {
			return []Detail{
				{ID: uuid.New(), RecordID: rec.ID, ItemID: baseItem.ID, Amount: dec("8000.00")},
				{ID: uuid.New(), RecordID: rec.ID, ItemID: tax.ID, Amount: dec("400.00")},
			}, nil
		},
	}

	svc := NewService(db, repo, nil, nil, &fakeCatalogSource{catalog: catalog}, nil, nil, nil)
	resp, err := svc.GetByID(context.Background(), rec.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "7600.00", resp.NetSalary)
	if assert.Len(t, resp.IncomeItems, 1) {
		assert.Equal(t, baseItem.Name, resp.IncomeItems[0].ItemName)
	}
	if assert.Len(t, resp.DeductionItems, 1) {
		assert.Equal(t, "400.00", resp.DeductionItems[0].Amount)
	}
}
