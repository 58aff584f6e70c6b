package payroll

import (
	"context"
	"database/sql"
	"testing"

	payrollerrors "github.com/aakash8113/DayFlow/internal/payroll/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, p *Payroll) error
	findByIDFn func(ctx context.Context, id string) (*Payroll, error)
	findAllFn  func(ctx context.Context, employeeID string, month, year int) ([]Payroll, error)
	updateFn   func(ctx context.Context, p *Payroll) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, p *Payroll) error { return f.createFn(ctx, p) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context, employeeID string, month, year int) ([]Payroll, error) {
	return f.findAllFn(ctx, employeeID, month, year)
}
func (f *fakeRepo) Update(ctx context.Context, p *Payroll) error { return f.updateFn(ctx, p) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error  { return f.deleteFn(ctx, id) }

func TestService_Create_RecomputesTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var saved Payroll
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Payroll) error { saved = *p; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), uuid.New().String(), CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		Month:       3,
		Year:        2025,
		BasicSalary: 3000,
		Allowances:  Allowances{HRA: 300, Transport: 150, Medical: 100, Other: 50},
		Deductions:  Deductions{Tax: 300, ProvidentFund: 150, Insurance: 100},
		Bonuses:     250,
	})

	require.NoError(t, err)
	assert.Equal(t, 3850.0, resp.GrossSalary)
	assert.Equal(t, 3300.0, resp.NetSalary)
	assert.Equal(t, 600.0, saved.TotalAllowances)
	assert.Equal(t, 550.0, saved.TotalDeductions)
	assert.Equal(t, StatusPending, saved.PaymentStatus)
	assert.Nil(t, saved.PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_PaidStampsPaymentDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var saved Payroll
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Payroll) error { saved = *p; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err = svc.Create(context.Background(), uuid.New().String(), CreatePayrollRequest{
		EmployeeID:    uuid.New().String(),
		Month:         1,
		Year:          2025,
		BasicSalary:   2000,
		PaymentStatus: StatusPaid,
	})

	require.NoError(t, err)
	require.NotNil(t, saved.PaymentDate)
}

func TestService_Update_IgnoresClientTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	existing := Payroll{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		Month:       3,
		Year:        2025,
		BasicSalary: 3000,
		Allowances:  Allowances{HRA: 300, Transport: 150, Medical: 100, Other: 50},
		Deductions:  Deductions{Tax: 300, ProvidentFund: 150, Insurance: 100},
		Bonuses:     250,
		// Stale totals that must be recomputed on any update.
		GrossSalary:   1,
		NetSalary:     1,
		PaymentStatus: StatusPending,
	}

	var saved Payroll
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			cp := existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, p *Payroll) error { saved = *p; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	newBonus := 500.0
	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdatePayrollRequest{
		Bonuses: &newBonus,
	})

	require.NoError(t, err)
	assert.Equal(t, 4100.0, resp.GrossSalary)
	assert.Equal(t, 3550.0, resp.NetSalary)
	assert.Equal(t, 4100.0, saved.GrossSalary)
}

func TestService_Update_MarkPaidStampsDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	existing := Payroll{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		BasicSalary:   2000,
		PaymentStatus: StatusProcessed,
	}

	var saved Payroll
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			cp := existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, p *Payroll) error { saved = *p; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	paid := StatusPaid
	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdatePayrollRequest{
		PaymentStatus: &paid,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPaid, resp.PaymentStatus)
	require.NotNil(t, saved.PaymentDate)
}

func TestService_GetByID_Ownership(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ownerID := uuid.New()
	row := Payroll{ID: uuid.New(), EmployeeID: ownerID, BasicSalary: 2000}

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			cp := row
			return &cp, nil
		},
	}
	svc := NewService(db, repo)
	ctx := context.Background()

	_, err = svc.GetByID(ctx, ownerID.String(), rbac.RoleEmployee, row.ID.String())
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, uuid.New().String(), rbac.RoleEmployee, row.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrNotOwnPayroll)

	_, err = svc.GetByID(ctx, uuid.New().String(), rbac.RoleHR, row.ID.String())
	assert.NoError(t, err)
}

func TestService_GetAll_ScopesEmployee(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	actorID := uuid.New().String()
	var requested string
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, employeeID string, month, year int) ([]Payroll, error) {
			requested = employeeID
			return nil, nil
		},
	}
	svc := NewService(db, repo)

	_, err = svc.GetAll(context.Background(), actorID, rbac.RoleEmployee, ListFilter{EmployeeID: uuid.New().String()})
	require.NoError(t, err)
	assert.Equal(t, actorID, requested)
}

func TestService_Delete_NotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo)

	err = svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestService_Payslip(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ownerID := uuid.New()
	row := Payroll{
		ID:            uuid.New(),
		EmployeeID:    ownerID,
		Month:         3,
		Year:          2025,
		BasicSalary:   3000,
		GrossSalary:   3850,
		NetSalary:     3300,
		PaymentStatus: StatusPaid,
		Employee: &EmployeeRef{
			ID:             ownerID,
			EmployeeNumber: "EMP-000042",
			FirstName:      "Jane",
			LastName:       "Doe",
		},
	}

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payroll, error) {
			cp := row
			return &cp, nil
		},
	}
	svc := NewService(db, repo)

	pdf, err := svc.Payslip(context.Background(), ownerID.String(), rbac.RoleEmployee, row.ID.String())
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, err = svc.Payslip(context.Background(), uuid.New().String(), rbac.RoleEmployee, row.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrNotOwnPayroll)
}
