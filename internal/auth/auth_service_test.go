package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	autherrors "github.com/aakash8113/DayFlow/internal/auth/errors"
	"github.com/aakash8113/DayFlow/internal/employee"
	"github.com/aakash8113/DayFlow/internal/messaging/kafka"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	withTxFn      func(tx *sql.Tx) employee.Repository
	createFn      func(ctx context.Context, e *employee.Employee) error
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
	findAllFn     func(ctx context.Context) ([]employee.Employee, error)
	findOptionsFn func(ctx context.Context) ([]employee.Employee, error)
	updateFn      func(ctx context.Context, e *employee.Employee) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEmployeeRepo) FindOptions(ctx context.Context) ([]employee.Employee, error) {
	return f.findOptionsFn(ctx)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error {
	return f.updateFn(ctx, e)
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error            { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id, reason string) error  { return nil }

func TestService_Signup(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	var saved employee.Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, e *employee.Employee) error {
			saved = *e
			return nil
		},
	}
	outbox := &fakeOutboxRepo{}
	svc := NewService(db, repo, &fakeCounterRepo{next: 41}, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Signup(ctx, SignupRequest{
		Email:     "jane@example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.Employee.Email)
	assert.Equal(t, rbac.RoleEmployee, saved.Role)
	assert.Equal(t, "EMP-000042", saved.EmployeeNumber)
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.True(t, saved.IsActive)
	assert.Equal(t, 20, saved.PaidLeaveBalance)
	assert.Equal(t, 10, saved.SickLeaveBalance)

	require.Len(t, outbox.created, 1)
	assert.Equal(t, "employee_registered", outbox.created[0].EventType)
	assert.Equal(t, saved.ID.String(), outbox.created[0].AggregateID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Signup_KeepsProvidedEmployeeNumber(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var saved employee.Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, e *employee.Employee) error {
			saved = *e
			return nil
		},
	}
	svc := NewService(db, repo, &fakeCounterRepo{}, &fakeOutboxRepo{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err = svc.Signup(context.Background(), SignupRequest{
		EmployeeNumber: "EMP-900001",
		Email:          "lead@example.com",
		Password:       "password123",
		FirstName:      "Sam",
		LastName:       "Lee",
		Role:           rbac.RoleHR,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP-900001", saved.EmployeeNumber)
	assert.Equal(t, rbac.RoleHR, saved.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Signin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	password := "password123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	stored := &employee.Employee{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         rbac.RoleEmployee,
		FirstName:    "Jane",
		LastName:     "Doe",
		IsActive:     true,
	}

	repo := &fakeEmployeeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(db, repo, &fakeCounterRepo{}, &fakeOutboxRepo{})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Signin(ctx, stored.Email, password)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, stored.Email, resp.Employee.Email)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, stored.ID.String(), claims["employee_id"])
		assert.Equal(t, rbac.RoleEmployee, claims["role"])

		exp := time.Unix(int64(claims["exp"].(float64)), 0)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Signin(ctx, stored.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Signin(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		stored.IsActive = false
		defer func() { stored.IsActive = true }()

		_, err := svc.Signin(ctx, stored.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}
