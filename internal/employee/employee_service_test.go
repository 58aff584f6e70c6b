package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	employeeerrors "github.com/aakash8113/DayFlow/internal/employee/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn      func(tx *sql.Tx) Repository
	createFn      func(ctx context.Context, e *Employee) error
	findByIDFn    func(ctx context.Context, id string) (*Employee, error)
	findByEmailFn func(ctx context.Context, email string) (*Employee, error)
	findAllFn     func(ctx context.Context) ([]Employee, error)
	findOptionsFn func(ctx context.Context) ([]Employee, error)
	updateFn      func(ctx context.Context, e *Employee) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error)     { return f.findAllFn(ctx) }
func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) { return f.findOptionsFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error       { return f.updateFn(ctx, e) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error         { return f.deleteFn(ctx, id) }

func TestService_GetOptions_CacheHit(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	cached := []EmployeeOption{{ID: uuid.New().String(), FullName: "Jane Doe"}}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(OptionsCacheKey).SetVal(string(payload))

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			t.Fatal("cache hit must not reach the repository")
			return nil, nil
		},
	}
	svc := NewService(db, repo, rdb)

	got, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetOptions_CacheMissPopulatesRedis(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	row := Employee{
		ID:             uuid.New(),
		EmployeeNumber: "EMP-000042",
		FirstName:      "Jane",
		LastName:       "Doe",
		Department:     "Engineering",
	}
	want := []EmployeeOption{{
		ID:             row.ID.String(),
		EmployeeNumber: "EMP-000042",
		FullName:       "Jane Doe",
		Department:     "Engineering",
	}}
	payload, _ := json.Marshal(want)

	redisMock.ExpectGet(OptionsCacheKey).RedisNil()
	redisMock.ExpectSet(OptionsCacheKey, payload, time.Hour).SetVal("OK")

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			return []Employee{row}, nil
		},
	}
	svc := NewService(db, repo, rdb)

	got, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetByID_Ownership(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	target := Employee{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "secret"}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			cp := target
			return &cp, nil
		},
	}
	svc := NewService(db, repo, nil)
	ctx := context.Background()

	t.Run("own record", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, target.ID.String(), rbac.RoleEmployee, target.ID.String())
		require.NoError(t, err)
		assert.Equal(t, target.Email, resp.Email)
	})

	t.Run("someone else's record", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New().String(), rbac.RoleEmployee, target.ID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrNotOwnProfile)
	})

	t.Run("hr reads anyone", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New().String(), rbac.RoleHR, target.ID.String())
		assert.NoError(t, err)
	})
}

func TestService_Update_SelfServiceAllowList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	target := Employee{
		ID:    uuid.New(),
		Email: "jane@example.com",
		Role:  rbac.RoleEmployee,
		Phone: "111",
	}

	var saved Employee
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			cp := target
			return &cp, nil
		},
		updateFn: func(ctx context.Context, e *Employee) error { saved = *e; return nil },
	}
	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	newPhone := "222"
	adminRole := rbac.RoleAdmin
	newEmail := "evil@example.com"
	_, err = svc.Update(context.Background(), target.ID.String(), rbac.RoleEmployee, target.ID.String(), UpdateEmployeeRequest{
		Phone: &newPhone,
		Role:  &adminRole,
		Email: &newEmail,
	})

	require.NoError(t, err)
	assert.Equal(t, "222", saved.Phone)
	assert.Equal(t, rbac.RoleEmployee, saved.Role, "self update must not change role")
	assert.Equal(t, "jane@example.com", saved.Email, "self update must not change email")
}

func TestService_Update_PrivilegedSetsAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	target := Employee{ID: uuid.New(), Role: rbac.RoleEmployee}

	var saved Employee
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			cp := target
			return &cp, nil
		},
		updateFn: func(ctx context.Context, e *Employee) error { saved = *e; return nil },
	}
	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	hrRole := rbac.RoleHR
	balance := 15
	_, err = svc.Update(context.Background(), uuid.New().String(), rbac.RoleAdmin, target.ID.String(), UpdateEmployeeRequest{
		Role:             &hrRole,
		PaidLeaveBalance: &balance,
	})

	require.NoError(t, err)
	assert.Equal(t, rbac.RoleHR, saved.Role)
	assert.Equal(t, 15, saved.PaidLeaveBalance)
}

func TestService_Update_NotOwnProfile(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, nil)

	newPhone := "222"
	_, err = svc.Update(context.Background(), uuid.New().String(), rbac.RoleEmployee, uuid.New().String(), UpdateEmployeeRequest{
		Phone: &newPhone,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrUpdateNotAllowed)
}

func TestService_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	target := Employee{ID: uuid.New()}

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(OptionsCacheKey).SetVal(1)

		deleted := ""
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
				cp := target
				return &cp, nil
			},
			deleteFn: func(ctx context.Context, id string) error { deleted = id; return nil },
		}
		svc := NewService(db, repo, rdb)

		mock.ExpectBegin()
		mock.ExpectCommit()

		require.NoError(t, svc.Delete(context.Background(), target.ID.String()))
		assert.Equal(t, target.ID.String(), deleted)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(db, repo, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Delete(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestMapToResponse_OmitsPassword(t *testing.T) {
	e := Employee{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "bcrypt-hash",
		FirstName:    "Jane",
		LastName:     "Doe",
	}

	resp := MapToResponse(e)
	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "bcrypt-hash")
	assert.NotContains(t, string(payload), "password")
}
