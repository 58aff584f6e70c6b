package payroll

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aakash8113/DayFlow/internal/middleware"
	payrollerrors "github.com/aakash8113/DayFlow/internal/payroll/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	createFn  func(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	getAllFn  func(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]PayrollResponse, error)
	getByIDFn func(ctx context.Context, actorID, actorRole, id string) (PayrollResponse, error)
	updateFn  func(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	deleteFn  func(ctx context.Context, id string) error
	payslipFn func(ctx context.Context, actorID, actorRole, id string) ([]byte, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeService) GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]PayrollResponse, error) {
	return f.getAllFn(ctx, actorID, actorRole, filter)
}
func (f *fakeService) GetByID(ctx context.Context, actorID, actorRole, id string) (PayrollResponse, error) {
	return f.getByIDFn(ctx, actorID, actorRole, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeService) Payslip(ctx context.Context, actorID, actorRole, id string) ([]byte, error) {
	return f.payslipFn(ctx, actorID, actorRole, id)
}

func setupRouter(actorID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxEmployeeID, actorID)
		c.Set(middleware.CtxRole, role)
	})
	return r
}

func TestHandler_Create(t *testing.T) {
	actorID := uuid.New().String()

	t.Run("valid payload", func(t *testing.T) {
		handler := NewHandler(&fakeService{
			createFn: func(ctx context.Context, id string, req CreatePayrollRequest) (PayrollResponse, error) {
				return PayrollResponse{ID: uuid.New().String(), GrossSalary: 3850, NetSalary: 3300}, nil
			},
		}, nil)
		router := setupRouter(actorID, rbac.RoleHR)
		router.POST("/payroll", handler.Create)

		body := `{"employee_id":"` + uuid.New().String() + `","month":3,"year":2025,"basic_salary":3000}`
		req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var res struct {
			Data PayrollResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, float64(3300), res.Data.NetSalary)
	})

	t.Run("month out of range rejected", func(t *testing.T) {
		handler := NewHandler(&fakeService{}, nil)
		router := setupRouter(actorID, rbac.RoleHR)
		router.POST("/payroll", handler.Create)

		body := `{"employee_id":"` + uuid.New().String() + `","month":13,"year":2025,"basic_salary":3000}`
		req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate period maps to 400", func(t *testing.T) {
		handler := NewHandler(&fakeService{
			createFn: func(ctx context.Context, id string, req CreatePayrollRequest) (PayrollResponse, error) {
				return PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
			},
		}, nil)
		router := setupRouter(actorID, rbac.RoleHR)
		router.POST("/payroll", handler.Create)

		body := `{"employee_id":"` + uuid.New().String() + `","month":3,"year":2025,"basic_salary":3000}`
		req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "DUPLICATE_RECORD", res["error"].(map[string]interface{})["code"])
	})
}

func TestHandler_Create_CachesAndReleasesIdempotencyKeys(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	lockKey := "idem:lock:abc"
	cacheKey := "idem:cache:abc"

	resp := PayrollResponse{ID: uuid.New().String(), GrossSalary: 3850, NetSalary: 3300}
	payload, err := json.Marshal(resp)
	require.NoError(t, err)

	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	handler := NewHandler(&fakeService{
		createFn: func(ctx context.Context, id string, req CreatePayrollRequest) (PayrollResponse, error) {
			return resp, nil
		},
	}, rdb)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.CtxEmployeeID, uuid.New().String())
		c.Set(middleware.CtxRole, rbac.RoleHR)
		c.Set("idempotency_lock_key", lockKey)
		c.Set("idempotency_cache_key", cacheKey)
	})
	router.POST("/payroll", handler.Create)

	body := `{"employee_id":"` + uuid.New().String() + `","month":3,"year":2025,"basic_salary":3000}`
	req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_GetByID_NotOwn(t *testing.T) {
	handler := NewHandler(&fakeService{
		getByIDFn: func(ctx context.Context, actorID, actorRole, id string) (PayrollResponse, error) {
			return PayrollResponse{}, payrollerrors.ErrNotOwnPayroll
		},
	}, nil)
	router := setupRouter(uuid.New().String(), rbac.RoleEmployee)
	router.GET("/payroll/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/payroll/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Payslip(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 fake")
	handler := NewHandler(&fakeService{
		payslipFn: func(ctx context.Context, actorID, actorRole, id string) ([]byte, error) {
			return pdfBytes, nil
		},
	}, nil)
	router := setupRouter(uuid.New().String(), rbac.RoleEmployee)
	router.GET("/payroll/:id/payslip", handler.Payslip)

	req := httptest.NewRequest(http.MethodGet, "/payroll/"+uuid.New().String()+"/payslip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip.pdf")
	assert.Equal(t, pdfBytes, w.Body.Bytes())
}
