package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "github.com/aakash8113/DayFlow/internal/employee/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"
	"github.com/aakash8113/DayFlow/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	// 1. Cache hit
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight so a cold cache does not stampede the database
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, MapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(rows))
		for i, e := range rows {
			resp[i] = EmployeeOption{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName(),
				Department:     e.Department,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (EmployeeResponse, error) {
	if !rbac.IsPrivileged(actorRole) && actorID != id {
		return EmployeeResponse{}, employeeerrors.ErrNotOwnProfile
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, MapRepositoryError(err)
	}
	return MapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("target_id", id),
	)

	privileged := rbac.IsPrivileged(actorRole)
	if !privileged && actorID != id {
		return EmployeeResponse{}, employeeerrors.ErrUpdateNotAllowed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	if privileged {
		if err := applyPrivilegedUpdate(e, req); err != nil {
			return EmployeeResponse{}, err
		}
	} else {
		applySelfUpdate(e, req)
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("target_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("target_id", id),
	)
	return MapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return MapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return MapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

// applySelfUpdate applies only the self-service allow-list (phone, address,
// profile picture); anything else in the payload is silently ignored for
// non-privileged callers.
func applySelfUpdate(e *Employee, req UpdateEmployeeRequest) {
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.ProfilePicture != nil {
		e.ProfilePicture = *req.ProfilePicture
	}
}

// applyPrivilegedUpdate applies every field except the password, which has
// its own flow.
func applyPrivilegedUpdate(e *Employee, req UpdateEmployeeRequest) error {
	applySelfUpdate(e, req)

	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		e.DateOfBirth = &dob
	}
	if req.DateOfJoining != nil {
		doj, err := parseDate(*req.DateOfJoining)
		if err != nil {
			return err
		}
		e.DateOfJoining = doj
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Designation != nil {
		e.Designation = *req.Designation
	}
	if req.IsVerified != nil {
		e.IsVerified = *req.IsVerified
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if req.PaidLeaveBalance != nil {
		e.PaidLeaveBalance = *req.PaidLeaveBalance
	}
	if req.SickLeaveBalance != nil {
		e.SickLeaveBalance = *req.SickLeaveBalance
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// MapToResponse sanitizes an employee for the wire: the password hash never
// leaves the service layer.
func MapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID.String(),
		EmployeeNumber:   e.EmployeeNumber,
		Email:            e.Email,
		Role:             e.Role,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Phone:            e.Phone,
		Address:          e.Address,
		DateOfJoining:    e.DateOfJoining.Format("2006-01-02"),
		Department:       e.Department,
		Designation:      e.Designation,
		ProfilePicture:   e.ProfilePicture,
		IsVerified:       e.IsVerified,
		IsActive:         e.IsActive,
		PaidLeaveBalance: e.PaidLeaveBalance,
		SickLeaveBalance: e.SickLeaveBalance,
	}
	if e.DateOfBirth != nil {
		v := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = MapToResponse(e)
	}
	return resp
}
