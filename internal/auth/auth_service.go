package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	autherrors "github.com/aakash8113/DayFlow/internal/auth/errors"
	"github.com/aakash8113/DayFlow/internal/employee"
	employeeerrors "github.com/aakash8113/DayFlow/internal/employee/errors"
	"github.com/aakash8113/DayFlow/internal/events"
	"github.com/aakash8113/DayFlow/internal/messaging/kafka"
	"github.com/aakash8113/DayFlow/internal/rbac"
	"github.com/aakash8113/DayFlow/internal/shared/contextutil"
	"github.com/aakash8113/DayFlow/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// Default leave entitlements granted at signup.
const (
	defaultPaidLeaveBalance = 20
	defaultSickLeaveBalance = 10
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Signin(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}

type service struct {
	db           *sql.DB
	employeeRepo employee.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	employeeRepo employee.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:           db,
		employeeRepo: employeeRepo,
		counter:      counterRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("signup requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = rbac.RoleEmployee
	}

	dateOfJoining := time.Now().UTC().Truncate(24 * time.Hour)
	if req.DateOfJoining != "" {
		dateOfJoining, err = time.Parse("2006-01-02", req.DateOfJoining)
		if err != nil {
			return AuthResponse{}, employeeerrors.ErrInvalidDateFormat
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("signup begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.employeeRepo.WithTx(tx)

	employeeNumber := req.EmployeeNumber
	if employeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("signup generate employee number failed", zap.Error(err))
			return AuthResponse{}, err
		}
		employeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	e := &employee.Employee{
		ID:               uuid.New(),
		EmployeeNumber:   employeeNumber,
		Email:            req.Email,
		PasswordHash:     string(hashed),
		Role:             role,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Department:       req.Department,
		Designation:      req.Designation,
		DateOfJoining:    dateOfJoining,
		IsVerified:       true,
		IsActive:         true,
		PaidLeaveBalance: defaultPaidLeaveBalance,
		SickLeaveBalance: defaultSickLeaveBalance,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Warn("signup persist failed", zap.String("email", req.Email), zap.Error(err))
		return AuthResponse{}, employee.MapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRegisteredEvent{
			EventType:      "employee_registered",
			RequestID:      rid,
			EmployeeID:     e.ID.String(),
			EmployeeNumber: e.EmployeeNumber,
			Email:          e.Email,
			Role:           e.Role,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AuthResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("signup outbox persist failed",
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("signup commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := generateToken(e.ID.String(), e.Role, tokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("signup success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return AuthResponse{Token: token, Employee: employee.MapToResponse(*e)}, nil
}

func (s *service) Signin(ctx context.Context, email, password string) (AuthResponse, error) {
	e, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !e.IsActive {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	token, err := generateToken(e.ID.String(), e.Role, tokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("signin success", zap.String("employee_id", e.ID.String()))

	return AuthResponse{Token: token, Employee: employee.MapToResponse(*e)}, nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return employee.MapToResponse(*e), nil
}

func generateToken(employeeID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
