package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/aakash8113/DayFlow/internal/employee"
	"github.com/aakash8113/DayFlow/internal/events"
	leaveerrors "github.com/aakash8113/DayFlow/internal/leave/errors"
	"github.com/aakash8113/DayFlow/internal/messaging/kafka"
	"github.com/aakash8113/DayFlow/internal/rbac"
	"github.com/aakash8113/DayFlow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]LeaveResponse, error)
	Review(ctx context.Context, reviewerID, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

func (s *service) Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	days := CountDays(start, end)

	// Unpaid leave never touches a balance; paid and sick are checked
	// up front so the requester gets immediate feedback. The hard guard
	// stays in the approval path.
	if req.LeaveType != TypeUnpaid {
		emp, err := s.employeeRepo.FindByID(ctx, employeeID)
		if err != nil {
			return LeaveResponse{}, employee.MapRepositoryError(err)
		}
		available := emp.PaidLeaveBalance
		if req.LeaveType == TypeSick {
			available = emp.SickLeaveBalance
		}
		if days > available {
			return LeaveResponse{}, leaveerrors.InsufficientBalance(req.LeaveType, available)
		}
	}

	row := &Leave{
		ID:           uuid.New(),
		EmployeeID:   empID,
		LeaveType:    req.LeaveType,
		StartDate:    start,
		EndDate:      end,
		NumberOfDays: days,
		Reason:       req.Reason,
		Status:       StatusPending,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", row.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("days", days),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]LeaveResponse, error) {
	employeeID := filter.EmployeeID
	if !rbac.IsPrivileged(actorRole) {
		employeeID = actorID
	}

	rows, err := s.repo.FindAll(ctx, employeeID, filter.Status)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// Review flips a pending request and, on approval of a balance-backed type,
// decrements the employee's balance. Both writes share one transaction so a
// crash cannot approve leave without charging the balance, and the status
// flip is a compare-and-swap so concurrent reviewers cannot double-apply.
func (s *service) Review(ctx context.Context, reviewerID, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	flipped, err := qtx.MarkReviewed(ctx, id, req.Status, reviewerID, req.ReviewComments, now)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !flipped {
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	if req.Status == StatusApproved && row.LeaveType != TypeUnpaid {
		charged, err := qtx.DecrementLeaveBalance(ctx, row.EmployeeID.String(), row.LeaveType, row.NumberOfDays)
		if err != nil {
			return LeaveResponse{}, err
		}
		if !charged {
			available := 0
			if emp, findErr := s.employeeRepo.FindByID(ctx, row.EmployeeID.String()); findErr == nil {
				available = emp.PaidLeaveBalance
				if row.LeaveType == TypeSick {
					available = emp.SickLeaveBalance
				}
			}
			return LeaveResponse{}, leaveerrors.InsufficientBalance(row.LeaveType, available)
		}
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.LeaveReviewedEvent{
			EventType:    "leave_reviewed",
			RequestID:    rid,
			LeaveID:      row.ID.String(),
			EmployeeID:   row.EmployeeID.String(),
			LeaveType:    row.LeaveType,
			Status:       req.Status,
			NumberOfDays: row.NumberOfDays,
			ReviewedBy:   reviewerID,
			OccurredAt:   now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveReviewedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	reviewer, _ := uuid.Parse(reviewerID)
	row.Status = req.Status
	row.ReviewedBy = &reviewer
	row.ReviewedAt = &now
	row.ReviewComments = req.ReviewComments

	s.logger.Info("leave reviewed",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
		zap.String("reviewed_by", reviewerID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	if !rbac.IsPrivileged(actorRole) {
		if row.EmployeeID.String() != actorID {
			return leaveerrors.ErrNotOwnLeave
		}
		if row.Status != StatusPending {
			return leaveerrors.ErrDeletePendingOnly
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("leave deleted", zap.String("leave_id", id))
	return nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		NumberOfDays:   l.NumberOfDays,
		Reason:         l.Reason,
		Status:         l.Status,
		ReviewComments: l.ReviewComments,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FirstName + " " + l.Employee.LastName
	}
	return resp
}
