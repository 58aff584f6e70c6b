package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/aakash8113/DayFlow/internal/attendance/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]AttendanceResponse, error)
	Create(ctx context.Context, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	_, err = qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       today,
		Status:     StatusPresent,
		CheckIn:    &now,
		Remarks:    req.Remarks,
	}

	if err := qtx.Create(ctx, row); err != nil {
		// Concurrent check-in can slip past the pre-read and hit the
		// unique index instead.
		if mapped := mapRepositoryError(err); mapped == attendanceerrors.ErrDuplicateAttendance {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		} else if mapped != err {
			return AttendanceResponse{}, mapped
		}
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", today.Format("2006-01-02")),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
		}
		return AttendanceResponse{}, err
	}
	if row.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	row.CheckOut = &now
	row.WorkHours = ComputeWorkHours(row.CheckIn, row.CheckOut)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("employee_id", employeeID),
		zap.Float64("work_hours", row.WorkHours),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]AttendanceResponse, error) {
	employeeID := filter.EmployeeID
	if !rbac.IsPrivileged(actorRole) {
		// Employees only ever see their own records.
		employeeID = actorID
	}

	start, err := parseDateFilter(filter.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateFilter(filter.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	checkIn, err := parseTimestamp(req.CheckIn)
	if err != nil {
		return AttendanceResponse{}, err
	}
	checkOut, err := parseTimestamp(req.CheckOut)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}

	status := req.Status
	if status == "" {
		status = StatusPresent
	}

	var createdBy *uuid.UUID
	if actor, err := uuid.Parse(actorID); err == nil {
		createdBy = &actor
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       date,
		Status:     status,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		WorkHours:  ComputeWorkHours(checkIn, checkOut),
		Remarks:    req.Remarks,
		CreatedBy:  createdBy,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.CheckIn != nil {
		t, err := parseTimestamp(*req.CheckIn)
		if err != nil {
			return AttendanceResponse{}, err
		}
		row.CheckIn = t
	}
	if req.CheckOut != nil {
		t, err := parseTimestamp(*req.CheckOut)
		if err != nil {
			return AttendanceResponse{}, err
		}
		row.CheckOut = t
	}
	if req.Remarks != nil {
		row.Remarks = *req.Remarks
	}

	if row.CheckIn != nil && row.CheckOut != nil && row.CheckOut.Before(*row.CheckIn) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}
	row.WorkHours = ComputeWorkHours(row.CheckIn, row.CheckOut)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("attendance deleted", zap.String("attendance_id", id))
	return nil
}

func parseDateFilter(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

// parseTimestamp accepts RFC3339 or a bare date.
func parseTimestamp(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02 15:04", v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
		WorkHours:  a.WorkHours,
		Remarks:    a.Remarks,
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FirstName + " " + a.Employee.LastName
	}
	return resp
}
