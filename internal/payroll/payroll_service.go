package payroll

import (
	"context"
	"database/sql"
	"time"

	payrollerrors "github.com/aakash8113/DayFlow/internal/payroll/errors"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Payslip(ctx context.Context, actorID, actorRole, id string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	status := req.PaymentStatus
	if status == "" {
		status = StatusPending
	}

	var createdBy *uuid.UUID
	if actor, err := uuid.Parse(actorID); err == nil {
		createdBy = &actor
	}

	row := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    empID,
		Month:         req.Month,
		Year:          req.Year,
		BasicSalary:   req.BasicSalary,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
		Bonuses:       req.Bonuses,
		PaymentStatus: status,
		CreatedBy:     createdBy,
	}
	applyTotals(row)

	if status == StatusPaid {
		now := time.Now().UTC()
		row.PaymentDate = &now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll created",
		zap.String("payroll_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, filter ListFilter) ([]PayrollResponse, error) {
	employeeID := filter.EmployeeID
	if !rbac.IsPrivileged(actorRole) {
		employeeID = actorID
	}

	rows, err := s.repo.FindAll(ctx, employeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (PayrollResponse, error) {
	row, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if req.BasicSalary != nil {
		row.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		row.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		row.Deductions = *req.Deductions
	}
	if req.Bonuses != nil {
		row.Bonuses = *req.Bonuses
	}
	if req.PaymentStatus != nil {
		row.PaymentStatus = *req.PaymentStatus
		if row.PaymentStatus == StatusPaid && row.PaymentDate == nil {
			now := time.Now().UTC()
			row.PaymentDate = &now
		}
	}
	applyTotals(row)

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
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

	s.logger.Info("payroll deleted", zap.String("payroll_id", id))
	return nil
}

func (s *service) Payslip(ctx context.Context, actorID, actorRole, id string) ([]byte, error) {
	row, err := s.findOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return renderPayslipPDF(*row)
}

func (s *service) findOwned(ctx context.Context, actorID, actorRole, id string) (*Payroll, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !rbac.IsPrivileged(actorRole) && row.EmployeeID.String() != actorID {
		return nil, payrollerrors.ErrNotOwnPayroll
	}
	return row, nil
}

func applyTotals(p *Payroll) {
	t := ComputeTotals(p.BasicSalary, p.Allowances, p.Bonuses, p.Deductions)
	p.TotalAllowances = t.TotalAllowances
	p.TotalDeductions = t.TotalDeductions
	p.GrossSalary = t.GrossSalary
	p.NetSalary = t.NetSalary
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		Month:           p.Month,
		Year:            p.Year,
		BasicSalary:     p.BasicSalary,
		Allowances:      p.Allowances,
		Deductions:      p.Deductions,
		Bonuses:         p.Bonuses,
		TotalAllowances: p.TotalAllowances,
		TotalDeductions: p.TotalDeductions,
		GrossSalary:     p.GrossSalary,
		NetSalary:       p.NetSalary,
		PaymentStatus:   p.PaymentStatus,
	}
	if p.PaymentDate != nil {
		v := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &v
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FirstName + " " + p.Employee.LastName
	}
	return resp
}
