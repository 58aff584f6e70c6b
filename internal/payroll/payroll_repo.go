package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAll(ctx context.Context, employeeID string, month, year int) ([]Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&p).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context, employeeID string, month, year int) ([]Payroll, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if month > 0 {
		q = q.Where("month = ?", month)
	}
	if year > 0 {
		q = q.Where("year = ?", year)
	}

	var rows []Payroll
	err := q.Order("year DESC, month DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Payroll{}).Error
}
