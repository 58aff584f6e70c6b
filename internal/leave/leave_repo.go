package leave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context, employeeID, status string) ([]Leave, error)
	MarkReviewed(ctx context.Context, id, status, reviewerID, comments string, reviewedAt time.Time) (bool, error)
	DecrementLeaveBalance(ctx context.Context, employeeID, leaveType string, days int) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&l).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, employeeID, status string) ([]Leave, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []Leave
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// MarkReviewed flips a pending request to its reviewed state. The status
// predicate makes the update a compare-and-swap so two reviewers cannot both
// win; the caller treats a false return as already reviewed.
func (r *repository) MarkReviewed(ctx context.Context, id, status, reviewerID, comments string, reviewedAt time.Time) (bool, error) {
	return r.exec(ctx, `
		UPDATE leaves
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_comments = $4, updated_at = now()
		WHERE id = $5 AND status = 'Pending' AND deleted_at IS NULL
	`, status, reviewerID, reviewedAt, comments, id)
}

// DecrementLeaveBalance subtracts days from the matching balance column,
// guarded so the balance never goes negative. Returns false when the
// employee no longer has enough days.
func (r *repository) DecrementLeaveBalance(ctx context.Context, employeeID, leaveType string, days int) (bool, error) {
	var column string
	switch leaveType {
	case TypePaid:
		column = "paid_leave_balance"
	case TypeSick:
		column = "sick_leave_balance"
	default:
		return false, fmt.Errorf("leave type %q has no balance column", leaveType)
	}

	return r.exec(ctx, fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - $1, updated_at = now()
		WHERE id = $2 AND %s >= $1
	`, column, column, column), days, employeeID)
}

// exec runs a write on the bound transaction when one is present, so review
// updates commit or roll back together with the caller's other writes.
func (r *repository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if r.tx != nil {
		res, err = r.tx.ExecContext(ctx, query, args...)
	} else {
		var sqlDB *sql.DB
		if sqlDB, err = r.db.DB(); err == nil {
			res, err = sqlDB.ExecContext(ctx, query, args...)
		}
	}
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Leave{}).Error
}
