package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/aakash8113/DayFlow/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates database failures into domain errors so
// callers outside this package never touch driver error types.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_number", "uq_employee_email":
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		}
	}

	// gorm sometimes flattens the driver error into a string
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_employee_number") || strings.Contains(errMsg, "uq_employee_email")) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
