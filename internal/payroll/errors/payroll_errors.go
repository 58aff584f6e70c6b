package payrollerrors

import (
	"net/http"

	"github.com/aakash8113/DayFlow/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrDuplicatePayroll = apperror.New(
		apperror.CodeDuplicate,
		"Payroll record already exists for this employee and period",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNotOwnPayroll = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to access this payroll record",
		http.StatusForbidden,
	)
)
