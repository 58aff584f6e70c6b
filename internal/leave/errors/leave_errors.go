package leaveerrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aakash8113/DayFlow/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date cannot be after end date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been reviewed",
		http.StatusBadRequest,
	)
	ErrNotOwnLeave = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to access this leave request",
		http.StatusForbidden,
	)
	ErrDeletePendingOnly = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be deleted",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave request ID",
		http.StatusBadRequest,
	)
)

// InsufficientBalance reports how many days remain so the requester can
// adjust the range.
func InsufficientBalance(leaveType string, available int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Insufficient %s leave balance. Available: %d days", strings.ToLower(leaveType), available),
		http.StatusBadRequest,
	)
}
