package employeeerrors

import (
	"net/http"

	"github.com/aakash8113/DayFlow/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"Employee with this email or ID already exists",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNotOwnProfile = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to view this profile",
		http.StatusForbidden,
	)
	ErrUpdateNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to update this profile",
		http.StatusForbidden,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
