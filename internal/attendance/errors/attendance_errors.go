package attendanceerrors

import (
	"net/http"

	"github.com/aakash8113/DayFlow/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeDuplicate,
		"Already checked in today",
		http.StatusBadRequest,
	)
	ErrNoCheckInToday = apperror.New(
		apperror.CodeInvalidState,
		"You have not checked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"Already checked out today",
		http.StatusBadRequest,
	)
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeDuplicate,
		"Attendance record already exists for this employee and date",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"Check-out time cannot be before check-in time",
		http.StatusBadRequest,
	)
)
