package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"Attendance for this employee and date already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found for this company",
		http.StatusNotFound,
	)
	ErrInvalidWorkDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range, from must be before or equal to to",
		http.StatusBadRequest,
	)
)
