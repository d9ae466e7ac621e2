package perioderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriodDates = apperror.New(
		apperror.CodeInvalidInput,
		"Period dates must satisfy start_date <= end_date <= payment_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrOverlappingPeriod = apperror.New(
		apperror.CodeConflict,
		"Period overlaps with an existing period",
		http.StatusConflict,
	)
	ErrPeriodNotOpen = apperror.New(
		apperror.CodeConflict,
		"Period is not open for modification",
		http.StatusConflict,
	)
)
