package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll entry not found",
		http.StatusNotFound,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"payroll entry already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRateEntryOutsidePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"rate entry date falls outside the payroll period",
		http.StatusBadRequest,
	)
	ErrUpdateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry can only be updated while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry can only be deleted while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrApproveOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry can only be approved while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrMarkPaidOnlyApproved = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry can only be marked paid while status is APPROVED",
		http.StatusBadRequest,
	)
	ErrPeriodNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"payroll period is not open",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"payslip is not generated yet",
		http.StatusNotFound,
	)
	ErrNoEmployeesToGenerate = apperror.New(
		apperror.CodeInvalidState,
		"no active employees to generate payroll for",
		http.StatusBadRequest,
	)
)
