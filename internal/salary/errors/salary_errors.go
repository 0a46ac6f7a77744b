package salaryerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrRecordAlreadyPaid = apperror.New(
		apperror.CodeImmutableRecord,
		"Salary record has been paid and cannot be modified",
		http.StatusConflict,
	)
	ErrMissingBaseSalaryItem = apperror.New(
		apperror.CodeConfigurationError,
		"Catalog has no canonical base-salary item",
		http.StatusInternalServerError,
	)
	ErrUnknownBaseItem = apperror.New(
		apperror.CodeConfigurationError,
		"Percentage configuration references an unknown base item",
		http.StatusUnprocessableEntity,
	)
	ErrGenerationInProgress = apperror.New(
		apperror.CodeConflict,
		"A salary generation run for this period is already in progress",
		http.StatusConflict,
	)
)
