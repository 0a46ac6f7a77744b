package salaryitemerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary item not found",
		http.StatusNotFound,
	)
	ErrItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary item with the same name already exists",
		http.StatusConflict,
	)
	ErrSystemItemProtected = apperror.New(
		apperror.CodeConflict,
		"System salary items cannot be deleted or retyped",
		http.StatusConflict,
	)
	ErrItemReferenced = apperror.New(
		apperror.CodeConflict,
		"Salary item is referenced by existing salary details",
		http.StatusConflict,
	)
	ErrInvalidBucket = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown salary component bucket",
		http.StatusBadRequest,
	)
	ErrBucketKindMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Bucket does not match the item kind",
		http.StatusBadRequest,
	)
)
