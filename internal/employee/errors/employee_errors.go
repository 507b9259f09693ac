package employeeerrors

import (
	"net/http"

	"hr-module/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
	ErrReportingOfficerNotFound = apperror.New(
		apperror.CodeNotFound,
		"reporting officer does not exist",
		http.StatusNotFound,
	)
	ErrUpdateForbidden = apperror.New(
		apperror.CodeForbidden,
		"unauthorized to update this profile",
		http.StatusForbidden,
	)
)
