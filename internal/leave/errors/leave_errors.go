package leaveerrors

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
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"fromDate must be before or equal toDate",
		http.StatusBadRequest,
	)
	ErrSelfOnly = apperror.New(
		apperror.CodeForbidden,
		"you can only apply leave for yourself",
		http.StatusForbidden,
	)
	ErrApprovalForbidden = apperror.New(
		apperror.CodeForbidden,
		"unauthorized to approve this request",
		http.StatusForbidden,
	)
	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"unauthorized to view this manager's team",
		http.StatusForbidden,
	)
	ErrSummaryForbidden = apperror.New(
		apperror.CodeForbidden,
		"access denied to other employee summaries",
		http.StatusForbidden,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusBadRequest,
	)
	// Wrong owner and already-decided collapse into one failure on the
	// cancel path; the caller cannot tell the two apart.
	ErrNotCancelable = apperror.New(
		apperror.CodeInvalidState,
		"leave request not found or cannot be cancelled (already processed)",
		http.StatusBadRequest,
	)
)
