package leave

import (
	"net/http"

	"hr-module/internal/middleware"
	"hr-module/internal/shared/apperror"
	"hr-module/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) SubmitFullDay(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req FullDayLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit full-day leave validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.SubmitFullDay(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"hrEmployeeFullDayLeaveDetailsId": resp.ID,
		"status":                          resp.Status,
	}, "Leave request submitted successfully")
}

func (h *Handler) SubmitHalfDay(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req HalfDayLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit half-day leave validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.SubmitHalfDay(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"hrEmployeeHalfDayLeaveDetailsId": resp.ID,
		"status":                          resp.Status,
	}, "Half-day leave request submitted successfully")
}

func (h *Handler) Decide(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req LeaveApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide leave validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	message := "Leave request rejected successfully"
	if resp.Status == StatusApproved {
		message = "Leave request approved successfully"
	}
	response.Success(c, http.StatusOK, resp, message)
}

func (h *Handler) Cancel(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	resp, err := h.service.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, "Leave request cancelled successfully")
}

func (h *Handler) ListForManager(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	resp, err := h.service.ListForManager(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Summary(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	resp, err := h.service.Summarize(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, "")
}
