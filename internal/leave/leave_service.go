package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hr-module/internal/domain"
	"hr-module/internal/events"
	leaveerrors "hr-module/internal/leave/errors"
	"hr-module/internal/messaging/kafka"
	"hr-module/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Annual allotment is a fixed policy constant, not a per-type ledger.
const (
	annualAllotment = 12
	sickAllotment   = 6
	casualAllotment = 6
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	SubmitFullDay(ctx context.Context, actor domain.Identity, req FullDayLeaveRequest) (LeaveResponse, error)
	SubmitHalfDay(ctx context.Context, actor domain.Identity, req HalfDayLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, actor domain.Identity, req LeaveApprovalRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actor domain.Identity, leaveID string) (LeaveResponse, error)
	ListForManager(ctx context.Context, actor domain.Identity, managerID string) ([]LeaveResponse, error)
	Summarize(ctx context.Context, actor domain.Identity, employeeID string) (LeaveSummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) SubmitFullDay(ctx context.Context, actor domain.Identity, req FullDayLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit full-day leave requested",
		zap.String("actor_id", actor.UserID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	// An employee may only file for themself; there is no delegation.
	if req.EmployeeID != actor.UserID {
		s.logger.Warn("submit full-day leave for another employee rejected",
			zap.String("actor_id", actor.UserID),
			zap.String("employee_id", req.EmployeeID),
		)
		return LeaveResponse{}, leaveerrors.ErrSelfOnly
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if fromDate.After(toDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	l := &LeaveRequest{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		LeaveTypeID:     req.LeaveTypeID,
		FromDate:        fromDate,
		ToDate:          toDate,
		Reason:          req.Reason,
		Status:          StatusPending,
		FinancialYearID: req.FinancialYearID,
	}

	return s.persistSubmission(ctx, l)
}

func (s *service) SubmitHalfDay(ctx context.Context, actor domain.Identity, req HalfDayLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit half-day leave requested",
		zap.String("actor_id", actor.UserID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_date", req.LeaveDate),
		zap.String("session", req.LeaveSession),
	)

	if req.EmployeeID != actor.UserID {
		s.logger.Warn("submit half-day leave for another employee rejected",
			zap.String("actor_id", actor.UserID),
			zap.String("employee_id", req.EmployeeID),
		)
		return LeaveResponse{}, leaveerrors.ErrSelfOnly
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveDate, err := parseDate(req.LeaveDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	session := req.LeaveSession
	l := &LeaveRequest{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		LeaveTypeID:  req.LeaveTypeID,
		FromDate:     leaveDate,
		ToDate:       leaveDate,
		LeaveSession: &session,
		Reason:       req.Reason,
		Status:       StatusPending,
	}

	return s.persistSubmission(ctx, l)
}

func (s *service) persistSubmission(ctx context.Context, l *LeaveRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, actor domain.Identity, req LeaveApprovalRequest) (LeaveResponse, error) {
	isApproved := req.IsApproved != nil && *req.IsApproved
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", req.LeaveRequestID),
		zap.String("actor_id", actor.UserID),
		zap.Bool("is_approved", isApproved),
	)

	// The approver named on the payload must be the caller, unless the
	// caller holds an admin role.
	if req.ApprovedBy != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("decide leave forbidden",
			zap.String("leave_id", req.LeaveRequestID),
			zap.String("actor_id", actor.UserID),
			zap.String("approved_by", req.ApprovedBy),
		)
		return LeaveResponse{}, leaveerrors.ErrApprovalForbidden
	}

	approverID, err := uuid.Parse(req.ApprovedBy)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, req.LeaveRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	// Terminal requests never transition again.
	if l.IsTerminal() {
		s.logger.Warn("decide leave on terminal request",
			zap.String("leave_id", l.ID.String()),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if isApproved {
		l.Status = StatusApproved
	} else {
		l.Status = StatusRejected
	}
	l.ApprovedBy = &approverID
	if req.ApprovalComments != "" {
		comments := req.ApprovalComments
		l.ApprovalComments = &comments
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		payload, err := json.Marshal(events.LeaveDecidedEvent{
			EventType:  "leave.decided",
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Status:     l.Status,
			DecidedBy:  approverID.String(),
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     "leave.decided",
			Topic:         events.LeaveDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox write failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", l.Status),
	)
	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actor domain.Identity, leaveID string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", leaveID),
		zap.String("actor_id", actor.UserID),
	)

	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Wrong owner and missing record deliberately produce the same
	// failure: the caller learns only that nothing was cancelable.
	l, err := qtx.FindByIDAndEmployee(ctx, leaveID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNotCancelable
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("cancel leave on non-pending request",
			zap.String("leave_id", leaveID),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotCancelable
	}

	l.Status = StatusCancelled

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", leaveID))
	return mapToResponse(*l), nil
}

func (s *service) ListForManager(ctx context.Context, actor domain.Identity, managerID string) ([]LeaveResponse, error) {
	// A manager sees only their own team; there is no delegation.
	if managerID != actor.UserID {
		return nil, leaveerrors.ErrManagerOnly
	}

	leaves, err := s.repo.FindPendingByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Summarize(ctx context.Context, actor domain.Identity, employeeID string) (LeaveSummaryResponse, error) {
	if employeeID != actor.UserID && !actor.IsAdmin() {
		return LeaveSummaryResponse{}, leaveerrors.ErrSummaryForbidden
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveSummaryResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	requests, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}

	var used, pending int
	for _, r := range requests {
		switch r.Status {
		case StatusApproved:
			used++
		case StatusPending:
			pending++
		}
	}

	// The per-type split is a heuristic over the aggregate used-count,
	// not a ledger keyed by leave type.
	sickUsed := used
	if sickUsed > 1 {
		sickUsed = 1
	}
	casualUsed := used - sickUsed

	return LeaveSummaryResponse{
		TotalLeaves:     annualAllotment,
		UsedLeaves:      used,
		PendingLeaves:   pending,
		AvailableLeaves: annualAllotment - used,
		LeaveTypeBreakdown: []LeaveTypeBreakdown{
			{
				LeaveType: "Sick Leave",
				Total:     sickAllotment,
				Used:      sickUsed,
				Available: sickAllotment - sickUsed,
			},
			{
				LeaveType: "Casual Leave",
				Total:     casualAllotment,
				Used:      casualUsed,
				Available: casualAllotment - casualUsed,
			},
		},
	}, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveTypeID:     l.LeaveTypeID,
		FromDate:        l.FromDate.Format("2006-01-02"),
		ToDate:          l.ToDate.Format("2006-01-02"),
		LeaveSession:    l.LeaveSession,
		Reason:          l.Reason,
		Status:          l.Status,
		FinancialYearID: l.FinancialYearID,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	resp.ApprovalComments = l.ApprovalComments
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
