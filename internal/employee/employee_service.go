package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hr-module/internal/domain"
	employeeerrors "hr-module/internal/employee/errors"
	"hr-module/internal/events"
	"hr-module/internal/messaging/kafka"
	"hr-module/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, actor domain.Identity, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actor domain.Identity, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) (EmployeeResponse, error)
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
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrDuplicateEmail
	}

	var reportingOfficerID *uuid.UUID
	if req.ReportingOfficerID != nil && *req.ReportingOfficerID != "" {
		roID, err := uuid.Parse(*req.ReportingOfficerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		found, err := qtx.ExistsByID(ctx, roID.String())
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !found {
			return EmployeeResponse{}, employeeerrors.ErrReportingOfficerNotFound
		}
		reportingOfficerID = &roID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleEmployee}
	}

	emp := &Employee{
		ID:                 uuid.New(),
		Email:              req.Email,
		PasswordHash:       string(hashed),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		MobileNo:           req.MobileNo,
		CenterID:           req.CenterID,
		Department:         req.Department,
		Designation:        req.Designation,
		OnboardingStatus:   OnboardingPending,
		Roles:              roles,
		ReportingOfficerID: reportingOfficerID,
		IsActive:           true,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: emp.ID.String(),
			Email:      emp.Email,
			CenterID:   emp.CenterID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   emp.ID.String(),
			EventType:     "employee.created",
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox write failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("employee_id", emp.ID.String()),
		zap.String("email", emp.Email),
	)
	return mapToResponse(*emp), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Identity, id string) (EmployeeResponse, error) {
	if actor.UserID != id && !actor.IsAdmin() {
		return EmployeeResponse{}, employeeerrors.ErrUpdateForbidden
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, actor domain.Identity, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("actor_id", actor.UserID),
	)

	// Employees may edit their own profile; admins may edit anyone's.
	if actor.UserID != id && !actor.IsAdmin() {
		return EmployeeResponse{}, employeeerrors.ErrUpdateForbidden
	}

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	applyPatch(emp, req)

	if req.ReportingOfficerID != nil && *req.ReportingOfficerID != "" {
		roID, err := uuid.Parse(*req.ReportingOfficerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		found, err := qtx.ExistsByID(ctx, roID.String())
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !found {
			return EmployeeResponse{}, employeeerrors.ErrReportingOfficerNotFound
		}
		emp.ReportingOfficerID = &roID
	}

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*emp), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("deactivate employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deactivate employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	// Status flip, not deletion. Leave history stays queryable.
	emp.OnboardingStatus = OnboardingInactive
	emp.IsActive = false

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("deactivate employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return mapToResponse(*emp), nil
}

func applyPatch(emp *Employee, req UpdateEmployeeRequest) {
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.MobileNo != nil {
		emp.MobileNo = *req.MobileNo
	}
	if req.CenterID != nil {
		emp.CenterID = *req.CenterID
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.Roles != nil {
		emp.Roles = *req.Roles
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               emp.ID.String(),
		Email:            emp.Email,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		MobileNo:         emp.MobileNo,
		CenterID:         emp.CenterID,
		Department:       emp.Department,
		Designation:      emp.Designation,
		OnboardingStatus: emp.OnboardingStatus,
		Roles:            emp.Roles,
		IsActive:         emp.IsActive,
	}
	if emp.ReportingOfficerID != nil {
		v := emp.ReportingOfficerID.String()
		resp.ReportingOfficerID = &v
	}
	return resp
}
