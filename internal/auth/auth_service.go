package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"time"

	autherrors "hr-module/internal/auth/errors"
	"hr-module/internal/domain"
	"hr-module/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenTTL = 60 * time.Minute

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password, clientIP string) (TokenData, error)
	SetupSuperAdmin(ctx context.Context, req SuperAdminSetupRequest) (string, error)
}

type service struct {
	db           *sql.DB
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password, clientIP string) (TokenData, error) {
	s.logger.Debug("login requested", zap.String("email", email))

	emp, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return TokenData{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("email", email))
		return TokenData{}, autherrors.ErrInvalidCredentials
	}

	token, err := issueToken(emp.Email, emp.ID.String(), emp.Roles, clientIP, tokenTTL())
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return TokenData{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", emp.ID.String()),
		zap.String("email", emp.Email),
	)
	return TokenData{
		JWToken:    token,
		Email:      emp.Email,
		UserName:   emp.FullName(),
		Roles:      emp.Roles,
		IsVerified: true,
		UID:        emp.ID.String(),
	}, nil
}

func (s *service) SetupSuperAdmin(ctx context.Context, req SuperAdminSetupRequest) (string, error) {
	s.logger.Debug("super admin setup requested", zap.String("email", req.Email))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("super admin setup begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.employeeRepo.WithTx(tx)

	count, err := qtx.CountWithRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		s.logger.Error("super admin existence check failed", zap.Error(err))
		return "", err
	}
	if count > 0 {
		s.logger.Warn("super admin setup rejected, already initialized")
		return "", autherrors.ErrSuperAdminExists
	}

	if _, err := qtx.FindByEmail(ctx, req.Email); err == nil {
		return "", autherrors.ErrSuperAdminExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	emp := &employee.Employee{
		ID:               uuid.New(),
		Email:            req.Email,
		PasswordHash:     string(hashed),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MobileNo:         req.MobileNo,
		CenterID:         req.CenterID,
		Department:       req.Department,
		Designation:      req.Designation,
		OnboardingStatus: employee.OnboardingCompleted,
		Roles:            []string{domain.RoleSuperAdmin},
		IsActive:         true,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("super admin setup persist failed", zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("super admin setup commit failed", zap.Error(err))
		return "", err
	}

	s.logger.Info("super admin created", zap.String("employee_id", emp.ID.String()))
	return emp.ID.String(), nil
}

// issueToken signs the claim set the rest of the system trusts: the
// role list travels with the token and is never re-read until re-login.
func issueToken(email, uid string, roles []string, clientIP string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"exp":   time.Now().Add(ttl).Unix(),
		"email": email,
		"uid":   uid,
		"roles": roles,
		"ip":    clientIP,
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func tokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultTokenTTL
}
