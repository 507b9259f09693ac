package holiday

import (
	"context"
	"errors"
	"time"

	"hr-module/internal/employee"
	holidayerrors "hr-module/internal/holiday/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	ListAll(ctx context.Context) ([]HolidayResponse, error)
	ListUpcoming(ctx context.Context, employeeID string) ([]HolidayResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, now: time.Now, logger: l}
}

func (s *service) ListAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

// ListUpcoming returns active holidays from today onward that apply to
// the employee: their center's holidays plus national ones.
func (s *service) ListUpcoming(ctx context.Context, employeeID string) ([]HolidayResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, holidayerrors.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, holidayerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	today := s.now().Truncate(24 * time.Hour)
	holidays, err := s.repo.FindUpcoming(ctx, emp.CenterID, today)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = HolidayResponse{
			ID:          h.ID.String(),
			Name:        h.Name,
			Date:        h.Date.Format("2006-01-02"),
			HolidayType: h.HolidayType,
			CenterID:    h.CenterID,
			StateID:     h.StateID,
		}
	}
	return resp
}
