package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"hr-module/internal/employee"
	"hr-module/internal/leave"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	overallStatusCacheKey = "dashboard:overallstatus"
	summaryCacheKey       = "dashboard:summary"
	cacheTTL              = 30 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	OverallStatus(ctx context.Context) (OverallStatusResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func (s *service) OverallStatus(ctx context.Context) (OverallStatusResponse, error) {
	if cached, ok := getCached[OverallStatusResponse](ctx, s.rdb, overallStatusCacheKey); ok {
		return cached, nil
	}

	// singleflight collapses concurrent rebuilds into one set of queries.
	v, err, _ := s.sf.Do(overallStatusCacheKey, func() (any, error) {
		return s.buildOverallStatus(ctx)
	})
	if err != nil {
		return OverallStatusResponse{}, err
	}

	resp := v.(OverallStatusResponse)
	setCached(ctx, s.rdb, overallStatusCacheKey, resp)
	return resp, nil
}

func (s *service) buildOverallStatus(ctx context.Context) (OverallStatusResponse, error) {
	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return OverallStatusResponse{}, err
	}

	active, err := s.repo.CountEmployeesByStatus(ctx, employee.OnboardingCompleted)
	if err != nil {
		s.logger.Error("count active employees failed", zap.Error(err))
		return OverallStatusResponse{}, err
	}

	today := s.now().Truncate(24 * time.Hour)
	onLeave, err := s.repo.CountOnLeave(ctx, today)
	if err != nil {
		s.logger.Error("count on-leave employees failed", zap.Error(err))
		return OverallStatusResponse{}, err
	}

	pending, err := s.repo.CountLeavesByStatus(ctx, leave.StatusPending)
	if err != nil {
		s.logger.Error("count pending leaves failed", zap.Error(err))
		return OverallStatusResponse{}, err
	}

	return OverallStatusResponse{
		TotalEmployees:       total,
		ActiveEmployees:      active,
		OnLeaveToday:         onLeave,
		PendingLeaveRequests: pending,
	}, nil
}

func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	if cached, ok := getCached[SummaryResponse](ctx, s.rdb, summaryCacheKey); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(summaryCacheKey, func() (any, error) {
		dist, err := s.repo.DepartmentDistribution(ctx)
		if err != nil {
			s.logger.Error("department distribution failed", zap.Error(err))
			return SummaryResponse{}, err
		}
		return SummaryResponse{DepartmentDistribution: dist}, nil
	})
	if err != nil {
		return SummaryResponse{}, err
	}

	resp := v.(SummaryResponse)
	setCached(ctx, s.rdb, summaryCacheKey, resp)
	return resp, nil
}

func getCached[T any](ctx context.Context, rdb *redis.Client, key string) (T, bool) {
	var zero T
	if rdb == nil {
		return zero, false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return zero, false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, false
	}
	return v, true
}

func setCached(ctx context.Context, rdb *redis.Client, key string, v any) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, raw, cacheTTL)
}
