package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-module/internal/employee"
	"hr-module/internal/leave"

	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepository struct {
	countEmployeesFn         func(ctx context.Context) (int64, error)
	countEmployeesByStatusFn func(ctx context.Context, status string) (int64, error)
	countOnLeaveFn           func(ctx context.Context, day time.Time) (int64, error)
	countLeavesByStatusFn    func(ctx context.Context, status string) (int64, error)
	departmentDistributionFn func(ctx context.Context) (map[string]int64, error)
}

func (f *fakeDashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountEmployeesByStatus(ctx context.Context, status string) (int64, error) {
	if f.countEmployeesByStatusFn != nil {
		return f.countEmployeesByStatusFn(ctx, status)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountOnLeave(ctx context.Context, day time.Time) (int64, error) {
	if f.countOnLeaveFn != nil {
		return f.countOnLeaveFn(ctx, day)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	if f.countLeavesByStatusFn != nil {
		return f.countLeavesByStatusFn(ctx, status)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) DepartmentDistribution(ctx context.Context) (map[string]int64, error) {
	if f.departmentDistributionFn != nil {
		return f.departmentDistributionFn(ctx)
	}
	return nil, nil
}

func TestDashboardService_OverallStatus(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("aggregates come from the expected queries", func(t *testing.T) {
		var statusAsked, leaveStatusAsked string
		var onLeaveDay time.Time
		repo := &fakeDashboardRepository{
			countEmployeesFn: func(ctx context.Context) (int64, error) { return 42, nil },
			countEmployeesByStatusFn: func(ctx context.Context, status string) (int64, error) {
				statusAsked = status
				return 35, nil
			},
			countOnLeaveFn: func(ctx context.Context, day time.Time) (int64, error) {
				onLeaveDay = day
				return 4, nil
			},
			countLeavesByStatusFn: func(ctx context.Context, status string) (int64, error) {
				leaveStatusAsked = status
				return 6, nil
			},
		}

		svc := NewService(repo, nil).(*service)
		svc.now = func() time.Time { return fixedNow }

		resp, err := svc.OverallStatus(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.TotalEmployees)
		assert.Equal(t, int64(35), resp.ActiveEmployees)
		assert.Equal(t, int64(4), resp.OnLeaveToday)
		assert.Equal(t, int64(6), resp.PendingLeaveRequests)
		assert.Equal(t, employee.OnboardingCompleted, statusAsked)
		assert.Equal(t, leave.StatusPending, leaveStatusAsked)
		assert.False(t, onLeaveDay.After(fixedNow))
	})

	t.Run("a failing query surfaces the error", func(t *testing.T) {
		queryErr := errors.New("connection reset")
		repo := &fakeDashboardRepository{
			countEmployeesFn: func(ctx context.Context) (int64, error) {
				return 0, queryErr
			},
		}

		svc := NewService(repo, nil)
		_, err := svc.OverallStatus(ctx)

		assert.ErrorIs(t, err, queryErr)
	})
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("distribution passes through untouched", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			departmentDistributionFn: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"Engineering": 20, "HR": 3}, nil
			},
		}

		svc := NewService(repo, nil)
		resp, err := svc.Summary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(20), resp.DepartmentDistribution["Engineering"])
		assert.Equal(t, int64(3), resp.DepartmentDistribution["HR"])
	})

	t.Run("repository errors are not cached away", func(t *testing.T) {
		queryErr := errors.New("connection reset")
		calls := 0
		repo := &fakeDashboardRepository{
			departmentDistributionFn: func(ctx context.Context) (map[string]int64, error) {
				calls++
				if calls == 1 {
					return nil, queryErr
				}
				return map[string]int64{"Engineering": 20}, nil
			},
		}

		svc := NewService(repo, nil)

		_, err := svc.Summary(ctx)
		assert.ErrorIs(t, err, queryErr)

		resp, err := svc.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(20), resp.DepartmentDistribution["Engineering"])
	})
}
