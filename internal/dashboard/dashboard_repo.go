package dashboard

import (
	"context"
	"time"

	"hr-module/internal/employee"
	"hr-module/internal/leave"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountEmployeesByStatus(ctx context.Context, status string) (int64, error)
	CountOnLeave(ctx context.Context, day time.Time) (int64, error)
	CountLeavesByStatus(ctx context.Context, status string) (int64, error)
	DepartmentDistribution(ctx context.Context) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Count(&count).Error
	return count, err
}

func (r *repository) CountEmployeesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("onboarding_status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountOnLeave(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("status = ?", leave.StatusApproved).
		Where("from_date <= ?", day).
		Where("to_date >= ?", day).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) DepartmentDistribution(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Department string
		Count      int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("department, COUNT(id) AS count").
		Group("department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(rows))
	for _, r := range rows {
		dist[r.Department] = r.Count
	}
	return dist, nil
}
