package holiday

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindAllActive(ctx context.Context) ([]Holiday, error)
	FindUpcoming(ctx context.Context, centerID int, from time.Time) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllActive(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindUpcoming(ctx context.Context, centerID int, from time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("date >= ?", from).
		Where("center_id = ? OR holiday_type = ?", centerID, TypeNational).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}
