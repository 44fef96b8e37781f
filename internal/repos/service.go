package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/types"
)

type ServiceRepo interface {
	GetAll(ctx context.Context) ([]*types.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Service, error)
	Create(ctx context.Context, services []*types.Service) error
	Save(ctx context.Context, service *types.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	return &serviceRepo{db: db, log: baseLog.With("repo", "ServiceRepo")}
}

func (sr *serviceRepo) GetAll(ctx context.Context) ([]*types.Service, error) {
	var results []*types.Service
	if err := sr.db.WithContext(ctx).
		Order(`"order" ASC, created_at ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *serviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Service, error) {
	var result types.Service
	err := sr.db.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("service %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *serviceRepo) Create(ctx context.Context, services []*types.Service) error {
	if len(services) == 0 {
		return nil
	}
	return sr.db.WithContext(ctx).Create(&services).Error
}

func (sr *serviceRepo) Save(ctx context.Context, service *types.Service) error {
	return sr.db.WithContext(ctx).Save(service).Error
}

func (sr *serviceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting a missing id is a silent no-op.
	return sr.db.WithContext(ctx).Delete(&types.Service{}, "id = ?", id).Error
}

func (sr *serviceRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := sr.db.WithContext(ctx).Model(&types.Service{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
