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

type PricingRepo interface {
	GetAll(ctx context.Context) ([]*types.PricingPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.PricingPlan, error)
	Create(ctx context.Context, plans []*types.PricingPlan) error
	Save(ctx context.Context, plan *types.PricingPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pricingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPricingRepo(db *gorm.DB, baseLog *logger.Logger) PricingRepo {
	return &pricingRepo{db: db, log: baseLog.With("repo", "PricingRepo")}
}

func (pr *pricingRepo) GetAll(ctx context.Context) ([]*types.PricingPlan, error) {
	var results []*types.PricingPlan
	if err := pr.db.WithContext(ctx).
		Order(`"order" ASC, created_at ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pricingRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.PricingPlan, error) {
	var result types.PricingPlan
	err := pr.db.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("pricing plan %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *pricingRepo) Create(ctx context.Context, plans []*types.PricingPlan) error {
	if len(plans) == 0 {
		return nil
	}
	return pr.db.WithContext(ctx).Create(&plans).Error
}

func (pr *pricingRepo) Save(ctx context.Context, plan *types.PricingPlan) error {
	return pr.db.WithContext(ctx).Save(plan).Error
}

func (pr *pricingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return pr.db.WithContext(ctx).Delete(&types.PricingPlan{}, "id = ?", id).Error
}
