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

type PortfolioRepo interface {
	GetAll(ctx context.Context) ([]*types.PortfolioItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.PortfolioItem, error)
	Create(ctx context.Context, items []*types.PortfolioItem) error
	Save(ctx context.Context, item *types.PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type portfolioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortfolioRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioRepo {
	return &portfolioRepo{db: db, log: baseLog.With("repo", "PortfolioRepo")}
}

func (pr *portfolioRepo) GetAll(ctx context.Context) ([]*types.PortfolioItem, error) {
	var results []*types.PortfolioItem
	if err := pr.db.WithContext(ctx).
		Order(`"order" ASC, created_at ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *portfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.PortfolioItem, error) {
	var result types.PortfolioItem
	err := pr.db.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("portfolio item %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *portfolioRepo) Create(ctx context.Context, items []*types.PortfolioItem) error {
	if len(items) == 0 {
		return nil
	}
	return pr.db.WithContext(ctx).Create(&items).Error
}

func (pr *portfolioRepo) Save(ctx context.Context, item *types.PortfolioItem) error {
	return pr.db.WithContext(ctx).Save(item).Error
}

func (pr *portfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return pr.db.WithContext(ctx).Delete(&types.PortfolioItem{}, "id = ?", id).Error
}

func (pr *portfolioRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := pr.db.WithContext(ctx).Model(&types.PortfolioItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
