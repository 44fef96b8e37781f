package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/types"
)

// SiteContentRepo persists the keyed content blocks. Save is an
// upsert-by-primary-key; the create-or-replace-by-section policy lives
// in the content service, which resolves the section to an id first.
type SiteContentRepo interface {
	GetAll(ctx context.Context) ([]*types.SiteContent, error)
	GetBySection(ctx context.Context, section string) (*types.SiteContent, error)
	Save(ctx context.Context, block *types.SiteContent) error
}

type siteContentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSiteContentRepo(db *gorm.DB, baseLog *logger.Logger) SiteContentRepo {
	return &siteContentRepo{db: db, log: baseLog.With("repo", "SiteContentRepo")}
}

func (scr *siteContentRepo) GetAll(ctx context.Context) ([]*types.SiteContent, error) {
	var results []*types.SiteContent
	if err := scr.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (scr *siteContentRepo) GetBySection(ctx context.Context, section string) (*types.SiteContent, error) {
	var result types.SiteContent
	err := scr.db.WithContext(ctx).
		Where("section = ?", section).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("content section %q: %w", section, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (scr *siteContentRepo) Save(ctx context.Context, block *types.SiteContent) error {
	return scr.db.WithContext(ctx).Save(block).Error
}
