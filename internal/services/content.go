package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

// ContentService owns the keyed site-content blocks. Upsert is the only
// write path: a full replace by section, creating the block when the
// section does not exist yet.
type ContentService interface {
	GetAll(ctx context.Context) ([]*types.SiteContent, error)
	GetBySection(ctx context.Context, section string) (*types.SiteContent, error)
	Upsert(ctx context.Context, section string, content datatypes.JSONMap) (*types.SiteContent, error)
}

type contentService struct {
	log         *logger.Logger
	contentRepo repos.SiteContentRepo
}

func NewContentService(log *logger.Logger, contentRepo repos.SiteContentRepo) ContentService {
	return &contentService{
		log:         log.With("service", "ContentService"),
		contentRepo: contentRepo,
	}
}

func (cs *contentService) GetAll(ctx context.Context) ([]*types.SiteContent, error) {
	return cs.contentRepo.GetAll(ctx)
}

func (cs *contentService) GetBySection(ctx context.Context, section string) (*types.SiteContent, error) {
	return cs.contentRepo.GetBySection(ctx, section)
}

func (cs *contentService) Upsert(ctx context.Context, section string, content datatypes.JSONMap) (*types.SiteContent, error) {
	id := uuid.New()
	existing, err := cs.contentRepo.GetBySection(ctx, section)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		// Replacing keeps the block's identity.
		id = existing.ID
	}

	block := &types.SiteContent{
		ID:        id,
		Section:   section,
		Content:   content,
		UpdatedAt: time.Now(),
	}
	if err := cs.contentRepo.Save(ctx, block); err != nil {
		return nil, err
	}
	cs.log.Debug("Upserted content block", "section", section)
	return block, nil
}
