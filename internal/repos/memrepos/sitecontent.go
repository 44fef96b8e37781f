package memrepos

import (
	"context"
	"fmt"
	"sync"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

type siteContentRepo struct {
	mu       sync.Mutex
	sections []string
	blocks   map[string]types.SiteContent
	log      *logger.Logger
}

func NewSiteContentRepo(baseLog *logger.Logger) repos.SiteContentRepo {
	return &siteContentRepo{
		blocks: make(map[string]types.SiteContent),
		log:    baseLog.With("repo", "SiteContentRepo"),
	}
}

// GetAll lists blocks in the order their sections were first saved.
func (scr *siteContentRepo) GetAll(ctx context.Context) ([]*types.SiteContent, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()
	out := make([]*types.SiteContent, 0, len(scr.sections))
	for _, section := range scr.sections {
		b := scr.blocks[section]
		out = append(out, &b)
	}
	return out, nil
}

func (scr *siteContentRepo) GetBySection(ctx context.Context, section string) (*types.SiteContent, error) {
	scr.mu.Lock()
	defer scr.mu.Unlock()
	block, ok := scr.blocks[section]
	if !ok {
		return nil, fmt.Errorf("content section %q: %w", section, apperr.ErrNotFound)
	}
	b := block
	return &b, nil
}

func (scr *siteContentRepo) Save(ctx context.Context, block *types.SiteContent) error {
	scr.mu.Lock()
	defer scr.mu.Unlock()
	if _, ok := scr.blocks[block.Section]; !ok {
		scr.sections = append(scr.sections, block.Section)
	}
	scr.blocks[block.Section] = *block
	return nil
}
