package memrepos

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

type portfolioRepo struct {
	items *collection[types.PortfolioItem]
	log   *logger.Logger
}

func NewPortfolioRepo(baseLog *logger.Logger) repos.PortfolioRepo {
	return &portfolioRepo{
		items: newCollection[types.PortfolioItem](),
		log:   baseLog.With("repo", "PortfolioRepo"),
	}
}

func (pr *portfolioRepo) GetAll(ctx context.Context) ([]*types.PortfolioItem, error) {
	items := pr.items.snapshot()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	out := make([]*types.PortfolioItem, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (pr *portfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.PortfolioItem, error) {
	item, ok := pr.items.get(id)
	if !ok {
		return nil, fmt.Errorf("portfolio item %s: %w", id, apperr.ErrNotFound)
	}
	return &item, nil
}

func (pr *portfolioRepo) Create(ctx context.Context, items []*types.PortfolioItem) error {
	for _, item := range items {
		pr.items.put(item.ID, *item)
	}
	return nil
}

func (pr *portfolioRepo) Save(ctx context.Context, item *types.PortfolioItem) error {
	pr.items.put(item.ID, *item)
	return nil
}

func (pr *portfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pr.items.remove(id)
	return nil
}

func (pr *portfolioRepo) Count(ctx context.Context) (int64, error) {
	return int64(pr.items.size()), nil
}
