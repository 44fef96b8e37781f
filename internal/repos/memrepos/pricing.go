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

type pricingRepo struct {
	plans *collection[types.PricingPlan]
	log   *logger.Logger
}

func NewPricingRepo(baseLog *logger.Logger) repos.PricingRepo {
	return &pricingRepo{
		plans: newCollection[types.PricingPlan](),
		log:   baseLog.With("repo", "PricingRepo"),
	}
}

func (pr *pricingRepo) GetAll(ctx context.Context) ([]*types.PricingPlan, error) {
	plans := pr.plans.snapshot()
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Order < plans[j].Order
	})
	out := make([]*types.PricingPlan, len(plans))
	for i := range plans {
		out[i] = &plans[i]
	}
	return out, nil
}

func (pr *pricingRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.PricingPlan, error) {
	plan, ok := pr.plans.get(id)
	if !ok {
		return nil, fmt.Errorf("pricing plan %s: %w", id, apperr.ErrNotFound)
	}
	return &plan, nil
}

func (pr *pricingRepo) Create(ctx context.Context, plans []*types.PricingPlan) error {
	for _, plan := range plans {
		pr.plans.put(plan.ID, *plan)
	}
	return nil
}

func (pr *pricingRepo) Save(ctx context.Context, plan *types.PricingPlan) error {
	pr.plans.put(plan.ID, *plan)
	return nil
}

func (pr *pricingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	pr.plans.remove(id)
	return nil
}
