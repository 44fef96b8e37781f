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

type serviceRepo struct {
	services *collection[types.Service]
	log      *logger.Logger
}

func NewServiceRepo(baseLog *logger.Logger) repos.ServiceRepo {
	return &serviceRepo{
		services: newCollection[types.Service](),
		log:      baseLog.With("repo", "ServiceRepo"),
	}
}

func (sr *serviceRepo) GetAll(ctx context.Context) ([]*types.Service, error) {
	items := sr.services.snapshot()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	out := make([]*types.Service, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (sr *serviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Service, error) {
	service, ok := sr.services.get(id)
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, apperr.ErrNotFound)
	}
	return &service, nil
}

func (sr *serviceRepo) Create(ctx context.Context, services []*types.Service) error {
	for _, service := range services {
		sr.services.put(service.ID, *service)
	}
	return nil
}

func (sr *serviceRepo) Save(ctx context.Context, service *types.Service) error {
	sr.services.put(service.ID, *service)
	return nil
}

func (sr *serviceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sr.services.remove(id)
	return nil
}

func (sr *serviceRepo) Count(ctx context.Context) (int64, error) {
	return int64(sr.services.size()), nil
}
