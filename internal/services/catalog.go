package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/seed"
	"github.com/carnage89/AlexeyR/internal/types"
)

type ServiceInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Order       *int   `json:"order"`
}

type ServiceUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Price       *string `json:"price"`
	Order       *int    `json:"order"`
}

type PortfolioInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Technologies []string `json:"technologies" binding:"required"`
	Link         *string  `json:"link"`
	Order        *int     `json:"order"`
}

type PortfolioUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	Link         *string   `json:"link"`
	Order        *int      `json:"order"`
}

type PricingInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features" binding:"required"`
	Popular     *string  `json:"popular"`
	Order       *int     `json:"order"`
}

type PricingUpdate struct {
	Name        *string   `json:"name"`
	Price       *string   `json:"price"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Popular     *string   `json:"popular"`
	Order       *int      `json:"order"`
}

// CatalogService manages the three admin-editable collections behind
// the public site: services, portfolio items and pricing plans.
//
// Listing services or portfolio items while the collection is empty
// repopulates it with the default dataset first, so the public site
// never renders an empty catalog. Pricing plans have no such fallback.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*types.Service, error)
	CreateService(ctx context.Context, in ServiceInput) (*types.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, in ServiceUpdate) (*types.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListPortfolio(ctx context.Context) ([]*types.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, in PortfolioInput) (*types.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id uuid.UUID, in PortfolioUpdate) (*types.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id uuid.UUID) error

	ListPricing(ctx context.Context) ([]*types.PricingPlan, error)
	CreatePricingPlan(ctx context.Context, in PricingInput) (*types.PricingPlan, error)
	UpdatePricingPlan(ctx context.Context, id uuid.UUID, in PricingUpdate) (*types.PricingPlan, error)
	DeletePricingPlan(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	log           *logger.Logger
	serviceRepo   repos.ServiceRepo
	portfolioRepo repos.PortfolioRepo
	pricingRepo   repos.PricingRepo

	// Serializes the count-then-seed step and the read-merge-save step
	// of updates, so concurrent requests cannot interleave them.
	mu sync.Mutex
}

func NewCatalogService(
	log *logger.Logger,
	serviceRepo repos.ServiceRepo,
	portfolioRepo repos.PortfolioRepo,
	pricingRepo repos.PricingRepo,
) CatalogService {
	return &catalogService{
		log:           log.With("service", "CatalogService"),
		serviceRepo:   serviceRepo,
		portfolioRepo: portfolioRepo,
		pricingRepo:   pricingRepo,
	}
}

// Services

func (cs *catalogService) ListServices(ctx context.Context) ([]*types.Service, error) {
	if err := cs.ensureServicesSeeded(ctx); err != nil {
		return nil, err
	}
	return cs.serviceRepo.GetAll(ctx)
}

func (cs *catalogService) ensureServicesSeeded(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	count, err := cs.serviceRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults, err := seed.DefaultServices()
	if err != nil {
		return err
	}
	if err := cs.serviceRepo.Create(ctx, defaults); err != nil {
		return err
	}
	cs.log.Info("Reseeded empty services collection", "count", len(defaults))
	return nil
}

func (cs *catalogService) CreateService(ctx context.Context, in ServiceInput) (*types.Service, error) {
	service := &types.Service{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Price:       in.Price,
		Order:       intOrZero(in.Order),
		CreatedAt:   time.Now(),
	}
	if err := cs.serviceRepo.Create(ctx, []*types.Service{service}); err != nil {
		return nil, err
	}
	return service, nil
}

func (cs *catalogService) UpdateService(ctx context.Context, id uuid.UUID, in ServiceUpdate) (*types.Service, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	existing, err := cs.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Icon != nil {
		existing.Icon = *in.Icon
	}
	if in.Price != nil {
		existing.Price = *in.Price
	}
	if in.Order != nil {
		existing.Order = *in.Order
	}
	if err := cs.serviceRepo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (cs *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return cs.serviceRepo.Delete(ctx, id)
}

// Portfolio

func (cs *catalogService) ListPortfolio(ctx context.Context) ([]*types.PortfolioItem, error) {
	if err := cs.ensurePortfolioSeeded(ctx); err != nil {
		return nil, err
	}
	return cs.portfolioRepo.GetAll(ctx)
}

func (cs *catalogService) ensurePortfolioSeeded(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	count, err := cs.portfolioRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults, err := seed.DefaultPortfolio()
	if err != nil {
		return err
	}
	if err := cs.portfolioRepo.Create(ctx, defaults); err != nil {
		return err
	}
	cs.log.Info("Reseeded empty portfolio collection", "count", len(defaults))
	return nil
}

func (cs *catalogService) CreatePortfolioItem(ctx context.Context, in PortfolioInput) (*types.PortfolioItem, error) {
	item := &types.PortfolioItem{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Technologies: datatypes.NewJSONSlice(in.Technologies),
		Link:         in.Link,
		Order:        intOrZero(in.Order),
		CreatedAt:    time.Now(),
	}
	if err := cs.portfolioRepo.Create(ctx, []*types.PortfolioItem{item}); err != nil {
		return nil, err
	}
	return item, nil
}

func (cs *catalogService) UpdatePortfolioItem(ctx context.Context, id uuid.UUID, in PortfolioUpdate) (*types.PortfolioItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	existing, err := cs.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Image != nil {
		existing.Image = *in.Image
	}
	if in.Technologies != nil {
		// Arrays are replaced whole, not merged.
		existing.Technologies = datatypes.NewJSONSlice(*in.Technologies)
	}
	if in.Link != nil {
		existing.Link = in.Link
	}
	if in.Order != nil {
		existing.Order = *in.Order
	}
	if err := cs.portfolioRepo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (cs *catalogService) DeletePortfolioItem(ctx context.Context, id uuid.UUID) error {
	return cs.portfolioRepo.Delete(ctx, id)
}

// Pricing

func (cs *catalogService) ListPricing(ctx context.Context) ([]*types.PricingPlan, error) {
	return cs.pricingRepo.GetAll(ctx)
}

func (cs *catalogService) CreatePricingPlan(ctx context.Context, in PricingInput) (*types.PricingPlan, error) {
	popular := "false"
	if in.Popular != nil && *in.Popular != "" {
		popular = *in.Popular
	}
	plan := &types.PricingPlan{
		ID:          uuid.New(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Features:    datatypes.NewJSONSlice(in.Features),
		Popular:     popular,
		Order:       intOrZero(in.Order),
		CreatedAt:   time.Now(),
	}
	if err := cs.pricingRepo.Create(ctx, []*types.PricingPlan{plan}); err != nil {
		return nil, err
	}
	return plan, nil
}

func (cs *catalogService) UpdatePricingPlan(ctx context.Context, id uuid.UUID, in PricingUpdate) (*types.PricingPlan, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	existing, err := cs.pricingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Price != nil {
		existing.Price = *in.Price
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Features != nil {
		existing.Features = datatypes.NewJSONSlice(*in.Features)
	}
	if in.Popular != nil {
		existing.Popular = *in.Popular
	}
	if in.Order != nil {
		existing.Order = *in.Order
	}
	if err := cs.pricingRepo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (cs *catalogService) DeletePricingPlan(ctx context.Context, id uuid.UUID) error {
	return cs.pricingRepo.Delete(ctx, id)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
