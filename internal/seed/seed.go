package seed

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type serviceSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Price       string `yaml:"price"`
	Order       int    `yaml:"order"`
}

type portfolioSeed struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Technologies []string `yaml:"technologies"`
	Link         *string  `yaml:"link"`
	Order        int      `yaml:"order"`
}

type pricingSeed struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Popular     string   `yaml:"popular"`
	Order       int      `yaml:"order"`
}

// The startup and reseed datasets are intentionally different: the
// reseed set is what an emptied catalog falls back to, and it has
// always shipped with its own entries.
type datasets struct {
	Startup struct {
		Content   map[string]map[string]interface{} `yaml:"content"`
		Services  []serviceSeed                     `yaml:"services"`
		Pricing   []pricingSeed                     `yaml:"pricing"`
		Portfolio []portfolioSeed                   `yaml:"portfolio"`
	} `yaml:"startup"`
	Reseed struct {
		Services  []serviceSeed   `yaml:"services"`
		Portfolio []portfolioSeed `yaml:"portfolio"`
	} `yaml:"reseed"`
}

var (
	loadOnce sync.Once
	loaded   *datasets
	loadErr  error
)

func load() (*datasets, error) {
	loadOnce.Do(func() {
		var d datasets
		if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded defaults: %w", err)
			return
		}
		loaded = &d
	})
	return loaded, loadErr
}

func buildServices(seeds []serviceSeed) []*types.Service {
	now := time.Now()
	out := make([]*types.Service, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, &types.Service{
			ID:          uuid.New(),
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			Price:       s.Price,
			Order:       s.Order,
			CreatedAt:   now,
		})
	}
	return out
}

func buildPortfolio(seeds []portfolioSeed) []*types.PortfolioItem {
	now := time.Now()
	out := make([]*types.PortfolioItem, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, &types.PortfolioItem{
			ID:           uuid.New(),
			Title:        s.Title,
			Description:  s.Description,
			Image:        s.Image,
			Technologies: datatypes.NewJSONSlice(s.Technologies),
			Link:         s.Link,
			Order:        s.Order,
			CreatedAt:    now,
		})
	}
	return out
}

func buildPricing(seeds []pricingSeed) []*types.PricingPlan {
	now := time.Now()
	out := make([]*types.PricingPlan, 0, len(seeds))
	for _, s := range seeds {
		popular := s.Popular
		if popular == "" {
			popular = "false"
		}
		out = append(out, &types.PricingPlan{
			ID:          uuid.New(),
			Name:        s.Name,
			Price:       s.Price,
			Description: s.Description,
			Features:    datatypes.NewJSONSlice(s.Features),
			Popular:     popular,
			Order:       s.Order,
			CreatedAt:   now,
		})
	}
	return out
}

// DefaultServices returns a fresh copy of the reseed service dataset,
// with new ids and timestamps.
func DefaultServices() ([]*types.Service, error) {
	d, err := load()
	if err != nil {
		return nil, err
	}
	return buildServices(d.Reseed.Services), nil
}

// DefaultPortfolio returns a fresh copy of the reseed portfolio dataset.
func DefaultPortfolio() ([]*types.PortfolioItem, error) {
	d, err := load()
	if err != nil {
		return nil, err
	}
	return buildPortfolio(d.Reseed.Portfolio), nil
}

// Apply populates all collections with the startup dataset. It is meant
// to run once on a fresh store; when the content collection already has
// blocks (a persistent backend that was seeded before), it does nothing.
func Apply(
	ctx context.Context,
	log *logger.Logger,
	contentRepo repos.SiteContentRepo,
	serviceRepo repos.ServiceRepo,
	pricingRepo repos.PricingRepo,
	portfolioRepo repos.PortfolioRepo,
) error {
	d, err := load()
	if err != nil {
		return err
	}

	existing, err := contentRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Debug("Store already seeded, skipping startup defaults")
		return nil
	}

	// Deterministic section order so listings are stable across starts.
	sections := make([]string, 0, len(d.Startup.Content))
	for section := range d.Startup.Content {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		block := &types.SiteContent{
			ID:        uuid.New(),
			Section:   section,
			Content:   datatypes.JSONMap(d.Startup.Content[section]),
			UpdatedAt: time.Now(),
		}
		if err := contentRepo.Save(ctx, block); err != nil {
			return fmt.Errorf("failed to seed content section %q: %w", section, err)
		}
	}
	if err := serviceRepo.Create(ctx, buildServices(d.Startup.Services)); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	if err := pricingRepo.Create(ctx, buildPricing(d.Startup.Pricing)); err != nil {
		return fmt.Errorf("failed to seed pricing plans: %w", err)
	}
	if err := portfolioRepo.Create(ctx, buildPortfolio(d.Startup.Portfolio)); err != nil {
		return fmt.Errorf("failed to seed portfolio items: %w", err)
	}

	log.Info("Seeded default site data",
		"content_sections", len(d.Startup.Content),
		"services", len(d.Startup.Services),
		"pricing_plans", len(d.Startup.Pricing),
		"portfolio_items", len(d.Startup.Portfolio),
	)
	return nil
}
