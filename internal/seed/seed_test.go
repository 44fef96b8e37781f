package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos/memrepos"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestApplyPopulatesFreshStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := testLogger()
	contentRepo := memrepos.NewSiteContentRepo(log)
	serviceRepo := memrepos.NewServiceRepo(log)
	pricingRepo := memrepos.NewPricingRepo(log)
	portfolioRepo := memrepos.NewPortfolioRepo(log)

	if err := Apply(ctx, log, contentRepo, serviceRepo, pricingRepo, portfolioRepo); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for _, section := range []string{"hero", "about", "contact"} {
		if _, err := contentRepo.GetBySection(ctx, section); err != nil {
			t.Errorf("expected seeded content section %q: %v", section, err)
		}
	}
	if count, _ := serviceRepo.Count(ctx); count == 0 {
		t.Error("expected seeded services")
	}
	if count, _ := portfolioRepo.Count(ctx); count == 0 {
		t.Error("expected seeded portfolio items")
	}
	plans, err := pricingRepo.GetAll(ctx)
	if err != nil || len(plans) == 0 {
		t.Errorf("expected seeded pricing plans, got %d (%v)", len(plans), err)
	}
	for _, plan := range plans {
		if plan.Popular == "" {
			t.Errorf("plan %q: popular must never be empty", plan.Name)
		}
	}
}

func TestApplySkipsSeededStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := testLogger()
	contentRepo := memrepos.NewSiteContentRepo(log)
	serviceRepo := memrepos.NewServiceRepo(log)
	pricingRepo := memrepos.NewPricingRepo(log)
	portfolioRepo := memrepos.NewPortfolioRepo(log)

	if err := Apply(ctx, log, contentRepo, serviceRepo, pricingRepo, portfolioRepo); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	before, _ := serviceRepo.Count(ctx)

	if err := Apply(ctx, log, contentRepo, serviceRepo, pricingRepo, portfolioRepo); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	after, _ := serviceRepo.Count(ctx)
	if before != after {
		t.Errorf("a seeded store must not be seeded again: %d -> %d", before, after)
	}
}

func TestDefaultDatasetsAreFreshCopies(t *testing.T) {
	t.Parallel()

	first, err := DefaultServices()
	if err != nil {
		t.Fatalf("DefaultServices failed: %v", err)
	}
	second, err := DefaultServices()
	if err != nil {
		t.Fatalf("DefaultServices failed: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty fallback service dataset")
	}
	if first[0].ID == second[0].ID {
		t.Error("each fallback copy must get fresh ids")
	}

	items, err := DefaultPortfolio()
	if err != nil {
		t.Fatalf("DefaultPortfolio failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected a non-empty fallback portfolio dataset")
	}
}
