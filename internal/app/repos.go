package app

import (
	"fmt"

	"github.com/carnage89/AlexeyR/internal/db"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/repos/memrepos"
)

type Repos struct {
	Content   repos.SiteContentRepo
	Service   repos.ServiceRepo
	Portfolio repos.PortfolioRepo
	Pricing   repos.PricingRepo
	Contact   repos.ContactRepo
}

// BuildRepos selects the storage backend. "memory" is the default and
// matches the last-write-wins demo semantics; "sqlite" keeps the same
// contract but survives restarts.
func BuildRepos(log *logger.Logger, cfg Config) (*Repos, error) {
	switch cfg.StorageMode {
	case "", "memory":
		log.Info("Using in-memory storage backend")
		return &Repos{
			Content:   memrepos.NewSiteContentRepo(log),
			Service:   memrepos.NewServiceRepo(log),
			Portfolio: memrepos.NewPortfolioRepo(log),
			Pricing:   memrepos.NewPricingRepo(log),
			Contact:   memrepos.NewContactRepo(log),
		}, nil
	case "sqlite":
		log.Info("Using sqlite storage backend")
		sqliteService, err := db.NewSQLiteService(log)
		if err != nil {
			return nil, err
		}
		if err := sqliteService.AutoMigrateAll(); err != nil {
			return nil, err
		}
		gdb := sqliteService.DB()
		return &Repos{
			Content:   repos.NewSiteContentRepo(gdb, log),
			Service:   repos.NewServiceRepo(gdb, log),
			Portfolio: repos.NewPortfolioRepo(gdb, log),
			Pricing:   repos.NewPricingRepo(gdb, log),
			Contact:   repos.NewContactRepo(gdb, log),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage mode %q", cfg.StorageMode)
	}
}
