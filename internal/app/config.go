package app

import (
	"github.com/carnage89/AlexeyR/internal/platform/envutil"
)

type Config struct {
	Port          string
	LogMode       string
	Environment   string
	StorageMode   string
	AdminPassword string
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.Str("PORT", "8080"),
		LogMode:     envutil.Str("LOG_MODE", "development"),
		Environment: envutil.Str("APP_ENV", "development"),
		StorageMode: envutil.Str("STORAGE_MODE", "memory"),
		// Fallback secret keeps local admin access working out of the
		// box; set ADMIN_PASSWORD on any reachable deployment.
		AdminPassword: envutil.Str("ADMIN_PASSWORD", "admin123"),
	}
}
