package snarkflix

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// SiteConfig holds all configuration for a snarkflix site. Values come from
// the environment; defaults suit local development.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Snarkflix"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Snarky movie reviews with AI-assisted scoring"`
	Author      string `env:"SITE_AUTHOR" envDefault:"Snarkflix"`

	Addr        string `env:"ADDR" envDefault:":3000"`
	ReviewsPath string `env:"REVIEWS_PATH" envDefault:"data/reviews.json"`

	AnalyticsEnabled    bool   `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsDBPath     string `env:"ANALYTICS_DB_PATH" envDefault:"data/analytics.db"`
	AnalyticsRetainDays int    `env:"ANALYTICS_RETAIN_DAYS" envDefault:"365"`

	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`

	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
