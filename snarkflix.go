// Package snarkflix is a movie-review publishing engine built with Go, Echo,
// and templ. It serves a filterable review catalog, per-review detail pages,
// RSS, sitemaps, a static-artifact generator, and a small analytics-backed
// admin dashboard.
package snarkflix

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snarkflix/snarkflix/analytics"
	"github.com/snarkflix/snarkflix/catalog"
	"github.com/snarkflix/snarkflix/views"
)

// App is the central snarkflix application. It wires together the review
// store, handlers, middleware, analytics, and the admin surface.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *catalog.Store
	Site   views.Site

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	statsCache     *StatsCache
	customRoutes   []func(*App)
	staticDir      string
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// New creates a snarkflix App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Site:      SiteFor(cfg),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SiteFor derives the view-layer site identity from the configuration.
func SiteFor(cfg SiteConfig) views.Site {
	return views.Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
		LogoPath:    "images/site-assets/logo.webp",
	}
}

// Start loads the review catalog, initializes middleware, routes, and
// analytics, and runs the server until it is shut down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("snarkflix: ADMIN_PASSWORD is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("snarkflix: SESSION_SECRET is required")
	}

	store, err := catalog.Load(a.Config.ReviewsPath)
	if err != nil {
		return fmt.Errorf("snarkflix: load reviews: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDBPath)
		if err != nil {
			return fmt.Errorf("snarkflix: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		if err := analytics.InitSalt(analyticsStore); err != nil {
			return fmt.Errorf("snarkflix: init analytics salt: %w", err)
		}
		stopCleanup := analyticsStore.StartCleanupScheduler(a.Config.AnalyticsRetainDays, 24*time.Hour)
		defer stopCleanup()
		a.statsCache = NewStatsCache(analyticsStore, a.Config.StatsCacheTTL)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded client asset, then the on-disk static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/catalog.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.Static("/images", a.staticDir+"/images")
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/sitemap-images.xml", a.handleImageSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/review/:id", a.handleReview)
	e.GET("/api/suggest", a.handleSuggest)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/stats/", a.handleAdminStats)

	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		handler := analytics.NewHandler(a.analyticsStore)
		e.POST("/api/analytics/visit", handler.Collect)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}
