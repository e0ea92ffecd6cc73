package snarkflix

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/snarkflix/snarkflix/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.Site, false, CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/stats/")
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/stats/")
	}
	return Render(c, views.AdminLogin(a.Site, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminStats(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if a.statsCache == nil {
		return Render(c, views.AdminAnalyticsOff(a.Site, CsrfToken(c)))
	}
	days := 30
	if d, err := strconv.Atoi(c.QueryParam("days")); err == nil && d > 0 && d <= 365 {
		days = d
	}
	stats, err := a.statsCache.Stats(days)
	if err != nil {
		return err
	}

	// Resolve review titles for the top-reviews table.
	titles := make(map[int]string, len(stats.TopReviews))
	for _, rs := range stats.TopReviews {
		if r, err := a.Store.Get(rs.ReviewID); err == nil {
			titles[rs.ReviewID] = r.Title
		}
	}
	return Render(c, views.AdminStats(a.Site, stats, titles, CsrfToken(c)))
}
