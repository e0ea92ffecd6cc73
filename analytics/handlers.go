package analytics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles analytics HTTP requests.
type Handler struct {
	store          *Store
	collectLimiter *rateLimiter
}

// NewHandler creates an analytics handler. The collect endpoint is
// rate-limited to 60 requests per IP per minute.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:          store,
		collectLimiter: newRateLimiter(60, time.Minute),
	}
}

// CollectRequest is the expected request body for the collect endpoint.
type CollectRequest struct {
	Path     string `json:"path"`
	ReviewID int    `json:"review_id"`
	Referrer string `json:"referrer"`
}

// Input validation limits for the collect endpoint.
const (
	maxPathLen     = 2048
	maxReferrerLen = 2048
)

func validateCollectRequest(req *CollectRequest) error {
	if req.Path == "" || len(req.Path) > maxPathLen {
		return fmt.Errorf("path must be 1-%d bytes", maxPathLen)
	}
	if len(req.Referrer) > maxReferrerLen {
		return fmt.Errorf("referrer exceeds maximum length of %d", maxReferrerLen)
	}
	if req.ReviewID < 0 {
		return fmt.Errorf("review_id must not be negative")
	}
	return nil
}

// Collect records one page view sent from the client.
func (h *Handler) Collect(c echo.Context) error {
	// Rate limit by IP to prevent analytics flooding.
	if !h.collectLimiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	// Honor Do Not Track.
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if err := validateCollectRequest(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}

	userAgent := c.Request().UserAgent()
	ip := c.RealIP()

	// Crawler traffic never lands in the visits table.
	if IsBot(userAgent) {
		return c.NoContent(http.StatusNoContent)
	}

	browser, os, device := ParseUserAgent(userAgent)
	visit := &Visit{
		VisitorID: GenerateVisitorID(ip, userAgent),
		IPHash:    HashIP(ip),
		Browser:   browser,
		OS:        os,
		Device:    device,
		Path:      req.Path,
		ReviewID:  req.ReviewID,
		Referrer:  CleanReferrer(req.Referrer),
		Timestamp: time.Now().UTC(),
	}
	if err := h.store.SaveVisit(visit); err != nil {
		c.Logger().Errorf("save visit: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}
