package snarkflix

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/snarkflix/snarkflix/catalog"
)

const testReviewsJSON = `[
	{"id": 1, "title": "Blade Sprinter", "category": "scifi", "releaseYear": 2017,
	 "publishDate": "Mar 5, 2024", "aiScore": 91, "imageUrl": "images/blade.jpg",
	 "aiSummary": "A neon chase", "content": "Rain and neon.", "readingDuration": "8 min read"},
	{"id": 2, "title": "The Slow Heist", "category": "crime-mystery", "releaseYear": 2020,
	 "publishDate": "Jan 12, 2024", "aiScore": 64, "imageUrl": "images/heist.jpg",
	 "aiSummary": "Patient thieves", "content": "A vault.", "readingDuration": "12 min read"}
]`

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:          "Snarkflix",
		URL:           "https://snarkflix.example",
		Description:   "Snarky movie reviews",
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
		StatsCacheTTL: time.Minute,
	}
	a := New(cfg)
	store, err := catalog.Parse([]byte(testReviewsJSON))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	a.Store = store
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func get(a *App, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersCatalog(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Blade Sprinter", "The Slow Heist", "<!DOCTYPE html>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestHomePartialForHTMX(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?category=scifi", map[string]string{"HX-Request": "true"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("partial must not include the document shell")
	}
	if !strings.Contains(body, "Blade Sprinter") {
		t.Error("filtered results missing")
	}
	if strings.Contains(body, "The Slow Heist") {
		t.Error("other categories must be filtered out")
	}
}

func TestLegacyQueryRedirects(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?review=2", nil)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/review/2" {
		t.Errorf("location = %q", loc)
	}
}

func TestLegacyQueryUnknownIDFallsThrough(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?review=999", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("unknown legacy ids render the catalog, got %d", rec.Code)
	}
}

func TestReviewDetail(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/review/1", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Blade Sprinter Review - SnarkAI Score: 91/100 | Snarkflix",
		"snarkflix-score-excellent",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestReviewUnknownRedirectsToCatalog(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/review/999", "/review/abc"} {
		rec := get(a, target, nil)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: status = %d, want 303", target, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: location = %q", target, loc)
		}
	}
}

func TestSitemapEndpoint(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/sitemap.xml", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "/review/1") {
		t.Error("sitemap missing review url")
	}
}

func TestFeedEndpoint(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/feed.xml", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<rss") {
		t.Error("not an rss document")
	}
	if !strings.Contains(body, "Blade Sprinter Review - SnarkAI Score: 91/100") {
		t.Error("feed missing review item")
	}
}

func TestSuggestEndpoint(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/api/suggest?q=blade", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<option value="Blade Sprinter">`) {
		t.Errorf("suggestion missing: %q", rec.Body.String())
	}
}

func TestNotFoundPage(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/no-such-page/", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Error("custom 404 page not rendered")
	}
}
