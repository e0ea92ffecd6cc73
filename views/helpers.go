package views

import (
	"encoding/json"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/snarkflix/snarkflix/catalog"
)

// buildURL joins path segments onto a base URL.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// AbsoluteURL resolves an image or asset path against the site URL.
// Already-absolute URLs pass through unchanged.
func AbsoluteURL(site Site, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return buildURL(site.URL, p)
}

// ReviewURL returns the canonical URL for a review's detail page.
func ReviewURL(site Site, id int) string {
	return buildURL(site.URL, "review", strconv.Itoa(id))
}

// truncate shortens s to at most n runes, appending an ellipsis marker the
// way the social-card descriptions expect.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// HomeMeta returns the document metadata for the catalog page.
func HomeMeta(site Site) PageMeta {
	return PageMeta{
		Title:       site.Name + " - Snarky Movie Reviews",
		Description: site.Description,
		Canonical:   buildURL(site.URL) + "/",
		OGType:      "website",
		Image:       AbsoluteURL(site, site.LogoPath),
		ImageAlt:    site.Name + " - Snarky Movie Reviews",
		ImageType:   "image/webp",
		TwitterCard: "summary_large_image",
	}
}

// ReviewMeta returns the full document metadata for one review's detail
// page. The same values feed the live <head> and the generated redirect
// pages.
func ReviewMeta(site Site, r catalog.Review) PageMeta {
	return PageMeta{
		Title:       r.Title + " Review - SnarkAI Score: " + strconv.Itoa(r.AIScore) + "/100 | " + site.Name,
		Description: r.Title + " - " + truncate(r.AISummary, 200),
		Canonical:   ReviewURL(site, r.ID),
		OGType:      "article",
		Image:       AbsoluteURL(site, r.ImageURL),
		ImageAlt:    r.Title + " Review",
		ImageType:   "image/png",
		TwitterCard: "summary_large_image",
	}
}

// SharePlatform selects a share-link template.
type SharePlatform string

const (
	ShareTwitter  SharePlatform = "twitter"
	ShareFacebook SharePlatform = "facebook"
)

const shareHashtags = "Snarkflix,MovieReview,FilmCritic"

// ShareLink builds the destination URL for sharing a review on the given
// platform. Copy-to-clipboard has no destination URL and is handled by the
// embedded client asset.
func ShareLink(site Site, r catalog.Review, platform SharePlatform) string {
	reviewURL := ReviewURL(site, r.ID)
	switch platform {
	case ShareTwitter:
		q := url.Values{}
		q.Set("text", r.Title+" - "+r.Tagline)
		q.Set("url", reviewURL)
		q.Set("hashtags", shareHashtags)
		return "https://twitter.com/intent/tweet?" + q.Encode()
	case ShareFacebook:
		q := url.Values{}
		q.Set("u", reviewURL)
		q.Set("quote", r.Title+" - "+r.Tagline)
		return "https://www.facebook.com/sharer/sharer.php?" + q.Encode()
	}
	return reviewURL
}

var reYouTubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)
var reYouTubeParam = regexp.MustCompile(`[?&]v=([^&\n?#]+)`)

// EmbedURL converts a YouTube watch/short/embed URL into the canonical
// embed form. Unrecognized URLs pass through unchanged.
func EmbedURL(youtubeURL string) string {
	if youtubeURL == "" {
		return ""
	}
	if m := reYouTubeID.FindStringSubmatch(youtubeURL); m != nil {
		return "https://www.youtube.com/embed/" + m[1]
	}
	if m := reYouTubeParam.FindStringSubmatch(youtubeURL); m != nil {
		return "https://www.youtube.com/embed/" + m[1]
	}
	return youtubeURL
}

// ScoreClass returns the CSS class bucket for an aiScore: green at 80+,
// yellow at 60, red at 40, dark red below.
func ScoreClass(score int) string {
	switch {
	case score >= 80:
		return "snarkflix-score-excellent"
	case score >= 60:
		return "snarkflix-score-good"
	case score >= 40:
		return "snarkflix-score-fair"
	default:
		return "snarkflix-score-poor"
	}
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL) + "/",
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ReviewJsonLD produces a Schema.org Review JSON-LD block for a review page,
// with the movie as itemReviewed and the aiScore as reviewRating.
func ReviewJsonLD(site Site, r catalog.Review) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Review",
		"name":          r.Title + " Review",
		"reviewBody":    truncate(r.AISummary, 300),
		"datePublished": r.PublishedAt().Format("2006-01-02"),
		"url":           ReviewURL(site, r.ID),
		"itemReviewed": map[string]interface{}{
			"@type":       "Movie",
			"name":        r.TitleWithoutYear(),
			"dateCreated": strconv.Itoa(r.ReleaseYear),
			"genre":       catalog.CategoryName(r.Category),
			"image":       AbsoluteURL(site, r.ImageURL),
		},
		"reviewRating": map[string]interface{}{
			"@type":       "Rating",
			"ratingValue": r.AIScore,
			"bestRating":  100,
			"worstRating": 0,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
