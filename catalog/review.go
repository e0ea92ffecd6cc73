// Package catalog holds the review record store and the query engine that
// drives the browsable catalog: filtering, search, sorting, and pagination
// over an immutable, validated set of movie reviews.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Review is the core content entity: one movie write-up. The record set is
// loaded once at startup and never mutated afterwards; every query produces
// a derived slice, never an in-place change.
type Review struct {
	ID               int      `json:"id" validate:"required,gt=0"`
	Title            string   `json:"title" validate:"required"`
	Tagline          string   `json:"tagline"`
	AISummary        string   `json:"aiSummary"`
	Content          string   `json:"content"`
	Category         string   `json:"category" validate:"required"`
	ReleaseYear      int      `json:"releaseYear" validate:"required,gte=1888"`
	PublishDate      string   `json:"publishDate" validate:"required"`
	ReadingDuration  string   `json:"readingDuration"`
	AIScore          int      `json:"aiScore" validate:"gte=0,lte=100"`
	ImageURL         string   `json:"imageUrl" validate:"required"`
	AdditionalImage  string   `json:"additionalImage,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	YouTubeTrailer   string   `json:"youtubeTrailer,omitempty"`

	// ResponsiveImages marks reviews whose poster has pre-generated
	// width-keyed variants on disk. Set at data-authoring time.
	ResponsiveImages bool `json:"responsiveImages,omitempty"`
}

// Categories is the fixed category enumeration. Slugs appear in review
// records, filter URLs, and the category cards on the page shell.
var Categories = []CategoryInfo{
	{Name: "Action", Slug: "action"},
	{Name: "Adventure", Slug: "adventure"},
	{Name: "Animation", Slug: "animation"},
	{Name: "Comedy", Slug: "comedy"},
	{Name: "Crime & Mystery", Slug: "crime-mystery"},
	{Name: "Drama", Slug: "drama"},
	{Name: "Experimental", Slug: "experimental"},
	{Name: "Fantasy", Slug: "fantasy"},
	{Name: "Historical", Slug: "historical"},
	{Name: "Horror", Slug: "horror"},
	{Name: "Musical", Slug: "musical"},
	{Name: "Romance", Slug: "romance"},
	{Name: "Sci-Fi", Slug: "scifi"},
	{Name: "Thriller", Slug: "thriller"},
	{Name: "Western", Slug: "western"},
	{Name: "Other", Slug: "other"},
}

// CategoryInfo pairs a display name with its URL slug.
type CategoryInfo struct {
	Name string
	Slug string
}

// KnownCategory reports whether slug is part of the category enumeration.
func KnownCategory(slug string) bool {
	for _, c := range Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// CategoryName returns the display name for a category slug, or the slug
// itself when it is not part of the enumeration.
func CategoryName(slug string) string {
	for _, c := range Categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return slug
}

// publishDateLayouts are the accepted PublishDate forms, most common first.
var publishDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
}

// PublishedAt parses the review's locale-formatted publish date. Unparseable
// dates return the zero time, which sorts last under the "latest" order.
func (r Review) PublishedAt() time.Time {
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, r.PublishDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ReadingMinutes parses the integer-minute prefix of ReadingDuration
// ("7 min read" -> 7). Unparseable durations count as 0 minutes.
func (r Review) ReadingMinutes() int {
	s := strings.TrimSpace(r.ReadingDuration)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// TitleWithoutYear strips a trailing "(YYYY)" from the title, for captions
// that append the release year themselves.
func (r Review) TitleWithoutYear() string {
	t := strings.TrimSpace(r.Title)
	if strings.HasSuffix(t, ")") {
		if open := strings.LastIndex(t, "("); open > 0 {
			inner := t[open+1 : len(t)-1]
			if len(inner) == 4 {
				if _, err := strconv.Atoi(inner); err == nil {
					return strings.TrimSpace(t[:open])
				}
			}
		}
	}
	return t
}

// AllImages returns every image path the review references: the poster
// first, then the additional in-article images, deduplicated, without
// empty entries.
func (r Review) AllImages() []string {
	candidates := make([]string, 0, 2+len(r.AdditionalImages))
	candidates = append(candidates, r.ImageURL, r.AdditionalImage)
	candidates = append(candidates, r.AdditionalImages...)

	seen := make(map[string]struct{}, len(candidates))
	var images []string
	for _, src := range candidates {
		if src == "" {
			continue
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		images = append(images, src)
	}
	return images
}

var validate = validator.New()

// Validate checks a single review against the struct tags plus the rules the
// tags cannot express (known category).
func (r Review) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("review %d: %w", r.ID, err)
	}
	if !KnownCategory(r.Category) {
		return fmt.Errorf("review %d: unknown category %q", r.ID, r.Category)
	}
	return nil
}
