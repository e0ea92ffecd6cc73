package views

import (
	"net/url"
	"strings"
	"testing"

	"github.com/snarkflix/snarkflix/catalog"
)

var testSite = Site{
	Name:        "Snarkflix",
	URL:         "https://snarkflix.example",
	Description: "Snarky movie reviews",
	Author:      "The Snark",
	LogoPath:    "images/site-assets/logo.webp",
}

func testReview() catalog.Review {
	return catalog.Review{
		ID:              42,
		Title:           "Blade Sprinter",
		Tagline:         "Run faster, replicant",
		AISummary:       strings.Repeat("neon ", 50),
		Category:        "scifi",
		ReleaseYear:     2017,
		PublishDate:     "Mar 5, 2024",
		ReadingDuration: "8 min read",
		AIScore:         91,
		ImageURL:        "images/blade.jpg",
	}
}

func TestReviewURL(t *testing.T) {
	got := ReviewURL(testSite, 42)
	want := "https://snarkflix.example/review/42"
	if got != want {
		t.Errorf("ReviewURL = %q, want %q", got, want)
	}
}

func TestReviewMetaTitle(t *testing.T) {
	meta := ReviewMeta(testSite, testReview())
	want := "Blade Sprinter Review - SnarkAI Score: 91/100 | Snarkflix"
	if meta.Title != want {
		t.Errorf("title = %q, want %q", meta.Title, want)
	}
}

func TestReviewMetaDescriptionTruncates(t *testing.T) {
	meta := ReviewMeta(testSite, testReview())
	if !strings.HasPrefix(meta.Description, "Blade Sprinter - neon") {
		t.Errorf("description prefix wrong: %q", meta.Description)
	}
	if !strings.HasSuffix(meta.Description, "...") {
		t.Errorf("long summaries must end with an ellipsis: %q", meta.Description)
	}
	// title + " - " + 200 summary runes + "..."
	if len(meta.Description) > len("Blade Sprinter - ")+203 {
		t.Errorf("description too long: %d chars", len(meta.Description))
	}
}

func TestShareLinkTwitter(t *testing.T) {
	link := ShareLink(testSite, testReview(), ShareTwitter)
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse share link: %v", err)
	}
	if u.Host != "twitter.com" || u.Path != "/intent/tweet" {
		t.Fatalf("unexpected destination: %s", link)
	}
	q := u.Query()
	if got := q.Get("text"); got != "Blade Sprinter - Run faster, replicant" {
		t.Errorf("text = %q", got)
	}
	if got := q.Get("url"); got != "https://snarkflix.example/review/42" {
		t.Errorf("url = %q", got)
	}
	if got := q.Get("hashtags"); got != "Snarkflix,MovieReview,FilmCritic" {
		t.Errorf("hashtags = %q", got)
	}
}

func TestShareLinkFacebook(t *testing.T) {
	link := ShareLink(testSite, testReview(), ShareFacebook)
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse share link: %v", err)
	}
	if u.Host != "www.facebook.com" {
		t.Fatalf("unexpected destination: %s", link)
	}
	if got := u.Query().Get("u"); got != "https://snarkflix.example/review/42" {
		t.Errorf("u = %q", got)
	}
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch url extra params", "https://www.youtube.com/watch?v=abc123&t=42s", "https://www.youtube.com/embed/abc123"},
		{"short url", "https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"already embed", "https://www.youtube.com/embed/abc123", "https://www.youtube.com/embed/abc123"},
		{"empty", "", ""},
		{"unrecognized", "https://vimeo.com/12345", "https://vimeo.com/12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbedURL(tt.in); got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScoreClass(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "snarkflix-score-excellent"},
		{80, "snarkflix-score-excellent"},
		{79, "snarkflix-score-good"},
		{60, "snarkflix-score-good"},
		{59, "snarkflix-score-fair"},
		{40, "snarkflix-score-fair"},
		{39, "snarkflix-score-poor"},
		{0, "snarkflix-score-poor"},
	}
	for _, tt := range tests {
		if got := ScoreClass(tt.score); got != tt.want {
			t.Errorf("ScoreClass(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestReviewJsonLD(t *testing.T) {
	got := ReviewJsonLD(testSite, testReview())
	for _, want := range []string{
		`"@type":"Review"`,
		`"ratingValue":91`,
		`"bestRating":100`,
		`"@type":"Movie"`,
		`"genre":"Sci-Fi"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %s:\n%s", want, got)
		}
	}
}
