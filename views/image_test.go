package views

import (
	"strings"
	"testing"
)

func TestResponsiveImagePlain(t *testing.T) {
	r := testReview()
	got := ResponsiveImage(testSite, r, "poster", LoadLazy)
	if strings.Contains(got, "<picture>") {
		t.Errorf("reviews without variants get a plain img: %q", got)
	}
	if !strings.Contains(got, `loading="lazy"`) {
		t.Errorf("lazy loading attribute missing: %q", got)
	}
	if !strings.Contains(got, `data-fallback=`) {
		t.Errorf("fallback hook missing: %q", got)
	}
}

func TestResponsiveImageWithVariants(t *testing.T) {
	r := testReview()
	r.ResponsiveImages = true
	r.ImageURL = "/images/posters/blade.webp"

	got := ResponsiveImage(testSite, r, "poster", LoadEager)
	if !strings.Contains(got, "<picture>") {
		t.Fatalf("expected picture element: %q", got)
	}
	for _, want := range []string{
		"/images/posters/blade-400w.webp 400w",
		"/images/posters/blade-800w.webp 800w",
		"/images/posters/blade-1200w.webp 1200w",
		`type="image/webp"`,
		`fetchpriority="high"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestResponsiveImageJpegVariants(t *testing.T) {
	r := testReview()
	r.ResponsiveImages = true
	r.ImageURL = "images/posters/blade.jpg"

	got := ResponsiveImage(testSite, r, "poster", LoadLazy)
	if !strings.Contains(got, "/images/posters/blade-800w.jpg 800w") {
		t.Errorf("jpeg variants must keep the extension: %q", got)
	}
	if !strings.Contains(got, `type="image/jpeg"`) {
		t.Errorf("jpeg source type missing: %q", got)
	}
}

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"images/a.jpg", "/images/a.jpg"},
		{"/images/a.jpg", "/images/a.jpg"},
		{"https://cdn.example/a.jpg", "https://cdn.example/a.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeImagePath(tt.in); got != tt.want {
			t.Errorf("normalizeImagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
