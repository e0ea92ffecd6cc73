package snarkflix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	reviewsPath := filepath.Join(dir, "reviews.json")
	if err := os.WriteFile(reviewsPath, []byte(testReviewsJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	out := filepath.Join(dir, "dist")

	g := &Generator{Site: testSite, ReviewsPath: reviewsPath, OutDir: out}
	if err := g.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	if err != nil {
		t.Fatalf("read sitemap: %v", err)
	}
	if !strings.Contains(string(sitemap), "<loc>https://snarkflix.example/review/1</loc>") {
		t.Errorf("sitemap missing review loc:\n%s", sitemap)
	}

	if _, err := os.Stat(filepath.Join(out, "sitemap-images.xml")); err != nil {
		t.Errorf("image sitemap not written: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "review", "2", "index.html"))
	if err != nil {
		t.Fatalf("read redirect page: %v", err)
	}
	if !strings.Contains(string(page), "url=/?review=2") {
		t.Errorf("redirect page missing target:\n%s", page)
	}
}

func TestGeneratorRunBadData(t *testing.T) {
	dir := t.TempDir()
	reviewsPath := filepath.Join(dir, "reviews.json")
	if err := os.WriteFile(reviewsPath, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	g := &Generator{Site: testSite, ReviewsPath: reviewsPath, OutDir: filepath.Join(dir, "dist")}
	if err := g.Run(); err == nil {
		t.Fatal("expected error for malformed review data")
	}
}
