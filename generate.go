package snarkflix

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/snarkflix/snarkflix/catalog"
	"github.com/snarkflix/snarkflix/views"
)

// Generator writes the static artifacts a deployment serves alongside the
// app: sitemaps and per-review redirect pages for crawlers that hit the
// pre-rendered URLs.
type Generator struct {
	Site        views.Site
	ReviewsPath string
	OutDir      string
}

// Run loads the review data and writes every artifact to OutDir.
func (g *Generator) Run() error {
	store, err := catalog.Load(g.ReviewsPath)
	if err != nil {
		return err
	}
	reviews := store.Reviews()

	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := g.writeXMLFile("sitemap.xml", buildSitemap(g.Site, reviews, time.Now())); err != nil {
		return err
	}
	if err := g.writeXMLFile("sitemap-images.xml", buildImageSitemap(g.Site, reviews)); err != nil {
		return err
	}

	for _, r := range reviews {
		dir := filepath.Join(g.OutDir, "review", strconv.Itoa(r.ID))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create redirect dir: %w", err)
		}
		page := redirectPage(g.Site, r)
		if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
			return fmt.Errorf("write redirect page: %w", err)
		}
	}

	log.Printf("generated sitemaps and %d redirect pages in %s", len(reviews), g.OutDir)
	return nil
}

// Watch regenerates the artifacts whenever the review data file changes.
// Events are debounced so an editor's save sequence triggers one rebuild.
// It blocks until the context is cancelled.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors typically replace the file, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(g.ReviewsPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(g.ReviewsPath), err)
	}

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(g.ReviewsPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(300*time.Millisecond, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-rebuild:
			if err := g.Run(); err != nil {
				log.Printf("regenerate failed: %v", err)
			}
		}
	}
}

func (g *Generator) writeXMLFile(name string, set sitemapURLSet) error {
	var buf bytes.Buffer
	if err := writeSitemapXML(&buf, set); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(g.OutDir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// redirectPage builds a minimal HTML document for a pre-rendered review URL.
// It carries the review's full social metadata so link unfurlers see the
// right card, then sends browsers to the live detail route.
func redirectPage(site views.Site, r catalog.Review) []byte {
	meta := views.ReviewMeta(site, r)

	var buf bytes.Buffer
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	buf.WriteString(`<meta charset="UTF-8">`)
	buf.WriteString(`<title>` + html.EscapeString(meta.Title) + `</title>`)
	buf.WriteString(`<meta name="description" content="` + html.EscapeString(meta.Description) + `">`)
	buf.WriteString(`<link rel="canonical" href="` + html.EscapeString(meta.Canonical) + `">`)
	views.WriteSocialMeta(&buf, site, meta)
	target := "/?review=" + strconv.Itoa(r.ID)
	buf.WriteString(`<meta http-equiv="refresh" content="0; url=` + target + `">`)
	buf.WriteString(`<script>location.replace(` + strconv.Quote(target) + `);</script>`)
	buf.WriteString(`</head><body>`)
	buf.WriteString(`<p>Redirecting to <a href="` + target + `">` + html.EscapeString(r.Title) + `</a>.</p>`)
	buf.WriteString(`</body></html>`)
	return buf.Bytes()
}
