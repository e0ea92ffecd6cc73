package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// esc is shorthand for HTML-escaping user-facing strings.
func esc(s string) string {
	return html.EscapeString(s)
}

// component wraps a buffer-building render function as a templ.Component.
func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// writeHead emits the full <head> for a page: document title, description,
// canonical link, Open Graph and Twitter Card fields, stylesheets, and the
// framework scripts. The meta set is the single source of truth shared with
// the static redirect-page generator.
func writeHead(buf *bytes.Buffer, site Site, meta PageMeta, jsonLD string) {
	buf.WriteString(`<head>`)
	buf.WriteString(`<meta charset="UTF-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	buf.WriteString(`<title>` + esc(meta.Title) + `</title>`)
	buf.WriteString(`<meta name="description" content="` + esc(meta.Description) + `">`)
	buf.WriteString(`<meta name="author" content="` + esc(site.Name) + `">`)
	buf.WriteString(`<link rel="canonical" href="` + esc(meta.Canonical) + `">`)
	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)

	WriteSocialMeta(buf, site, meta)

	if jsonLD != "" {
		buf.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
	}
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
	buf.WriteString(`<script src="/public/htmx.min.js" defer></script>`)
	buf.WriteString(`<script src="/public/catalog.js" defer></script>`)
	buf.WriteString(`</head>`)
}

// WriteSocialMeta emits the Open Graph and Twitter Card tags for a page.
// Exported because the static redirect-page generator embeds the identical
// tag set in the per-review HTML it writes.
func WriteSocialMeta(buf *bytes.Buffer, site Site, meta PageMeta) {
	og := func(property, content string) {
		buf.WriteString(`<meta property="` + property + `" content="` + esc(content) + `">`)
	}
	og("og:type", meta.OGType)
	og("og:url", meta.Canonical)
	og("og:title", meta.Title)
	og("og:description", meta.Description)
	og("og:image", meta.Image)
	og("og:image:secure_url", meta.Image)
	og("og:image:type", meta.ImageType)
	og("og:image:alt", meta.ImageAlt)
	og("og:site_name", site.Name)
	og("og:locale", "en_US")
	og("twitter:card", meta.TwitterCard)
	og("twitter:url", meta.Canonical)
	og("twitter:title", meta.Title)
	og("twitter:description", meta.Description)
	og("twitter:image", meta.Image)
	og("twitter:image:alt", meta.ImageAlt)
}

// writeHeader emits the site header: logo, navigation, and the
// accessibility skip link.
func writeHeader(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<a class="snarkflix-skip-link" href="#main">Skip to content</a>`)
	buf.WriteString(`<header class="snarkflix-header">`)
	buf.WriteString(`<div class="snarkflix-container">`)
	buf.WriteString(`<div class="snarkflix-logo"><h1><a href="/">` + esc(site.Name) + `</a></h1></div>`)
	buf.WriteString(`<nav class="snarkflix-nav" aria-label="Main navigation">`)
	buf.WriteString(`<a class="snarkflix-nav-link" href="/#reviews">Reviews</a>`)
	buf.WriteString(`<a class="snarkflix-nav-link" href="/#categories">Categories</a>`)
	buf.WriteString(`<a class="snarkflix-nav-link" href="/#about">About</a>`)
	buf.WriteString(`</nav>`)
	buf.WriteString(`</div>`)
	buf.WriteString(`</header>`)
}

// writeFooter emits the site footer and the shared accessibility live
// region that render-count announcements target.
func writeFooter(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<div id="a11y-live-region" class="snarkflix-visually-hidden" aria-live="polite"></div>`)
	buf.WriteString(`<footer class="snarkflix-footer"><div class="snarkflix-container">`)
	buf.WriteString(`<p>` + esc(site.Name) + ` &mdash; ` + esc(site.Description) + `</p>`)
	buf.WriteString(`<p><a href="/feed.xml">RSS</a> &middot; <a href="/sitemap.xml">Sitemap</a></p>`)
	buf.WriteString(`</div></footer>`)
}

// pageShell wraps body content in the full document chrome.
func pageShell(site Site, meta PageMeta, jsonLD, bodyClass string, body func(buf *bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="en">`)
		writeHead(buf, site, meta, jsonLD)
		buf.WriteString(`<body class="` + bodyClass + `">`)
		writeHeader(buf, site)
		body(buf)
		writeFooter(buf, site)
		buf.WriteString(`</body></html>`)
	})
}
