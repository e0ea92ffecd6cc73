package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{
		Title:       "Page Not Found | " + site.Name,
		Description: "The page you were looking for does not exist.",
		Canonical:   buildURL(site.URL) + "/",
		OGType:      "website",
		Image:       AbsoluteURL(site, site.LogoPath),
		ImageAlt:    site.Name,
		ImageType:   "image/webp",
		TwitterCard: "summary",
	}
	return pageShell(site, meta, "", "snarkflix-error", func(buf *bytes.Buffer) {
		buf.WriteString(`<main id="main" class="snarkflix-container snarkflix-error-page">`)
		buf.WriteString(`<h1>404</h1>`)
		buf.WriteString(`<p>That reel seems to be missing. The page you were after does not exist.</p>`)
		buf.WriteString(`<p><a href="/">Back to the reviews</a></p>`)
		buf.WriteString(`</main>`)
	})
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	meta := PageMeta{
		Title:       "Something Went Wrong | " + site.Name,
		Description: "An unexpected error occurred.",
		Canonical:   buildURL(site.URL) + "/",
		OGType:      "website",
		Image:       AbsoluteURL(site, site.LogoPath),
		ImageAlt:    site.Name,
		ImageType:   "image/webp",
		TwitterCard: "summary",
	}
	return pageShell(site, meta, "", "snarkflix-error", func(buf *bytes.Buffer) {
		buf.WriteString(`<main id="main" class="snarkflix-container snarkflix-error-page">`)
		buf.WriteString(`<h1>500</h1>`)
		buf.WriteString(`<p>Something went wrong on our side. Try again in a moment.</p>`)
		buf.WriteString(`<p><a href="/">Back to the reviews</a></p>`)
		buf.WriteString(`</main>`)
	})
}
