package views

// Site holds site-wide settings populated from environment variables.
// Every component receives this so nothing is hardcoded.
type Site struct {
	Name        string // SITE_NAME  (default "Snarkflix")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
	LogoPath    string // site logo, also the image-error fallback asset
}

// PageMeta is the full per-page metadata set written into <head>: document
// title, description, canonical URL, and the Open Graph / Twitter Card
// fields. It is produced deterministically from a review (or the site
// defaults) so the live page and the statically generated redirect pages
// agree byte for byte.
type PageMeta struct {
	Title       string
	Description string
	Canonical   string // canonical + og:url + twitter:url
	OGType      string // "website" or "article"
	Image       string // absolute URL
	ImageAlt    string
	ImageType   string // MIME type of Image
	TwitterCard string // "summary_large_image"
}
