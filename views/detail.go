package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/snarkflix/snarkflix/catalog"
)

// Detail renders one review's full page: header with score and metadata,
// hero image, share links, the review body with interleaved images, the
// trailer embed, and a strip of related reviews.
func Detail(site Site, r catalog.Review, related []catalog.Review) templ.Component {
	meta := ReviewMeta(site, r)
	return pageShell(site, meta, ReviewJsonLD(site, r), "snarkflix-detail", func(buf *bytes.Buffer) {
		buf.WriteString(`<main id="main" class="snarkflix-container">`)
		buf.WriteString(`<nav class="snarkflix-breadcrumb" aria-label="Breadcrumb">`)
		buf.WriteString(`<a href="/">Home</a> &rsaquo; `)
		buf.WriteString(`<a href="/?category=` + esc(r.Category) + `">` + esc(catalog.CategoryName(r.Category)) + `</a> &rsaquo; `)
		buf.WriteString(`<span aria-current="page">` + esc(r.Title) + `</span>`)
		buf.WriteString(`</nav>`)

		buf.WriteString(`<article class="snarkflix-review">`)
		writeDetailHeader(buf, r)

		buf.WriteString(`<div class="snarkflix-review-hero">`)
		buf.WriteString(ResponsiveImage(site, r, r.Title+" movie poster", LoadEager))
		if r.Tagline != "" {
			buf.WriteString(`<p class="snarkflix-review-tagline">` + esc(r.Tagline) + `</p>`)
		}
		buf.WriteString(`</div>`)

		writeShareSection(buf, site, r)

		buf.WriteString(`<div class="snarkflix-review-content">`)
		buf.WriteString(ContentHTML(site, r))
		buf.WriteString(`</div>`)

		writeTrailer(buf, r)
		buf.WriteString(`</article>`)

		writeRelated(buf, site, related)
		buf.WriteString(`</main>`)
	})
}

func writeDetailHeader(buf *bytes.Buffer, r catalog.Review) {
	buf.WriteString(`<header class="snarkflix-review-header">`)
	buf.WriteString(`<h1>` + esc(r.Title) + `</h1>`)
	buf.WriteString(`<span class="snarkflix-score ` + ScoreClass(r.AIScore) + `">SnarkAI Score: ` +
		strconv.Itoa(r.AIScore) + `/100</span>`)
	buf.WriteString(`<p class="snarkflix-review-meta">`)
	buf.WriteString(`<span>` + strconv.Itoa(r.ReleaseYear) + `</span> &middot; `)
	buf.WriteString(`<span>` + esc(r.ReadingDuration) + `</span> &middot; `)
	buf.WriteString(`<time>` + esc(r.PublishDate) + `</time>`)
	buf.WriteString(`</p>`)
	if r.AISummary != "" {
		buf.WriteString(`<p class="snarkflix-review-summary">` + esc(r.AISummary) + `</p>`)
		buf.WriteString(`<p class="snarkflix-ai-disclaimer">Summary and score generated by SnarkAI. Take with the usual grain of salt.</p>`)
	}
	buf.WriteString(`</header>`)
}

// writeShareSection emits the share links plus the copy-link button. The
// copy button is wired up by the embedded client asset via data-copy-url.
func writeShareSection(buf *bytes.Buffer, site Site, r catalog.Review) {
	buf.WriteString(`<div class="snarkflix-share" aria-label="Share this review">`)
	buf.WriteString(`<span class="snarkflix-share-label">Share:</span>`)
	buf.WriteString(`<a class="snarkflix-share-link" href="` + esc(ShareLink(site, r, ShareTwitter)) +
		`" target="_blank" rel="noopener noreferrer">Twitter</a>`)
	buf.WriteString(`<a class="snarkflix-share-link" href="` + esc(ShareLink(site, r, ShareFacebook)) +
		`" target="_blank" rel="noopener noreferrer">Facebook</a>`)
	buf.WriteString(`<button class="snarkflix-share-copy" data-copy-url="` + esc(ReviewURL(site, r.ID)) +
		`">Copy Link</button>`)
	buf.WriteString(`</div>`)
}

func writeTrailer(buf *bytes.Buffer, r catalog.Review) {
	embed := EmbedURL(r.YouTubeTrailer)
	if embed == "" {
		return
	}
	buf.WriteString(`<section class="snarkflix-trailer" aria-label="Trailer">`)
	buf.WriteString(`<h2>Watch the Trailer</h2>`)
	buf.WriteString(`<iframe src="` + esc(embed) + `" title="` + esc(r.Title) + ` trailer"` +
		` loading="lazy" allowfullscreen` +
		` allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"></iframe>`)
	buf.WriteString(`</section>`)
}

func writeRelated(buf *bytes.Buffer, site Site, related []catalog.Review) {
	if len(related) == 0 {
		return
	}
	buf.WriteString(`<section class="snarkflix-related" aria-label="More reviews">`)
	buf.WriteString(`<h2>More Reviews</h2>`)
	buf.WriteString(`<div class="snarkflix-reviews-grid">`)
	for _, r := range related {
		writeCard(buf, site, r)
	}
	buf.WriteString(`</div></section>`)
}
