package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/snarkflix/snarkflix/catalog"
)

// Home renders the full catalog page: hero, category cards, the filter
// toolbar, and the first page of results. Subsequent filter changes and
// load-more requests swap in the partials below instead of reloading.
func Home(site Site, store *catalog.Store, state catalog.ViewState, page catalog.Page) templ.Component {
	meta := HomeMeta(site)
	return pageShell(site, meta, WebsiteJsonLD(site), "snarkflix-home", func(buf *bytes.Buffer) {
		buf.WriteString(`<main id="main" class="snarkflix-container">`)
		writeHero(buf, site)
		writeCategories(buf, store, state)
		buf.WriteString(`<section id="reviews" class="snarkflix-reviews" aria-label="Movie reviews">`)
		buf.WriteString(`<h2>Latest Reviews</h2>`)
		writeFilterBar(buf, store, state)
		writeResults(buf, site, state, page)
		buf.WriteString(`</section>`)
		writeAbout(buf, site)
		buf.WriteString(`</main>`)
	})
}

// CatalogResults renders the results region alone, for filter-change
// requests that replace the grid in place.
func CatalogResults(site Site, state catalog.ViewState, page catalog.Page) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeResults(buf, site, state, page)
		writeLiveAnnouncement(buf, page)
	})
}

// CatalogAppend renders one further page of cards for the load-more
// affordance. The cards land at the end of the existing grid; the footer
// and the screen-reader announcement ride along as out-of-band swaps.
func CatalogAppend(site Site, state catalog.ViewState, page catalog.Page) templ.Component {
	return component(func(buf *bytes.Buffer) {
		for _, r := range page.Items {
			writeCard(buf, site, r)
		}
		buf.WriteString(`<div id="catalog-footer" hx-swap-oob="true">`)
		writeResultsFooter(buf, state, page)
		buf.WriteString(`</div>`)
		writeLiveAnnouncement(buf, page)
	})
}

// SuggestionOptions renders datalist options for the search suggestion
// dropdown.
func SuggestionOptions(suggestions []catalog.Suggestion) templ.Component {
	return component(func(buf *bytes.Buffer) {
		for _, s := range suggestions {
			buf.WriteString(`<option value="` + esc(s.Title) + `">` + esc(catalog.CategoryName(s.Category)) + `</option>`)
		}
	})
}

func writeHero(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<section class="snarkflix-hero">`)
	buf.WriteString(`<h2>Movie Reviews With Bite</h2>`)
	buf.WriteString(`<p>` + esc(site.Description) + `</p>`)
	buf.WriteString(`</section>`)
}

// writeCategories emits one card per category that has at least one review,
// plus the all-reviews card, ordered by the canonical category list.
func writeCategories(buf *bytes.Buffer, store *catalog.Store, state catalog.ViewState) {
	counts := store.CategoryCounts()
	buf.WriteString(`<section id="categories" class="snarkflix-categories" aria-label="Review categories">`)
	buf.WriteString(`<h2>Categories</h2>`)
	buf.WriteString(`<div class="snarkflix-category-grid">`)

	writeCategoryCard(buf, catalog.CategoryAll, "All Reviews", store.Len(), state.Category == catalog.CategoryAll)
	for _, c := range catalog.Categories {
		if counts[c.Slug] == 0 {
			continue
		}
		writeCategoryCard(buf, c.Slug, c.Name, counts[c.Slug], state.Category == c.Slug)
	}
	buf.WriteString(`</div></section>`)
}

func writeCategoryCard(buf *bytes.Buffer, slug, name string, count int, active bool) {
	class := "snarkflix-category-card"
	if active {
		class += " snarkflix-category-card-active"
	}
	href := "/?category=" + slug
	if slug == catalog.CategoryAll {
		href = "/"
	}
	buf.WriteString(`<a class="` + class + `" href="` + href + `#reviews"` +
		` hx-get="` + href + `" hx-target="#catalog-results" hx-swap="outerHTML" hx-push-url="true">`)
	buf.WriteString(`<span class="snarkflix-category-name">` + esc(name) + `</span>`)
	buf.WriteString(`<span class="snarkflix-category-count">` + strconv.Itoa(count) + ` reviews</span>`)
	buf.WriteString(`</a>`)
}

// writeFilterBar emits the search box and the sort, score, and year
// selects. Typing re-queries after a 300ms pause; select changes fire
// immediately. Both replace the results region and push the filtered URL.
func writeFilterBar(buf *bytes.Buffer, store *catalog.Store, state catalog.ViewState) {
	buf.WriteString(`<form id="catalog-filters" class="snarkflix-filters" role="search" action="/" method="get"` +
		` hx-get="/" hx-target="#catalog-results" hx-swap="outerHTML" hx-push-url="true"` +
		` hx-trigger="input changed delay:300ms from:#review-search, change from:find select, search from:#review-search">`)

	if state.Category != catalog.CategoryAll {
		buf.WriteString(`<input type="hidden" name="category" value="` + esc(state.Category) + `">`)
	}

	buf.WriteString(`<div class="snarkflix-search">`)
	buf.WriteString(`<label class="snarkflix-visually-hidden" for="review-search">Search reviews</label>`)
	buf.WriteString(`<input id="review-search" type="search" name="q" list="review-suggestions"` +
		` placeholder="Search reviews..." autocomplete="off" value="` + esc(state.SearchTerm) + `">`)
	buf.WriteString(`<datalist id="review-suggestions"></datalist>`)
	buf.WriteString(`<button type="button" class="snarkflix-search-clear" data-clear-search aria-label="Clear search">&times;</button>`)
	buf.WriteString(`</div>`)

	writeSelect(buf, "sort", "Sort by", []selectOption{
		{catalog.SortLatest, "Latest", state.Sort == catalog.SortLatest},
		{catalog.SortBest, "Best Rated", state.Sort == catalog.SortBest},
		{catalog.SortLongest, "Longest Read", state.Sort == catalog.SortLongest},
	})

	score := ""
	if state.Score != nil {
		score = state.Score.String()
	}
	writeSelect(buf, "score", "Score", []selectOption{
		{"", "All Scores", score == ""},
		{"80-100", "Excellent (80+)", score == "80-100"},
		{"60-79", "Good (60-79)", score == "60-79"},
		{"40-59", "Fair (40-59)", score == "40-59"},
		{"0-39", "Poor (0-39)", score == "0-39"},
	})

	yearOpts := []selectOption{{"", "All Years", state.Year == 0}}
	for _, y := range store.Years() {
		v := strconv.Itoa(y)
		yearOpts = append(yearOpts, selectOption{v, v, state.Year == y})
	}
	writeSelect(buf, "year", "Release year", yearOpts)

	buf.WriteString(`</form>`)
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

func writeSelect(buf *bytes.Buffer, name, label string, opts []selectOption) {
	buf.WriteString(`<label class="snarkflix-visually-hidden" for="filter-` + name + `">` + esc(label) + `</label>`)
	buf.WriteString(`<select id="filter-` + name + `" name="` + name + `">`)
	for _, o := range opts {
		buf.WriteString(`<option value="` + esc(o.Value) + `"`)
		if o.Selected {
			buf.WriteString(` selected`)
		}
		buf.WriteString(`>` + esc(o.Label) + `</option>`)
	}
	buf.WriteString(`</select>`)
}

// writeResults emits the swap target: filtered count, the card grid, and
// the progress/load-more footer.
func writeResults(buf *bytes.Buffer, site Site, state catalog.ViewState, page catalog.Page) {
	buf.WriteString(`<div id="catalog-results">`)
	if state.Filtered() {
		buf.WriteString(`<p class="snarkflix-results-count">Found ` + strconv.Itoa(page.Total) + ` reviews.</p>`)
	}
	buf.WriteString(`<div id="review-grid" class="snarkflix-reviews-grid">`)
	if len(page.Items) == 0 {
		buf.WriteString(`<p class="snarkflix-no-results">No reviews found. Try a different search or category.</p>`)
	}
	for _, r := range page.Items {
		writeCard(buf, site, r)
	}
	buf.WriteString(`</div>`)
	buf.WriteString(`<div id="catalog-footer">`)
	writeResultsFooter(buf, state, page)
	buf.WriteString(`</div>`)
	buf.WriteString(`</div>`)
}

// writeResultsFooter emits the progress line and, when more pages exist,
// the load-more button that appends the next page of cards.
func writeResultsFooter(buf *bytes.Buffer, state catalog.ViewState, page catalog.Page) {
	if page.Total == 0 {
		return
	}
	buf.WriteString(`<p class="snarkflix-progress">Showing ` + strconv.Itoa(page.Shown) +
		` of ` + strconv.Itoa(page.Total) + ` reviews</p>`)
	if !page.HasMore {
		return
	}
	q := state.Values()
	q.Set("page", strconv.Itoa(page.Number+1))
	remaining := page.Total - page.Shown
	buf.WriteString(`<button class="snarkflix-load-more" hx-get="/?` + q.Encode() + `"` +
		` hx-target="#review-grid" hx-swap="beforeend">` +
		`Load More Reviews (` + strconv.Itoa(remaining) + ` remaining)</button>`)
}

// writeLiveAnnouncement updates the polite live region so screen readers
// hear how many reviews are now on screen.
func writeLiveAnnouncement(buf *bytes.Buffer, page catalog.Page) {
	buf.WriteString(`<div id="a11y-live-region" class="snarkflix-visually-hidden" aria-live="polite" hx-swap-oob="true">` +
		`Loaded ` + strconv.Itoa(page.Shown) + ` reviews. ` + strconv.Itoa(page.Total) +
		` total reviews available.</div>`)
}

// writeCard emits one review card for the grid.
func writeCard(buf *bytes.Buffer, site Site, r catalog.Review) {
	href := "/review/" + strconv.Itoa(r.ID)
	buf.WriteString(`<article class="snarkflix-review-card">`)
	buf.WriteString(`<a class="snarkflix-card-link" href="` + href + `">`)
	buf.WriteString(`<div class="snarkflix-card-image">`)
	buf.WriteString(ResponsiveImage(site, r, r.Title+" movie poster", LoadLazy))
	buf.WriteString(`<span class="snarkflix-card-category">` + esc(catalog.CategoryName(r.Category)) + `</span>`)
	buf.WriteString(`</div>`)
	buf.WriteString(`<div class="snarkflix-card-body">`)
	buf.WriteString(`<h3>` + esc(r.Title) + `</h3>`)
	buf.WriteString(`<span class="snarkflix-score ` + ScoreClass(r.AIScore) + `">SnarkAI Score: ` +
		strconv.Itoa(r.AIScore) + `/100</span>`)
	if r.Tagline != "" {
		buf.WriteString(`<p class="snarkflix-card-tagline">` + esc(r.Tagline) + `</p>`)
	}
	buf.WriteString(`<p class="snarkflix-card-summary">` + esc(truncate(r.AISummary, 160)) + `</p>`)
	buf.WriteString(`<p class="snarkflix-card-meta">` + strconv.Itoa(r.ReleaseYear) +
		` &middot; ` + esc(r.ReadingDuration) + ` &middot; ` + esc(r.PublishDate) + `</p>`)
	buf.WriteString(`</div></a></article>`)
}

func writeAbout(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<section id="about" class="snarkflix-about" aria-label="About">`)
	buf.WriteString(`<h2>About ` + esc(site.Name) + `</h2>`)
	buf.WriteString(`<p>Every film gets the same treatment: a proper watch, a sharp eye, and a SnarkAI Score out of 100. No studio favors, no rose-tinted nostalgia.</p>`)
	buf.WriteString(`</section>`)
}
