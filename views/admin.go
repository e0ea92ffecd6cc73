package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/snarkflix/snarkflix/analytics"
)

// AdminLogin renders the admin password prompt.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(`<meta charset="UTF-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		buf.WriteString(`<meta name="robots" content="noindex">`)
		buf.WriteString(`<title>Admin | ` + esc(site.Name) + `</title>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
		buf.WriteString(`</head><body class="snarkflix-admin">`)
		buf.WriteString(`<main class="snarkflix-container snarkflix-admin-login">`)
		buf.WriteString(`<h1>` + esc(site.Name) + ` Admin</h1>`)
		if showError {
			buf.WriteString(`<p class="snarkflix-admin-error" role="alert">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
		buf.WriteString(`<label for="admin-password">Password</label>`)
		buf.WriteString(`<input id="admin-password" type="password" name="password" autocomplete="current-password" autofocus>`)
		buf.WriteString(`<button type="submit">Log in</button>`)
		buf.WriteString(`</form>`)
		buf.WriteString(`</main></body></html>`)
	})
}

// AdminAnalyticsOff renders the dashboard placeholder shown when visit
// collection is disabled by configuration.
func AdminAnalyticsOff(site Site, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(`<meta charset="UTF-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		buf.WriteString(`<meta name="robots" content="noindex">`)
		buf.WriteString(`<title>Stats | ` + esc(site.Name) + `</title>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
		buf.WriteString(`</head><body class="snarkflix-admin">`)
		buf.WriteString(`<main class="snarkflix-container snarkflix-admin-stats">`)
		buf.WriteString(`<h1>Stats</h1>`)
		buf.WriteString(`<p>Analytics collection is disabled. Set ANALYTICS_ENABLED=true to start recording visits.</p>`)
		buf.WriteString(`<form method="post" action="/admin/logout/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
		buf.WriteString(`<button type="submit">Log out</button>`)
		buf.WriteString(`</form>`)
		buf.WriteString(`</main></body></html>`)
	})
}

// AdminStats renders the analytics dashboard. titles maps review ids to
// their display titles; unknown ids fall back to the id itself.
func AdminStats(site Site, stats *analytics.Stats, titles map[int]string, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(`<meta charset="UTF-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		buf.WriteString(`<meta name="robots" content="noindex">`)
		buf.WriteString(`<title>Stats | ` + esc(site.Name) + `</title>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
		buf.WriteString(`</head><body class="snarkflix-admin">`)
		buf.WriteString(`<main class="snarkflix-container snarkflix-admin-stats">`)

		buf.WriteString(`<header class="snarkflix-admin-header">`)
		buf.WriteString(`<h1>Stats &mdash; last ` + strconv.Itoa(stats.Days) + ` days</h1>`)
		buf.WriteString(`<nav>`)
		for _, d := range []int{7, 30, 90, 365} {
			buf.WriteString(`<a href="/admin/stats/?days=` + strconv.Itoa(d) + `">` + strconv.Itoa(d) + `d</a> `)
		}
		buf.WriteString(`</nav>`)
		buf.WriteString(`<form method="post" action="/admin/logout/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
		buf.WriteString(`<button type="submit">Log out</button>`)
		buf.WriteString(`</form>`)
		buf.WriteString(`</header>`)

		buf.WriteString(`<section class="snarkflix-admin-totals">`)
		buf.WriteString(`<div><strong>` + strconv.Itoa(stats.TotalViews) + `</strong> views</div>`)
		buf.WriteString(`<div><strong>` + strconv.Itoa(stats.UniqueVisitors) + `</strong> unique visitors</div>`)
		buf.WriteString(`</section>`)

		buf.WriteString(`<section><h2>Top Reviews</h2><table>`)
		buf.WriteString(`<tr><th>Review</th><th>Views</th></tr>`)
		for _, rs := range stats.TopReviews {
			title, ok := titles[rs.ReviewID]
			if !ok {
				title = "#" + strconv.Itoa(rs.ReviewID)
			}
			buf.WriteString(`<tr><td><a href="/review/` + strconv.Itoa(rs.ReviewID) + `">` +
				esc(title) + `</a></td><td>` + strconv.Itoa(rs.Views) + `</td></tr>`)
		}
		buf.WriteString(`</table></section>`)

		buf.WriteString(`<section><h2>Top Pages</h2><table>`)
		buf.WriteString(`<tr><th>Path</th><th>Views</th></tr>`)
		for _, ps := range stats.TopPages {
			buf.WriteString(`<tr><td>` + esc(ps.Path) + `</td><td>` + strconv.Itoa(ps.Views) + `</td></tr>`)
		}
		buf.WriteString(`</table></section>`)

		writeDimensionTable(buf, "Referrers", stats.ReferrerStats)
		writeDimensionTable(buf, "Devices", stats.DeviceStats)

		buf.WriteString(`<section><h2>Daily Views</h2><table>`)
		buf.WriteString(`<tr><th>Date</th><th>Views</th></tr>`)
		for _, dv := range stats.DailyViews {
			buf.WriteString(`<tr><td>` + esc(dv.Date) + `</td><td>` + strconv.Itoa(dv.Views) + `</td></tr>`)
		}
		buf.WriteString(`</table></section>`)

		buf.WriteString(`</main></body></html>`)
	})
}

func writeDimensionTable(buf *bytes.Buffer, title string, dims []analytics.DimensionStat) {
	buf.WriteString(`<section><h2>` + esc(title) + `</h2><table>`)
	buf.WriteString(`<tr><th>Name</th><th>Count</th></tr>`)
	for _, d := range dims {
		buf.WriteString(`<tr><td>` + esc(d.Name) + `</td><td>` + strconv.Itoa(d.Count) + `</td></tr>`)
	}
	buf.WriteString(`</table></section>`)
}
