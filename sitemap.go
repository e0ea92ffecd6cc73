package snarkflix

import (
	"encoding/xml"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snarkflix/snarkflix/catalog"
	"github.com/snarkflix/snarkflix/views"
)

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSImage string       `xml:"xmlns:image,attr,omitempty"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string         `xml:"loc"`
	LastMod    string         `xml:"lastmod,omitempty"`
	ChangeFreq string         `xml:"changefreq,omitempty"`
	Priority   string         `xml:"priority,omitempty"`
	Images     []sitemapImage `xml:"image:image,omitempty"`
}

type sitemapImage struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title,omitempty"`
	Caption string `xml:"image:caption,omitempty"`
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
const sitemapImageNS = "http://www.google.com/schemas/sitemap-image/1.1"

// sitemapPriority maps a review's score band to its crawl priority. Higher
// rated reviews get surfaced harder.
func sitemapPriority(score int) string {
	switch {
	case score >= 80:
		return "0.9"
	case score >= 60:
		return "0.8"
	default:
		return "0.7"
	}
}

// sitemapChangeFreq maps a review's age to its expected change frequency.
func sitemapChangeFreq(published time.Time, now time.Time) string {
	if published.IsZero() {
		return "yearly"
	}
	age := now.Sub(published)
	switch {
	case age <= 30*24*time.Hour:
		return "weekly"
	case age <= 180*24*time.Hour:
		return "monthly"
	default:
		return "yearly"
	}
}

func buildSitemap(site views.Site, reviews []catalog.Review, now time.Time) sitemapURLSet {
	urls := []sitemapURL{
		{
			Loc:        views.AbsoluteURL(site, "/"),
			ChangeFreq: "daily",
			Priority:   "1.0",
		},
	}
	// Section anchors on the catalog page.
	for _, anchor := range []string{"#reviews", "#categories", "#about"} {
		urls = append(urls, sitemapURL{
			Loc:        views.AbsoluteURL(site, "/") + anchor,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, r := range reviews {
		published := r.PublishedAt()
		u := sitemapURL{
			Loc:        views.ReviewURL(site, r.ID),
			ChangeFreq: sitemapChangeFreq(published, now),
			Priority:   sitemapPriority(r.AIScore),
		}
		if !published.IsZero() {
			u.LastMod = published.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	return sitemapURLSet{XMLNS: sitemapNS, URLs: urls}
}

func buildImageSitemap(site views.Site, reviews []catalog.Review) sitemapURLSet {
	var urls []sitemapURL
	for _, r := range reviews {
		var images []sitemapImage
		for _, src := range r.AllImages() {
			images = append(images, sitemapImage{
				Loc:     views.AbsoluteURL(site, src),
				Title:   r.Title,
				Caption: r.Title + " movie review",
			})
		}
		if len(images) == 0 {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:    views.ReviewURL(site, r.ID),
			Images: images,
		})
	}
	return sitemapURLSet{XMLNS: sitemapNS, XMLNSImage: sitemapImageNS, URLs: urls}
}

func writeSitemapXML(w io.Writer, set sitemapURLSet) error {
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(set)
}

func (a *App) handleSitemap(c echo.Context) error {
	set := buildSitemap(a.Site, a.Store.Reviews(), time.Now())
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemapXML(c.Response(), set)
}

func (a *App) handleImageSitemap(c echo.Context) error {
	set := buildImageSitemap(a.Site, a.Store.Reviews())
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemapXML(c.Response(), set)
}
