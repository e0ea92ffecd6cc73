package snarkflix

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snarkflix/snarkflix/catalog"
	"github.com/snarkflix/snarkflix/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves the review feed, newest first.
func (a *App) handleFeed(c echo.Context) error {
	state := catalog.DefaultViewState()
	reviews := catalog.Query(a.Store.Reviews(), state)

	items := make([]rssItem, 0, len(reviews))
	for _, r := range reviews {
		pubDate := ""
		if t := r.PublishedAt(); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
		}
		reviewURL := views.ReviewURL(a.Site, r.ID)
		desc := r.AISummary
		if r.Tagline != "" {
			desc = r.Tagline + " " + desc
		}
		items = append(items, rssItem{
			Title:       r.Title + " Review - SnarkAI Score: " + strconv.Itoa(r.AIScore) + "/100",
			Link:        reviewURL,
			Description: desc,
			Category:    catalog.CategoryName(r.Category),
			PubDate:     pubDate,
			GUID:        reviewURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        a.Config.URL,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
