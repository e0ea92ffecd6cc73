package snarkflix

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/snarkflix/snarkflix/catalog"
	"github.com/snarkflix/snarkflix/views"
)

func (a *App) handleHome(c echo.Context) error {
	// Legacy deep links used /?review=<id>. Resolvable ids get a permanent
	// redirect to the canonical detail URL; anything else falls through to
	// the catalog.
	route := catalog.ParseRoute(c.Request().URL.Path, "", c.QueryParams())
	if d, ok := catalog.ResolveRoute(a.Store, route).(catalog.DetailRoute); ok {
		return c.Redirect(http.StatusMovedPermanently, "/review/"+strconv.Itoa(d.ReviewID))
	}

	state := catalog.StateFromQuery(c.QueryParams())
	result := catalog.Query(a.Store.Reviews(), state)
	page := catalog.Paginate(result, state.Page)

	if c.Request().Header.Get("HX-Request") == "true" {
		if page.Number > 1 {
			return Render(c, views.CatalogAppend(a.Site, state, page))
		}
		return Render(c, views.CatalogResults(a.Site, state, page))
	}
	return Render(c, views.Home(a.Site, a.Store, state, page))
}

func (a *App) handleReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	review, err := a.Store.Get(id)
	if err != nil {
		if err == catalog.ErrNotFound {
			// Unknown ids land on the catalog rather than a dead end.
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}
	related := a.Store.Related(id, 3)
	return Render(c, views.Detail(a.Site, review, related))
}

func (a *App) handleSuggest(c echo.Context) error {
	suggestions := a.Store.Suggest(c.QueryParam("q"), 5)
	return Render(c, views.SuggestionOptions(suggestions))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
