package catalog

import (
	"net/url"
	"regexp"
	"strconv"
)

// Route is the resolved navigation target for a URL: either the catalog
// grid or a single review's detail view. Using a closed sum type keeps
// invalid combinations (a "detail" without an id) unrepresentable.
type Route interface {
	isRoute()
}

// CatalogRoute shows the paginated review grid.
type CatalogRoute struct{}

// DetailRoute shows a single review.
type DetailRoute struct {
	ReviewID int
}

func (CatalogRoute) isRoute() {}
func (DetailRoute) isRoute()  {}

var (
	rePathForm = regexp.MustCompile(`^/review/(\d+)/?$`)
	reHashForm = regexp.MustCompile(`^#?review-(\d+)$`)
)

// ParseRoute maps a request URL onto a Route. Three forms resolve to a
// detail view, checked in order:
//
//	/review/<id>      canonical path form
//	#review-<id>      legacy hash form (fragment as received)
//	?review=<id>      legacy query form
//
// Everything else is the catalog.
func ParseRoute(path, fragment string, query url.Values) Route {
	if m := rePathForm.FindStringSubmatch(path); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return DetailRoute{ReviewID: id}
		}
	}
	if m := reHashForm.FindStringSubmatch(fragment); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return DetailRoute{ReviewID: id}
		}
	}
	if v := query.Get("review"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			return DetailRoute{ReviewID: id}
		}
	}
	return CatalogRoute{}
}

// ResolveRoute checks a parsed route against the store. A detail route whose
// id does not exist degrades to the catalog, exactly as if no id were
// present.
func ResolveRoute(s *Store, r Route) Route {
	if d, ok := r.(DetailRoute); ok && !s.Has(d.ReviewID) {
		return CatalogRoute{}
	}
	return r
}
