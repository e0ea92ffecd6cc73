package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fragment string
		query    string
		want     Route
	}{
		{"root", "/", "", "", CatalogRoute{}},
		{"path form", "/review/7", "", "", DetailRoute{ReviewID: 7}},
		{"path form trailing slash", "/review/7/", "", "", DetailRoute{ReviewID: 7}},
		{"path form non-numeric", "/review/abc", "", "", CatalogRoute{}},
		{"hash form", "/", "#review-12", "", DetailRoute{ReviewID: 12}},
		{"hash form without marker", "/", "review-12", "", DetailRoute{ReviewID: 12}},
		{"hash form garbage", "/", "#review-x", "", CatalogRoute{}},
		{"query form", "/", "", "review=3", DetailRoute{ReviewID: 3}},
		{"query form non-numeric", "/", "", "review=soon", CatalogRoute{}},
		{"path wins over query", "/review/7", "", "review=3", DetailRoute{ReviewID: 7}},
		{"unrelated path", "/about", "", "", CatalogRoute{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got := ParseRoute(tt.path, tt.fragment, q)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRoute(t *testing.T) {
	store := storeFromReviews(t, testReviews())

	assert.Equal(t, DetailRoute{ReviewID: 2}, ResolveRoute(store, DetailRoute{ReviewID: 2}))
	assert.Equal(t, CatalogRoute{}, ResolveRoute(store, DetailRoute{ReviewID: 999}),
		"unknown ids degrade to the catalog")
	assert.Equal(t, CatalogRoute{}, ResolveRoute(store, CatalogRoute{}))
}
