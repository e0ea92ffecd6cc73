package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReviews() []Review {
	return []Review{
		{
			ID: 1, Title: "Blade Sprinter", Tagline: "Run faster, replicant",
			AISummary: "A neon chase", Content: "Rain and neon everywhere.",
			Category: "scifi", ReleaseYear: 2017, PublishDate: "Mar 5, 2024",
			ReadingDuration: "8 min read", AIScore: 91, ImageURL: "images/blade.jpg",
		},
		{
			ID: 2, Title: "The Slow Heist", Tagline: "Crime at a crawl",
			AISummary: "Patient thieves", Content: "A vault, a plan, a nap.",
			Category: "crime-mystery", ReleaseYear: 2020, PublishDate: "Jan 12, 2024",
			ReadingDuration: "12 min read", AIScore: 64, ImageURL: "images/heist.jpg",
		},
		{
			ID: 3, Title: "Sword of Sighs", Tagline: "Fantasy with feelings",
			AISummary: "Dragons weep", Content: "The prophecy was laminated.",
			Category: "fantasy", ReleaseYear: 2020, PublishDate: "Jun 1, 2024",
			ReadingDuration: "5 min read", AIScore: 42, ImageURL: "images/sword.jpg",
		},
		{
			ID: 4, Title: "Space Mall", Tagline: "Shopping among the stars",
			AISummary: "Retail in orbit", Content: "Neon food court physics.",
			Category: "scifi", ReleaseYear: 2023, PublishDate: "Jun 1, 2024",
			ReadingDuration: "5 min read", AIScore: 77, ImageURL: "images/mall.jpg",
		},
	}
}

func TestQueryCategoryFilter(t *testing.T) {
	state := DefaultViewState()
	state.Category = "scifi"

	got := Query(testReviews(), state)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "scifi", r.Category)
	}
}

func TestQuerySearchFields(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{"title match", "blade", []int{1}},
		{"content match", "vault", []int{2}},
		{"tagline match", "feelings", []int{3}},
		{"summary match", "retail", []int{4}},
		{"category match", "fantasy", []int{3}},
		{"case insensitive", "NEON", []int{4, 1}},
		{"no match", "zebra", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DefaultViewState()
			state.SearchTerm = tt.term
			got := Query(testReviews(), state)
			var ids []int
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQueryScoreRange(t *testing.T) {
	state := DefaultViewState()
	state.Score = &ScoreRange{Min: 60, Max: 79}

	got := Query(testReviews(), state)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.AIScore, 60)
		assert.LessOrEqual(t, r.AIScore, 79)
	}
}

func TestQueryYearFilter(t *testing.T) {
	state := DefaultViewState()
	state.Year = 2020

	got := Query(testReviews(), state)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, 2020, r.ReleaseYear)
	}
}

func TestQuerySortLatestStable(t *testing.T) {
	got := Query(testReviews(), DefaultViewState())
	var ids []int
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	// Reviews 3 and 4 share a publish date; input order breaks the tie.
	assert.Equal(t, []int{3, 4, 1, 2}, ids)
}

func TestQuerySortBest(t *testing.T) {
	state := DefaultViewState()
	state.Sort = SortBest

	got := Query(testReviews(), state)
	var scores []int
	for _, r := range got {
		scores = append(scores, r.AIScore)
	}
	assert.Equal(t, []int{91, 77, 64, 42}, scores)
}

func TestQuerySortLongest(t *testing.T) {
	state := DefaultViewState()
	state.Sort = SortLongest

	got := Query(testReviews(), state)
	var ids []int
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	// Reviews 3 and 4 tie at 5 minutes; input order preserved.
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	reviews := testReviews()
	state := DefaultViewState()
	state.Sort = SortBest

	Query(reviews, state)
	assert.Equal(t, 1, reviews[0].ID, "input slice must keep its order")
	assert.Equal(t, 4, reviews[3].ID)
}

func TestParseScoreRange(t *testing.T) {
	tests := []struct {
		in   string
		want ScoreRange
		ok   bool
	}{
		{"60-79", ScoreRange{60, 79}, true},
		{"0-39", ScoreRange{0, 39}, true},
		{"80-100", ScoreRange{80, 100}, true},
		{"", ScoreRange{}, false},
		{"banana", ScoreRange{}, false},
		{"79-60", ScoreRange{}, false},
		{"60-", ScoreRange{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseScoreRange(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestStateFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("category", "scifi")
	q.Set("q", "  neon ")
	q.Set("sort", "best")
	q.Set("score", "60-79")
	q.Set("year", "2020")
	q.Set("page", "3")

	state := StateFromQuery(q)
	assert.Equal(t, "scifi", state.Category)
	assert.Equal(t, "neon", state.SearchTerm)
	assert.Equal(t, SortBest, state.Sort)
	require.NotNil(t, state.Score)
	assert.Equal(t, ScoreRange{60, 79}, *state.Score)
	assert.Equal(t, 2020, state.Year)
	assert.Equal(t, 3, state.Page)
}

func TestStateFromQueryBadValuesFallBack(t *testing.T) {
	q := url.Values{}
	q.Set("category", "not-a-genre")
	q.Set("sort", "sideways")
	q.Set("score", "banana")
	q.Set("year", "soon")
	q.Set("page", "0")

	state := StateFromQuery(q)
	assert.Equal(t, DefaultViewState(), state)
}

func TestStateValuesOmitsDefaultsAndPage(t *testing.T) {
	state := DefaultViewState()
	assert.Empty(t, state.Values().Encode())

	state.Category = "horror"
	state.SearchTerm = "ghost"
	state.Sort = SortLongest
	state.Page = 4
	got := state.Values()
	assert.Equal(t, "horror", got.Get("category"))
	assert.Equal(t, "ghost", got.Get("q"))
	assert.Equal(t, SortLongest, got.Get("sort"))
	assert.Empty(t, got.Get("page"), "filter links restart at page 1")
}

func TestPaginate(t *testing.T) {
	reviews := make([]Review, 14)
	for i := range reviews {
		reviews[i].ID = i + 1
	}

	first := Paginate(reviews, 1)
	assert.Len(t, first.Items, PageSize)
	assert.Equal(t, PageSize, first.Shown)
	assert.Equal(t, 14, first.Total)
	assert.True(t, first.HasMore)

	last := Paginate(reviews, 3)
	assert.Len(t, last.Items, 2)
	assert.Equal(t, 14, last.Shown)
	assert.False(t, last.HasMore)

	past := Paginate(reviews, 9)
	assert.Empty(t, past.Items)
	assert.False(t, past.HasMore)

	zero := Paginate(reviews, 0)
	assert.Equal(t, 1, zero.Number)
	assert.Len(t, zero.Items, PageSize)
}

func TestFiltered(t *testing.T) {
	state := DefaultViewState()
	assert.False(t, state.Filtered())

	state.SearchTerm = "x"
	assert.True(t, state.Filtered())

	state = DefaultViewState()
	state.Score = &ScoreRange{0, 39}
	assert.True(t, state.Filtered())
}
