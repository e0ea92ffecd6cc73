package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// PageSize is the fixed number of reviews revealed per catalog page.
const PageSize = 6

// Sort orders for the catalog grid.
const (
	SortLatest  = "latest"  // newest publish date first
	SortBest    = "best"    // highest score first
	SortLongest = "longest" // longest reading duration first
)

// CategoryAll selects every category.
const CategoryAll = "all"

// ScoreRange is an inclusive aiScore filter, e.g. 60-79.
type ScoreRange struct {
	Min, Max int
}

// ParseScoreRange parses the wire form "min-max". An empty string means no
// filter; a malformed value is treated the same way.
func ParseScoreRange(s string) (ScoreRange, bool) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return ScoreRange{}, false
	}
	min, err1 := strconv.Atoi(strings.TrimSpace(lo))
	max, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil || min > max {
		return ScoreRange{}, false
	}
	return ScoreRange{Min: min, Max: max}, true
}

// String returns the wire form of the range.
func (r ScoreRange) String() string {
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}

// ViewState is the complete filter/sort/search/pagination configuration for
// one catalog render. It is owned by the handler layer and only ever passed
// into the query engine, never mutated from elsewhere.
type ViewState struct {
	Page       int    // 1-based
	Category   string // slug or "all"
	SearchTerm string
	Sort       string // latest | best | longest
	Score      *ScoreRange
	Year       int // 0 means no year filter
}

// DefaultViewState returns the state a fresh page session starts with.
func DefaultViewState() ViewState {
	return ViewState{Page: 1, Category: CategoryAll, Sort: SortLatest}
}

// StateFromQuery builds a ViewState from the catalog URL query surface
// (category, q, sort, score, year, page). Unknown or malformed values fall
// back to the defaults rather than erroring: a bad filter link still renders
// the catalog.
func StateFromQuery(q url.Values) ViewState {
	state := DefaultViewState()

	if c := q.Get("category"); c != "" && (c == CategoryAll || KnownCategory(c)) {
		state.Category = c
	}
	state.SearchTerm = strings.TrimSpace(q.Get("q"))
	switch q.Get("sort") {
	case SortBest:
		state.Sort = SortBest
	case SortLongest:
		state.Sort = SortLongest
	}
	if r, ok := ParseScoreRange(q.Get("score")); ok {
		state.Score = &r
	}
	if y, err := strconv.Atoi(q.Get("year")); err == nil && y > 0 {
		state.Year = y
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 1 {
		state.Page = p
	}
	return state
}

// Values encodes the state back into URL query form, omitting defaults.
// Page is intentionally excluded: filter links always restart at page 1,
// only the load-more affordance carries an explicit page.
func (s ViewState) Values() url.Values {
	q := url.Values{}
	if s.Category != "" && s.Category != CategoryAll {
		q.Set("category", s.Category)
	}
	if s.SearchTerm != "" {
		q.Set("q", s.SearchTerm)
	}
	if s.Sort != "" && s.Sort != SortLatest {
		q.Set("sort", s.Sort)
	}
	if s.Score != nil {
		q.Set("score", s.Score.String())
	}
	if s.Year != 0 {
		q.Set("year", strconv.Itoa(s.Year))
	}
	return q
}

// Filtered reports whether any narrowing filter is active, which controls
// the "Found N reviews" indicator.
func (s ViewState) Filtered() bool {
	return s.SearchTerm != "" || (s.Category != "" && s.Category != CategoryAll) ||
		s.Score != nil || s.Year != 0
}

// Query runs the full pipeline over the review sequence: category filter,
// case-insensitive search, score range, exact year, then a stable sort.
// It is pure: the input slice is never reordered or modified, and identical
// inputs always yield identical output. Pagination is the caller's step.
func Query(reviews []Review, state ViewState) []Review {
	filtered := make([]Review, 0, len(reviews))
	term := strings.ToLower(state.SearchTerm)
	for _, r := range reviews {
		if state.Category != "" && state.Category != CategoryAll && r.Category != state.Category {
			continue
		}
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if state.Score != nil && (r.AIScore < state.Score.Min || r.AIScore > state.Score.Max) {
			continue
		}
		if state.Year != 0 && r.ReleaseYear != state.Year {
			continue
		}
		filtered = append(filtered, r)
	}

	switch state.Sort {
	case SortBest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].AIScore > filtered[j].AIScore
		})
	case SortLongest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReadingMinutes() > filtered[j].ReadingMinutes()
		})
	default: // latest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PublishedAt().After(filtered[j].PublishedAt())
		})
	}
	return filtered
}

// matchesSearch reports whether the lowercased term is a substring of any
// searchable field: title, content, tagline, summary, or category.
func matchesSearch(r Review, term string) bool {
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Content), term) ||
		strings.Contains(strings.ToLower(r.Tagline), term) ||
		strings.Contains(strings.ToLower(r.AISummary), term) ||
		strings.Contains(strings.ToLower(r.Category), term)
}

// Page holds one rendered slice of a query result plus the counts the
// progress indicator and load-more affordance need.
type Page struct {
	Items   []Review
	Number  int  // the page that was requested
	Shown   int  // items visible once this page is appended
	Total   int  // size of the full query result
	HasMore bool // whether a further page exists
}

// Paginate slices the page-th window of PageSize items out of result.
// Pages past the end yield an empty Items slice, never an error.
func Paginate(result []Review, page int) Page {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(result) {
		start = len(result)
	}
	if end > len(result) {
		end = len(result)
	}
	return Page{
		Items:   result[start:end],
		Number:  page,
		Shown:   end,
		Total:   len(result),
		HasMore: end < len(result),
	}
}
