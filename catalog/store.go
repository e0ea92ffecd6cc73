package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested review does not exist.
var ErrNotFound = errors.New("catalog: review not found")

// Store is the read-only review record store. It is safe for unsynchronized
// concurrent reads: nothing mutates it after Load returns.
type Store struct {
	reviews []Review
	byID    map[int]int // id -> index into reviews
}

// Load reads and validates the review data file. The file holds an ordered
// JSON array of review records; original relative order is preserved so that
// stable sorts keep it for ties.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Store from raw JSON review data.
func Parse(data []byte) (*Store, error) {
	var reviews []Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("catalog: decode reviews: %w", err)
	}
	byID := make(map[int]int, len(reviews))
	for i, r := range reviews {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if prev, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate review id %d (records %d and %d)", r.ID, prev, i)
		}
		byID[r.ID] = i
	}
	return &Store{reviews: reviews, byID: byID}, nil
}

// Len returns the number of reviews in the store.
func (s *Store) Len() int {
	return len(s.reviews)
}

// Reviews returns the full record sequence in original order. Callers must
// not mutate the returned slice elements; sorting always goes through a copy
// (see Query).
func (s *Store) Reviews() []Review {
	return s.reviews
}

// Get returns the review with the given id.
func (s *Store) Get(id int) (Review, error) {
	i, ok := s.byID[id]
	if !ok {
		return Review{}, ErrNotFound
	}
	return s.reviews[i], nil
}

// Has reports whether a review with the given id exists.
func (s *Store) Has(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Related returns the n most recently published reviews excluding the one
// with the given id, for the "More Reviews" section of a detail page.
func (s *Store) Related(id, n int) []Review {
	related := make([]Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.ID != id {
			related = append(related, r)
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].PublishedAt().After(related[j].PublishedAt())
	})
	if len(related) > n {
		related = related[:n]
	}
	return related
}

// Years returns the distinct release years in descending order, used to
// populate the year filter control.
func (s *Store) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range s.reviews {
		if _, ok := seen[r.ReleaseYear]; !ok {
			seen[r.ReleaseYear] = struct{}{}
			years = append(years, r.ReleaseYear)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// CategoryCounts returns the number of reviews per category slug.
func (s *Store) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.reviews {
		counts[r.Category]++
	}
	return counts
}

// Suggestion is one search-autocomplete entry.
type Suggestion struct {
	ID       int
	Title    string
	Category string
}

// Suggest returns up to n reviews whose title or category contains term,
// case-insensitively, in store order. Terms shorter than two characters
// yield nothing; single keystrokes are too noisy to suggest on.
func (s *Store) Suggest(term string, n int) []Suggestion {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < 2 {
		return nil
	}
	var out []Suggestion
	for _, r := range s.reviews {
		if strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.Category), term) {
			out = append(out, Suggestion{ID: r.ID, Title: r.Title, Category: r.Category})
			if len(out) == n {
				break
			}
		}
	}
	return out
}
