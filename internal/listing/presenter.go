// Package listing turns a fetched entity set plus user-chosen search, filter,
// sort and page state into the page of records to render. Every step is a
// pure function of its inputs; the input slice is never mutated.
package listing

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
)

// PageSize is the fixed number of records per page.
const PageSize = 9

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "all"

type FilterAxis string

const (
	FilterNone      FilterAxis = "none"
	FilterCategory  FilterAxis = "category"
	FilterWilaya    FilterAxis = "wilaya"
	FilterMediaType FilterAxis = "media_type"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// State is the user-chosen presentation state. Pages are 1-based.
type State struct {
	SearchQuery string
	FilterAxis  FilterAxis
	FilterValue string
	SortOrder   SortOrder
	Page        int

	// MatchDescription widens the search predicate to the description field.
	// The generic listing matches name only.
	MatchDescription bool
}

// WithSearch returns the state with a new search query and the page reset to
// 1, so a narrowed result set never starts on an out-of-range page.
func (s State) WithSearch(q string) State {
	s.SearchQuery = q
	s.Page = 1
	return s
}

// WithFilter returns the state with a new filter value and the page reset to 1.
func (s State) WithFilter(v string) State {
	s.FilterValue = v
	s.Page = 1
	return s
}

// WithSortOrder returns the state with a new sort order. The page is kept.
func (s State) WithSortOrder(o SortOrder) State {
	s.SortOrder = o
	return s
}

// Result is one rendered page plus the paging totals the caller needs to
// clamp navigation.
type Result struct {
	Items      []*domain.Entity `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Search keeps rows whose name contains the trimmed query, case-insensitively.
// An empty (or all-whitespace) query keeps everything.
func Search(in []*domain.Entity, query string, matchDescription bool) []*domain.Entity {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return in
	}
	out := make([]*domain.Entity, 0, len(in))
	for _, e := range in {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
			continue
		}
		if matchDescription && strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

// Filter keeps rows whose classification on the given axis matches value.
// FilterAll (or FilterNone) keeps everything.
func Filter(in []*domain.Entity, axis FilterAxis, value string) []*domain.Entity {
	if axis == FilterNone || axis == "" || value == "" || value == FilterAll {
		return in
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return []*domain.Entity{}
	}
	out := make([]*domain.Entity, 0, len(in))
	for _, e := range in {
		if matchesFilter(e, axis, id) {
			out = append(out, e)
		}
	}
	return out
}

func matchesFilter(e *domain.Entity, axis FilterAxis, id uuid.UUID) bool {
	switch axis {
	case FilterCategory:
		for _, c := range e.Categories {
			if c.ID == id {
				return true
			}
		}
	case FilterWilaya:
		return e.WilayaID != nil && *e.WilayaID == id
	case FilterMediaType:
		for _, m := range e.MediaTypes {
			if m.ID == id {
				return true
			}
		}
	}
	return false
}

// SortByFoundedYear orders rows by founding year, missing years counting as 0
// (so unset-year rows sort as oldest regardless of direction). The sort is
// stable: rows with equal years keep their input order.
func SortByFoundedYear(in []*domain.Entity, order SortOrder) []*domain.Entity {
	out := make([]*domain.Entity, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		yi, yj := foundedYear(out[i]), foundedYear(out[j])
		if order == SortDesc {
			return yi > yj
		}
		return yi < yj
	})
	return out
}

func foundedYear(e *domain.Entity) int {
	if e.FoundedYear == nil {
		return 0
	}
	return *e.FoundedYear
}

// TotalPages returns ceil(n / PageSize); 0 for an empty set.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Paginate slices out the 1-based page. Pages beyond the last valid page are
// not clamped here; the caller clamps (or disables navigation) using
// TotalPages.
func Paginate(in []*domain.Entity, page int) []*domain.Entity {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(in) {
		return []*domain.Entity{}
	}
	end := start + PageSize
	if end > len(in) {
		end = len(in)
	}
	return in[start:end]
}

// Apply runs the full pipeline: search, filter, sort, slice.
func Apply(in []*domain.Entity, s State) Result {
	rows := Search(in, s.SearchQuery, s.MatchDescription)
	rows = Filter(rows, s.FilterAxis, s.FilterValue)
	rows = SortByFoundedYear(rows, s.SortOrder)

	page := s.Page
	if page < 1 {
		page = 1
	}
	return Result{
		Items:      Paginate(rows, page),
		Total:      len(rows),
		Page:       page,
		TotalPages: TotalPages(len(rows)),
	}
}
