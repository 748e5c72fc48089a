package listing

import (
	"testing"

	"github.com/google/uuid"

	"github.com/algeria-ecosystem/ecosystem/internal/domain"
)

func named(names ...string) []*domain.Entity {
	out := make([]*domain.Entity, 0, len(names))
	for _, n := range names {
		out = append(out, &domain.Entity{ID: uuid.New(), Name: n})
	}
	return out
}

func years(ys ...*int) []*domain.Entity {
	out := make([]*domain.Entity, 0, len(ys))
	for i, y := range ys {
		out = append(out, &domain.Entity{ID: uuid.New(), Name: string(rune('a' + i)), FoundedYear: y})
	}
	return out
}

func intp(v int) *int { return &v }

func TestSearchMatchesNameCaseInsensitive(t *testing.T) {
	rows := named("Acme Robotics", "Yassir", "Temtem One")

	got := Search(rows, "  aCmE ", false)
	if len(got) != 1 || got[0].Name != "Acme Robotics" {
		t.Fatalf("want [Acme Robotics], got %d rows", len(got))
	}
}

func TestSearchEmptyQueryKeepsEverything(t *testing.T) {
	rows := named("a", "b", "c")
	for _, q := range []string{"", "   ", "\t"} {
		if got := Search(rows, q, false); len(got) != 3 {
			t.Fatalf("query %q: want 3 rows, got %d", q, len(got))
		}
	}
}

func TestSearchDescriptionOptIn(t *testing.T) {
	rows := []*domain.Entity{
		{ID: uuid.New(), Name: "Yassir", Description: "ride hailing in Algiers"},
	}
	if got := Search(rows, "hailing", false); len(got) != 0 {
		t.Fatalf("name-only search matched description")
	}
	if got := Search(rows, "hailing", true); len(got) != 1 {
		t.Fatalf("description search missed")
	}
}

func TestFilterByWilaya(t *testing.T) {
	oran := uuid.New()
	algiers := uuid.New()
	rows := []*domain.Entity{
		{ID: uuid.New(), Name: "a", WilayaID: &oran},
		{ID: uuid.New(), Name: "b", WilayaID: &algiers},
		{ID: uuid.New(), Name: "c"},
	}

	got := Filter(rows, FilterWilaya, oran.String())
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("want [a], got %d rows", len(got))
	}
}

func TestFilterAllKeepsEverything(t *testing.T) {
	rows := named("a", "b")
	if got := Filter(rows, FilterCategory, FilterAll); len(got) != 2 {
		t.Fatalf("filter=all: want 2 rows, got %d", len(got))
	}
	if got := Filter(rows, FilterNone, uuid.New().String()); len(got) != 2 {
		t.Fatalf("axis=none: want 2 rows, got %d", len(got))
	}
}

func TestFilterUnparseableValueMatchesNothing(t *testing.T) {
	rows := named("a", "b")
	if got := Filter(rows, FilterCategory, "not-a-uuid"); len(got) != 0 {
		t.Fatalf("want 0 rows, got %d", len(got))
	}
}

func TestFilterByCategoryAndMediaType(t *testing.T) {
	fintech := domain.Category{Slug: "fintech", Name: "Fintech"}
	fintech.ID = uuid.New()
	podcast := domain.MediaType{Slug: "podcast", Name: "Podcast"}
	podcast.ID = uuid.New()

	rows := []*domain.Entity{
		{ID: uuid.New(), Name: "a", Categories: []domain.Category{fintech}},
		{ID: uuid.New(), Name: "b"},
		{ID: uuid.New(), Name: "c", MediaTypes: []domain.MediaType{podcast}},
	}

	if got := Filter(rows, FilterCategory, fintech.ID.String()); len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("category filter: want [a], got %d rows", len(got))
	}
	if got := Filter(rows, FilterMediaType, podcast.ID.String()); len(got) != 1 || got[0].Name != "c" {
		t.Fatalf("media type filter: want [c], got %d rows", len(got))
	}
}

func TestSortByFoundedYearNilCountsAsZero(t *testing.T) {
	rows := years(intp(2021), intp(2019), nil)

	desc := SortByFoundedYear(rows, SortDesc)
	if y := foundedYear(desc[0]); y != 2021 {
		t.Fatalf("desc[0]: want 2021, got %d", y)
	}
	if desc[2].FoundedYear != nil {
		t.Fatalf("desc: nil year should sort last")
	}

	asc := SortByFoundedYear(rows, SortAsc)
	if asc[0].FoundedYear != nil {
		t.Fatalf("asc: nil year should sort first")
	}
	if y := foundedYear(asc[2]); y != 2021 {
		t.Fatalf("asc[2]: want 2021, got %d", y)
	}
}

func TestSortByFoundedYearIsStableAndDoesNotMutate(t *testing.T) {
	y := intp(2020)
	rows := []*domain.Entity{
		{ID: uuid.New(), Name: "first", FoundedYear: y},
		{ID: uuid.New(), Name: "second", FoundedYear: y},
		{ID: uuid.New(), Name: "third", FoundedYear: y},
	}

	got := SortByFoundedYear(rows, SortDesc)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Name != want {
			t.Fatalf("equal years reordered: pos %d want %q got %q", i, want, got[i].Name)
		}
	}
	if rows[0].Name != "first" || rows[2].Name != "third" {
		t.Fatalf("input slice mutated")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 1}, {9, 1}, {10, 2}, {18, 2}, {19, 3},
	}
	for _, c := range cases {
		if got := TotalPages(c.n); got != c.want {
			t.Fatalf("TotalPages(%d): want %d, got %d", c.n, c.want, got)
		}
	}
}

func TestPaginate(t *testing.T) {
	rows := make([]*domain.Entity, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, &domain.Entity{ID: uuid.New()})
	}

	if got := Paginate(rows, 1); len(got) != PageSize {
		t.Fatalf("page 1: want %d rows, got %d", PageSize, len(got))
	}
	if got := Paginate(rows, 2); len(got) != 3 {
		t.Fatalf("page 2: want 3 rows, got %d", len(got))
	}
	if got := Paginate(rows, 3); len(got) != 0 {
		t.Fatalf("page past end: want 0 rows, got %d", len(got))
	}
	if got := Paginate(rows, 0); len(got) != PageSize {
		t.Fatalf("page 0 clamps to 1: want %d rows, got %d", PageSize, len(got))
	}
}

func TestStateChangesResetPage(t *testing.T) {
	s := State{Page: 4}

	if got := s.WithSearch("acme"); got.Page != 1 {
		t.Fatalf("WithSearch: want page 1, got %d", got.Page)
	}
	if got := s.WithFilter(uuid.New().String()); got.Page != 1 {
		t.Fatalf("WithFilter: want page 1, got %d", got.Page)
	}
	if got := s.WithSortOrder(SortAsc); got.Page != 4 {
		t.Fatalf("WithSortOrder: page should be kept, got %d", got.Page)
	}
}

func TestApplyPipeline(t *testing.T) {
	rows := []*domain.Entity{
		{ID: uuid.New(), Name: "Alpha Labs", FoundedYear: intp(2021)},
		{ID: uuid.New(), Name: "Alpha Works", FoundedYear: intp(2019)},
		{ID: uuid.New(), Name: "Alpha Media"},
		{ID: uuid.New(), Name: "Beta"},
	}

	got := Apply(rows, State{SearchQuery: "alpha", SortOrder: SortDesc, Page: 1})
	if got.Total != 3 || got.TotalPages != 1 {
		t.Fatalf("want total=3 pages=1, got total=%d pages=%d", got.Total, got.TotalPages)
	}
	wantOrder := []string{"Alpha Labs", "Alpha Works", "Alpha Media"}
	for i, want := range wantOrder {
		if got.Items[i].Name != want {
			t.Fatalf("pos %d: want %q, got %q", i, want, got.Items[i].Name)
		}
	}
}
