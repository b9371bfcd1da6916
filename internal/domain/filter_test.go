package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCatalog() []*Conference {
	return []*Conference{
		{
			ID:       "a",
			Name:     "DevCon",
			Category: CategoryList{"Web"},
			Price:    100,
			Date:     "2025-06-01",
			Status:   StatusOpen,
		},
		{
			ID:       "b",
			Name:     "AI Summit",
			Category: CategoryList{"AI"},
			Price:    300,
			Date:     "2025-12-05",
			Status:   StatusClosed,
		},
	}
}

func ids(list []*Conference) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterConferencesEmptySpecIsIdentity(t *testing.T) {
	catalog := testCatalog()
	got := FilterConferences(catalog, FilterSpec{})
	require.Equal(t, ids(catalog), ids(got))
}

func TestFilterConferencesIdempotent(t *testing.T) {
	catalog := testCatalog()
	specs := []FilterSpec{
		{},
		{Categories: []string{"AI"}},
		{Search: "dev"},
		{PriceMin: floatPtr(50), PriceMax: floatPtr(200)},
		{Statuses: []string{"Open"}},
		{DateFrom: "2025-07-01"},
	}
	for _, spec := range specs {
		once := FilterConferences(catalog, spec)
		twice := FilterConferences(once, spec)
		require.Equal(t, ids(once), ids(twice))
	}
}

func TestFilterConferencesByCategory(t *testing.T) {
	got := FilterConferences(testCatalog(), FilterSpec{Categories: []string{"AI"}})
	require.Equal(t, []string{"b"}, ids(got))
}

func TestFilterConferencesBySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches name case-insensitively", "dev", []string{"a"}},
		{"matches other name", "summit", []string{"b"}},
		{"empty matches all", "", []string{"a", "b"}},
		{"no match", "blockchain", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterConferences(testCatalog(), FilterSpec{Search: tt.search})
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterConferencesSearchMatchesDescriptionAndLocation(t *testing.T) {
	catalog := []*Conference{
		{ID: "a", Name: "DevCon", Description: "Hands-on workshops", Location: "Berlin"},
		{ID: "b", Name: "AI Summit", Description: "Research talks", Location: "Lisbon"},
	}
	require.Equal(t, []string{"a"}, ids(FilterConferences(catalog, FilterSpec{Search: "workshops"})))
	require.Equal(t, []string{"b"}, ids(FilterConferences(catalog, FilterSpec{Search: "lisbon"})))
}

func TestFilterConferencesByStatus(t *testing.T) {
	got := FilterConferences(testCatalog(), FilterSpec{Statuses: []string{"Closed", "Sold Out"}})
	require.Equal(t, []string{"b"}, ids(got))
}

func TestFilterConferencesByPriceRange(t *testing.T) {
	catalog := testCatalog()
	got := FilterConferences(catalog, FilterSpec{PriceMin: floatPtr(100), PriceMax: floatPtr(100)})
	require.Equal(t, []string{"a"}, ids(got))

	got = FilterConferences(catalog, FilterSpec{PriceMin: floatPtr(150)})
	require.Equal(t, []string{"b"}, ids(got))

	got = FilterConferences(catalog, FilterSpec{PriceMax: floatPtr(50)})
	require.Empty(t, got)
}

func TestFilterConferencesDateIgnoresTimeOfDay(t *testing.T) {
	// A stored timestamp and a date-only filter input must compare equal in
	// any runtime timezone.
	restore := time.Local
	defer func() { time.Local = restore }()
	for _, loc := range []string{"UTC", "America/Los_Angeles", "Asia/Tokyo"} {
		l, err := time.LoadLocation(loc)
		require.NoError(t, err)
		time.Local = l

		catalog := []*Conference{
			{ID: "a", Date: "2025-03-10T00:00:00.000Z"},
		}
		got := FilterConferences(catalog, FilterSpec{DateExact: "2025-03-10"})
		require.Equal(t, []string{"a"}, ids(got), "timezone %s", loc)
	}
}

func TestFilterConferencesDateRange(t *testing.T) {
	catalog := testCatalog()
	got := FilterConferences(catalog, FilterSpec{DateFrom: "2025-07-01"})
	require.Equal(t, []string{"b"}, ids(got))

	got = FilterConferences(catalog, FilterSpec{DateTo: "2025-07-01"})
	require.Equal(t, []string{"a"}, ids(got))

	got = FilterConferences(catalog, FilterSpec{DateFrom: "2025-01-01", DateTo: "2025-12-31"})
	require.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterConferencesCombinesDimensionsWithAnd(t *testing.T) {
	got := FilterConferences(testCatalog(), FilterSpec{
		Categories: []string{"AI"},
		Statuses:   []string{"Open"},
	})
	require.Empty(t, got)
}

func TestNormalizeDate(t *testing.T) {
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2025-03-10",
		"2025-03-10T00:00:00.000Z",
		"2025-03-10T15:04:05Z",
	} {
		got, ok := NormalizeDate(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := NormalizeDate("not a date")
	require.False(t, ok)
	_, ok = NormalizeDate("")
	require.False(t, ok)
}

func TestPromoTag(t *testing.T) {
	require.Equal(t, "TechMeet 2024", PromoTag("2025-12-05"))
	require.Equal(t, "TechMeet 2024", PromoTag("2024-12-25T10:00:00Z"))
	require.Equal(t, "", PromoTag("2025-06-01"))
	require.Equal(t, "", PromoTag("garbage"))
}

func floatPtr(f float64) *float64 { return &f }
