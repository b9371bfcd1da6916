package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFilterSpec(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/conferences?search=dev&category=Web&category=AI&status=Open&date=2025-06-01&price_min=50&price_max=300", nil)

	spec := ParseFilterSpec(r)
	require.Equal(t, "dev", spec.Search)
	require.Equal(t, []string{"Web", "AI"}, spec.Categories)
	require.Equal(t, []string{"Open"}, spec.Statuses)
	require.Equal(t, "2025-06-01", spec.DateExact)
	require.NotNil(t, spec.PriceMin)
	require.Equal(t, 50.0, *spec.PriceMin)
	require.NotNil(t, spec.PriceMax)
	require.Equal(t, 300.0, *spec.PriceMax)
}

func TestParseFilterSpecEmptyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/conferences", nil)
	spec := ParseFilterSpec(r)
	require.Empty(t, spec.Search)
	require.Empty(t, spec.Categories)
	require.Empty(t, spec.Statuses)
	require.Nil(t, spec.PriceMin)
	require.Nil(t, spec.PriceMax)
}

func TestParseFilterSpecIgnoresUnparsablePrices(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/conferences?price_min=abc&price_max=&date_from=2025-01-01&date_to=2025-12-31", nil)
	spec := ParseFilterSpec(r)
	require.Nil(t, spec.PriceMin)
	require.Nil(t, spec.PriceMax)
	require.Equal(t, "2025-01-01", spec.DateFrom)
	require.Equal(t, "2025-12-31", spec.DateTo)
}
