package helpers

import (
	"net/http"
	"strconv"

	"conferencehub/internal/domain"
)

// ParseFilterSpec reads the catalog filter dimensions from the request query
// string. Missing or unparsable values leave their dimension empty, which the
// filter treats as match-all.
//
// Recognized parameters: search, category (repeatable), status (repeatable),
// date, date_from, date_to, price_min, price_max.
func ParseFilterSpec(r *http.Request) domain.FilterSpec {
	q := r.URL.Query()
	spec := domain.FilterSpec{
		Search:    q.Get("search"),
		DateExact: q.Get("date"),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
	}
	for _, c := range q["category"] {
		if c != "" {
			spec.Categories = append(spec.Categories, c)
		}
	}
	for _, st := range q["status"] {
		if st != "" {
			spec.Statuses = append(spec.Statuses, st)
		}
	}
	if s := q.Get("price_min"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			spec.PriceMin = &v
		}
	}
	if s := q.Get("price_max"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			spec.PriceMax = &v
		}
	}
	return spec
}
