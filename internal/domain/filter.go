package domain

import (
	"strings"
	"time"
)

// FilterSpec is the set of recognized catalog query dimensions. Dimensions are
// combined with AND; an empty or zero value for a dimension matches every
// conference on that dimension.
type FilterSpec struct {
	Search     string
	Categories []string
	Statuses   []string
	DateExact  string
	DateFrom   string
	DateTo     string
	PriceMin   *float64
	PriceMax   *float64
}

// dateLayouts are the stored-date forms seen in the catalog. Values carrying a
// time component are reduced to their calendar date before comparison.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// NormalizeDate parses an ISO-ish date string and reduces it to a plain
// calendar date in UTC, dropping the time of day. A stored value like
// "2025-03-10T00:00:00.000Z" and a date-only user input "2025-03-10" normalize
// to the same instant regardless of the runtime's local timezone.
func NormalizeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FilterConferences returns the conferences matching spec, preserving catalog
// order. The function is pure and idempotent: filtering an already-filtered
// list with the same spec returns the same list, and the zero spec returns
// every conference.
func FilterConferences(list []*Conference, spec FilterSpec) []*Conference {
	out := make([]*Conference, 0, len(list))
	for _, conf := range list {
		if matches(conf, spec) {
			out = append(out, conf)
		}
	}
	return out
}

func matches(conf *Conference, spec FilterSpec) bool {
	if s := strings.TrimSpace(spec.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(conf.Name), needle) &&
			!strings.Contains(strings.ToLower(conf.Description), needle) &&
			!strings.Contains(strings.ToLower(conf.Location), needle) {
			return false
		}
	}

	if len(spec.Categories) > 0 {
		if !containsAny(conf.Category.Normalized(), spec.Categories) {
			return false
		}
	}

	if len(spec.Statuses) > 0 {
		found := false
		for _, st := range spec.Statuses {
			if string(conf.Status) == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if spec.DateExact != "" || spec.DateFrom != "" || spec.DateTo != "" {
		confDate, ok := NormalizeDate(conf.Date)
		if !ok {
			return false
		}
		if spec.DateExact != "" {
			want, ok := NormalizeDate(spec.DateExact)
			if !ok || !confDate.Equal(want) {
				return false
			}
		}
		if spec.DateFrom != "" {
			from, ok := NormalizeDate(spec.DateFrom)
			if !ok || confDate.Before(from) {
				return false
			}
		}
		if spec.DateTo != "" {
			to, ok := NormalizeDate(spec.DateTo)
			if !ok || confDate.After(to) {
				return false
			}
		}
	}

	if spec.PriceMin != nil && conf.Price < *spec.PriceMin {
		return false
	}
	if spec.PriceMax != nil && conf.Price > *spec.PriceMax {
		return false
	}

	return true
}

func containsAny(have CategoryList, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// PromoTag returns the promotional display tag for a conference date: events
// in December carry the "TechMeet 2024" tag, all others none. Purely a display
// annotation; it never affects filtering or storage.
func PromoTag(date string) string {
	t, ok := NormalizeDate(date)
	if !ok {
		return ""
	}
	if t.Month() == time.December {
		return "TechMeet 2024"
	}
	return ""
}
