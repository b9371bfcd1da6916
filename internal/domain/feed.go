package domain

import "context"

// CatalogFetcher fetches conference records from a remote feed, used to seed
// an empty catalog at startup.
type CatalogFetcher interface {
	Fetch(ctx context.Context, url string) ([]*Conference, error)
}
