package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"conferencehub/internal/domain"
)

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that downloads a JSON conference feed.
// The feed body is a JSON array of conference objects in the same shape the
// API serves, so exported catalogs can be re-imported directly.
func NewHTTPFetcher(client *http.Client) domain.CatalogFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]*domain.Conference, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog feed returned status: %d", resp.StatusCode)
	}

	var confs []*domain.Conference
	if err := json.NewDecoder(resp.Body).Decode(&confs); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed: %w", err)
	}
	return confs, nil
}
