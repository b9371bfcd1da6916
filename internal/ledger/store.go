// Package ledger persists per-profile favorite, registered, and subscription
// state in a small JSON file, independent of the conference catalog. It is the
// backend analog of browser local storage: best-effort display state, not
// authoritative inventory control.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"conferencehub/internal/domain"
)

// ledgerData is the on-disk shape. Keys mirror the browser storage keys the
// state originated from.
type ledgerData struct {
	Favorites     []string `json:"favorites"`
	Registered    []string `json:"registeredConferences"`
	Subscriptions []string `json:"emailSubscriptions"`
}

// Store is a file-backed domain.Ledger with a single in-memory copy of the
// state. Every mutation is flushed to disk before it returns.
type Store struct {
	mu   sync.Mutex
	path string
	data ledgerData
}

var _ domain.Ledger = (*Store)(nil)

// Open loads the ledger at path. A missing file reads as empty sets; a file
// that cannot be parsed is reset to empty rather than failing.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Corrupt store: fail soft and start over with empty sets.
		s.data = ledgerData{}
	}
	return s, nil
}

// ToggleFavorite flips membership of id in the favorite set and reports the
// resulting state. Toggling twice restores the original state.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOf(s.data.Favorites, id); idx >= 0 {
		s.data.Favorites = append(s.data.Favorites[:idx], s.data.Favorites[idx+1:]...)
		return false, s.save()
	}
	s.data.Favorites = append(s.data.Favorites, id)
	return true, s.save()
}

// IsFavorite reports whether id is in the favorite set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.data.Favorites, id) >= 0
}

// Favorites returns the favorite ids in insertion order.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data.Favorites))
	copy(out, s.data.Favorites)
	return out
}

// MarkRegistered adds id to the registered set. Already-registered ids are a
// no-op; registrations never expire.
func (s *Store) MarkRegistered(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.data.Registered, id) >= 0 {
		return nil
	}
	s.data.Registered = append(s.data.Registered, id)
	return s.save()
}

// IsRegistered reports whether id is in the registered set.
func (s *Store) IsRegistered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.data.Registered, id) >= 0
}

// AddSubscription appends email to the subscription log, deduplicated.
// Returns false when the email was already subscribed.
func (s *Store) AddSubscription(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.data.Subscriptions, email) >= 0 {
		return false, nil
	}
	s.data.Subscriptions = append(s.data.Subscriptions, email)
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Subscriptions returns the subscribed emails in signup order.
func (s *Store) Subscriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data.Subscriptions))
	copy(out, s.data.Subscriptions)
	return out
}

// save writes the ledger atomically so a crash mid-write never leaves a
// half-written file behind. Caller must hold s.mu.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure ledger dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
