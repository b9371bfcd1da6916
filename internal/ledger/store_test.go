package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	require.Empty(t, s.Favorites())
	require.Empty(t, s.Subscriptions())
	require.False(t, s.IsFavorite("a"))
	require.False(t, s.IsRegistered("a"))
}

func TestOpenCorruptFileResetsToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json!!`), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	require.Empty(t, s.Favorites())

	// The store stays usable after the reset.
	fav, err := s.ToggleFavorite("a")
	require.NoError(t, err)
	require.True(t, fav)
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	s, _ := newTestStore(t)

	fav, err := s.ToggleFavorite("conf-1")
	require.NoError(t, err)
	require.True(t, fav)
	require.True(t, s.IsFavorite("conf-1"))

	fav, err = s.ToggleFavorite("conf-1")
	require.NoError(t, err)
	require.False(t, fav)
	require.False(t, s.IsFavorite("conf-1"))
	require.Empty(t, s.Favorites())
}

func TestToggleFavoritePreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.ToggleFavorite(id)
		require.NoError(t, err)
	}
	_, err := s.ToggleFavorite("b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, s.Favorites())
}

func TestLedgerRoundTripsThroughReload(t *testing.T) {
	s, path := newTestStore(t)

	_, err := s.ToggleFavorite("conf-1")
	require.NoError(t, err)
	_, err = s.ToggleFavorite("conf-2")
	require.NoError(t, err)
	require.NoError(t, s.MarkRegistered("conf-2"))
	added, err := s.AddSubscription("dev@example.com")
	require.NoError(t, err)
	require.True(t, added)

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, []string{"conf-1", "conf-2"}, reloaded.Favorites())
	require.True(t, reloaded.IsRegistered("conf-2"))
	require.False(t, reloaded.IsRegistered("conf-1"))
	require.Equal(t, []string{"dev@example.com"}, reloaded.Subscriptions())
}

func TestMarkRegisteredIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.MarkRegistered("conf-1"))
	require.NoError(t, s.MarkRegistered("conf-1"))
	require.True(t, s.IsRegistered("conf-1"))
}

func TestAddSubscriptionDeduplicates(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddSubscription("dev@example.com")
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.AddSubscription("dev@example.com")
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, []string{"dev@example.com"}, s.Subscriptions())
}
