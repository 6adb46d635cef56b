package statecache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetMissingKey(t *testing.T) {
	s := newTestStore(t)

	value, err := s.Get("punchline_date")
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestStore_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("punchline_index", "3"))

	value, err := s.Get("punchline_index")
	assert.NoError(t, err)
	assert.Equal(t, "3", value)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("punchline_text", "citation un"))
	require.NoError(t, s.Set("punchline_text", "citation deux"))

	value, err := s.Get("punchline_text")
	assert.NoError(t, err)
	assert.Equal(t, "citation deux", value)
}
