package statecache_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/statecache"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestPutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := statecache.NewStore(path)
	require.NoError(t, err)

	info := domain.StepInfo{
		Output:    "build/app",
		InputHash: "00000000deadbeef",
		Timestamp: time.Now(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("build/app")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.InputHash, got.InputHash)
}

func TestGetMissingReturnsNil(t *testing.T) {
	store, err := statecache.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Get("never-recorded")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	store, err := statecache.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.StepInfo{Output: "a.o", InputHash: "abc"}))

	reopened, err := statecache.NewStore(path)
	require.NoError(t, err)

	got, err := reopened.Get("a.o")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.InputHash)
}

func TestPutOverwrites(t *testing.T) {
	store, err := statecache.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.StepInfo{Output: "a.o", InputHash: "old"}))
	require.NoError(t, store.Put(domain.StepInfo{Output: "a.o", InputHash: "new"}))

	got, err := store.Get("a.o")
	require.NoError(t, err)
	assert.Equal(t, "new", got.InputHash)
}
