package watch_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"
	"tagfacet/internal/watch"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

func startWatcher(t *testing.T, path string, fn watch.ReloadFunc) *watch.CatalogWatcher {
	t.Helper()
	w, err := watch.NewCatalogWatcher(path, fn, watch.WithDebounce(testDebounce))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Close)
	return w
}

func TestCatalogWatcher_DetectsChanges(t *testing.T) {
	t.Run("write to catalog triggers reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		var reloads atomic.Int32
		startWatcher(t, path, func() error {
			reloads.Add(1)
			return nil
		})

		require.NoError(t, os.WriteFile(path, []byte("y"), 0o644))

		assert.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("atomic save through the store triggers reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		store, err := catalog.NewYAMLStore(path)
		require.NoError(t, err)
		cat := catalog.New("300")
		require.NoError(t, cat.AddPhoto("a.jpg"))
		require.NoError(t, store.Save(cat))

		var reloads atomic.Int32
		startWatcher(t, path, func() error {
			reloads.Add(1)
			return nil
		})

		require.NoError(t, cat.AddPhoto("b.jpg"))
		require.NoError(t, store.Save(cat))

		assert.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("other files in the directory are ignored", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		var reloads atomic.Int32
		startWatcher(t, path, func() error {
			reloads.Add(1)
			return nil
		})

		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("y"), 0o644))
		time.Sleep(10 * testDebounce)

		assert.Equal(t, int32(0), reloads.Load())
	})
}

func TestCatalogWatcher_Debounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("0"), 0o644))

	var reloads atomic.Int32
	w, err := watch.NewCatalogWatcher(path, func() error {
		reloads.Add(1)
		return nil
	}, watch.WithDebounce(200*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Close)

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return reloads.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load())
}

func TestCatalogWatcher_ReloadErrorKeepsWatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	var calls atomic.Int32
	startWatcher(t, path, func() error {
		if calls.Add(1) == 1 {
			return errors.New("parse failure")
		}
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("y"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("z"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestCatalogWatcher_ReloadsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	store, err := catalog.NewYAMLStore(path)
	require.NoError(t, err)
	cat := catalog.New("300")
	require.NoError(t, cat.AddPhoto("a.jpg"))
	require.NoError(t, cat.AddPhoto("b.jpg"))
	require.NoError(t, cat.Tag("a.jpg", "color", "red"))
	require.NoError(t, store.Save(cat))

	s := search.NewSession(cat.Clone())
	s.AddCriterion("color", "red")
	require.Len(t, s.Photos(), 1)

	startWatcher(t, path, func() error {
		loaded, err := store.Load()
		if err != nil {
			return err
		}
		s.ReplaceCatalog(loaded)
		return nil
	})

	require.NoError(t, cat.Tag("b.jpg", "color", "red"))
	require.NoError(t, store.Save(cat))

	assert.Eventually(t, func() bool { return s.Total() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestCatalogWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	w, err := watch.NewCatalogWatcher(path, func() error { return nil })
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Close()
	w.Close()
}

func TestCatalogWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "catalog.yaml")
	w, err := watch.NewCatalogWatcher(path, func() error { return nil })
	require.NoError(t, err)
	t.Cleanup(w.Close)

	assert.Error(t, w.Start())
}
