package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "m.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
[[aggregate]]
name = "Point"
kind = "struct"
types = ["int"]
`), 0o644))

	w, err := NewWatcher(manifestPath)
	require.NoError(t, err)
	defer w.Close()

	// Short debounce keeps the test fast.
	w.debouncePeriod = 20 * time.Millisecond

	reloaded := make(chan *Manifest, 1)
	w.OnReload(func(m *Manifest) error {
		select {
		case reloaded <- m:
		default:
		}
		return nil
	})
	w.Start()

	require.NoError(t, os.WriteFile(manifestPath, []byte(`
[[aggregate]]
name = "Point"
kind = "struct"
types = ["int", "int"]
`), 0o644))

	select {
	case m := <-reloaded:
		require.Len(t, m.Aggregates, 1)
		assert.Equal(t, []string{"int", "int"}, m.Aggregates[0].Types)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload after manifest write")
	}
}

func TestWatcherSkipsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "m.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
[[aggregate]]
name = "Point"
kind = "struct"
types = ["int"]
`), 0o644))

	w, err := NewWatcher(manifestPath)
	require.NoError(t, err)
	defer w.Close()
	w.debouncePeriod = 20 * time.Millisecond

	calls := make(chan struct{}, 1)
	w.OnReload(func(*Manifest) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	})
	w.Start()

	// Invalid kind: the reload is reported and callbacks are not invoked.
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
[[aggregate]]
name = "Point"
kind = "class"
`), 0o644))

	select {
	case <-calls:
		t.Fatal("callback ran for an invalid manifest")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
