package goals

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchFiresOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals: []\n"), 0644))

	changed := make(chan struct{}, 1)
	cleanup, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(path, []byte("goals:\n  - id: a\n    status: pending\n"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestWatchCleanupStopsPendingDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals: []\n"), 0644))

	changed := make(chan struct{}, 1)
	cleanup, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	// Tear the watch down while the write is still inside the debounce
	// window; the queued notification must not fire afterwards.
	require.NoError(t, os.WriteFile(path, []byte("goals:\n  - id: a\n    status: pending\n"), 0644))
	time.Sleep(50 * time.Millisecond)
	cleanup()

	select {
	case <-changed:
		t.Fatal("unexpected notification after cleanup")
	case <-time.After(2 * watchDebounce):
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals: []\n"), 0644))

	changed := make(chan struct{}, 1)
	cleanup, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
