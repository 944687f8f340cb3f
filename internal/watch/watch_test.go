package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events [][2]string
}

func (r *recorder) record(kind, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, [2]string{kind, path})
}

func (r *recorder) snapshot() [][2]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][2]string(nil), r.events...)
}

func startWatch(t *testing.T, root string, debounce time.Duration) *recorder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, root, debounce, logger, rec.record) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	// Let the watcher register its directories.
	time.Sleep(100 * time.Millisecond)
	return rec
}

func TestWatch_NewFileReported(t *testing.T) {
	root := t.TempDir()
	rec := startWatch(t, root, 50*time.Millisecond)

	p := filepath.Join(root, "cookies")
	require.NoError(t, os.WriteFile(p, []byte("hi\n%\n"), 0o644))

	assert.Eventually(t, func() bool {
		ev := rec.snapshot()
		return len(ev) > 0 && ev[len(ev)-1][1] == p
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatch_BurstIsCoalesced(t *testing.T) {
	root := t.TempDir()
	rec := startWatch(t, root, 300*time.Millisecond)

	for i := 0; i < 5; i++ {
		p := filepath.Join(root, "f"+string(rune('a'+i)))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	assert.Eventually(t, func() bool { return len(rec.snapshot()) > 0 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

func TestWatch_NewSubdirectoryIsWatched(t *testing.T) {
	root := t.TempDir()
	rec := startWatch(t, root, 50*time.Millisecond)

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	time.Sleep(200 * time.Millisecond)

	p := filepath.Join(sub, "deep")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	assert.Eventually(t, func() bool {
		for _, ev := range rec.snapshot() {
			if ev[1] == p {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatch_MissingRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, logger, nil)
	assert.Error(t, err)
}
