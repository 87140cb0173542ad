package shaders

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhenstridge/go-inotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRelevant(t *testing.T) {
	w := &Watcher{files: map[string]bool{"/srv/shaders/hello.vs": true}}

	assert.True(t, w.relevant("/srv/shaders/hello.vs", inotify.IN_CLOSE_WRITE))
	assert.True(t, w.relevant("/srv/shaders/hello.vs", inotify.IN_MOVED_TO))
	assert.False(t, w.relevant("/srv/shaders/hello.vs", inotify.IN_OPEN))
	assert.False(t, w.relevant("/srv/shaders/hello.fs", inotify.IN_CLOSE_WRITE))
}

func TestWatcherRelevantEventMask(t *testing.T) {
	w := &Watcher{files: map[string]bool{"/srv/shaders/hello.vs": true}}

	ev := inotify.Event{Name: "/srv/shaders/hello.vs", Mask: inotify.IN_MOVED_TO}
	assert.True(t, w.relevant(ev.Name, ev.Mask))

	ev.Mask = inotify.IN_DELETE
	assert.False(t, w.relevant(ev.Name, ev.Mask))
}

func TestWatcherRaisesPending(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "hello.vs")
	require.NoError(t, os.WriteFile(vs, []byte("#version 330 core\n"), 0o644))

	w, err := Watch(vs, filepath.Join(dir, "hello.fs"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.False(t, w.Pending())

	require.NoError(t, os.WriteFile(vs, []byte("#version 330 core\nvoid main() {}\n"), 0o644))
	assert.Eventually(t, w.Pending, 2*time.Second, 20*time.Millisecond)
	assert.False(t, w.Pending())
}
