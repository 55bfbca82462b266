package dev

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Matches(t *testing.T) {
	// Test: Pattern filtering, exclusions first
	w := &Watcher{
		patterns: []string{"genui.yaml", "*.genui.yaml"},
		exclude:  []string{"ignored.genui.yaml"},
	}

	assert.True(t, w.matches("/project/genui.yaml"))
	assert.True(t, w.matches("/project/cards.genui.yaml"))
	assert.False(t, w.matches("/project/ignored.genui.yaml"))
	assert.False(t, w.matches("/project/pubspec.yaml"))
	assert.False(t, w.matches("/project/main.dart"))
}

func TestWatcher_DeliversEvents(t *testing.T) {
	// Test: A matching file change triggers the callback
	tmpDir := t.TempDir()

	var mu sync.Mutex
	var changed []string
	watcher, err := NewWatcher([]string{"genui.yaml"}, nil, zerolog.Nop(), func(path string, op fsnotify.Op) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watcher.Add(tmpDir))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watcher.Start(ctx)
		close(done)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "genui.yaml"), []byte("components: []\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "other.txt"), []byte("x"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	for _, path := range changed {
		assert.Equal(t, "genui.yaml", filepath.Base(path))
	}
	mu.Unlock()

	cancel()
	<-done
}
