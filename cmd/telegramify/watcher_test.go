package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestWatcher_Debounce(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", "one")

	var (
		mu    sync.Mutex
		calls int
	)
	w := NewWatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := w.Watch(path, func() {
		mu.Lock()
		calls++
		mu.Unlock()
	}); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls == 0 {
		t.Fatal("onChange was never called")
	}
	if calls > 2 {
		t.Errorf("onChange called %d times, want writes to be debounced", calls)
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w := NewWatcher(nil)
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	w := NewWatcher(nil)
	defer w.Close()
	if err := w.Watch("/nonexistent/doc.md", func() {}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRun_WatchRendersInitially(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", "**hi**")
	ctx, cancel := context.WithCancel(context.Background())

	var stdout, stderr syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{"telegramify", "--watch", path}, strings.NewReader(""), &stdout, &stderr)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && !strings.Contains(stdout.String(), "<b>hi</b>") {
		time.Sleep(20 * time.Millisecond)
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "<b>hi</b>") {
		t.Errorf("output = %q", stdout.String())
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
