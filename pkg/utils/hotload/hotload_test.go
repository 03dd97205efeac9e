package hotload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWatchFile_TriggersOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	other := filepath.Join(dir, "other.txt")
	writeFile(t, path, "hello")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, 20*time.Millisecond, func() { calls <- struct{}{} })
	}()

	// 等待 watcher 注册完成
	time.Sleep(100 * time.Millisecond)

	writeFile(t, other, "ignored")
	writeFile(t, path, "hello world")

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("hook was not called after change")
	}

	// 相同内容不会再次触发
	writeFile(t, path, "hello world")
	select {
	case <-calls:
		t.Fatal("hook should not fire for identical content")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchFile returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("WatchFile did not stop after cancel")
	}
}

func TestWatchFile_MissingDir(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "x.txt"), 0, func() {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func Test_readState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if st := readState(path); st.exists {
		t.Fatal("missing file should not exist")
	}
	writeFile(t, path, "abc")
	st := readState(path)
	if !st.exists || st.size != 3 || st.hash == "" {
		t.Errorf("unexpected state: %+v", st)
	}
	if readState(path) != st {
		t.Error("state should be stable for unchanged content")
	}
}
