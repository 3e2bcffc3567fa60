package detector_test

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"testing"

	"shipscout/pkg/detector"
)

type countingFS struct {
	inner detector.FileSystem

	mu          sync.Mutex
	existsCalls map[string]int
	readCalls   map[string]int
}

func newCountingFS(inner detector.FileSystem) *countingFS {
	return &countingFS{
		inner:       inner,
		existsCalls: make(map[string]int),
		readCalls:   make(map[string]int),
	}
}

func (c *countingFS) Exists(ctx context.Context, path string) bool {
	c.mu.Lock()
	c.existsCalls[path]++
	c.mu.Unlock()
	return c.inner.Exists(ctx, path)
}

func (c *countingFS) Read(ctx context.Context, path string) (string, error) {
	c.mu.Lock()
	c.readCalls[path]++
	c.mu.Unlock()
	return c.inner.Read(ctx, path)
}

func TestFSReadNotFound(t *testing.T) {
	fsys := testFS(map[string]string{"present.txt": "hello"})
	ctx := context.Background()

	content, err := fsys.Read(ctx, "present.txt")
	if err != nil || content != "hello" {
		t.Fatalf("Read(present.txt) = %q, %v", content, err)
	}

	_, err = fsys.Read(ctx, "absent.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Read(absent.txt) error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoCachesExists(t *testing.T) {
	counting := newCountingFS(testFS(map[string]string{"package.json": "{}"}))
	memo := detector.NewMemo(counting)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if !memo.Exists(ctx, "package.json") {
			t.Fatal("package.json should exist")
		}
		if memo.Exists(ctx, "requirements.txt") {
			t.Fatal("requirements.txt should not exist")
		}
	}

	if got := counting.existsCalls["package.json"]; got != 1 {
		t.Errorf("underlying Exists(package.json) called %d times, want 1", got)
	}
	if got := counting.existsCalls["requirements.txt"]; got != 1 {
		t.Errorf("underlying Exists(requirements.txt) called %d times, want 1", got)
	}
}

func TestMemoCachesReadsIncludingErrors(t *testing.T) {
	counting := newCountingFS(testFS(map[string]string{"package.json": `{"name":"demo"}`}))
	memo := detector.NewMemo(counting)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		content, err := memo.Read(ctx, "package.json")
		if err != nil || content != `{"name":"demo"}` {
			t.Fatalf("Read = %q, %v", content, err)
		}
		if _, err := memo.Read(ctx, "missing.json"); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("Read(missing.json) error = %v, want fs.ErrNotExist", err)
		}
	}

	if got := counting.readCalls["package.json"]; got != 1 {
		t.Errorf("underlying Read(package.json) called %d times, want 1", got)
	}
	if got := counting.readCalls["missing.json"]; got != 1 {
		t.Errorf("underlying Read(missing.json) called %d times, want 1", got)
	}
}
