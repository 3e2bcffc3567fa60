package detector

import (
	"context"
	"io"
	"io/fs"
	"sync"
)

// FileSystem is the read capability the detection engine works against.
// Exists never fails. Read reports a missing path with an error matching
// fs.ErrNotExist and propagates any other I/O failure unmodified; not-found is
// the expected negative signal and is never treated as fatal by callers here.
type FileSystem interface {
	Exists(ctx context.Context, path string) bool
	Read(ctx context.Context, path string) (string, error)
}

type fsAdapter struct {
	fsys fs.FS
}

// NewFS adapts an fs.FS (typically os.DirFS at the project root) to the
// FileSystem capability.
func NewFS(fsys fs.FS) FileSystem {
	return &fsAdapter{fsys: fsys}
}

func (a *fsAdapter) Exists(_ context.Context, path string) bool {
	_, err := fs.Stat(a.fsys, path)
	return err == nil
}

func (a *fsAdapter) Read(_ context.Context, path string) (string, error) {
	f, err := a.fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type readResult struct {
	content string
	err     error
}

// Memo caches exists and read results for the duration of one detection pass,
// so repeated probes of the same path cost one underlying call. Safe for the
// concurrent probes the matcher issues.
type Memo struct {
	inner FileSystem

	mu     sync.Mutex
	exists map[string]bool
	reads  map[string]readResult
}

// NewMemo wraps fsys with per-path memoization.
func NewMemo(fsys FileSystem) *Memo {
	return &Memo{
		inner:  fsys,
		exists: make(map[string]bool),
		reads:  make(map[string]readResult),
	}
}

func (m *Memo) Exists(ctx context.Context, path string) bool {
	m.mu.Lock()
	if ok, cached := m.exists[path]; cached {
		m.mu.Unlock()
		return ok
	}
	m.mu.Unlock()

	ok := m.inner.Exists(ctx, path)

	m.mu.Lock()
	m.exists[path] = ok
	m.mu.Unlock()
	return ok
}

func (m *Memo) Read(ctx context.Context, path string) (string, error) {
	m.mu.Lock()
	if r, cached := m.reads[path]; cached {
		m.mu.Unlock()
		return r.content, r.err
	}
	m.mu.Unlock()

	content, err := m.inner.Read(ctx, path)

	m.mu.Lock()
	m.reads[path] = readResult{content: content, err: err}
	m.mu.Unlock()
	return content, err
}
