package detector

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RuntimeDetector recognizes one runtime from the project files. A nil
// Codebase with a nil error means the runtime does not apply.
type RuntimeDetector interface {
	Name() string
	DetectCodebase(ctx context.Context, fsys FileSystem) (*Codebase, error)
}

// DetectRuntime runs every registered detector concurrently against the same
// filesystem view. Runtime predicates are expected to be mutually exclusive by
// construction, so more than one match is a codebase contradiction and fails
// with AmbiguousRuntimeError. Zero matches returns nil without error.
func DetectRuntime(ctx context.Context, fsys FileSystem, detectors []RuntimeDetector) (*Codebase, error) {
	results := make([]*Codebase, len(detectors))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range detectors {
		g.Go(func() error {
			cb, err := d.DetectCodebase(ctx, fsys)
			if err != nil {
				return err
			}
			results[i] = cb
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matched []*Codebase
	for _, cb := range results {
		if cb != nil {
			matched = append(matched, cb)
		}
	}

	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
		return matched[0], nil
	}

	names := make([]string, len(matched))
	for i, cb := range matched {
		names[i] = cb.Runtime
	}
	return nil, &AmbiguousRuntimeError{Runtimes: names}
}
