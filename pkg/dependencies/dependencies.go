// Package dependencies builds the declared-dependency map consumed by the
// framework matcher: package name to version constraint string, read from the
// manifests of the detected runtime. The map records what the project
// declares, not what is installed.
package dependencies

import (
	"context"

	"shipscout/pkg/detector"
)

// Collect reads the dependency map for the given runtime. Missing manifests
// are not errors; an unparseable manifest is.
func Collect(ctx context.Context, fsys detector.FileSystem, runtime string) (map[string]string, error) {
	switch runtime {
	case detector.RuntimeNode:
		return collectNode(ctx, fsys)
	case detector.RuntimePython:
		return collectPython(ctx, fsys)
	}
	return map[string]string{}, nil
}
