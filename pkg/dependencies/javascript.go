package dependencies

import (
	"context"
	"errors"
	"io/fs"

	"github.com/tidwall/gjson"

	"shipscout/pkg/detector"
)

// collectNode reads dependencies and devDependencies from package.json.
// Package names keep their published casing and scope prefix.
func collectNode(ctx context.Context, fsys detector.FileSystem) (map[string]string, error) {
	content, err := fsys.Read(ctx, "package.json")
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	deps := make(map[string]string)
	for _, section := range []string{"dependencies", "devDependencies"} {
		gjson.Get(content, section).ForEach(func(key, value gjson.Result) bool {
			deps[key.String()] = value.String()
			return true
		})
	}
	return deps, nil
}
