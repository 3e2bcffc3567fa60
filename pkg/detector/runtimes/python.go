package runtimes

import (
	"context"

	"shipscout/pkg/detector"
)

var pythonManifests = []string{"pyproject.toml", "requirements.txt", "setup.py", "Pipfile"}

// Python recognizes a Python codebase from its packaging files.
type Python struct{}

func (Python) Name() string { return detector.RuntimePython }

func (Python) DetectCodebase(ctx context.Context, fsys detector.FileSystem) (*detector.Codebase, error) {
	matched := false
	for _, manifest := range pythonManifests {
		if fsys.Exists(ctx, manifest) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, nil
	}

	pm := pythonPackageManager(ctx, fsys)
	return &detector.Codebase{
		Runtime:        detector.RuntimePython,
		PackageManager: pm,
		InstallCommand: pythonInstallCommand(pm),
		DevCommand:     "python main.py",
	}, nil
}

func pythonPackageManager(ctx context.Context, fsys detector.FileSystem) string {
	switch {
	case fsys.Exists(ctx, "uv.lock"):
		return "uv"
	case fsys.Exists(ctx, "pdm.lock"):
		return "pdm"
	case fsys.Exists(ctx, "poetry.lock"):
		return "poetry"
	case fsys.Exists(ctx, "Pipfile.lock"):
		return "pipenv"
	default:
		return "pip"
	}
}

func pythonInstallCommand(pm string) string {
	switch pm {
	case "uv":
		return "uv sync"
	case "pdm":
		return "pdm install --prod"
	case "poetry":
		return "poetry install"
	case "pipenv":
		return "pipenv install"
	default:
		return "pip install -r requirements.txt"
	}
}

// Default returns the runtime detectors registered out of the box, in the
// order their rule sets are documented.
func Default() []detector.RuntimeDetector {
	return []detector.RuntimeDetector{Node{}, Python{}}
}
