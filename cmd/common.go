package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"shipscout/pkg/config"
	"shipscout/pkg/dependencies"
	"shipscout/pkg/detector"
	"shipscout/pkg/detector/runtimes"
)

// ErrNoRuntime is returned when no registered runtime detector matches the
// project.
var ErrNoRuntime = errors.New("no supported runtime detected")

// runDetection is the full pipeline: runtime orchestration, dependency map
// collection, chain matching, command resolution, then any saved per-project
// overrides.
func runDetection(ctx context.Context, projectPath string) (detector.Detection, error) {
	logger := log.FromContext(ctx)

	fsys := detector.NewMemo(detector.NewFS(os.DirFS(projectPath)))

	cb, err := detector.DetectRuntime(ctx, fsys, runtimes.Default())
	if err != nil {
		return detector.Detection{}, err
	}
	if cb == nil {
		return detector.Detection{}, ErrNoRuntime
	}
	logger.Debug("runtime detected", "runtime", cb.Runtime, "package_manager", cb.PackageManager)

	deps, err := dependencies.Collect(ctx, fsys, cb.Runtime)
	if err != nil {
		return detector.Detection{}, err
	}
	logger.Debug("dependency map collected", "count", len(deps))

	matcher, err := detector.NewMatcher(cb.Runtime, fsys, detector.DefaultRules(cb.Runtime), deps)
	if err != nil {
		return detector.Detection{}, err
	}
	chain, err := matcher.Match(ctx)
	if err != nil {
		return detector.Detection{}, err
	}
	logger.Debug("chain resolved", "frameworks", chain.Names())

	result := detector.Summarize(cb, chain)

	if cfg, err := config.LoadConfig(); err == nil {
		if target, ok := cfg.GetTarget(projectPath); ok {
			result = target.Apply(result)
		}
	}
	return result, nil
}
