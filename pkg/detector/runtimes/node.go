// Package runtimes provides the built-in runtime detectors consumed by the
// runtime orchestrator. Each detector recognizes its runtime from manifest and
// lockfile layout only; framework classification happens afterwards in the
// matcher.
package runtimes

import (
	"context"

	"shipscout/pkg/detector"
)

// Node recognizes a Node.js codebase from package.json. Projects carrying a
// Deno config are refused so a future Deno detector can claim them without
// tripping the mutual-exclusivity rule.
type Node struct{}

func (Node) Name() string { return detector.RuntimeNode }

func (Node) DetectCodebase(ctx context.Context, fsys detector.FileSystem) (*detector.Codebase, error) {
	if !fsys.Exists(ctx, "package.json") {
		return nil, nil
	}
	if fsys.Exists(ctx, "deno.json") || fsys.Exists(ctx, "deno.jsonc") {
		return nil, nil
	}

	pm := nodePackageManager(ctx, fsys)
	return &detector.Codebase{
		Runtime:        detector.RuntimeNode,
		PackageManager: pm,
		InstallCommand: jsInstallCommand(pm),
		BuildCommand:   "${packageManager} run build",
		DevCommand:     "${packageManager} run dev",
	}, nil
}

func nodePackageManager(ctx context.Context, fsys detector.FileSystem) string {
	switch {
	case fsys.Exists(ctx, "bun.lockb") || fsys.Exists(ctx, "bun.lock"):
		return "bun"
	case fsys.Exists(ctx, ".yarnrc.yml"):
		return "yarn"
	case fsys.Exists(ctx, "pnpm-lock.yaml"):
		return "pnpm"
	case fsys.Exists(ctx, "yarn.lock"):
		return "yarn"
	default:
		return "npm"
	}
}

func jsInstallCommand(pm string) string {
	switch pm {
	case "bun":
		return "bun install"
	case "pnpm":
		return "pnpm install"
	case "yarn":
		return "yarn install"
	default:
		return "npm install"
	}
}
