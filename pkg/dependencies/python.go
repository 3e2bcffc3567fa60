package dependencies

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"

	"shipscout/pkg/detector"
)

// collectPython merges dependency declarations from requirements.txt,
// pyproject.toml (PEP 621 and poetry), Pipfile, and setup.cfg. Names are
// normalized lowercase with hyphens, the PyPI convention.
func collectPython(ctx context.Context, fsys detector.FileSystem) (map[string]string, error) {
	deps := make(map[string]string)

	if err := readRequirementsTxt(ctx, fsys, deps); err != nil {
		return nil, err
	}
	if err := readPyproject(ctx, fsys, deps); err != nil {
		return nil, err
	}
	if err := readPipfile(ctx, fsys, deps); err != nil {
		return nil, err
	}
	if err := readSetupCfg(ctx, fsys, deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func readRequirementsTxt(ctx context.Context, fsys detector.FileSystem, deps map[string]string) error {
	content, err := fsys.Read(ctx, "requirements.txt")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, line := range strings.Split(content, "\n") {
		if name, version, ok := parseRequirement(line); ok {
			deps[name] = version
		}
	}
	return nil
}

func readPyproject(ctx context.Context, fsys detector.FileSystem, deps map[string]string) error {
	content, err := fsys.Read(ctx, "pyproject.toml")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var doc struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if _, err := toml.Decode(content, &doc); err != nil {
		return fmt.Errorf("parsing pyproject.toml: %w", err)
	}

	for _, req := range doc.Project.Dependencies {
		if name, version, ok := parseRequirement(req); ok {
			deps[name] = version
		}
	}
	for name, value := range doc.Tool.Poetry.Dependencies {
		if strings.EqualFold(name, "python") {
			continue
		}
		version := ""
		if s, ok := value.(string); ok {
			version = s
		}
		deps[normalizeName(name)] = version
	}
	return nil
}

func readPipfile(ctx context.Context, fsys detector.FileSystem, deps map[string]string) error {
	content, err := fsys.Read(ctx, "Pipfile")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var doc struct {
		Packages    map[string]any `toml:"packages"`
		DevPackages map[string]any `toml:"dev-packages"`
	}
	if _, err := toml.Decode(content, &doc); err != nil {
		return fmt.Errorf("parsing Pipfile: %w", err)
	}

	for _, section := range []map[string]any{doc.Packages, doc.DevPackages} {
		for name, value := range section {
			version := ""
			if s, ok := value.(string); ok && s != "*" {
				version = s
			}
			deps[normalizeName(name)] = version
		}
	}
	return nil
}

func readSetupCfg(ctx context.Context, fsys detector.FileSystem, deps map[string]string) error {
	content, err := fsys.Read(ctx, "setup.cfg")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, []byte(content))
	if err != nil {
		return fmt.Errorf("parsing setup.cfg: %w", err)
	}
	for _, line := range strings.Split(cfg.Section("options").Key("install_requires").String(), "\n") {
		if name, version, ok := parseRequirement(line); ok {
			deps[name] = version
		}
	}
	return nil
}

// parseRequirement splits one PEP 508-style requirement line into a
// normalized name and the raw specifier tail. Comments, empty lines, and pip
// options return ok=false. Environment markers after ';' are dropped.
func parseRequirement(line string) (name, version string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return "", "", false
	}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	split := strings.IndexFunc(line, func(r rune) bool {
		switch r {
		case '<', '>', '=', '!', '~', '[', ' ', '(':
			return true
		}
		return false
	})
	if split < 0 {
		return normalizeName(line), "", true
	}
	name = strings.TrimSpace(line[:split])
	if name == "" {
		return "", "", false
	}
	version = strings.TrimSpace(line[split:])
	if i := strings.IndexByte(version, ']'); strings.HasPrefix(version, "[") && i >= 0 {
		version = strings.TrimSpace(version[i+1:])
	}
	return normalizeName(name), version, true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
}
