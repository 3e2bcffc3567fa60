package detector

import "os"

// ResolveVars merges the variable maps of a chain, the most specific framework
// overriding its ancestors.
func ResolveVars(chain Chain) map[string]string {
	vars := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Vars {
			vars[k] = v
		}
	}
	return vars
}

// Interpolate substitutes ${name} references in a command template. Unknown
// variables expand to the empty string.
func Interpolate(template string, vars map[string]string) string {
	return os.Expand(template, func(name string) string {
		return vars[name]
	})
}

// Summarize resolves a codebase plus chain into the final detection result.
// Command templates are picked most-specific-first along the chain, falling
// back to the codebase defaults, and interpolated with the merged variables.
// The detected package manager is exposed as ${packageManager} unless a rule
// already set it.
func Summarize(cb *Codebase, chain Chain) Detection {
	vars := ResolveVars(chain)
	if cb.PackageManager != "" {
		if _, ok := vars["packageManager"]; !ok {
			vars["packageManager"] = cb.PackageManager
		}
	}

	pick := func(get func(Framework) string, fallback string) string {
		for _, fw := range chain {
			if tmpl := get(fw); tmpl != "" {
				return Interpolate(tmpl, vars)
			}
		}
		return Interpolate(fallback, vars)
	}

	out := Detection{
		Runtime:        cb.Runtime,
		Frameworks:     chain.Names(),
		PackageManager: cb.PackageManager,
		InstallCommand: pick(func(f Framework) string { return f.InstallCommand }, cb.InstallCommand),
		BuildCommand:   pick(func(f Framework) string { return f.BuildCommand }, cb.BuildCommand),
		DevCommand:     pick(func(f Framework) string { return f.DevCommand }, cb.DevCommand),
	}
	if len(vars) > 0 {
		out.Vars = vars
	}
	if len(chain) == 0 && cb.Framework != "" {
		out.Frameworks = []string{cb.Framework}
	}
	return out
}
