package detector

// DefaultRules returns the built-in framework rule forest for a runtime.
// Unknown runtimes get an empty rule set, which makes every project under them
// a valid runtime-only detection.
func DefaultRules(runtime string) []Framework {
	switch runtime {
	case RuntimeNode:
		return NodeRules()
	case RuntimePython:
		return PythonRules()
	default:
		return nil
	}
}

// NodeRules is the rule forest for Node.js codebases. UI libraries declare
// that they can embed Vite so a lib-plus-bundler project resolves to the lib's
// chain; meta-frameworks sit beneath their UI library and may embed a custom
// server framework.
func NodeRules() []Framework {
	return []Framework{
		{
			Name:         "React",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			CanEmbed:     []string{"Vite"},
			Dependencies: []Dependency{{Name: "react"}},
		},
		{
			Name:           "Next.js",
			Parent:         "React",
			InstallCommand: "${packageManager} install",
			BuildCommand:   "${packageManager} run build",
			DevCommand:     "${packageManager} run dev",
			Vars:           map[string]string{"buildOutput": ".next"},
			CanEmbed:       []string{"Express.js"},
			Dependencies:   []Dependency{{Name: "next"}},
		},
		{
			Name:         "Remix",
			Parent:       "React",
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			Vars:         map[string]string{"buildOutput": "build"},
			CanEmbed:     []string{"Express.js"},
			Dependencies: []Dependency{{Name: "@remix-run/react"}},
		},
		{
			Name:         "Gatsby",
			Parent:       "React",
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run develop",
			Vars:         map[string]string{"buildOutput": "public"},
			Dependencies: []Dependency{{Name: "gatsby"}},
		},
		{
			Name:         "Docusaurus",
			Parent:       "React",
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run start",
			Vars:         map[string]string{"buildOutput": "build"},
			Dependencies: []Dependency{{Name: "@docusaurus/core"}},
		},
		{
			Name:         "Vue.js",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			CanEmbed:     []string{"Vite"},
			Dependencies: []Dependency{{Name: "vue"}},
		},
		{
			Name:         "Nuxt.js",
			Parent:       "Vue.js",
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			Vars:         map[string]string{"buildOutput": ".output"},
			Dependencies: []Dependency{{Name: "nuxt"}},
		},
		{
			Name:         "Svelte",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			CanEmbed:     []string{"Vite"},
			Dependencies: []Dependency{{Name: "svelte"}},
		},
		{
			Name:          "SvelteKit",
			Parent:        "Svelte",
			BuildCommand:  "${packageManager} run build",
			DevCommand:    "${packageManager} run dev",
			Vars:          map[string]string{"buildOutput": ".svelte-kit"},
			Dependencies:  []Dependency{{Name: "@sveltejs/kit"}},
			RequiredFiles: []RequiredFile{AnyPath("svelte.config.js", "svelte.config.mjs", "svelte.config.ts")},
		},
		{
			Name:          "Angular",
			Parent:        RuntimeNode,
			BuildCommand:  "${packageManager} run build",
			DevCommand:    "${packageManager} run start",
			Vars:          map[string]string{"buildOutput": "dist"},
			Dependencies:  []Dependency{{Name: "@angular/core"}},
			RequiredFiles: []RequiredFile{Path("angular.json")},
		},
		{
			Name:         "Astro",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			Vars:         map[string]string{"buildOutput": "dist"},
			CanEmbed:     []string{"React", "Vue.js", "Svelte", "Vite"},
			Dependencies: []Dependency{{Name: "astro"}},
		},
		{
			Name:         "Vite",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run dev",
			Vars:         map[string]string{"buildOutput": "dist"},
			Dependencies: []Dependency{{Name: "vite"}},
		},
		{
			Name:         "Express.js",
			Parent:       RuntimeNode,
			DevCommand:   "node ${serverEntry}",
			Vars:         map[string]string{"serverEntry": "index.js"},
			Dependencies: []Dependency{{Name: "express"}},
		},
		{
			Name:         "Fastify",
			Parent:       RuntimeNode,
			DevCommand:   "node ${serverEntry}",
			Vars:         map[string]string{"serverEntry": "index.js"},
			Dependencies: []Dependency{{Name: "fastify"}},
		},
		{
			Name:         "NestJS",
			Parent:       RuntimeNode,
			BuildCommand: "${packageManager} run build",
			DevCommand:   "${packageManager} run start:dev",
			Vars:         map[string]string{"buildOutput": "dist"},
			CanEmbed:     []string{"Express.js", "Fastify"},
			Dependencies: []Dependency{{Name: "@nestjs/core"}},
		},
	}
}

// PythonRules is the rule forest for Python codebases. Dependency names are
// matched lowercase, the way the dependency collector normalizes them.
func PythonRules() []Framework {
	return []Framework{
		{
			Name:          "Django",
			Parent:        RuntimePython,
			BuildCommand:  "python manage.py collectstatic --noinput",
			DevCommand:    "python manage.py runserver",
			Dependencies:  []Dependency{{Name: "django"}},
			RequiredFiles: []RequiredFile{Path("manage.py")},
		},
		{
			Name:         "Wagtail",
			Parent:       "Django",
			Dependencies: []Dependency{{Name: "wagtail"}},
		},
		{
			Name:         "Flask",
			Parent:       RuntimePython,
			DevCommand:   "flask run --debug",
			Dependencies: []Dependency{{Name: "flask"}},
		},
		{
			Name:         "FastAPI",
			Parent:       RuntimePython,
			DevCommand:   "uvicorn ${appModule} --reload",
			Vars:         map[string]string{"appModule": "main:app"},
			Dependencies: []Dependency{{Name: "fastapi"}},
		},
	}
}
