package detector

// Runtime names understood by the default rule set.
const (
	RuntimeNode   = "node"
	RuntimePython = "python"
)

// Dependency names a package the project must declare for a rule to match.
// Version constraints are carried but not evaluated; presence of the name in
// the project's dependency map is the whole check.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// RequiredFile is one entry of a framework's file predicate. With a single
// path, that path must exist; with several, at least one must. The entries of
// a rule's RequiredFiles list are ANDed together.
type RequiredFile struct {
	Paths []string `json:"paths"`
}

// Path builds a required-file entry matching exactly one path.
func Path(p string) RequiredFile {
	return RequiredFile{Paths: []string{p}}
}

// AnyPath builds a required-file entry satisfied by any one of the paths.
func AnyPath(paths ...string) RequiredFile {
	return RequiredFile{Paths: paths}
}

// Framework is one declarative rule node. Parent is either a runtime name or
// the Name of another framework in the same rule set. Which optional fields
// are present decides how the node behaves; there is no rule subtyping.
type Framework struct {
	Name           string            `json:"name"`
	Parent         string            `json:"parent"`
	InstallCommand string            `json:"install_command,omitempty"`
	BuildCommand   string            `json:"build_command,omitempty"`
	DevCommand     string            `json:"dev_command,omitempty"`
	Vars           map[string]string `json:"vars,omitempty"`
	CanEmbed       []string          `json:"can_embed,omitempty"`
	RequiredFiles  []RequiredFile    `json:"required_files,omitempty"`
	Dependencies   []Dependency      `json:"dependencies,omitempty"`
}

// Chain is one detected stack, ordered most-specific-first: index 0 is the
// deepest matched framework, the last element sits directly on the runtime.
type Chain []Framework

// Names returns the framework names of the chain, most-specific-first.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, fw := range c {
		names[i] = fw.Name
	}
	return names
}

// Codebase describes a detected runtime and its default command set.
type Codebase struct {
	Runtime        string `json:"runtime"`
	Framework      string `json:"framework,omitempty"`
	PackageManager string `json:"package_manager,omitempty"`
	InstallCommand string `json:"install_command,omitempty"`
	BuildCommand   string `json:"build_command,omitempty"`
	DevCommand     string `json:"dev_command,omitempty"`
}

// Detection is the JSON-facing result of a full detection pass.
type Detection struct {
	Runtime        string            `json:"runtime"`
	Frameworks     []string          `json:"frameworks,omitempty"`
	PackageManager string            `json:"package_manager,omitempty"`
	InstallCommand string            `json:"install_command,omitempty"`
	BuildCommand   string            `json:"build_command,omitempty"`
	DevCommand     string            `json:"dev_command,omitempty"`
	Vars           map[string]string `json:"vars,omitempty"`
}
