package types

// CppInfo is what a package publishes to its consumers.
type CppInfo struct {
	Libs        []string `yaml:"libs" toml:"libs"`
	IncludeDirs []string `yaml:"include_dirs" toml:"include_dirs"`
	LibDirs     []string `yaml:"lib_dirs" toml:"lib_dirs"`
	BinDirs     []string `yaml:"bin_dirs,omitempty" toml:"bin_dirs"`
}

// PackageInfo is persisted as package-info.yaml inside a package folder.
type PackageInfo struct {
	Reference         string                       `yaml:"reference"`
	PackageID         string                       `yaml:"package_id"`
	Settings          Settings                     `yaml:"settings"`
	Options           Options                      `yaml:"options"`
	Requires          []string                     `yaml:"requires,omitempty"`
	DependencyOptions map[string]map[string]string `yaml:"dependency_options,omitempty"`
	CppInfo           CppInfo                      `yaml:"cpp_info"`
	Env               map[string][]string          `yaml:"env,omitempty"`
}

// ResolvedRequirement pairs a requirement with the cached package that
// satisfies it. Folder is empty when the requirement is left to the system.
type ResolvedRequirement struct {
	Requirement Requirement
	Folder      string
	Info        PackageInfo
}

func (r ResolvedRequirement) Cached() bool {
	return r.Folder != ""
}

// Definition is a single -D entry passed to the build tool.
type Definition struct {
	Name  string
	Value string
}

type ManifestEntry struct {
	Path   string
	Digest string
}
