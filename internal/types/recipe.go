package types

// Recipe describes how a package is identified, built and published.
// It is loaded once per invocation and never mutated afterwards.
type Recipe struct {
	Name        string `yaml:"name" toml:"name"`
	Version     string `yaml:"version" toml:"version"`
	License     string `yaml:"license" toml:"license"`
	Author      string `yaml:"author,omitempty" toml:"author"`
	URL         string `yaml:"url,omitempty" toml:"url"`
	Description string `yaml:"description,omitempty" toml:"description"`
	User        string `yaml:"user,omitempty" toml:"user"`
	Channel     string `yaml:"channel,omitempty" toml:"channel"`
	ShortPaths  bool   `yaml:"short_paths,omitempty" toml:"short_paths"`

	Settings       []SettingName `yaml:"settings" toml:"settings"`
	DefaultOptions Options       `yaml:"default_options" toml:"default_options"`
	Requires       []string      `yaml:"requires" toml:"requires"`
	BuildRequires  []string      `yaml:"build_requires" toml:"build_requires"`
	Generators     []Generator   `yaml:"generators" toml:"generators"`
	ExportsSources []string      `yaml:"exports_sources" toml:"exports_sources"`

	// DependencyOptions holds per-requirement option overrides keyed by
	// requirement name. Values are kept as strings so they can be passed
	// through unchanged.
	DependencyOptions map[string]map[string]string `yaml:"dependency_options,omitempty" toml:"dependency_options"`

	SystemTools []SystemTool `yaml:"system_tools,omitempty" toml:"system_tools"`

	ImportPaths        []string `yaml:"import_paths,omitempty" toml:"import_paths"`
	WindowsImportPaths []string `yaml:"windows_import_paths,omitempty" toml:"windows_import_paths"`

	PackageInfo CppInfo `yaml:"package_info" toml:"package_info"`
}

// SystemTool is an optional host tool installed through the system package
// manager on the listed distributions.
type SystemTool struct {
	Name       string   `yaml:"name" toml:"name"`
	Distros    []string `yaml:"distros" toml:"distros"`
	Update     bool     `yaml:"update,omitempty" toml:"update"`
	MinVersion string   `yaml:"min_version,omitempty" toml:"min_version"`
}

type Options struct {
	Shared bool `yaml:"shared" toml:"shared"`
}

// Requirement is a parsed "name/version" pair.
type Requirement struct {
	Name    string
	Version string
	Build   bool
}

func (r Requirement) String() string {
	return r.Name + "/" + r.Version
}

// Reference identifies a recipe as name/version@user/channel.
type Reference struct {
	Name    string
	Version string
	User    string
	Channel string
}

func (r Reference) String() string {
	if r.User == "" && r.Channel == "" {
		return r.Name + "/" + r.Version
	}
	return r.Name + "/" + r.Version + "@" + r.User + "/" + r.Channel
}
