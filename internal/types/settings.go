package types

type Settings struct {
	OS        OS        `yaml:"os"`
	Compiler  string    `yaml:"compiler"`
	BuildType BuildType `yaml:"build_type"`
	Arch      Arch      `yaml:"arch"`
}

// HostInfo describes the machine the recipe runs on, as opposed to the
// settings the package is built for.
type HostInfo struct {
	OS     OS
	Arch   Arch
	Distro string
	Root   bool
}

func (h HostInfo) IsLinux() bool {
	return h.OS == OSLinux
}

func (h HostInfo) IsWindows() bool {
	return h.OS == OSWindows
}
