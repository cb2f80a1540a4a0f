package types

type OS string

const (
	OSLinux   OS = "Linux"
	OSWindows OS = "Windows"
	OSMacos   OS = "Macos"
)

type BuildType string

const (
	BuildTypeDebug          BuildType = "Debug"
	BuildTypeRelease        BuildType = "Release"
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	BuildTypeMinSizeRel     BuildType = "MinSizeRel"
)

type Arch string

const (
	ArchX86_64 Arch = "x86_64"
	ArchX86    Arch = "x86"
	ArchArmv8  Arch = "armv8"
	ArchArmv7  Arch = "armv7"
)

type Generator string

const (
	GeneratorCMake            Generator = "cmake"
	GeneratorCMakeFindPackage Generator = "cmake_find_package"
	GeneratorVirtualEnv       Generator = "virtualenv"
)

type SettingName string

const (
	SettingOS        SettingName = "os"
	SettingCompiler  SettingName = "compiler"
	SettingBuildType SettingName = "build_type"
	SettingArch      SettingName = "arch"
)
