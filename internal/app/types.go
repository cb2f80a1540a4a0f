package app

import "urf-recipe/internal/types"

type ValidateRequest struct {
	RecipePath   string
	RecipeFolder string
}

type ValidateResult struct {
	Reference string
	// RecipePath is empty when the built-in recipe was used.
	RecipePath string
}

// RecipeRequest is shared by every lifecycle operation. Empty settings are
// detected from the host; a nil Shared keeps the recipe default.
type RecipeRequest struct {
	RecipePath    string
	RecipeFolder  string
	SourceFolder  string
	InstallFolder string
	PackageFolder string
	Settings      types.Settings
	Shared        *bool
	Jobs          int
	SkipTests     bool
}

type InspectResult struct {
	Reference          string
	RecipePath         string
	PackageID          string
	Settings           types.Settings
	Options            types.Options
	Requirements       []types.Requirement
	DependencyOptions  map[string]map[string]string
	ImportDestinations []string
	PackageFolder      string
	CppInfo            types.CppInfo
}

type InstallResult struct {
	Requirements      []types.ResolvedRequirement
	DependencyOptions map[string]map[string]string
	Generated         []string
}

type BuildResult struct {
	BuildFolder  string
	Definitions  []types.Definition
	TestsSkipped bool
	Imported     []string
}

type PackageResult struct {
	PackageID     string
	PackageFolder string
	Files         []string
	Manifest      []types.ManifestEntry
	Info          types.PackageInfo
}

type ExportResult struct {
	Reference          string
	ExportFolder       string
	ExportSourceFolder string
	Files              []string
}

type CreateResult struct {
	Export  ExportResult
	Install InstallResult
	Build   BuildResult
	Package PackageResult
}
