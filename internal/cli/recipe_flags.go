package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urf-recipe/internal/app"
	"urf-recipe/internal/types"
)

// recipeOptions are the flags shared by every lifecycle command.
type recipeOptions struct {
	Recipe        string
	RecipeFolder  string
	SourceFolder  string
	InstallFolder string
	PackageFolder string
	CacheDir      string
	OS            string
	Compiler      string
	BuildType     string
	Arch          string
	Shared        bool
	Jobs          int
	SkipTests     bool
	Sudo          bool
}

func addRecipeFlags(cmd *cobra.Command, opts *recipeOptions) {
	cmd.Flags().StringVar(&opts.Recipe, "recipe", "", "Recipe file (urf-recipe.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.RecipeFolder, "recipe-folder", ".", "Folder holding the recipe and sources")
	cmd.Flags().StringVar(&opts.SourceFolder, "source-folder", "", "Source folder, defaults to the recipe folder")
	cmd.Flags().StringVar(&opts.InstallFolder, "install-folder", "", "Folder for generated files, defaults to the recipe folder")
	cmd.Flags().StringVar(&opts.PackageFolder, "package-folder", "", "Package folder, defaults to the package cache")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Package cache root")
	cmd.Flags().StringVar(&opts.OS, "os", "", "Target os (Linux, Windows, Macos)")
	cmd.Flags().StringVar(&opts.Compiler, "compiler", "", "Target compiler")
	cmd.Flags().StringVar(&opts.BuildType, "build-type", "", "Build type (Debug, Release, RelWithDebInfo, MinSizeRel)")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "Target arch (x86_64, x86, armv8, armv7)")
	cmd.Flags().BoolVar(&opts.Shared, "shared", true, "Build shared libraries")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Parallel build jobs, 0 lets CMake decide")
	cmd.Flags().BoolVar(&opts.SkipTests, "skip-tests", false, "Do not run ctest")
	cmd.Flags().BoolVar(&opts.Sudo, "sudo", true, "Use sudo -n for system packages when not root")

	_ = viper.BindPFlag("recipe", cmd.Flags().Lookup("recipe"))
	_ = viper.BindPFlag("recipe_folder", cmd.Flags().Lookup("recipe-folder"))
	_ = viper.BindPFlag("source_folder", cmd.Flags().Lookup("source-folder"))
	_ = viper.BindPFlag("install_folder", cmd.Flags().Lookup("install-folder"))
	_ = viper.BindPFlag("package_folder", cmd.Flags().Lookup("package-folder"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("os", cmd.Flags().Lookup("os"))
	_ = viper.BindPFlag("compiler", cmd.Flags().Lookup("compiler"))
	_ = viper.BindPFlag("build_type", cmd.Flags().Lookup("build-type"))
	_ = viper.BindPFlag("arch", cmd.Flags().Lookup("arch"))
	_ = viper.BindPFlag("jobs", cmd.Flags().Lookup("jobs"))
	_ = viper.BindPFlag("skip_tests", cmd.Flags().Lookup("skip-tests"))
	_ = viper.BindPFlag("sudo", cmd.Flags().Lookup("sudo"))
}

func (o recipeOptions) request(cmd *cobra.Command) app.RecipeRequest {
	return app.RecipeRequest{
		RecipePath:    resolveString(cmd, o.Recipe, "recipe", "recipe"),
		RecipeFolder:  resolveString(cmd, o.RecipeFolder, "recipe_folder", "recipe-folder"),
		SourceFolder:  resolveString(cmd, o.SourceFolder, "source_folder", "source-folder"),
		InstallFolder: resolveString(cmd, o.InstallFolder, "install_folder", "install-folder"),
		PackageFolder: resolveString(cmd, o.PackageFolder, "package_folder", "package-folder"),
		Settings: types.Settings{
			OS:        types.OS(resolveString(cmd, o.OS, "os", "os")),
			Compiler:  resolveString(cmd, o.Compiler, "compiler", "compiler"),
			BuildType: types.BuildType(resolveString(cmd, o.BuildType, "build_type", "build-type")),
			Arch:      types.Arch(resolveString(cmd, o.Arch, "arch", "arch")),
		},
		Shared:    o.shared(cmd),
		Jobs:      resolveInt(cmd, o.Jobs, "jobs", "jobs"),
		SkipTests: resolveBool(cmd, o.SkipTests, "skip_tests", "skip-tests"),
	}
}

// shared returns nil unless the option was set explicitly, so the recipe
// default applies.
func (o recipeOptions) shared(cmd *cobra.Command) *bool {
	if flagChanged(cmd, "shared") {
		value := o.Shared
		return &value
	}
	if viper.IsSet("shared") {
		value := viper.GetBool("shared")
		return &value
	}
	return nil
}

func (o recipeOptions) service(cmd *cobra.Command) app.Service {
	return app.NewService(app.Config{
		CacheDir: resolveString(cmd, o.CacheDir, "cache_dir", "cache-dir"),
		Sudo:     resolveBool(cmd, o.Sudo, "sudo", "sudo"),
		Output:   os.Stdout,
	})
}
