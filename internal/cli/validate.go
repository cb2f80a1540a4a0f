package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urf-recipe/internal/app"
)

type validateOptions struct {
	Recipe       string
	RecipeFolder string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the recipe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Recipe, "recipe", "", "Recipe file (urf-recipe.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.RecipeFolder, "recipe-folder", ".", "Folder holding the recipe")
	_ = viper.BindPFlag("recipe", cmd.Flags().Lookup("recipe"))
	_ = viper.BindPFlag("recipe_folder", cmd.Flags().Lookup("recipe-folder"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := app.NewService(app.Config{})
	result, err := service.Validate(ctx, app.ValidateRequest{
		RecipePath:   resolveString(cmd, opts.Recipe, "recipe", "recipe"),
		RecipeFolder: resolveString(cmd, opts.RecipeFolder, "recipe_folder", "recipe-folder"),
	})
	if err != nil {
		return err
	}
	source := result.RecipePath
	if source == "" {
		source = "built-in recipe"
	}
	fmt.Printf("validated: %s (%s)\n", result.Reference, source)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
