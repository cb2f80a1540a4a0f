package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the reference, package id, settings and requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Inspect(ctx, opts.request(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("reference: %s\n", result.Reference)
	if result.RecipePath != "" {
		fmt.Printf("recipe: %s\n", result.RecipePath)
	}
	fmt.Printf("package id: %s\n", result.PackageID)
	fmt.Printf("package folder: %s\n", result.PackageFolder)
	fmt.Printf("settings: os=%s compiler=%s build_type=%s arch=%s\n",
		result.Settings.OS, result.Settings.Compiler, result.Settings.BuildType, result.Settings.Arch)
	fmt.Printf("options: shared=%t\n", result.Options.Shared)
	fmt.Println("requirements:")
	for _, req := range result.Requirements {
		kind := "requires"
		if req.Build {
			kind = "build_requires"
		}
		fmt.Printf("- %s (%s)\n", req, kind)
	}
	fmt.Println("dependency options:")
	deps := make([]string, 0, len(result.DependencyOptions))
	for dep := range result.DependencyOptions {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	for _, dep := range deps {
		options := result.DependencyOptions[dep]
		keys := make([]string, 0, len(options))
		for key := range options {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("- %s:%s=%s\n", dep, key, options[key])
		}
	}
	if len(result.ImportDestinations) > 0 {
		fmt.Printf("imports: %s\n", strings.Join(result.ImportDestinations, ", "))
	}
	fmt.Printf("libs: %s\n", strings.Join(result.CppInfo.Libs, ", "))
	return nil
}
