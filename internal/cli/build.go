package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Configure, build, test and install with CMake",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Build(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("built: %s\n", result.BuildFolder)
	if result.TestsSkipped {
		fmt.Println("tests skipped")
	}
	if len(result.Imported) > 0 {
		fmt.Printf("imported files: %d\n", len(result.Imported))
	}
	return nil
}
