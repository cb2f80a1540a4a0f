package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Export, install, build and package into the package cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Create(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("created %s:%s\n", result.Export.Reference, result.Package.PackageID)
	fmt.Printf("package folder: %s\n", result.Package.PackageFolder)
	return nil
}
