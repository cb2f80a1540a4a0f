package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPackageCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Package headers and binaries and publish the package info",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackage(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runPackage(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Package(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("packaged %d files into %s\n", len(result.Files), result.PackageFolder)
	fmt.Printf("package id: %s\n", result.PackageID)
	return nil
}
