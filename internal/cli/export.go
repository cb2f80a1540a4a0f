package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the recipe and its exported sources into the package cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Export(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("exported %s: %d files to %s\n", result.Reference, len(result.Files), result.ExportSourceFolder)
	return nil
}
