package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newInstallCommand() *cobra.Command {
	opts := recipeOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Check system tools, resolve requirements and write generator files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}
	addRecipeFlags(cmd, &opts)
	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts recipeOptions) error {
	service := opts.service(cmd)
	result, err := service.Install(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	for _, dep := range result.Requirements {
		source := "system"
		if dep.Cached() {
			source = dep.Folder
		}
		fmt.Printf("- %s: %s\n", dep.Requirement, source)
	}
	for _, path := range result.Generated {
		fmt.Printf("generated: %s\n", path)
	}
	return nil
}
