package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root svdpress command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "svdpress",
		Short:         "svdpress — lossy image compression via truncated SVD",
		Long:          "svdpress compresses images by replacing each color channel with a rank-limited approximation of its pixel matrix.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCompressCmd(),
		newVersionCmd(),
	)

	return root
}
