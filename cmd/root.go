package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "book-server",
		Short:        "In-memory book record service",
		SilenceUsage: true,
	}

	root.AddCommand(
		NewRunCommand(),
		NewHealthCommand(),
		NewLogsCommand(),
		NewBooksCommand(),
	)

	return root
}
