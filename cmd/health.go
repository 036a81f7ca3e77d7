package cmd

import (
	"github.com/spf13/cobra"
)

func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that a book server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}

			status, err := c.Health(cmd.Context())
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), "unhealthy:", err)
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
	addServerFlags(cmd)

	return cmd
}
