package cmd

import (
	"github.com/spf13/cobra"
)

func NewLogsCommand() *cobra.Command {
	logs := &cobra.Command{
		Use:   "logs",
		Short: "Inspect the loggers of a running book server",
	}

	level := &cobra.Command{
		Use:   "level",
		Short: "Get or set the level of a logger",
	}
	level.AddCommand(newLogsLevelGetCommand(), newLogsLevelSetCommand())
	logs.AddCommand(level)

	return logs
}

func newLogsLevelGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the level of a logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("logger-name")

			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}
			level, err := c.GetLogLevel(cmd.Context(), name)
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			keyColor.Fprintf(cmd.OutOrStdout(), "%s: ", name)
			okColor.Fprintln(cmd.OutOrStdout(), level)
			return nil
		},
	}
	cmd.Flags().String("logger-name", "", "Logger name: request-logger or books-logger")
	_ = cmd.MarkFlagRequired("logger-name")
	addServerFlags(cmd)

	return cmd
}

func newLogsLevelSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the level of a logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("logger-name")
			level, _ := cmd.Flags().GetString("level")

			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}
			current, err := c.SetLogLevel(cmd.Context(), name, level)
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			keyColor.Fprintf(cmd.OutOrStdout(), "%s: ", name)
			okColor.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}
	cmd.Flags().String("logger-name", "", "Logger name: request-logger or books-logger")
	cmd.Flags().String("level", "", "One of ERROR, WARN, INFO, DEBUG, TRACE")
	_ = cmd.MarkFlagRequired("logger-name")
	_ = cmd.MarkFlagRequired("level")
	addServerFlags(cmd)

	return cmd
}
