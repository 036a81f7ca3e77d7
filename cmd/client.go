package cmd

import (
	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"github.com/kaplat/book-server/pkg/client"
)

const defaultServerURL = "http://localhost:8574"

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	keyColor  = color.New(color.FgCyan)
)

// addServerFlags registers the flags shared by client commands. Flags not
// given on the command line are taken from BOOKS_<FLAG> variables, e.g.
// BOOKS_URL or BOOKS_RETRIES.
func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().String("url", defaultServerURL, "Book server base url")
	cmd.Flags().Uint("retries", 3, "Attempts per request, including the first one")
	cmd.PreRunE = cobrautil.SyncViperPreRunE(envPrefix)
}

func newClientFromFlags(cmd *cobra.Command) (*client.Client, error) {
	url, err := cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}
	retries, err := cmd.Flags().GetUint("retries")
	if err != nil {
		return nil, err
	}
	return client.NewClient(url, client.WithMaxTries(retries))
}
