package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/models"
)

func NewBooksCommand() *cobra.Command {
	books := &cobra.Command{
		Use:   "books",
		Short: "Query the books of a running book server",
	}
	books.AddCommand(newBooksListCommand(), newBooksTotalCommand(), newBooksGetCommand())

	return books
}

func addFilterFlags(flags *pflag.FlagSet) {
	flags.String("author", "", "Author, case-insensitive")
	flags.Int("price-bigger-than", 0, "Inclusive lower bound")
	flags.Int("price-less-than", 0, "Inclusive upper bound on price")
	flags.Int("year-bigger-than", 0, "Inclusive lower bound on year")
	flags.Int("year-less-than", 0, "Inclusive upper bound on year")
	flags.String("genres", "", "Comma separated upper case genres")
}

// filterFromFlags only sets the predicates whose flag was given.
func filterFromFlags(flags *pflag.FlagSet) models.BookFilter {
	var f models.BookFilter

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	num := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}

	f.Author = str("author")
	f.PriceBiggerThan = num("price-bigger-than")
	f.PriceLessThan = num("price-less-than")
	f.YearBiggerThan = num("year-bigger-than")
	f.YearLessThan = num("year-less-than")
	f.Genres = str("genres")
	return f
}

func newBooksListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books sorted by title",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}
			books, err := c.ListBooks(cmd.Context(), filterFromFlags(cmd.Flags()))
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			for _, b := range books {
				printBook(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
	addFilterFlags(cmd.Flags())
	addServerFlags(cmd)

	return cmd
}

func newBooksTotalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Count books matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}
			total, err := c.CountBooks(cmd.Context(), filterFromFlags(cmd.Flags()))
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
	addFilterFlags(cmd.Flags())
	addServerFlags(cmd)

	return cmd
}

func newBooksGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print one book",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetInt("id")

			c, err := newClientFromFlags(cmd)
			if err != nil {
				return err
			}
			book, err := c.GetBook(cmd.Context(), id)
			if err != nil {
				failColor.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			printBook(cmd.OutOrStdout(), book)
			return nil
		},
	}
	cmd.Flags().Int("id", 0, "Book id")
	_ = cmd.MarkFlagRequired("id")
	addServerFlags(cmd)

	return cmd
}

func printBook(w io.Writer, b v1.Book) {
	keyColor.Fprintf(w, "#%d ", b.Id)
	fmt.Fprintf(w, "%s by %s (%d) price %d [%s]\n", b.Title, b.Author, b.Year, b.Price, strings.Join(b.Genres, ","))
}
