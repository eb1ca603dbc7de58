package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Output formats for ls.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ListOptions holds flags for the ls command.
type ListOptions struct {
	*RootOptions
	Title  string
	Format string
}

// NewListCommand creates the ls command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items by ascending id",
		Example: `  shoplist ls
  shoplist ls --title Milk
  shoplist ls --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != FormatText && opts.Format != FormatJSON {
				return usageError(fmt.Sprintf("invalid format %q: must be one of %s, %s", opts.Format, FormatText, FormatJSON))
			}

			sess, err := openSession(cmd, opts.RootOptions, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			var items []model.Item
			if cmd.Flags().Changed("title") {
				items, err = sess.store.FindByTitle(cmd.Context(), opts.Title)
			} else {
				items, err = sess.store.List(cmd.Context())
			}
			if err != nil {
				return failure("load", err)
			}

			out := cmd.OutOrStdout()
			if opts.Format == FormatJSON {
				b, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return failure("json marshal", err)
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			fmt.Fprintln(out, ui.Panel(sess.theme, ui.ListLines(sess.theme, items)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "only items with exactly this title")
	cmd.Flags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	return cmd
}
