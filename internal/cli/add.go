package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/ui"
)

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add an item (the title can be several words)",
		Example: `  shoplist add Milk
  shoplist add "Semi-skimmed milk"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return usageError("add: empty title")
			}

			sess, err := openSession(cmd, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			it, err := sess.store.Add(cmd.Context(), title)
			if err != nil {
				return failure("add", err)
			}
			ui.OK(cmd.OutOrStdout(), sess.theme, fmt.Sprintf("added %d. %s", it.ID, it.Title))
			return nil
		},
	}
}
