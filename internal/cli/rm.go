package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete the item with the given id",
		Example: "  shoplist rm 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return usageError("rm: not a number: " + args[0])
			}

			sess, err := openSession(cmd, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return &ExitError{
						Code:    ExitUsage,
						Message: fmt.Sprintf("no item with id %d", id),
						Hint:    "Hint: run `shoplist ls` to see valid ids",
					}
				}
				return failure("rm", err)
			}
			ui.OK(cmd.OutOrStdout(), sess.theme, fmt.Sprintf("removed %d", id))
			return nil
		},
	}
}
