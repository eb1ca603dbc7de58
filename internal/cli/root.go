package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/config"
)

// RootOptions holds global flags; set flags override the environment.
type RootOptions struct {
	StoreType string
	DB        string
	Theme     string
	LogLevel  string

	settings *config.Settings
}

// NewRootCommand creates the shoplist command tree. With no subcommand it
// starts the interactive list.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shoplist",
		Short: "A local shopping list",
		Long: `shoplist keeps a shopping list in a local database.

Run without a subcommand to open the interactive list: type a title and press
Enter to add it, tab into the list and press d to delete the selected row.

Configuration is read from SHOPLIST_* environment variables; flags win.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.StoreType, "store", "", "storage backend (sqlite|json)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to the list database")
	cmd.PersistentFlags().StringVar(&opts.Theme, "theme", "", "color theme (classic|neon|mono)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "diagnostic log level (debug|info|warning|error)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewUICommand(opts))

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	s, err := config.Load()
	if err != nil {
		return failure("config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		s.Store.Type = o.StoreType
	}
	if flags.Changed("db") {
		s.Store.Path = o.DB
	}
	if flags.Changed("theme") {
		s.Theme = o.Theme
	}
	if flags.Changed("log-level") {
		s.Logger.LogLevel = o.LogLevel
	}
	if err := s.Validate(); err != nil {
		return &ExitError{Code: ExitUsage, Message: "config", Err: err}
	}
	o.settings = s
	return nil
}

func (o *RootOptions) themeName() string {
	if o.settings != nil {
		return o.settings.Theme
	}
	return o.Theme
}
