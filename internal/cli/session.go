package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/store/sqlite"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// session is the per-command set of open resources.
type session struct {
	store store.ItemStore
	log   logger.Logger
	theme ui.Theme
}

// openSession builds the logger (console output goes to logOut) and opens
// the configured store.
func openSession(cmd *cobra.Command, opts *RootOptions, logOut io.Writer) (*session, error) {
	s := opts.settings
	log, err := logger.New(&s.Logger, logOut)
	if err != nil {
		return nil, failure("logger", err)
	}
	path, err := s.Store.ResolvePath()
	if err != nil {
		_ = log.Close()
		return nil, failure("open store", err)
	}

	var st store.ItemStore
	switch s.Store.Type {
	case config.StoreTypeJSON:
		st, err = jsonstore.Open(cmd.Context(), path, log)
	default:
		st, err = sqlite.Open(cmd.Context(), path, log)
	}
	if err != nil {
		_ = log.Close()
		return nil, failure("open store", err)
	}
	return &session{store: st, log: log, theme: ui.ThemeByName(s.Theme)}, nil
}

func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.log.Close())
}
