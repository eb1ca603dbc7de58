package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Run starts the interactive list and blocks until the user quits. A
// cancelled ctx (SIGINT/SIGTERM) ends the program like a normal quit.
func Run(ctx context.Context, s store.ItemStore, log logger.Logger, theme ui.Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, s, log, theme), opts...)
	if _, err := p.Run(); err != nil && !interrupted(err) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func interrupted(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)
}
