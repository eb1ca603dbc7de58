package cli

import (
	"bytes"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/tui"
)

// NewUICommand creates the ui command; it is also what the bare root runs.
func NewUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
}

func runUI(cmd *cobra.Command, opts *RootOptions) error {
	// Console log lines would tear the alt screen; hold them until it closes.
	held := &heldLog{}
	sess, err := openSession(cmd, opts, held)
	if err != nil {
		_ = held.flush(cmd.ErrOrStderr())
		return err
	}
	defer sess.Close()

	err = tui.Run(cmd.Context(), sess.store, sess.log, sess.theme)
	_ = held.flush(cmd.ErrOrStderr())
	if err != nil {
		return failure("ui", err)
	}
	return nil
}

// heldLog buffers log output. Store commands may still be writing when the
// program exits, so writes and flushes are serialized.
type heldLog struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *heldLog) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

// flush moves everything written so far to w.
func (h *heldLog) flush(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.buf.WriteTo(w)
	return err
}
