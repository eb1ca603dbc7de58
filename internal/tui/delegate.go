package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Title }

// itemDelegate draws single-line rows with a delete control. The selection
// is highlighted only while the list has focus.
type itemDelegate struct {
	theme       ui.Theme
	listFocused bool
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := d.theme.UnselectedPrefix
	title := ui.Truncate(it.Title, ui.MaxTitleWidth)
	if index == m.Index() && d.listFocused {
		prefix = d.theme.SelectedPrefix
		title = d.theme.Selected.Render(title)
	}
	fmt.Fprintf(w, "%s%s  %s", prefix, title, d.theme.Error.Render(d.theme.SymDelete))
}
