package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// Each store call runs as a tea.Cmd; its result message is the acknowledgement
// that the next render waits on.

type itemsLoadedMsg struct{ items []model.Item }

type itemAddedMsg struct{ item model.Item }

type itemDeletedMsg struct{ id int64 }

type storeErrMsg struct {
	op  string
	err error
}

func loadItems(ctx context.Context, s store.ItemStore) tea.Cmd {
	return func() tea.Msg {
		items, err := s.List(ctx)
		if err != nil {
			return storeErrMsg{op: "list", err: err}
		}
		return itemsLoadedMsg{items: items}
	}
}

func addItem(ctx context.Context, s store.ItemStore, title string) tea.Cmd {
	return func() tea.Msg {
		it, err := s.Add(ctx, title)
		if err != nil {
			return storeErrMsg{op: "add", err: err}
		}
		return itemAddedMsg{item: it}
	}
}

func deleteItem(ctx context.Context, s store.ItemStore, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := s.Delete(ctx, id); err != nil {
			return storeErrMsg{op: "delete", err: err}
		}
		return itemDeletedMsg{id: id}
	}
}
