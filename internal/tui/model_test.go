package tui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/sqlite"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func openStore(t *testing.T) store.ItemStore {
	t.Helper()
	s, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "list.sqlite"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// drive feeds msg to m and keeps feeding the store results its commands
// produce until the model settles.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for i := 0; msg != nil; i++ {
		require.Less(t, i, 10, "model did not settle")
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			return m
		}
		msg = cmd()
		switch msg.(type) {
		case itemsLoadedMsg, itemAddedMsg, itemDeletedMsg, storeErrMsg:
		default:
			return m
		}
	}
	return m
}

func newModel(t *testing.T, s store.ItemStore, log logger.Logger) Model {
	t.Helper()
	m := New(context.Background(), s, log, ui.ThemeByName("mono"))
	return drive(t, m, loadItems(m.ctx, m.store)())
}

func typeAndSubmit(t *testing.T, m Model, title string) Model {
	t.Helper()
	m.input.SetValue(title)
	return drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func titles(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestAddRendersNewRow(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)
	require.Empty(t, m.Items())

	m = typeAndSubmit(t, m, "Milk")

	require.Len(t, m.Items(), 1)
	assert.Equal(t, "Milk", m.Items()[0].Title)
	assert.Equal(t, "", m.input.Value(), "input is cleared after add")
	assert.Contains(t, m.View(), "Milk")
}

func TestAddsRenderInIDOrder(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)

	want := []string{"Milk", "Eggs", "Bread", "Milk"}
	for _, title := range want {
		m = typeAndSubmit(t, m, title)
	}

	items := m.Items()
	assert.Equal(t, want, titles(items))
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
}

func TestBlankTitleIsIgnored(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)

	m.input.SetValue("   ")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, next.(Model).Items())

	stored, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDeleteRemovesOnlySelectedRow(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)
	for _, title := range []string{"Milk", "Eggs", "Flour"} {
		m = typeAndSubmit(t, m, title)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.True(t, m.listFocused)

	m.list.Select(1)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	assert.Equal(t, []string{"Milk", "Flour"}, titles(m.Items()))
	stored, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Flour"}, titles(stored))
}

func TestDeleteLastRowReturnsFocusToInput(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)
	m = typeAndSubmit(t, m, "Milk")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Empty(t, m.Items())
	assert.False(t, m.listFocused)
	assert.True(t, m.input.Focused())
}

func TestTabIgnoredOnEmptyList(t *testing.T) {
	m := newModel(t, openStore(t), nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, next.(Model).listFocused)
}

func TestRenderFollowsStorage(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	_, err := s.Add(ctx, "Tea")
	require.NoError(t, err)

	m := newModel(t, s, nil)
	require.Equal(t, []string{"Tea"}, titles(m.Items()))

	// A row added behind the UI's back shows up on the next acknowledged add.
	_, err = s.Add(ctx, "Coffee")
	require.NoError(t, err)
	m = typeAndSubmit(t, m, "Sugar")
	assert.Equal(t, []string{"Tea", "Coffee", "Sugar"}, titles(m.Items()))
}

func TestStoreErrorsGoToLog(t *testing.T) {
	s := openStore(t)
	var buf bytes.Buffer
	log := logger.NewConsoleLogger(config.LogLevelInfo, &buf)
	m := newModel(t, s, log)

	next, cmd := m.Update(storeErrMsg{op: "add", err: errors.New("disk full")})
	assert.Nil(t, cmd)
	assert.Contains(t, buf.String(), "add failed: disk full")
	assert.Empty(t, next.(Model).Items())
}

func TestNotFoundOnDeleteReloads(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)
	m = typeAndSubmit(t, m, "Milk")
	m = typeAndSubmit(t, m, "Eggs")

	id := m.Items()[0].ID
	require.NoError(t, s.Delete(context.Background(), id))

	m = drive(t, m, deleteItem(m.ctx, m.store, id)())
	assert.Equal(t, []string{"Eggs"}, titles(m.Items()))
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t, openStore(t), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowResize(t *testing.T) {
	m := newModel(t, openStore(t), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 116, m.list.Width())
	assert.Equal(t, 33, m.list.Height())
}

func TestLongTitleIsStoredInFull(t *testing.T) {
	s := openStore(t)
	m := newModel(t, s, nil)

	long := []rune(strings.Repeat("Oat milk, unsweetened. ", 11))[:250]
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: long})
	m = next.(Model)
	require.Equal(t, string(long), m.input.Value())

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.Items(), 1)
	assert.Equal(t, string(long), m.Items()[0].Title)
	stored, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, string(long), stored[0].Title)
}
