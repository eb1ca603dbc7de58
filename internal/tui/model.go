// Package tui is the interactive shopping list: a text input that adds items
// on Enter above the stored list, where each row has a delete control.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model implements tea.Model.
type Model struct {
	ctx   context.Context
	store store.ItemStore
	log   logger.Logger
	theme ui.Theme
	keys  keyMap

	input       textinput.Model
	list        list.Model
	listFocused bool

	width, height int
}

// New builds the UI model around an open store.
func New(ctx context.Context, s store.ItemStore, log logger.Logger, theme ui.Theme) Model {
	if log == nil {
		log = logger.Nop{}
	}
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{theme: theme}, defaultWidth, defaultHeight)
	l.Title = "Shopping list"
	l.Styles.Title = theme.Title
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	l.FilterInput.Prompt = "/ "
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 0
	ti.Focus()

	m := Model{
		ctx:    ctx,
		store:  s,
		log:    log,
		theme:  theme,
		keys:   keys,
		input:  ti,
		list:   l,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadItems(m.ctx, m.store))
}

// Items returns the rows currently rendered.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, li := range m.list.Items() {
		if it, ok := li.(listItem); ok {
			out = append(out, it.Item)
		}
	}
	return out
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case itemsLoadedMsg:
		cmd := m.setItems(msg.items)
		return m, cmd

	case itemAddedMsg:
		m.input.Reset()
		m.log.Debug("added item ", msg.item.ID)
		return m, loadItems(m.ctx, m.store)

	case itemDeletedMsg:
		return m, loadItems(m.ctx, m.store)

	case storeErrMsg:
		m.log.Error(msg.op, " failed: ", msg.err)
		if errors.Is(msg.err, store.ErrNotFound) {
			return m, loadItems(m.ctx, m.store)
		}
		return m, nil

	case tea.KeyMsg:
		if m.listFocused {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	if m.listFocused {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		title := m.input.Value()
		if strings.TrimSpace(title) == "" {
			return m, nil
		}
		return m, addItem(m.ctx, m.store, title)
	case key.Matches(msg, m.keys.Focus):
		if len(m.list.Items()) == 0 {
			return m, nil
		}
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit) && m.list.FilterState() == list.FilterApplied:
		m.list.ResetFilter()
		return m, nil
	case key.Matches(msg, m.keys.Quit), msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		return m, deleteItem(m.ctx, m.store, it.ID)
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Add):
		cmd := m.focusInput()
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) focusInput() tea.Cmd {
	m.listFocused = false
	m.list.SetDelegate(itemDelegate{theme: m.theme})
	return m.input.Focus()
}

func (m *Model) focusList() {
	m.input.Blur()
	m.listFocused = true
	m.list.SetDelegate(itemDelegate{theme: m.theme, listFocused: true})
}

// setItems replaces the rendered rows with the stored ones.
func (m *Model) setItems(items []model.Item) tea.Cmd {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}
	cmd := m.list.SetItems(li)
	if n := len(li); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	if len(li) == 0 && m.listFocused {
		return tea.Batch(cmd, m.focusInput())
	}
	return cmd
}

func (m *Model) resize() {
	// border + input box + spacing
	m.list.SetSize(m.width-4, m.height-7)
	m.input.Width = m.width - 10
}

func (m Model) View() string {
	box := lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1)
	label := m.theme.Accent.Render("Add item")
	if m.listFocused {
		label = m.theme.Muted.Render("Add item (tab to focus)")
	}
	inputBox := box.Render(label + "\n" + m.input.View())
	header := fmt.Sprintf("%s %s", m.theme.Muted.Render("Total"), m.theme.Accent.Render(fmt.Sprint(len(m.list.Items()))))
	return ui.Panel(m.theme, []string{inputBox, header, m.list.View()})
}
