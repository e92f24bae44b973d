package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatewaytools/perfsync/internal/books"
	"github.com/gatewaytools/perfsync/internal/tui/delegate"
	"github.com/gatewaytools/perfsync/internal/tui/multiselect"
)

// BookItem is one canon book in the picker list.
type BookItem struct {
	Book     books.Book
	selected bool
}

// FilterValue implements list.Item. It doubles as the selection key, so
// it must be unique per book.
func (b *BookItem) FilterValue() string {
	return b.Book.Code + " " + b.Book.Name
}

// IsSelected implements multiselect.SelectableItem.
func (b *BookItem) IsSelected() bool { return b.selected }

// SetSelected implements multiselect.SelectableItem.
func (b *BookItem) SetSelected(v bool) { b.selected = v }

func renderBookItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(*BookItem)
	if !ok {
		return
	}

	checkbox := "[ ] "
	if bookItem.selected {
		checkbox = "[x] "
	}
	label := fmt.Sprintf("%s-%s  %s", bookItem.Book.Num, bookItem.Book.Code, bookItem.Book.Name)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+checkbox+label))
	} else {
		_, _ = fmt.Fprint(w, "  "+checkbox+StyleNormal.Render(label))
	}
}

type bookPickerModel struct {
	multi    multiselect.Model
	keys     StandardKeys
	quitting bool
	canceled bool
}

func (m bookPickerModel) Init() tea.Cmd {
	return nil
}

func (m bookPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.multi.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.multi.Toggle()
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.multi.List.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.multi, cmd = m.multi.Update(msg)
	return m, cmd
}

func (m bookPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.multi.View())
}

// RunBookPicker launches an interactive multi-select over the canon,
// excluding codes that are already in the workspace. Returns the chosen
// book codes.
func RunBookPicker(excludeCodes []string) ([]string, error) {
	excluded := make(map[string]bool, len(excludeCodes))
	for _, c := range excludeCodes {
		excluded[strings.ToUpper(c)] = true
	}

	var items []list.Item
	for _, b := range books.All() {
		if excluded[b.Code] {
			continue
		}
		items = append(items, &BookItem{Book: b})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("every book is already in the workspace")
	}

	keys := NewStandardKeys()
	d := delegate.New(renderBookItem)
	l := list.New(items, d, 0, 0)
	l.Title = "Select books"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Confirm}
	}

	m := bookPickerModel{
		multi: multiselect.New(l),
		keys:  keys,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	fm, ok := finalModel.(bookPickerModel)
	if !ok || fm.canceled {
		return nil, fmt.Errorf("canceled")
	}

	var codes []string
	for _, k := range fm.multi.SelectedKeys() {
		code, _, _ := strings.Cut(k, " ")
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no books selected")
	}
	return codes, nil
}
