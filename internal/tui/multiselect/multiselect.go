// Package multiselect wraps a bubbles list with checkbox-style
// multi-selection.
package multiselect

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectableItem extends list.Item with selection state. Implementations
// should use pointer receivers so toggles survive list updates.
type SelectableItem interface {
	list.Item
	IsSelected() bool
	SetSelected(bool)
}

// Model wraps a bubbles/list.Model with multi-select state.
type Model struct {
	List            list.Model
	selected        map[string]bool // keyed by FilterValue
	originalTitle   string
	checkboxChecked string
	checkboxEmpty   string
}

// New creates a multi-select model wrapping the given list.
func New(l list.Model) Model {
	return Model{
		List:            l,
		selected:        make(map[string]bool),
		originalTitle:   l.Title,
		checkboxChecked: "[x] ",
		checkboxEmpty:   "[ ] ",
	}
}

// Toggle flips the selection state of the cursor item.
// Returns false if the cursor item is not selectable.
func (m *Model) Toggle() bool {
	item, ok := m.List.SelectedItem().(SelectableItem)
	if !ok {
		return false
	}
	key := item.FilterValue()
	m.selected[key] = !m.selected[key]
	item.SetSelected(m.selected[key])
	m.updateTitle()
	return true
}

// SelectedKeys returns the keys of all selected items.
func (m *Model) SelectedKeys() []string {
	var keys []string
	for key, on := range m.selected {
		if on {
			keys = append(keys, key)
		}
	}
	return keys
}

// SelectedCount returns the number of selected items.
func (m *Model) SelectedCount() int {
	count := 0
	for _, on := range m.selected {
		if on {
			count++
		}
	}
	return count
}

// CheckboxPrefix returns the checkbox prefix for an item. Meant to be
// used by custom item delegates.
func (m *Model) CheckboxPrefix(item SelectableItem) string {
	if item.IsSelected() {
		return m.checkboxChecked
	}
	return m.checkboxEmpty
}

func (m *Model) updateTitle() {
	m.List.Title = fmt.Sprintf("%s (%d selected)", m.originalTitle, m.SelectedCount())
}

// Update handles messages for the multi-select model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.List.View()
}
