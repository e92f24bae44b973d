package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatewaytools/perfsync/internal/tui/delegate"
	"github.com/gatewaytools/perfsync/internal/tui/picker"
)

// VariantItem is one translation variant in the picker.
type VariantItem struct {
	Name        string
	Description string
}

// FilterValue implements list.Item.
func (v VariantItem) FilterValue() string { return v.Name }

func renderVariantItem(w io.Writer, m list.Model, index int, item list.Item) {
	v, ok := item.(VariantItem)
	if !ok {
		return
	}
	label := fmt.Sprintf("%-12s", v.Name)
	desc := StyleHelp.Render(v.Description)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+label)+" "+desc)
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(label)+" "+desc)
	}
}

type variantPickerModel struct {
	base     *picker.Base
	selected *VariantItem
}

func (m variantPickerModel) Init() tea.Cmd {
	return nil
}

func (m variantPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.base.Update(msg)

	if m.base.IsQuitting() && m.base.Error() == nil {
		if item, ok := m.base.SelectedItem().(VariantItem); ok {
			m.selected = &item
		}
	}
	return m, cmd
}

func (m variantPickerModel) View() string {
	return m.base.View()
}

// RunVariantPicker asks the user which translation variant to sync.
func RunVariantPicker() (string, error) {
	items := []list.Item{
		VariantItem{Name: "literal", Description: "form-centric translation (ULT/GLT)"},
		VariantItem{Name: "simplified", Description: "meaning-centric translation (UST/GST)"},
	}

	d := delegate.New(renderVariantItem)
	l := list.New(items, d, 0, 0)
	l.Title = "Select variant"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()
	base := picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
		OnSelect: func(item list.Item) bool {
			return true
		},
	})

	m := variantPickerModel{base: base}
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(variantPickerModel); ok {
		if fm.selected != nil {
			return fm.selected.Name, nil
		}
		if fm.base.Error() != nil {
			return "", fm.base.Error()
		}
	}
	return "", fmt.Errorf("canceled")
}
