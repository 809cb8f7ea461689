package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
)

// componentItem is one browsable entry: a component reference with its
// placement inside the library structure.
type componentItem struct {
	name       string
	category   string
	group      string
	subGroup   string
	complexity nodespec.Complexity
	variants   int
}

func (i componentItem) Title() string { return i.name }

func (i componentItem) Description() string {
	return fmt.Sprintf("%s › %s › %s · %s · %d variant(s)",
		i.category, i.group, i.subGroup, i.complexity, i.variants)
}

func (i componentItem) FilterValue() string { return i.name + " " + i.category + " " + i.group }

// Model contains the Bubbletea state for the library browser.
type Model struct {
	title    string
	list     list.Model
	quitting bool
}

// NewModel constructs the browser model over an organized library.
func NewModel(title string, structure nodespec.LibraryStructure) Model {
	items := make([]list.Item, 0, structure.ComponentCount())
	for _, category := range structure.Categories {
		for _, group := range category.Groups {
			for _, sub := range group.SubGroups {
				for _, ref := range sub.Components {
					items = append(items, componentItem{
						name:       ref.Name,
						category:   category.Name,
						group:      group.Name,
						subGroup:   sub.Name,
						complexity: ref.Complexity,
						variants:   ref.VariantCount,
					})
				}
			}
		}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("%s — component library", title)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return Model{title: title, list: l}
}

// Init satisfies tea.Model; the browser needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}
