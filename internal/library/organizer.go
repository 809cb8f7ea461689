package library

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// categoryPriorities is the fixed ordering table for library categories.
// Categories outside the table sort last with priority 99.
var categoryPriorities = map[string]int{
	"Buttons":    1,
	"Typography": 2,
	"Surfaces":   3,
	"Layout":     4,
	"Media":      5,
	"Navigation": 6,
	"Components": 10,
}

const unknownPriority = 99

// Organizer groups generated components into a navigable library.
type Organizer struct {
	log *logger.Logger
}

// NewOrganizer builds a library organizer.
func NewOrganizer(log *logger.Logger) *Organizer {
	if log == nil {
		log = logger.Discard()
	}
	return &Organizer{log: log.WithComponent("library")}
}

// Organize categorizes and groups the components into the final library
// structure: categories ordered by priority, name-heuristic groups, and
// variant-based sub-groups, with one page per category.
func (o *Organizer) Organize(defs []nodespec.ComponentDefinition) nodespec.LibraryStructure {
	type bucket map[string][]nodespec.ComponentRef
	categories := make(map[string]map[string]bucket)

	for i := range defs {
		def := &defs[i]
		categoryName := CategoryFor(def)
		groupName := groupFor(def)
		subName := subGroupFor(def)

		if categories[categoryName] == nil {
			categories[categoryName] = make(map[string]bucket)
		}
		if categories[categoryName][groupName] == nil {
			categories[categoryName][groupName] = make(bucket)
		}

		ref := nodespec.ComponentRef{
			Name:         def.Name,
			Complexity:   Classify(Score(def)),
			VariantCount: len(def.Variants),
		}
		categories[categoryName][groupName][subName] = append(categories[categoryName][groupName][subName], ref)
	}

	structure := nodespec.LibraryStructure{}
	for name, groups := range categories {
		category := nodespec.Category{Name: name, Priority: priorityFor(name)}
		for groupName, subs := range groups {
			group := nodespec.Group{Name: groupName}
			for _, subName := range []string{"With Variants", "Simple Components"} {
				refs := subs[subName]
				if len(refs) == 0 {
					continue
				}
				sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
				group.SubGroups = append(group.SubGroups, nodespec.SubGroup{Name: subName, Components: refs})
			}
			category.Groups = append(category.Groups, group)
		}
		sortGroups(category.Groups)
		structure.Categories = append(structure.Categories, category)
	}

	sort.Slice(structure.Categories, func(i, j int) bool {
		a, b := structure.Categories[i], structure.Categories[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Name < b.Name
	})

	for _, category := range structure.Categories {
		structure.Pages = append(structure.Pages, nodespec.Page{
			Name:       category.Name,
			Categories: []string{category.Name},
		})
	}

	o.log.WithFields(map[string]any{
		"components": len(defs),
		"categories": len(structure.Categories),
	}).Debug("library organized")

	return structure
}

// CategoryFor picks the library category for a component from its source
// widget type. Containers are disambiguated by their decoration: painted or
// bordered surfaces land in Surfaces, padded or laid-out ones in Layout,
// the rest in the generic Components bucket.
func CategoryFor(def *nodespec.ComponentDefinition) string {
	switch widget.Type(def.SourceType) {
	case widget.TypeButton:
		return "Buttons"
	case widget.TypeText:
		return "Typography"
	case widget.TypeCard, widget.TypeScaffold:
		return "Surfaces"
	case widget.TypeRow, widget.TypeColumn, widget.TypeStack:
		return "Layout"
	case widget.TypeImage:
		return "Media"
	case widget.TypeAppBar:
		return "Navigation"
	case widget.TypeContainer:
		return containerCategory(def.BaseNode())
	default:
		return "Components"
	}
}

func containerCategory(base *nodespec.Node) string {
	if base == nil {
		return "Components"
	}
	if len(base.Fills) > 0 || len(base.Strokes) > 0 || base.CornerRadius != nil ||
		base.CornerRadii != nil || len(base.Effects) > 0 {
		return "Surfaces"
	}
	if al := base.AutoLayout; al != nil {
		padded := al.PaddingTop != 0 || al.PaddingRight != 0 || al.PaddingBottom != 0 || al.PaddingLeft != 0
		if padded || al.ItemSpacing != 0 || al.LayoutMode != nodespec.LayoutNone {
			return "Layout"
		}
	}
	return "Components"
}

func priorityFor(category string) int {
	if p, ok := categoryPriorities[category]; ok {
		return p
	}
	return unknownPriority
}

// groupFor clusters components by name substrings. Button names split into
// Primary/Secondary/Icon/generic; everything else groups by the base name
// before its context suffix.
func groupFor(def *nodespec.ComponentDefinition) string {
	lowered := strings.ToLower(def.Name)
	if strings.Contains(lowered, "button") {
		switch {
		case strings.Contains(lowered, "primary"):
			return "Primary Buttons"
		case strings.Contains(lowered, "secondary"):
			return "Secondary Buttons"
		case strings.Contains(lowered, "icon"):
			return "Icon Buttons"
		default:
			return "Buttons"
		}
	}

	if i := strings.Index(def.Name, " / "); i > 0 {
		return def.Name[:i]
	}
	return def.Name
}

func subGroupFor(def *nodespec.ComponentDefinition) string {
	if len(def.Variants) > 1 {
		return "With Variants"
	}
	return "Simple Components"
}

// sortGroups orders groups Primary-named first, Secondary second, then
// lexicographic.
func sortGroups(groups []nodespec.Group) {
	rank := func(name string) int {
		lowered := strings.ToLower(name)
		switch {
		case strings.Contains(lowered, "primary"):
			return 0
		case strings.Contains(lowered, "secondary"):
			return 1
		default:
			return 2
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		ri, rj := rank(groups[i].Name), rank(groups[j].Name)
		if ri != rj {
			return ri < rj
		}
		return groups[i].Name < groups[j].Name
	})
}
