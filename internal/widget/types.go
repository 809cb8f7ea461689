package widget

// Type enumerates the closed set of widget tags the lowering engine
// understands. Unknown tags decode as TypeCustom.
type Type string

const (
	TypeContainer Type = "container"
	TypeRow       Type = "row"
	TypeColumn    Type = "column"
	TypeStack     Type = "stack"
	TypeText      Type = "text"
	TypeImage     Type = "image"
	TypeButton    Type = "button"
	TypeCard      Type = "card"
	TypeScaffold  Type = "scaffold"
	TypeAppBar    Type = "appbar"
	TypeCustom    Type = "custom"
)

// KnownTypes lists every recognized widget tag.
func KnownTypes() []Type {
	return []Type{
		TypeContainer, TypeRow, TypeColumn, TypeStack, TypeText, TypeImage,
		TypeButton, TypeCard, TypeScaffold, TypeAppBar, TypeCustom,
	}
}

// IsKnown reports whether t is one of the closed widget tags.
func (t Type) IsKnown() bool {
	for _, known := range KnownTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Node is one widget in the source tree. Trees are strictly parent-owned and
// treated as immutable once built; the lowering engine never mutates them.
type Node struct {
	ID       string        `yaml:"id,omitempty" json:"id,omitempty"`
	Type     Type          `yaml:"type" json:"type" validate:"required,widget_type"`
	Props    PropMap       `yaml:"props,omitempty" json:"props,omitempty"`
	Children []*Node       `yaml:"children,omitempty" json:"children,omitempty" validate:"omitempty,dive"`
	Styling  *StyleInfo    `yaml:"styling,omitempty" json:"styling,omitempty"`
	Layout   *LayoutInfo   `yaml:"layout,omitempty" json:"layout,omitempty"`
	Position *PositionInfo `yaml:"position,omitempty" json:"position,omitempty"`

	// Definition names the reusable definition this node is a usage of,
	// set by the upstream widget-tree analysis stage. Empty for plain nodes.
	Definition string `yaml:"definition,omitempty" json:"definition,omitempty"`
}

// Text returns the literal text content for text-bearing widgets.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Props.String("text")
}

// Key returns the explicit widget key when the source declared one.
func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	return n.Props.String("key")
}

// IsExpanded reports whether the node asked to grow along its parent's axis.
func (n *Node) IsExpanded() bool {
	if n == nil {
		return false
	}
	if n.Props.Bool("expanded") {
		return true
	}
	if _, ok := n.Props.Number("flex"); ok {
		return true
	}
	return false
}

// Definition pairs a reusable widget with its recorded usage variations.
type Definition struct {
	Name       string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Base       *Node      `yaml:"base" json:"base" validate:"required"`
	Variants   []Variant  `yaml:"variants,omitempty" json:"variants,omitempty" validate:"omitempty,dive"`
	UsageCount int        `yaml:"usage_count,omitempty" json:"usageCount,omitempty" validate:"omitempty,min=0"`
}

// Variant records one observed usage variation of a reusable widget:
// a partial property and styling override against the base.
type Variant struct {
	Name    string     `yaml:"name,omitempty" json:"name,omitempty"`
	Props   PropMap    `yaml:"props,omitempty" json:"props,omitempty"`
	Styling *StyleInfo `yaml:"styling,omitempty" json:"styling,omitempty"`
}
