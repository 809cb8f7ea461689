package nodespec

// NodeType enumerates the target design-tool node kinds.
type NodeType string

const (
	TypeFrame     NodeType = "FRAME"
	TypeText      NodeType = "TEXT"
	TypeRectangle NodeType = "RECTANGLE"
	TypeComponent NodeType = "COMPONENT"
	TypeInstance  NodeType = "INSTANCE"
	TypeGroup     NodeType = "GROUP"
	TypeVector    NodeType = "VECTOR"
)

// LayoutMode selects the auto-layout direction on a frame-like node.
type LayoutMode string

const (
	LayoutNone       LayoutMode = "NONE"
	LayoutHorizontal LayoutMode = "HORIZONTAL"
	LayoutVertical   LayoutMode = "VERTICAL"
)

// AxisAlign is the host tool's alignment vocabulary for auto-layout axes.
type AxisAlign string

const (
	AlignMin          AxisAlign = "MIN"
	AlignCenter       AxisAlign = "CENTER"
	AlignMax          AxisAlign = "MAX"
	AlignSpaceBetween AxisAlign = "SPACE_BETWEEN"
)

// AutoLayout holds the flex-box-like layout directives attached to a frame.
type AutoLayout struct {
	LayoutMode            LayoutMode `json:"layoutMode"`
	ItemSpacing           float64    `json:"itemSpacing,omitempty"`
	PaddingTop            float64    `json:"paddingTop,omitempty"`
	PaddingRight          float64    `json:"paddingRight,omitempty"`
	PaddingBottom         float64    `json:"paddingBottom,omitempty"`
	PaddingLeft           float64    `json:"paddingLeft,omitempty"`
	PrimaryAxisAlignItems AxisAlign  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems AxisAlign  `json:"counterAxisAlignItems,omitempty"`
	CounterAxisSizingMode string     `json:"counterAxisSizingMode,omitempty"`
	LayoutWrap            string     `json:"layoutWrap,omitempty"`
}

// ConstraintType tags one-sided pinning for absolutely positioned children.
type ConstraintType string

const (
	ConstraintLeft   ConstraintType = "LEFT"
	ConstraintRight  ConstraintType = "RIGHT"
	ConstraintTop    ConstraintType = "TOP"
	ConstraintBottom ConstraintType = "BOTTOM"
)

// AbsolutePosition is the resolved placement of a stack child.
type AbsolutePosition struct {
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width,omitempty"`
	Height     float64        `json:"height,omitempty"`
	Horizontal ConstraintType `json:"horizontal"`
	Vertical   ConstraintType `json:"vertical"`
}

// RGB is a normalized 0–1 color.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Black is the default text fill.
func Black() RGB { return RGB{} }

// PaintType distinguishes paint fills.
type PaintType string

const (
	PaintSolid PaintType = "SOLID"
	PaintImage PaintType = "IMAGE"
)

// Paint is one fill or stroke entry on a node.
type Paint struct {
	Type     PaintType `json:"type"`
	Color    *RGB      `json:"color,omitempty"`
	Opacity  float64   `json:"opacity"`
	ImageRef string    `json:"imageRef,omitempty"`
}

// SolidPaint builds an opaque solid paint.
func SolidPaint(c RGB) Paint {
	return Paint{Type: PaintSolid, Color: &c, Opacity: 1}
}

// EffectType distinguishes node effects.
type EffectType string

// EffectDropShadow is the only effect kind the lowering pipeline emits.
const EffectDropShadow EffectType = "DROP_SHADOW"

// Effect is one visual effect entry, currently always a drop shadow.
type Effect struct {
	Type    EffectType `json:"type"`
	Color   RGB        `json:"color"`
	Opacity float64    `json:"opacity"`
	OffsetX float64    `json:"offsetX"`
	OffsetY float64    `json:"offsetY"`
	Radius  float64    `json:"radius"`
	Spread  float64    `json:"spread"`
}

// TextAlign is horizontal text alignment in the target vocabulary.
type TextAlign string

const (
	TextAlignLeft      TextAlign = "LEFT"
	TextAlignCenter    TextAlign = "CENTER"
	TextAlignRight     TextAlign = "RIGHT"
	TextAlignJustified TextAlign = "JUSTIFIED"
)

// TextProps holds the typographic payload of a text node.
type TextProps struct {
	Characters    string    `json:"characters"`
	FontSize      float64   `json:"fontSize"`
	FontFamily    string    `json:"fontFamily"`
	FontStyle     string    `json:"fontStyle"`
	TextAlign     TextAlign `json:"textAlignHorizontal,omitempty"`
	LineHeightPct float64   `json:"lineHeightPercent,omitempty"`
	LetterSpacing float64   `json:"letterSpacing,omitempty"`
}

// CornerRadii carries per-corner rounding when the four corners differ.
type CornerRadii struct {
	TopLeft     float64 `json:"topLeft"`
	TopRight    float64 `json:"topRight"`
	BottomRight float64 `json:"bottomRight"`
	BottomLeft  float64 `json:"bottomLeft"`
}

// VariableBinding records a node property driven by a theme token instead
// of a literal value.
type VariableBinding struct {
	TargetProperty string `json:"targetProperty"`
	VariableID     string `json:"variableId"`
	VariableAlias  string `json:"variableAlias"`
}

// Override is one per-instance property deviation from the component default.
type Override struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Node is one node in the lowered target graph. Children are parent-owned
// and ordered; cross-references to components go through ComponentName.
type Node struct {
	ID          string   `json:"id"`
	Type        NodeType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`

	AutoLayout *AutoLayout       `json:"autoLayout,omitempty"`
	Position   *AbsolutePosition `json:"position,omitempty"`
	LayoutGrow float64           `json:"layoutGrow,omitempty"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Fills        []Paint      `json:"fills,omitempty"`
	Strokes      []Paint      `json:"strokes,omitempty"`
	StrokeWeight float64      `json:"strokeWeight,omitempty"`
	CornerRadius *float64     `json:"cornerRadius,omitempty"`
	CornerRadii  *CornerRadii `json:"cornerRadii,omitempty"`
	Effects      []Effect     `json:"effects,omitempty"`

	Text *TextProps `json:"text,omitempty"`

	Bindings []VariableBinding `json:"variableBindings,omitempty"`

	ComponentName string     `json:"componentName,omitempty"`
	Overrides     []Override `json:"overrides,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}
