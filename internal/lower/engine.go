package lower

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/styler"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// targetTypes is the fixed dispatch table from widget tags to target node
// kinds. Tags outside the table (including custom) lower to frames.
var targetTypes = map[widget.Type]nodespec.NodeType{
	widget.TypeContainer: nodespec.TypeFrame,
	widget.TypeRow:       nodespec.TypeFrame,
	widget.TypeColumn:    nodespec.TypeFrame,
	widget.TypeStack:     nodespec.TypeFrame,
	widget.TypeScaffold:  nodespec.TypeFrame,
	widget.TypeText:      nodespec.TypeText,
	widget.TypeImage:     nodespec.TypeRectangle,
	widget.TypeButton:    nodespec.TypeComponent,
	widget.TypeCard:      nodespec.TypeComponent,
	widget.TypeAppBar:    nodespec.TypeComponent,
}

// TargetType returns the node kind a widget tag lowers to.
func TargetType(t widget.Type) nodespec.NodeType {
	if target, ok := targetTypes[t]; ok {
		return target
	}
	return nodespec.TypeFrame
}

// Instancer lets the pipeline substitute instance nodes for widgets that are
// usages of an assembled component. A nil Instancer lowers everything inline.
type Instancer interface {
	Instance(w *widget.Node) (*nodespec.Node, bool)
}

// Report aggregates the per-node style results of a lowering pass.
type Report struct {
	Applied  []string
	Bindings []nodespec.VariableBinding
	Errors   []string
	Warnings []string
}

// Engine lowers widget trees into target node trees. It owns no state beyond
// its Context; a fresh Engine per run keeps concurrent runs independent.
type Engine struct {
	ctx       *Context
	resolver  *styler.Resolver
	instancer Instancer
	report    Report
}

// NewEngine builds an engine over a run context and style resolver.
func NewEngine(ctx *Context, resolver *styler.Resolver) *Engine {
	return &Engine{ctx: ctx, resolver: resolver}
}

// SetInstancer installs the component-usage substitution hook.
func (e *Engine) SetInstancer(i Instancer) {
	e.instancer = i
}

// Report returns the accumulated style results for the pass so far.
func (e *Engine) Report() Report {
	return e.report
}

// Context exposes the engine's run context for collaborators that mint
// node IDs of their own, such as the component assembler.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Lower transforms one widget subtree into a target node subtree. The input
// is never mutated; lowering the same tree twice with fresh contexts yields
// structurally identical output modulo generated IDs.
func (e *Engine) Lower(w *widget.Node) *nodespec.Node {
	if w == nil {
		return nil
	}

	if e.instancer != nil && w.Definition != "" {
		if instance, ok := e.instancer.Instance(w); ok {
			return instance
		}
	}

	var node *nodespec.Node
	switch TargetType(w.Type) {
	case nodespec.TypeText:
		node = e.lowerText(w)
	case nodespec.TypeRectangle:
		node = e.lowerRectangle(w)
	case nodespec.TypeComponent:
		node = e.lowerComponent(w)
	default:
		node = e.lowerFrame(w)
	}

	if w.Styling != nil {
		result := e.resolver.Apply(node, w.Styling)
		e.collect(result)
	}

	return node
}

func (e *Engine) lowerFrame(w *widget.Node) *nodespec.Node {
	node := &nodespec.Node{
		ID:   e.ctx.NextID("frame"),
		Type: nodespec.TypeFrame,
		Name: NodeName(w),
	}

	// YAML documents may carry explicit nulls in a children list. Drop them
	// up front so the source and lowered child lists stay index-aligned.
	children := make([]*widget.Node, 0, len(w.Children))
	for _, child := range w.Children {
		if child == nil {
			e.report.Warnings = append(e.report.Warnings,
				fmt.Sprintf("%s: null child ignored", node.Name))
			continue
		}
		children = append(children, child)
	}

	for _, child := range children {
		node.Children = append(node.Children, e.Lower(child))
	}

	if w.Layout != nil {
		node.AutoLayout = autoLayoutFor(w.Layout)
		if w.Layout.Width != nil {
			node.Width = *w.Layout.Width
		}
		if w.Layout.Height != nil {
			node.Height = *w.Layout.Height
		}
	}

	if isStack(w) {
		// Stack children are absolutely positioned; z-order is the source
		// child order, no re-sorting.
		for i, child := range children {
			node.Children[i].Position = resolvePosition(child.Position)
		}
		return node
	}

	for i, child := range children {
		if child.Position != nil {
			// Absolute placement outside a stack has no anchor; lower the
			// child in normal flow and surface the dropped hint.
			e.report.Warnings = append(e.report.Warnings,
				fmt.Sprintf("%s: positioned child %q outside a stack; position ignored", node.Name, node.Children[i].Name))
		}
		if child.IsExpanded() && node.AutoLayout != nil && node.AutoLayout.LayoutMode != nodespec.LayoutNone {
			grow := 1.0
			if flex, ok := child.Props.Number("flex"); ok && flex > 0 {
				grow = flex
			}
			node.Children[i].LayoutGrow = grow
		}
	}

	return node
}

func (e *Engine) lowerText(w *widget.Node) *nodespec.Node {
	node := &nodespec.Node{
		ID:   e.ctx.NextID("text"),
		Type: nodespec.TypeText,
		Name: NodeName(w),
		Text: &nodespec.TextProps{
			Characters: w.Text(),
			FontSize:   14,
			FontFamily: "Roboto",
			FontStyle:  "Regular",
		},
		Fills: []nodespec.Paint{nodespec.SolidPaint(nodespec.Black())},
	}

	if size, ok := w.Props.Number("fontSize"); ok && size > 0 {
		node.Text.FontSize = size
	}
	if family := w.Props.String("fontFamily"); family != "" {
		node.Text.FontFamily = family
	}
	if weight := w.Props.String("fontWeight"); weight != "" {
		if style, ok := styler.FontStyleForWeight(weight); ok {
			node.Text.FontStyle = style
		}
	}
	if align := w.Props.String("textAlign"); align != "" {
		node.Text.TextAlign = styler.TextAlignFor(align)
	}

	return node
}

func (e *Engine) lowerRectangle(w *widget.Node) *nodespec.Node {
	node := &nodespec.Node{
		ID:   e.ctx.NextID("rect"),
		Type: nodespec.TypeRectangle,
		Name: NodeName(w),
	}

	if src := w.Props.String("src"); src != "" {
		node.Fills = []nodespec.Paint{{Type: nodespec.PaintImage, ImageRef: src, Opacity: 1}}
	} else {
		// Placeholder fill until the host resolves the image.
		gray := nodespec.RGB{R: 0.8, G: 0.8, B: 0.8}
		node.Fills = []nodespec.Paint{nodespec.SolidPaint(gray)}
	}

	if radius, ok := w.Props.Number("cornerRadius"); ok && radius > 0 {
		node.CornerRadius = &radius
	}
	if width, ok := w.Props.Number("width"); ok {
		node.Width = width
	}
	if height, ok := w.Props.Number("height"); ok {
		node.Height = height
	}

	return node
}

func (e *Engine) lowerComponent(w *widget.Node) *nodespec.Node {
	node := e.lowerFrame(w)
	node.Type = nodespec.TypeComponent
	node.Description = fmt.Sprintf("Generated from a %s widget", w.Type)
	return node
}

func (e *Engine) collect(result styler.Result) {
	e.report.Applied = append(e.report.Applied, result.Applied...)
	e.report.Bindings = append(e.report.Bindings, result.Bindings...)
	e.report.Errors = append(e.report.Errors, result.Errors...)
	e.report.Warnings = append(e.report.Warnings, result.Warnings...)
}

func isStack(w *widget.Node) bool {
	if w.Type == widget.TypeStack {
		return true
	}
	return w.Layout != nil && w.Layout.Kind == widget.LayoutStack
}

func autoLayoutFor(layout *widget.LayoutInfo) *nodespec.AutoLayout {
	al := &nodespec.AutoLayout{ItemSpacing: layout.Spacing}

	switch layout.Kind {
	case widget.LayoutColumn:
		al.LayoutMode = nodespec.LayoutVertical
	case widget.LayoutStack:
		al.LayoutMode = nodespec.LayoutNone
	case widget.LayoutWrap:
		al.LayoutMode = nodespec.LayoutHorizontal
		al.LayoutWrap = "WRAP"
	default:
		al.LayoutMode = nodespec.LayoutHorizontal
	}

	if p := layout.Padding; p != nil {
		al.PaddingTop = p.Top
		al.PaddingRight = p.Right
		al.PaddingBottom = p.Bottom
		al.PaddingLeft = p.Left
	}

	switch layout.MainAxis {
	case widget.MainCenter:
		al.PrimaryAxisAlignItems = nodespec.AlignCenter
	case widget.MainEnd:
		al.PrimaryAxisAlignItems = nodespec.AlignMax
	case widget.MainSpaceBetween:
		al.PrimaryAxisAlignItems = nodespec.AlignSpaceBetween
	case widget.MainStart:
		al.PrimaryAxisAlignItems = nodespec.AlignMin
	}

	switch layout.CrossAxis {
	case widget.CrossCenter:
		al.CounterAxisAlignItems = nodespec.AlignCenter
	case widget.CrossEnd:
		al.CounterAxisAlignItems = nodespec.AlignMax
	case widget.CrossStretch:
		al.CounterAxisAlignItems = nodespec.AlignMin
		al.CounterAxisSizingMode = "FIXED"
	case widget.CrossStart:
		al.CounterAxisAlignItems = nodespec.AlignMin
	}

	return al
}

// NodeName derives the display name for a lowered widget: the type label
// plus truncated literal text or an explicit key when either is present.
func NodeName(w *widget.Node) string {
	label := TypeLabel(w.Type)
	if text := TruncateLabel(w.Text()); text != "" {
		return label + " / " + text
	}
	if key := w.Key(); key != "" {
		return label + " / " + key
	}
	return label
}

// TruncateLabel shortens a literal to at most 20 characters plus an
// ellipsis, for use inside node and instance names.
func TruncateLabel(s string) string {
	const max = 20
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}

// TypeLabel returns the human label for a widget tag.
func TypeLabel(t widget.Type) string {
	if t == widget.TypeAppBar {
		return "App Bar"
	}
	s := string(t)
	if s == "" {
		return "Custom"
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}
