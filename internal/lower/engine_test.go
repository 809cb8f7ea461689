package lower

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/styler"
	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	cfg := theme.DefaultMappingConfig()
	resolver := styler.NewResolver(theme.Build(&theme.Model{}, cfg), cfg, logger.Discard())
	return NewEngine(NewContext(logger.Discard()), resolver)
}

func floatPtr(v float64) *float64 { return &v }

func textWidget(content string) *widget.Node {
	return &widget.Node{
		Type:  widget.TypeText,
		Props: widget.PropMap{"text": widget.StringValue(content)},
	}
}

func TestTargetTypeDispatch(t *testing.T) {
	t.Parallel()

	cases := map[widget.Type]nodespec.NodeType{
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
		widget.TypeCustom:    nodespec.TypeFrame,
		"whatever":           nodespec.TypeFrame,
	}
	for in, want := range cases {
		require.Equal(t, want, TargetType(in), string(in))
	}
}

func TestLowerPreservesTreeShape(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type: widget.TypeColumn,
		Children: []*widget.Node{
			{Type: widget.TypeRow, Children: []*widget.Node{textWidget("a"), textWidget("b")}},
			textWidget("c"),
			{Type: widget.TypeContainer, Children: []*widget.Node{{Type: widget.TypeImage}}},
		},
	}

	node := newTestEngine(t).Lower(root)

	require.NotNil(t, node)
	require.Len(t, node.Children, 3)
	require.Len(t, node.Children[0].Children, 2)
	require.Empty(t, node.Children[1].Children)
	require.Len(t, node.Children[2].Children, 1)
	assert.Equal(t, "Text / a", node.Children[0].Children[0].Name)
	assert.Equal(t, "Text / b", node.Children[0].Children[1].Name)
}

func stripIDs(n *nodespec.Node) {
	n.Walk(func(node *nodespec.Node) { node.ID = "" })
}

func TestLowerIsIdempotentModuloIDs(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type:   widget.TypeColumn,
		Layout: &widget.LayoutInfo{Kind: widget.LayoutColumn, Spacing: 8},
		Children: []*widget.Node{
			textWidget("hello"),
			{Type: widget.TypeButton, Props: widget.PropMap{"style": widget.StringValue("primary")}},
		},
	}

	first := newTestEngine(t).Lower(root)
	second := newTestEngine(t).Lower(root)

	stripIDs(first)
	stripIDs(second)
	require.Equal(t, first, second)
}

func TestStackChildrenGetAbsolutePositions(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type: widget.TypeStack,
		Children: []*widget.Node{
			{Type: widget.TypeContainer, Position: &widget.PositionInfo{
				Left: floatPtr(12), Top: floatPtr(4), Width: floatPtr(100), Height: floatPtr(40),
			}},
			{Type: widget.TypeContainer, Position: &widget.PositionInfo{
				Right: floatPtr(10), Bottom: floatPtr(5), Width: floatPtr(50), Height: floatPtr(20),
			}},
			{Type: widget.TypeContainer},
		},
	}

	node := newTestEngine(t).Lower(root)
	require.Len(t, node.Children, 3)

	first := node.Children[0].Position
	require.NotNil(t, first)
	assert.Equal(t, 12.0, first.X)
	assert.Equal(t, 4.0, first.Y)
	assert.Equal(t, nodespec.ConstraintLeft, first.Horizontal)
	assert.Equal(t, nodespec.ConstraintTop, first.Vertical)

	second := node.Children[1].Position
	require.NotNil(t, second)
	assert.Equal(t, -60.0, second.X)
	assert.Equal(t, -25.0, second.Y)
	assert.Equal(t, nodespec.ConstraintRight, second.Horizontal)
	assert.Equal(t, nodespec.ConstraintBottom, second.Vertical)

	third := node.Children[2].Position
	require.NotNil(t, third)
	assert.Equal(t, 0.0, third.X)
	assert.Equal(t, nodespec.ConstraintLeft, third.Horizontal)
}

func TestNullChildrenAreSkippedWithStableIndexes(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	root := &widget.Node{
		Type: widget.TypeStack,
		Children: []*widget.Node{
			nil,
			{Type: widget.TypeContainer, Position: &widget.PositionInfo{
				Right: floatPtr(10), Bottom: floatPtr(5), Width: floatPtr(50), Height: floatPtr(20),
			}},
		},
	}

	node := engine.Lower(root)

	require.Len(t, node.Children, 1)
	pos := node.Children[0].Position
	require.NotNil(t, pos)
	assert.Equal(t, -60.0, pos.X)
	assert.Equal(t, -25.0, pos.Y)
	assert.Equal(t, nodespec.ConstraintRight, pos.Horizontal)
	assert.Equal(t, nodespec.ConstraintBottom, pos.Vertical)

	report := engine.Report()
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "null child ignored")
}

func TestNullChildDoesNotShiftSiblingAttributes(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type:   widget.TypeRow,
		Layout: &widget.LayoutInfo{Kind: widget.LayoutRow},
		Children: []*widget.Node{
			{Type: widget.TypeContainer},
			nil,
			{Type: widget.TypeContainer, Props: widget.PropMap{"flex": widget.NumberValue(2)}},
		},
	}

	node := newTestEngine(t).Lower(root)

	require.Len(t, node.Children, 2)
	assert.Equal(t, 0.0, node.Children[0].LayoutGrow)
	assert.Equal(t, 2.0, node.Children[1].LayoutGrow)
}

func TestOverconstrainedPositionPrefersLeadingEdge(t *testing.T) {
	t.Parallel()

	pos := resolvePosition(&widget.PositionInfo{
		Left: floatPtr(8), Right: floatPtr(10), Width: floatPtr(50),
		Top: floatPtr(6), Bottom: floatPtr(5), Height: floatPtr(20),
	})

	assert.Equal(t, 8.0, pos.X)
	assert.Equal(t, 6.0, pos.Y)
	assert.Equal(t, nodespec.ConstraintLeft, pos.Horizontal)
	assert.Equal(t, nodespec.ConstraintTop, pos.Vertical)
}

func TestColumnScenario(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type: widget.TypeColumn,
		Layout: &widget.LayoutInfo{
			Kind:    widget.LayoutColumn,
			Spacing: 8,
			Padding: &widget.EdgeInsets{Top: 16, Right: 16, Bottom: 16, Left: 16},
		},
		Children: []*widget.Node{textWidget("First"), textWidget("Second")},
	}

	node := newTestEngine(t).Lower(root)

	require.NotNil(t, node.AutoLayout)
	assert.Equal(t, nodespec.LayoutVertical, node.AutoLayout.LayoutMode)
	assert.Equal(t, 8.0, node.AutoLayout.ItemSpacing)
	assert.Equal(t, 16.0, node.AutoLayout.PaddingTop)
	assert.Equal(t, 16.0, node.AutoLayout.PaddingLeft)

	require.Len(t, node.Children, 2)
	assert.Equal(t, nodespec.TypeText, node.Children[0].Type)
	assert.Equal(t, "First", node.Children[0].Text.Characters)
	assert.Equal(t, "Second", node.Children[1].Text.Characters)
}

func TestExpandedChildGetsLayoutGrow(t *testing.T) {
	t.Parallel()

	root := &widget.Node{
		Type:   widget.TypeRow,
		Layout: &widget.LayoutInfo{Kind: widget.LayoutRow},
		Children: []*widget.Node{
			{Type: widget.TypeContainer, Props: widget.PropMap{"expanded": widget.BoolValue(true)}},
			{Type: widget.TypeContainer, Props: widget.PropMap{"flex": widget.NumberValue(2)}},
			{Type: widget.TypeContainer},
		},
	}

	node := newTestEngine(t).Lower(root)

	assert.Equal(t, 1.0, node.Children[0].LayoutGrow)
	assert.Equal(t, 2.0, node.Children[1].LayoutGrow)
	assert.Equal(t, 0.0, node.Children[2].LayoutGrow)
}

func TestPositionedChildOutsideStackWarns(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	root := &widget.Node{
		Type:   widget.TypeColumn,
		Layout: &widget.LayoutInfo{Kind: widget.LayoutColumn},
		Children: []*widget.Node{
			{Type: widget.TypeContainer, Position: &widget.PositionInfo{Left: floatPtr(10)}},
		},
	}

	node := engine.Lower(root)

	assert.Nil(t, node.Children[0].Position)
	report := engine.Report()
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "position ignored")
}

func TestTextDefaults(t *testing.T) {
	t.Parallel()

	node := newTestEngine(t).Lower(textWidget("Hi"))

	require.NotNil(t, node.Text)
	assert.Equal(t, 14.0, node.Text.FontSize)
	assert.Equal(t, "Roboto", node.Text.FontFamily)
	assert.Equal(t, "Regular", node.Text.FontStyle)
	require.Len(t, node.Fills, 1)
	assert.Equal(t, nodespec.RGB{}, *node.Fills[0].Color)
	assert.Equal(t, 1.0, node.Fills[0].Opacity)
}

func TestTextPropsOverrideDefaults(t *testing.T) {
	t.Parallel()

	node := newTestEngine(t).Lower(&widget.Node{
		Type: widget.TypeText,
		Props: widget.PropMap{
			"text":       widget.StringValue("Styled"),
			"fontSize":   widget.NumberValue(24),
			"fontFamily": widget.StringValue("Inter"),
			"fontWeight": widget.StringValue("700"),
			"textAlign":  widget.StringValue("center"),
		},
	})

	assert.Equal(t, 24.0, node.Text.FontSize)
	assert.Equal(t, "Inter", node.Text.FontFamily)
	assert.Equal(t, "Bold", node.Text.FontStyle)
	assert.Equal(t, nodespec.TextAlignCenter, node.Text.TextAlign)
}

func TestImageLowersToRectangleWithFill(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	withSrc := engine.Lower(&widget.Node{
		Type:  widget.TypeImage,
		Props: widget.PropMap{"src": widget.StringValue("assets/logo.png")},
	})
	require.Len(t, withSrc.Fills, 1)
	assert.Equal(t, nodespec.PaintImage, withSrc.Fills[0].Type)
	assert.Equal(t, "assets/logo.png", withSrc.Fills[0].ImageRef)

	placeholder := engine.Lower(&widget.Node{Type: widget.TypeImage})
	require.Len(t, placeholder.Fills, 1)
	assert.Equal(t, nodespec.PaintSolid, placeholder.Fills[0].Type)
}

func TestComponentLoweringAddsDescription(t *testing.T) {
	t.Parallel()

	node := newTestEngine(t).Lower(&widget.Node{Type: widget.TypeButton})

	assert.Equal(t, nodespec.TypeComponent, node.Type)
	assert.Contains(t, node.Description, "button")
}

func TestNodeNaming(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 30)

	cases := []struct {
		name string
		in   *widget.Node
		want string
	}{
		{name: "bare type", in: &widget.Node{Type: widget.TypeContainer}, want: "Container"},
		{name: "with text", in: textWidget("Submit"), want: "Text / Submit"},
		{name: "long text truncated", in: textWidget(long), want: "Text / " + strings.Repeat("x", 20) + "…"},
		{
			name: "explicit key",
			in:   &widget.Node{Type: widget.TypeCard, Props: widget.PropMap{"key": widget.StringValue("profile_card")}},
			want: "Card / profile_card",
		},
		{name: "appbar label", in: &widget.Node{Type: widget.TypeAppBar}, want: "App Bar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NodeName(tc.in))
		})
	}
}

func TestContextIDsAreStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	ctx := NewContext(logger.Discard())
	require.Equal(t, "frame-1", ctx.NextID("frame"))
	require.Equal(t, "text-2", ctx.NextID("text"))
	require.Equal(t, "frame-3", ctx.NextID("frame"))
}
