package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
)

func component(name, sourceType string, variants int, base *nodespec.Node) nodespec.ComponentDefinition {
	def := nodespec.ComponentDefinition{Name: name, SourceType: sourceType}
	for i := 0; i < variants; i++ {
		def.Variants = append(def.Variants, nodespec.ComponentVariant{Name: "V", Node: base})
	}
	return def
}

func TestButtonsPrecedeTypography(t *testing.T) {
	t.Parallel()

	defs := []nodespec.ComponentDefinition{
		component("Body Text", "text", 1, &nodespec.Node{Type: nodespec.TypeText}),
		component("Button / Primary", "button", 1, &nodespec.Node{Type: nodespec.TypeComponent}),
	}

	structure := NewOrganizer(logger.Discard()).Organize(defs)

	require.Len(t, structure.Categories, 2)
	assert.Equal(t, "Buttons", structure.Categories[0].Name)
	assert.Equal(t, "Typography", structure.Categories[1].Name)
	assert.Less(t, structure.Categories[0].Priority, structure.Categories[1].Priority)

	require.Len(t, structure.Pages, 2)
	assert.Equal(t, "Buttons", structure.Pages[0].Name)
}

func TestContainerDisambiguation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		base *nodespec.Node
		want string
	}{
		{
			name: "painted container is a surface",
			base: &nodespec.Node{Fills: []nodespec.Paint{nodespec.SolidPaint(nodespec.RGB{R: 1})}},
			want: "Surfaces",
		},
		{
			name: "bordered container is a surface",
			base: &nodespec.Node{Strokes: []nodespec.Paint{nodespec.SolidPaint(nodespec.RGB{})}},
			want: "Surfaces",
		},
		{
			name: "padded container is layout",
			base: &nodespec.Node{AutoLayout: &nodespec.AutoLayout{LayoutMode: nodespec.LayoutVertical, PaddingTop: 8}},
			want: "Layout",
		},
		{
			name: "bare container is generic",
			base: &nodespec.Node{},
			want: "Components",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			def := component("Box", "container", 1, tc.base)
			require.Equal(t, tc.want, CategoryFor(&def))
		})
	}
}

func TestButtonGroupsSortPrimaryFirst(t *testing.T) {
	t.Parallel()

	defs := []nodespec.ComponentDefinition{
		component("Icon Button", "button", 1, &nodespec.Node{}),
		component("Button / Secondary", "button", 1, &nodespec.Node{}),
		component("Button / Primary", "button", 1, &nodespec.Node{}),
	}

	structure := NewOrganizer(logger.Discard()).Organize(defs)

	require.Len(t, structure.Categories, 1)
	groups := structure.Categories[0].Groups
	require.Len(t, groups, 3)
	assert.Equal(t, "Primary Buttons", groups[0].Name)
	assert.Equal(t, "Secondary Buttons", groups[1].Name)
	assert.Equal(t, "Icon Buttons", groups[2].Name)
}

func TestSubGroupsSplitByVariants(t *testing.T) {
	t.Parallel()

	defs := []nodespec.ComponentDefinition{
		component("Button / Primary", "button", 3, &nodespec.Node{}),
		component("Button / Plain", "button", 1, &nodespec.Node{}),
	}

	structure := NewOrganizer(logger.Discard()).Organize(defs)

	require.Len(t, structure.Categories, 1)
	require.Len(t, structure.Categories[0].Groups, 2)

	var subNames []string
	for _, group := range structure.Categories[0].Groups {
		for _, sub := range group.SubGroups {
			subNames = append(subNames, sub.Name)
		}
	}
	assert.Contains(t, subNames, "With Variants")
	assert.Contains(t, subNames, "Simple Components")
	assert.Equal(t, 2, structure.ComponentCount())
}

func TestComplexityScoring(t *testing.T) {
	t.Parallel()

	simple := component("Label", "text", 1, &nodespec.Node{Type: nodespec.TypeText})
	// 1 child + 1 property + 2*3 variants + 2 colors + 2 border + 1 shadow = 13
	complicated := nodespec.ComponentDefinition{
		Name:       "Card / Elevated",
		SourceType: "card",
		Properties: []nodespec.ComponentProperty{{Name: "Elevated", Kind: nodespec.PropertyBoolean}},
	}
	base := &nodespec.Node{
		Children: []*nodespec.Node{{Type: nodespec.TypeText}},
		Fills:    []nodespec.Paint{nodespec.SolidPaint(nodespec.RGB{R: 1})},
		Strokes:  []nodespec.Paint{nodespec.SolidPaint(nodespec.RGB{})},
		Effects:  []nodespec.Effect{{Type: nodespec.EffectDropShadow}},
	}
	for i := 0; i < 3; i++ {
		complicated.Variants = append(complicated.Variants, nodespec.ComponentVariant{Node: base})
	}

	assert.Equal(t, 2, Score(&simple))
	assert.Equal(t, nodespec.ComplexitySimple, Classify(Score(&simple)))

	score := Score(&complicated)
	assert.Equal(t, 13, score)
	assert.Equal(t, nodespec.ComplexityComplex, Classify(score))

	assert.Equal(t, nodespec.ComplexityMedium, Classify(5))
}
