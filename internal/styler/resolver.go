package styler

import (
	"fmt"

	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
	nodelifterrors "github.com/alexisbeaulieu97/nodelift/pkg/errors"
)

// Result reports the outcome of applying one widget's styling to its lowered
// node. Errors never abort the run; Success is false when any property
// failed, but the remaining properties were still processed.
type Result struct {
	Success  bool
	Applied  []string
	Bindings []nodespec.VariableBinding
	Errors   []string
	Warnings []string

	node string
}

func (r *Result) markApplied(property string) {
	r.Applied = append(r.Applied, property)
}

func (r *Result) addError(property string, err error) {
	r.Errors = append(r.Errors, nodelifterrors.NewStyleError(r.node, property, err.Error(), err).Error())
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Resolver applies style annotations to lowered nodes, preferring theme
// token bindings over literals per its mapping configuration.
type Resolver struct {
	tokens *theme.Table
	cfg    theme.MappingConfig
	log    *logger.Logger
}

// NewResolver builds a Resolver over a prebuilt token table.
func NewResolver(tokens *theme.Table, cfg theme.MappingConfig, log *logger.Logger) *Resolver {
	return &Resolver{tokens: tokens, cfg: cfg, log: log.WithComponent("styler")}
}

// Apply resolves the widget styling onto node. The node is mutated in place;
// the returned Result carries applied property names, token bindings, and
// collected errors and warnings. A panic inside style application is
// converted into a failed Result at this boundary.
func (r *Resolver) Apply(node *nodespec.Node, styling *widget.StyleInfo) (result Result) {
	result.Success = true
	if node == nil || styling == nil {
		return result
	}
	result.node = node.Name

	defer func() {
		if p := recover(); p != nil {
			r.log.Error(fmt.Errorf("%v", p), "style application panicked")
			result = Result{
				Success: false,
				Errors: []string{nodelifterrors.NewStyleError(node.Name, "styling",
					fmt.Sprintf("style application panicked: %v", p), nil).Error()},
			}
		}
	}()

	for _, color := range styling.Colors {
		r.applyColor(node, color, &result)
	}
	if styling.Typography != nil {
		r.applyTypography(node, styling.Typography, &result)
	}
	if styling.Spacing != nil {
		r.applySpacing(node, styling.Spacing, &result)
	}
	if styling.Border != nil {
		r.applyBorder(node, styling.Border, &result)
	}
	for _, shadow := range styling.Shadows {
		r.applyShadow(node, shadow, &result)
	}

	result.Success = len(result.Errors) == 0
	return result
}

func colorProperty(target widget.ColorTarget) string {
	switch target {
	case widget.ColorText:
		return "textColor"
	case widget.ColorBorder:
		return "borderColor"
	default:
		return "backgroundColor"
	}
}

// resolveToken handles the token-versus-literal decision for one themed
// attribute. It returns true when the caller should go on to apply the
// literal value (either as the direct value or as the bound fallback).
func (r *Resolver) resolveToken(property, path string, result *Result) bool {
	if !r.cfg.UseVariables || path == "" {
		return true
	}

	tok, ok := r.tokens.ResolvePath(path)
	if !ok {
		if r.cfg.FallbackToDirectValues {
			result.addWarning("Variable not found for %q; using direct value", path)
			return true
		}
		result.addError(property, fmt.Errorf("Variable not found for %q", path))
		return false
	}

	result.Bindings = append(result.Bindings, nodespec.VariableBinding{
		TargetProperty: property,
		VariableID:     tok.ID,
		VariableAlias:  tok.Name,
	})
	return true
}

func (r *Resolver) applyColor(node *nodespec.Node, color widget.ColorInfo, result *Result) {
	property := colorProperty(color.Target)

	if color.IsThemeRef {
		if !r.resolveToken(property, color.ThemePath, result) {
			return
		}
	}

	rgb, opacity, err := ParseHex(color.Value)
	if err != nil {
		result.addError(property, err)
		return
	}
	paint := nodespec.Paint{Type: nodespec.PaintSolid, Color: &rgb, Opacity: opacity}

	switch color.Target {
	case widget.ColorBorder:
		node.Strokes = append(node.Strokes, paint)
		if node.StrokeWeight == 0 {
			node.StrokeWeight = 1
		}
	case widget.ColorText:
		// Text color only means something on a text node; elsewhere the
		// annotation is carried by the child text widgets.
		if node.Type != nodespec.TypeText {
			return
		}
		node.Fills = []nodespec.Paint{paint}
	default:
		node.Fills = []nodespec.Paint{paint}
	}
	result.markApplied(property)
}

func (r *Resolver) applyTypography(node *nodespec.Node, typo *widget.TypographyInfo, result *Result) {
	if node.Text == nil {
		return
	}

	if ref := typo.FontSize; ref != nil {
		apply := true
		if ref.IsThemeRef {
			apply = r.resolveToken("fontSize", ref.ThemePath, result)
		}
		if apply && ref.Value > 0 {
			node.Text.FontSize = ref.Value
			result.markApplied("fontSize")
		}
	}

	if typo.FontFamily != "" {
		node.Text.FontFamily = typo.FontFamily
		result.markApplied("fontFamily")
	}

	if typo.FontWeight != "" {
		if style, ok := FontStyleForWeight(typo.FontWeight); ok {
			node.Text.FontStyle = style
			result.markApplied("fontWeight")
		} else {
			result.addWarning("fontWeight: unmapped weight %q, keeping %s", typo.FontWeight, node.Text.FontStyle)
		}
	}

	if typo.LineHeight > 0 {
		// Source line height is a multiplier of the font size; the target
		// wants a percentage.
		node.Text.LineHeightPct = typo.LineHeight * 100
		result.markApplied("lineHeight")
	}

	if typo.LetterSpacing != 0 {
		node.Text.LetterSpacing = typo.LetterSpacing
		result.markApplied("letterSpacing")
	}

	if typo.TextAlign != "" {
		node.Text.TextAlign = TextAlignFor(typo.TextAlign)
		result.markApplied("textAlign")
	}
}

func (r *Resolver) applySpacing(node *nodespec.Node, spacing *widget.SpacingInfo, result *Result) {
	// Padding and margin need an auto-layout frame to land on; on anything
	// else they are a no-op, not an error.
	if node.AutoLayout == nil {
		return
	}

	if p := spacing.Padding; p != nil && !p.IsZero() {
		node.AutoLayout.PaddingTop = p.Top
		node.AutoLayout.PaddingRight = p.Right
		node.AutoLayout.PaddingBottom = p.Bottom
		node.AutoLayout.PaddingLeft = p.Left
		result.markApplied("padding")
	}

	if m := spacing.Margin; m != nil && !m.IsZero() {
		// Lossy by contract: margin collapses to inter-item spacing using
		// the largest edge.
		if max := m.Max(); max > node.AutoLayout.ItemSpacing {
			node.AutoLayout.ItemSpacing = max
		}
		result.markApplied("itemSpacing")
	}
}

func (r *Resolver) applyBorder(node *nodespec.Node, border *widget.BorderInfo, result *Result) {
	if border.Color != nil {
		color := *border.Color
		color.Target = widget.ColorBorder
		r.applyColor(node, color, result)
		if border.Width > 0 {
			node.StrokeWeight = border.Width
		}
	}

	if radius := border.Radius; radius != nil {
		if radius.IsUniform() {
			if radius.TopLeft > 0 {
				value := radius.TopLeft
				node.CornerRadius = &value
				node.CornerRadii = nil
				result.markApplied("cornerRadius")
			}
		} else {
			node.CornerRadius = nil
			node.CornerRadii = &nodespec.CornerRadii{
				TopLeft:     radius.TopLeft,
				TopRight:    radius.TopRight,
				BottomRight: radius.BottomRight,
				BottomLeft:  radius.BottomLeft,
			}
			result.markApplied("cornerRadii")
		}
	}
}

func (r *Resolver) applyShadow(node *nodespec.Node, shadow widget.ShadowInfo, result *Result) {
	rgb, opacity, err := ParseHex(shadow.Color)
	if err != nil {
		result.addError("effects", err)
		return
	}

	node.Effects = append(node.Effects, nodespec.Effect{
		Type:    nodespec.EffectDropShadow,
		Color:   rgb,
		Opacity: opacity,
		OffsetX: shadow.OffsetX,
		OffsetY: shadow.OffsetY,
		Radius:  shadow.Blur,
		Spread:  shadow.Spread,
	})
	result.markApplied("effects")
}
