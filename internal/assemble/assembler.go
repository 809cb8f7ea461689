package assemble

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/nodelift/internal/lower"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/variant"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// Assembler wraps reusable widget definitions into component definitions
// and lowers ordinary usages into instances.
type Assembler struct {
	engine *lower.Engine
	synth  *variant.Synthesizer
}

// NewAssembler builds an assembler over a lowering engine. Variant trees
// and instance IDs draw from the engine's run context.
func NewAssembler(engine *lower.Engine) *Assembler {
	return &Assembler{engine: engine, synth: variant.NewSynthesizer(engine)}
}

// BuildComponent assembles one component definition from a reusable widget:
// synthesized variants, derived switchable properties, an inferred name, and
// a generated description.
func (a *Assembler) BuildComponent(def *widget.Definition) *nodespec.ComponentDefinition {
	component := &nodespec.ComponentDefinition{
		Name:       ComponentName(def),
		Variants:   a.synth.Synthesize(def),
		Properties: variant.DeriveProperties(def),
	}
	if def.Base != nil {
		component.SourceType = string(def.Base.Type)
	}

	component.Description = fmt.Sprintf("%s with %d variant(s), seen %d time(s) in the source tree.",
		component.Name, len(component.Variants), def.UsageCount)
	return component
}

// ComponentName infers a display name for the component. Type-specific
// heuristics derive a usage-context suffix first; a declared definition
// name is sanitized next; the bare "{Type} Component" form is the fallback.
func ComponentName(def *widget.Definition) string {
	if def.Base != nil {
		if context := usageContext(def.Base); context != "" {
			return lower.TypeLabel(def.Base.Type) + " / " + context
		}
	}
	if def.Name != "" {
		return sanitizeName(def.Name)
	}
	if def.Base != nil {
		return lower.TypeLabel(def.Base.Type) + " Component"
	}
	return "Component"
}

// usageContext applies per-type heuristics over well-known properties.
func usageContext(base *widget.Node) string {
	switch base.Type {
	case widget.TypeButton:
		switch base.Props.String("style") {
		case "primary", "secondary":
			return variant.Capitalize(base.Props.String("style"))
		}
		switch base.Props.String("size") {
		case "large", "small":
			return variant.Capitalize(base.Props.String("size"))
		}
	case widget.TypeCard:
		if base.Props.Bool("elevated") {
			return "Elevated"
		}
		if base.Props.Bool("outlined") {
			return "Outlined"
		}
	case widget.TypeAppBar:
		if base.Props.Bool("pinned") {
			return "Pinned"
		}
	}
	return ""
}

// sanitizeName turns a declared identifier like "actionButton" or
// "profile_card" into a spaced, title-cased display name.
func sanitizeName(name string) string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	for i, word := range words {
		words[i] = variant.Capitalize(word)
	}
	if len(words) == 0 {
		return "Component"
	}
	return strings.Join(words, " ")
}
