package variant

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/nodelift/internal/lower"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// MaxVariants bounds the cartesian product a single component may expand
// into, whatever the matrix size.
const MaxVariants = 16

// Synthesizer expands a reusable widget definition into named, typed
// component variants by enumerating its property matrix.
type Synthesizer struct {
	engine *lower.Engine
}

// NewSynthesizer builds a synthesizer that lowers variant trees through the
// given engine. The engine's context supplies node IDs, so variants share
// the run's ID space.
func NewSynthesizer(engine *lower.Engine) *Synthesizer {
	return &Synthesizer{engine: engine}
}

// Synthesize enumerates the bounded combination space of def and produces
// one ComponentVariant per combination. An empty matrix yields exactly one
// "Default" variant. Recorded variants that already match a combination are
// reused: their name and overrides win over synthesis.
func (s *Synthesizer) Synthesize(def *widget.Definition) []nodespec.ComponentVariant {
	matrix := BuildMatrix(def)

	if matrix.Empty() {
		return []nodespec.ComponentVariant{{
			Name: "Default",
			Node: s.engine.Lower(def.Base),
		}}
	}

	combos := matrix.Combinations(MaxVariants)
	variants := make([]nodespec.ComponentVariant, 0, len(combos))

	for _, combo := range combos {
		values := make(map[string]string, len(combo))
		for key, value := range combo {
			values[key] = value.Form()
		}

		name := VariantName(combo, def.Base)
		source := mergedWidget(def.Base, combo, nil)

		if recorded := matchRecorded(def, combo); recorded != nil {
			if recorded.Name != "" {
				name = recorded.Name
			}
			source = mergedWidget(def.Base, recorded.Props, recorded.Styling)
		}

		variants = append(variants, nodespec.ComponentVariant{
			Name:   name,
			Values: values,
			Node:   s.engine.Lower(source),
		})
	}

	return variants
}

// matchRecorded finds a recorded variant whose effective properties agree
// with the combination on every matrix key.
func matchRecorded(def *widget.Definition, combo widget.PropMap) *widget.Variant {
	for i := range def.Variants {
		recorded := &def.Variants[i]
		effective := baseProps(def).Merge(recorded.Props)

		matches := true
		for key, want := range combo {
			got, ok := effective[key]
			if !ok || !got.Equal(want) {
				matches = false
				break
			}
		}
		if matches {
			return recorded
		}
	}
	return nil
}

// mergedWidget builds the synthetic widget for one combination: the base
// node with the combination layered onto its properties. Children are shared
// with the immutable base.
func mergedWidget(base *widget.Node, overrides widget.PropMap, styling *widget.StyleInfo) *widget.Node {
	if base == nil {
		return nil
	}
	merged := *base
	merged.Props = base.Props.Merge(overrides)
	if styling != nil {
		merged.Styling = styling
	}
	return &merged
}

// VariantName derives the canonical variant name for a combination: the
// significant (non-default) entries sorted by key, each rendered in
// capitalized form; booleans render as Key or NoKey. A combination with no
// significant entries is the Default variant.
func VariantName(combo widget.PropMap, base *widget.Node) string {
	keys := combo.SortedKeys()

	var parts []string
	for _, key := range keys {
		value := combo[key]
		if base != nil {
			if def, ok := base.Props[key]; ok && def.Equal(value) {
				continue
			}
		}
		parts = append(parts, variantPart(key, value))
	}

	if len(parts) == 0 {
		return "Default"
	}
	return strings.Join(parts, "")
}

func variantPart(key string, value widget.Value) string {
	if value.Kind == widget.KindBool {
		if value.Bool {
			return Capitalize(key)
		}
		return "No" + Capitalize(key)
	}
	return Capitalize(value.Form())
}

// Capitalize upper-cases the first rune of an identifier.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}

func baseProps(def *widget.Definition) widget.PropMap {
	if def.Base == nil {
		return nil
	}
	return def.Base.Props
}
