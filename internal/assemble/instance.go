package assemble

import (
	"github.com/alexisbeaulieu97/nodelift/internal/lower"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// BuildInstance lowers one ordinary usage of a reusable widget into an
// instance node referencing the assembled component by name, carrying only
// the usage's deviations from the component defaults.
func (a *Assembler) BuildInstance(usage *widget.Node, def *widget.Definition, componentName string) *nodespec.Node {
	node := &nodespec.Node{
		ID:            a.engine.Context().NextID("instance"),
		Type:          nodespec.TypeInstance,
		Name:          instanceName(usage, componentName),
		ComponentName: componentName,
		Overrides:     overridesFor(usage, def),
	}
	return node
}

func instanceName(usage *widget.Node, componentName string) string {
	if text := lower.TruncateLabel(usage.Text()); text != "" {
		return text
	}
	if key := usage.Key(); key != "" {
		return key
	}
	return componentName
}

// overridesFor computes the delta between a usage and its component's base
// definition: literal colors, explicit sizes, and text content. Token-bound
// colors are inherited from the component and never overridden per instance.
func overridesFor(usage *widget.Node, def *widget.Definition) []nodespec.Override {
	var overrides []nodespec.Override
	if usage == nil || def == nil || def.Base == nil {
		return overrides
	}

	if usage.Styling != nil {
		base := baseColors(def.Base)
		for _, color := range usage.Styling.Colors {
			if color.IsThemeRef {
				continue
			}
			if base[color.Target] == color.Value {
				continue
			}
			overrides = append(overrides, nodespec.Override{
				Property: string(color.Target) + "Color",
				Value:    color.Value,
			})
		}
	}

	for _, key := range []string{"width", "height", "size"} {
		value, ok := usage.Props.Get(key)
		if !ok {
			continue
		}
		if baseValue, present := def.Base.Props.Get(key); present && baseValue.Equal(value) {
			continue
		}
		overrides = append(overrides, nodespec.Override{Property: key, Value: value.Form()})
	}

	if text := usage.Text(); text != "" && text != def.Base.Text() {
		overrides = append(overrides, nodespec.Override{Property: "text", Value: text})
	}

	return overrides
}

func baseColors(base *widget.Node) map[widget.ColorTarget]string {
	colors := make(map[widget.ColorTarget]string)
	if base.Styling == nil {
		return colors
	}
	for _, color := range base.Styling.Colors {
		colors[color.Target] = color.Value
	}
	return colors
}

// registry resolves definition usages to their assembled components during
// tree lowering. It implements lower.Instancer.
type registry struct {
	assembler  *Assembler
	defs       map[string]*widget.Definition
	components map[string]string
}

// Instancer builds the lower.Instancer that substitutes instance nodes for
// widgets marked as usages of the given definitions.
func (a *Assembler) Instancer(defs []widget.Definition, components []nodespec.ComponentDefinition) lower.Instancer {
	reg := &registry{
		assembler:  a,
		defs:       make(map[string]*widget.Definition, len(defs)),
		components: make(map[string]string, len(components)),
	}
	for i := range defs {
		reg.defs[defs[i].Name] = &defs[i]
		if i < len(components) {
			reg.components[defs[i].Name] = components[i].Name
		}
	}
	return reg
}

func (r *registry) Instance(w *widget.Node) (*nodespec.Node, bool) {
	def, ok := r.defs[w.Definition]
	if !ok {
		return nil, false
	}
	componentName, ok := r.components[w.Definition]
	if !ok {
		componentName = ComponentName(def)
	}
	return r.assembler.BuildInstance(w, def, componentName), true
}
