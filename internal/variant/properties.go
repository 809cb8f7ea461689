package variant

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// DeriveProperties classifies the matrix dimensions of a definition into
// switchable component properties. Value homogeneity decides the kind:
// all-boolean dimensions become BOOLEAN, all-string dimensions become a
// VARIANT enum over the observed values, mixed dimensions degrade to TEXT
// seeded with the first value. Text-bearing widgets always expose a TEXT
// property, and icon-bearing properties always expose INSTANCE_SWAP.
func DeriveProperties(def *widget.Definition) []nodespec.ComponentProperty {
	matrix := BuildMatrix(def)
	props := make([]nodespec.ComponentProperty, 0, len(matrix.Dimensions)+2)
	covered := make(map[string]struct{}, len(matrix.Dimensions))

	for _, dim := range matrix.Dimensions {
		covered[dim.Key] = struct{}{}
		props = append(props, classifyDimension(dim, baseProps(def)))
	}

	if def.Base != nil {
		if text := def.Base.Text(); text != "" {
			if _, ok := covered["text"]; !ok {
				props = append(props, nodespec.ComponentProperty{
					Name:    "Text",
					Kind:    nodespec.PropertyText,
					Default: text,
				})
			}
		}
	}

	for _, key := range iconKeys(def) {
		if _, ok := covered[key]; ok {
			continue
		}
		props = append(props, nodespec.ComponentProperty{
			Name: Capitalize(key),
			Kind: nodespec.PropertyInstanceSwap,
		})
	}

	return props
}

func classifyDimension(dim Dimension, base widget.PropMap) nodespec.ComponentProperty {
	prop := nodespec.ComponentProperty{Name: Capitalize(dim.Key)}

	switch {
	case dim.AllBool():
		prop.Kind = nodespec.PropertyBoolean
		prop.Default = "false"
	case dim.AllString():
		prop.Kind = nodespec.PropertyVariant
		options := make([]string, 0, len(dim.Values))
		for _, v := range dim.Values {
			options = append(options, v.Form())
		}
		sort.Strings(options)
		prop.Options = options
		prop.Default = options[0]
	default:
		prop.Kind = nodespec.PropertyText
		prop.Default = dim.Values[0].Form()
	}

	if base != nil {
		if v, ok := base[dim.Key]; ok {
			prop.Default = v.Form()
		}
	}
	return prop
}

// iconKeys lists the property keys of def that carry swappable icon content,
// sorted for stable output.
func iconKeys(def *widget.Definition) []string {
	seen := make(map[string]struct{})

	collect := func(props widget.PropMap) {
		for key := range props {
			if key == "icon" || strings.HasSuffix(key, "Icon") {
				seen[key] = struct{}{}
			}
		}
	}

	if def.Base != nil {
		collect(def.Base.Props)
	}
	for _, v := range def.Variants {
		collect(v.Props)
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
