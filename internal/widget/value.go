package widget

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the closed set of property value types a widget
// property may carry. Anything else in the source document is a decode error.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindString
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar property value. Exactly one of the payload fields
// is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Bool bool
	Str  string
	Num  float64
}

// BoolValue builds a boolean Value.
func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// StringValue builds a string Value.
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// NumberValue builds a numeric Value.
func NumberValue(v float64) Value { return Value{Kind: KindNumber, Num: v} }

// Form renders the value in its display form: the form used for variant
// names, property defaults, and distinctness checks.
func (v Value) Form() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}

// Equal reports whether two values share kind and payload.
func (v Value) Equal(other Value) bool {
	return v.Kind == other.Kind && v.Form() == other.Form()
}

// UnmarshalYAML decodes a scalar YAML node into a tagged Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("property value must be a scalar, got %s", yamlKindName(node.Kind))
	}

	switch node.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", node.Value, err)
		}
		*v = BoolValue(b)
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", node.Value, err)
		}
		*v = NumberValue(n)
	default:
		*v = StringValue(node.Value)
	}
	return nil
}

// MarshalJSON renders the value as its native JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNumber:
		return json.Marshal(v.Num)
	default:
		return json.Marshal(v.Str)
	}
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}

// PropMap holds the open set of widget properties with closed value types.
type PropMap map[string]Value

// Get returns the value for key and whether it was present.
func (p PropMap) Get(key string) (Value, bool) {
	v, ok := p[key]
	return v, ok
}

// String returns the string payload for key, or "" when absent or non-string.
func (p PropMap) String(key string) string {
	if v, ok := p[key]; ok && v.Kind == KindString {
		return v.Str
	}
	return ""
}

// Bool returns the boolean payload for key, false when absent or non-bool.
func (p PropMap) Bool(key string) bool {
	if v, ok := p[key]; ok && v.Kind == KindBool {
		return v.Bool
	}
	return false
}

// Number returns the numeric payload for key and whether it was a number.
func (p PropMap) Number(key string) (float64, bool) {
	if v, ok := p[key]; ok && v.Kind == KindNumber {
		return v.Num, true
	}
	return 0, false
}

// Clone returns an independent copy of the map.
func (p PropMap) Clone() PropMap {
	if p == nil {
		return nil
	}
	out := make(PropMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a copy of p with entries from overrides layered on top.
func (p PropMap) Merge(overrides PropMap) PropMap {
	out := p.Clone()
	if out == nil {
		out = make(PropMap, len(overrides))
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// SortedKeys returns the property names in lexicographic order.
func (p PropMap) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
