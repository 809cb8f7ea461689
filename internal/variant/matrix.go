package variant

import (
	"sort"

	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// Dimension is one axis of the property matrix: a property key and its
// distinct observed values across the base definition and all recorded
// variants, in observation order.
type Dimension struct {
	Key    string
	Values []widget.Value
}

// AllBool reports whether every observed value is boolean.
func (d Dimension) AllBool() bool {
	for _, v := range d.Values {
		if v.Kind != widget.KindBool {
			return false
		}
	}
	return len(d.Values) > 0
}

// AllString reports whether every observed value is a string.
func (d Dimension) AllString() bool {
	for _, v := range d.Values {
		if v.Kind != widget.KindString {
			return false
		}
	}
	return len(d.Values) > 0
}

// Matrix is the property-value matrix driving variant synthesis. Dimensions
// are sorted by key; keys observed with at most one distinct value are
// dropped during construction.
type Matrix struct {
	Dimensions []Dimension
}

// Empty reports whether no dimension survived construction.
func (m Matrix) Empty() bool {
	return len(m.Dimensions) == 0
}

// BuildMatrix collects the property matrix for a reusable definition.
func BuildMatrix(def *widget.Definition) Matrix {
	observed := make(map[string][]widget.Value)

	record := func(props widget.PropMap) {
		for key, value := range props {
			values := observed[key]
			seen := false
			for _, existing := range values {
				if existing.Equal(value) {
					seen = true
					break
				}
			}
			if !seen {
				observed[key] = append(values, value)
			}
		}
	}

	if def.Base != nil {
		record(def.Base.Props)
	}
	for _, v := range def.Variants {
		record(v.Props)
	}

	keys := make([]string, 0, len(observed))
	for key, values := range observed {
		if len(values) <= 1 {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	matrix := Matrix{Dimensions: make([]Dimension, 0, len(keys))}
	for _, key := range keys {
		matrix.Dimensions = append(matrix.Dimensions, Dimension{Key: key, Values: observed[key]})
	}
	return matrix
}

// Combinations enumerates the cartesian product of the matrix dimensions,
// odometer-style, stopping at limit.
func (m Matrix) Combinations(limit int) []widget.PropMap {
	if m.Empty() || limit <= 0 {
		return nil
	}

	indices := make([]int, len(m.Dimensions))
	var combos []widget.PropMap

	for len(combos) < limit {
		combo := make(widget.PropMap, len(m.Dimensions))
		for i, dim := range m.Dimensions {
			combo[dim.Key] = dim.Values[indices[i]]
		}
		combos = append(combos, combo)

		// Advance the odometer; overflow past the last dimension means the
		// product is exhausted.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(m.Dimensions[pos].Values) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return combos
}
