package library

import (
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
)

// Score computes the deterministic complexity score of a component: direct
// child count plus property count plus twice the variant count plus color
// count, with two extra points for a border and one per shadow.
func Score(def *nodespec.ComponentDefinition) int {
	score := len(def.Properties) + 2*len(def.Variants)

	base := def.BaseNode()
	if base == nil {
		return score
	}

	score += len(base.Children)
	score += countColors(base)
	if len(base.Strokes) > 0 {
		score += 2
	}
	for _, effect := range base.Effects {
		if effect.Type == nodespec.EffectDropShadow {
			score++
		}
	}
	return score
}

// Classify buckets a score: at most 3 is Simple, at most 8 is Medium,
// anything above is Complex.
func Classify(score int) nodespec.Complexity {
	switch {
	case score <= 3:
		return nodespec.ComplexitySimple
	case score <= 8:
		return nodespec.ComplexityMedium
	default:
		return nodespec.ComplexityComplex
	}
}

func countColors(node *nodespec.Node) int {
	count := 0
	for _, paint := range node.Fills {
		if paint.Color != nil {
			count++
		}
	}
	for _, paint := range node.Strokes {
		if paint.Color != nil {
			count++
		}
	}
	return count
}
