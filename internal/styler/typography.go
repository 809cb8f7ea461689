package styler

import (
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
)

// fontWeightStyles maps source weight declarations to the host tool's font
// style names. The table is fixed; weights outside it keep the node default.
var fontWeightStyles = map[string]string{
	"100":    "Thin",
	"200":    "ExtraLight",
	"300":    "Light",
	"400":    "Regular",
	"500":    "Medium",
	"600":    "SemiBold",
	"700":    "Bold",
	"800":    "ExtraBold",
	"900":    "Black",
	"normal": "Regular",
	"bold":   "Bold",
}

// FontStyleForWeight resolves a weight declaration to a style name.
func FontStyleForWeight(weight string) (string, bool) {
	style, ok := fontWeightStyles[weight]
	return style, ok
}

// TextAlignFor maps a source alignment keyword to the target vocabulary.
// Unknown keywords fall back to left alignment.
func TextAlignFor(align string) nodespec.TextAlign {
	switch align {
	case "center":
		return nodespec.TextAlignCenter
	case "right":
		return nodespec.TextAlignRight
	case "justify":
		return nodespec.TextAlignJustified
	default:
		return nodespec.TextAlignLeft
	}
}
