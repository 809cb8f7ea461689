package styler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
)

// ParseHex converts a hex color literal into a normalized 0–1 RGB value and
// an opacity. Accepted forms are RRGGBB and AARRGGBB, with or without a
// leading '#'. Anything else is an error; malformed colors never default.
func ParseHex(raw string) (nodespec.RGB, float64, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")

	var alpha uint64 = 0xFF
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[:2], 16, 16)
		if err != nil {
			return nodespec.RGB{}, 0, fmt.Errorf("invalid hex color %q", raw)
		}
		alpha = a
		hex = hex[2:]
	default:
		return nodespec.RGB{}, 0, fmt.Errorf("invalid hex color %q: expected 6 or 8 digits", raw)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nodespec.RGB{}, 0, fmt.Errorf("invalid hex color %q", raw)
	}

	rgb := nodespec.RGB{
		R: float64(value>>16&0xFF) / 255,
		G: float64(value>>8&0xFF) / 255,
		B: float64(value&0xFF) / 255,
	}
	return rgb, float64(alpha) / 255, nil
}
