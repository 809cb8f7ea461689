package widget

// StyleInfo carries the style annotations attached to a widget. Every field
// is optional; colors and shadows keep their source order.
type StyleInfo struct {
	Colors     []ColorInfo     `yaml:"colors,omitempty" json:"colors,omitempty" validate:"omitempty,dive"`
	Typography *TypographyInfo `yaml:"typography,omitempty" json:"typography,omitempty"`
	Spacing    *SpacingInfo    `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Border     *BorderInfo     `yaml:"border,omitempty" json:"border,omitempty"`
	Shadows    []ShadowInfo    `yaml:"shadows,omitempty" json:"shadows,omitempty" validate:"omitempty,dive"`
}

// ColorTarget names which painted attribute a color entry styles.
type ColorTarget string

const (
	ColorBackground ColorTarget = "background"
	ColorText       ColorTarget = "text"
	ColorBorder     ColorTarget = "border"
)

// ColorInfo is one color annotation: a literal hex value plus an optional
// theme reference for token resolution.
type ColorInfo struct {
	Target     ColorTarget `yaml:"target" json:"target" validate:"required,oneof=background text border"`
	Value      string      `yaml:"value" json:"value" validate:"required"`
	IsThemeRef bool        `yaml:"theme_ref,omitempty" json:"isThemeRef,omitempty"`
	ThemePath  string      `yaml:"theme_path,omitempty" json:"themePath,omitempty"`
}

// ScalarRef is a numeric style attribute that may reference a theme token
// instead of (or in addition to) its literal value.
type ScalarRef struct {
	Value      float64 `yaml:"value" json:"value"`
	IsThemeRef bool    `yaml:"theme_ref,omitempty" json:"isThemeRef,omitempty"`
	ThemePath  string  `yaml:"theme_path,omitempty" json:"themePath,omitempty"`
}

// TypographyInfo describes text styling on a widget.
type TypographyInfo struct {
	FontSize      *ScalarRef `yaml:"font_size,omitempty" json:"fontSize,omitempty"`
	FontFamily    string     `yaml:"font_family,omitempty" json:"fontFamily,omitempty"`
	FontWeight    string     `yaml:"font_weight,omitempty" json:"fontWeight,omitempty"`
	LineHeight    float64    `yaml:"line_height,omitempty" json:"lineHeight,omitempty" validate:"omitempty,min=0"`
	LetterSpacing float64    `yaml:"letter_spacing,omitempty" json:"letterSpacing,omitempty"`
	TextAlign     string     `yaml:"text_align,omitempty" json:"textAlign,omitempty" validate:"omitempty,oneof=left center right justify"`
}

// EdgeInsets is spacing around a box. CSS box-model ordering: top, right,
// bottom, left, clockwise from top.
type EdgeInsets struct {
	Top    float64 `yaml:"top,omitempty" json:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty" json:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty" json:"left,omitempty"`
}

// IsZero reports whether all four edges are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Max returns the largest of the four edges.
func (e EdgeInsets) Max() float64 {
	max := e.Top
	for _, v := range []float64{e.Right, e.Bottom, e.Left} {
		if v > max {
			max = v
		}
	}
	return max
}

// SpacingInfo carries padding and margin annotations.
type SpacingInfo struct {
	Padding *EdgeInsets `yaml:"padding,omitempty" json:"padding,omitempty"`
	Margin  *EdgeInsets `yaml:"margin,omitempty" json:"margin,omitempty"`
}

// CornerRadius describes border rounding, uniform or per-corner.
type CornerRadius struct {
	TopLeft     float64 `yaml:"top_left,omitempty" json:"topLeft,omitempty"`
	TopRight    float64 `yaml:"top_right,omitempty" json:"topRight,omitempty"`
	BottomRight float64 `yaml:"bottom_right,omitempty" json:"bottomRight,omitempty"`
	BottomLeft  float64 `yaml:"bottom_left,omitempty" json:"bottomLeft,omitempty"`
}

// IsUniform reports whether all four corners share one radius.
func (c CornerRadius) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// BorderInfo describes stroke and rounding annotations.
type BorderInfo struct {
	Color  *ColorInfo    `yaml:"color,omitempty" json:"color,omitempty"`
	Width  float64       `yaml:"width,omitempty" json:"width,omitempty" validate:"omitempty,min=0"`
	Radius *CornerRadius `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// ShadowInfo is one drop-shadow annotation.
type ShadowInfo struct {
	Color   string  `yaml:"color" json:"color" validate:"required"`
	OffsetX float64 `yaml:"offset_x,omitempty" json:"offsetX,omitempty"`
	OffsetY float64 `yaml:"offset_y,omitempty" json:"offsetY,omitempty"`
	Blur    float64 `yaml:"blur,omitempty" json:"blur,omitempty" validate:"omitempty,min=0"`
	Spread  float64 `yaml:"spread,omitempty" json:"spread,omitempty"`
}
