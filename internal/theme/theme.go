package theme

// TextStyle is one named entry of the theme's type scale.
type TextStyle struct {
	FontSize      float64 `yaml:"font_size" json:"fontSize" validate:"required,min=1"`
	FontFamily    string  `yaml:"font_family,omitempty" json:"fontFamily,omitempty"`
	FontWeight    string  `yaml:"font_weight,omitempty" json:"fontWeight,omitempty"`
	LetterSpacing float64 `yaml:"letter_spacing,omitempty" json:"letterSpacing,omitempty"`
	LineHeight    float64 `yaml:"line_height,omitempty" json:"lineHeight,omitempty" validate:"omitempty,min=0"`
}

// Model is the resolved theme handed in by the theme-extraction stage.
// It is read-only for the duration of a conversion run.
type Model struct {
	ColorScheme     map[string]string    `yaml:"color_scheme,omitempty" json:"colorScheme,omitempty" validate:"omitempty,dive,hex_color"`
	DarkColorScheme map[string]string    `yaml:"dark_color_scheme,omitempty" json:"darkColorScheme,omitempty" validate:"omitempty,dive,hex_color"`
	TextStyles      map[string]TextStyle `yaml:"text_styles,omitempty" json:"textStyles,omitempty" validate:"omitempty,dive"`
	SpacingScale    map[string]float64   `yaml:"spacing_scale,omitempty" json:"spacingScale,omitempty"`
	RadiusScale     map[string]float64   `yaml:"radius_scale,omitempty" json:"radiusScale,omitempty"`
}

// IsEmpty reports whether the theme carries no resolvable entries.
func (m *Model) IsEmpty() bool {
	if m == nil {
		return true
	}
	return len(m.ColorScheme) == 0 && len(m.TextStyles) == 0 &&
		len(m.SpacingScale) == 0 && len(m.RadiusScale) == 0
}
