package theme

// MappingConfig controls how the style resolver maps theme references onto
// tokens versus literal values.
type MappingConfig struct {
	// UseVariables enables token resolution for theme-referenced attributes.
	UseVariables bool
	// FallbackToDirectValues downgrades a missing token to a warning plus
	// the literal value; when false a miss is a hard per-property error.
	FallbackToDirectValues bool
	// CollectionPrefix namespaces the generated token collections.
	CollectionPrefix string
	// PreferMultiMode resolves tokens with light/dark mode values when the
	// theme provides a dark scheme.
	PreferMultiMode bool
}

// DefaultMappingConfig mirrors the behavior a host tool expects out of the
// box: tokens on, graceful fallback, single mode.
func DefaultMappingConfig() MappingConfig {
	return MappingConfig{
		UseVariables:           true,
		FallbackToDirectValues: true,
		CollectionPrefix:       "App",
	}
}
