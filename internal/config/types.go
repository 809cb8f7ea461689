package config

import (
	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
)

// Document is the full conversion input: a versioned widget tree, the
// reusable definitions recorded by the analysis stage, and an optional
// inline theme plus mapping settings.
type Document struct {
	Version     string              `yaml:"version" validate:"required,semver"`
	Name        string              `yaml:"name" validate:"required,min=1,max=100"`
	Description string              `yaml:"description,omitempty"`
	Mapping     MappingSettings     `yaml:"mapping,omitempty"`
	Theme       *theme.Model        `yaml:"theme,omitempty"`
	Root        *widget.Node        `yaml:"root" validate:"required"`
	Definitions []widget.Definition `yaml:"definitions,omitempty" validate:"omitempty,dive"`
}

// MappingSettings is the document-level override of the style mapping
// configuration. Unset fields keep the defaults.
type MappingSettings struct {
	UseVariables           *bool  `yaml:"use_variables,omitempty"`
	FallbackToDirectValues *bool  `yaml:"fallback_to_direct_values,omitempty"`
	CollectionPrefix       string `yaml:"collection_prefix,omitempty"`
	PreferMultiMode        bool   `yaml:"prefer_multi_mode,omitempty"`
}

// ToConfig resolves the settings against the default mapping configuration.
func (m MappingSettings) ToConfig() theme.MappingConfig {
	cfg := theme.DefaultMappingConfig()
	if m.UseVariables != nil {
		cfg.UseVariables = *m.UseVariables
	}
	if m.FallbackToDirectValues != nil {
		cfg.FallbackToDirectValues = *m.FallbackToDirectValues
	}
	if m.CollectionPrefix != "" {
		cfg.CollectionPrefix = m.CollectionPrefix
	}
	cfg.PreferMultiMode = m.PreferMultiMode
	return cfg
}
