package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nodelift/internal/widget"
	nodelifterrors "github.com/alexisbeaulieu97/nodelift/pkg/errors"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "screen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Checkout screen"
description: "Sample document for parser tests"
mapping:
  collection_prefix: "Shop"
theme:
  color_scheme:
    primary: "#6750A4"
root:
  type: column
  layout:
    kind: column
    spacing: 8
  children:
    - type: text
      props:
        text: "Your cart"
        fontSize: 24
    - type: button
      definition: checkoutButton
      props:
        text: "Pay now"
definitions:
  - name: checkoutButton
    usage_count: 2
    base:
      type: button
      props:
        text: "Pay now"
        style: primary
    variants:
      - name: Secondary
        props:
          style: secondary
`

	invalidYAML := `version: [1, 0]
name: "Broken"
root:
  type: column
`

	missingRoot := `version: "1.0"
name: "No Root"
`

	badVersion := `version: "beta"
name: "Bad Version"
root:
  type: column
`

	unknownDefinition := `version: "1.0"
name: "Dangling"
root:
  type: column
  children:
    - type: button
      definition: ghostButton
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, "Checkout screen", doc.Name)
				assert.Equal(t, "Shop", doc.Mapping.ToConfig().CollectionPrefix)
				require.NotNil(t, doc.Root)
				require.Len(t, doc.Root.Children, 2)
				assert.Equal(t, widget.TypeText, doc.Root.Children[0].Type)
				assert.Equal(t, "Your cart", doc.Root.Children[0].Props.String("text"))

				size, ok := doc.Root.Children[0].Props.Number("fontSize")
				require.True(t, ok)
				assert.Equal(t, 24.0, size)

				assert.Equal(t, "checkoutButton", doc.Root.Children[1].Definition)
				require.Len(t, doc.Definitions, 1)
				assert.Equal(t, 2, doc.Definitions[0].UsageCount)
			},
		},
		{
			name:     "yaml type error becomes parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *nodelifterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "missing root fails validation",
			contents: missingRoot,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var validationErr *nodelifterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name:     "bad version fails semver validation",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var validationErr *nodelifterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Field, "Version")
			},
		},
		{
			name:     "dangling definition reference is rejected",
			contents: unknownDefinition,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var validationErr *nodelifterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "ghostButton")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(writeFile(t, tc.contents))
			tc.assert(t, doc, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *nodelifterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `color_scheme:
  primary: "#6750A4"
  surface: "#FFFBFE"
text_styles:
  bodyLarge:
    font_size: 16
    font_family: Roboto
spacing_scale:
  md: 16
`)

	model, err := ParseTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "#6750A4", model.ColorScheme["primary"])
	assert.Equal(t, 16.0, model.TextStyles["bodyLarge"].FontSize)
	assert.Equal(t, 16.0, model.SpacingScale["md"])
}

func TestParseThemeRejectsMalformedColors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `color_scheme:
  primary: "#6750A4"
  surface: "not-a-color"
`)

	_, err := ParseTheme(path)
	require.Error(t, err)

	var themeErr *nodelifterrors.ThemeError
	require.ErrorAs(t, err, &themeErr)
	assert.Contains(t, themeErr.Collection, "ColorScheme")
}

func TestInlineThemeColorsAreValidated(t *testing.T) {
	t.Parallel()

	contents := `version: "1.0"
name: "Bad Theme"
theme:
  color_scheme:
    primary: "ZZZZZZ"
root:
  type: column
`

	_, err := ParseDocument(writeFile(t, contents))
	require.Error(t, err)

	var validationErr *nodelifterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "hex_color")
}

func TestDuplicateDefinitionNamesAreRejected(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Version: "1.0",
		Name:    "Dup",
		Root:    &widget.Node{Type: widget.TypeColumn},
		Definitions: []widget.Definition{
			{Name: "card", Base: &widget.Node{Type: widget.TypeCard}},
			{Name: "card", Base: &widget.Node{Type: widget.TypeCard}},
		},
	}

	err := ValidateDocument(doc)
	require.Error(t, err)

	var validationErr *nodelifterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "duplicate")
}
