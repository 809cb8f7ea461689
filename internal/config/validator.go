package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
	nodelifterrors "github.com/alexisbeaulieu97/nodelift/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	widgetTagPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	hexColorPattern  = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Unknown tags lower to frames, so the tag only has to be shaped
		// like one, not drawn from the closed set.
		_ = v.RegisterValidation("widget_type", func(fl validator.FieldLevel) bool {
			return widgetTagPattern.MatchString(fl.Field().String())
		})

		// RRGGBB or AARRGGBB, leading '#' optional. Theme values only; a
		// malformed color on a widget stays a collected style error.
		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-reference validation on a
// conversion document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return nodelifterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return nodelifterrors.NewValidationError(
				fieldPath(first),
				fmt.Sprintf("failed %q validation", first.Tag()),
				err,
			)
		}
		return nodelifterrors.NewValidationError("document", err.Error(), err)
	}

	return validateDefinitionRefs(doc)
}

// ValidateTheme performs schema validation on a theme model. Failures are
// theme-class: they stop a run before any lowering starts.
func ValidateTheme(model *theme.Model) error {
	if model == nil {
		return nil
	}

	if err := validatorInstance().Struct(model); err != nil {
		collection := "theme"
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			collection = fieldPath(fieldErrors[0])
		}
		return nodelifterrors.NewThemeError(collection, err)
	}

	return nil
}

// validateDefinitionRefs checks that every usage marker in the widget tree
// points at a declared definition, mirroring dependency checking on the
// analysis side.
func validateDefinitionRefs(doc *Document) error {
	declared := make(map[string]struct{}, len(doc.Definitions))
	for i, def := range doc.Definitions {
		if _, dup := declared[def.Name]; dup {
			return nodelifterrors.NewValidationError(
				fmt.Sprintf("definitions[%d].name", i),
				fmt.Sprintf("duplicate definition %q", def.Name),
				nil,
			)
		}
		declared[def.Name] = struct{}{}
	}

	var walk func(n *widget.Node, path string) error
	walk = func(n *widget.Node, path string) error {
		if n == nil {
			return nil
		}
		if n.Definition != "" {
			if _, ok := declared[n.Definition]; !ok {
				return nodelifterrors.NewValidationError(
					path+".definition",
					fmt.Sprintf("references unknown definition %q", n.Definition),
					nil,
				)
			}
		}
		for i, child := range n.Children {
			if err := walk(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	return walk(doc.Root, "root")
}

func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fe.Field()
}
