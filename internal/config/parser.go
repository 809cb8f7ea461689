package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	nodelifterrors "github.com/alexisbeaulieu97/nodelift/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a conversion document from disk, validates it, and
// returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nodelifterrors.NewParseError(path, 0, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nodelifterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ParseTheme loads a standalone theme file. Used when the document does not
// inline its theme.
func ParseTheme(path string) (*theme.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nodelifterrors.NewParseError(path, 0, err)
	}

	var model theme.Model
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, nodelifterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTheme(&model); err != nil {
		return nil, err
	}

	return &model, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
