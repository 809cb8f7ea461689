package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateConvertOptions(opts convertOptions) error {
	if err := validateInputFile(opts.DocumentPath, "config"); err != nil {
		return err
	}
	if opts.ThemePath != "" {
		if err := validateInputFile(opts.ThemePath, "theme"); err != nil {
			return err
		}
	}
	return nil
}

func validateInputFile(path, label string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", label)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", label, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", label, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", label, abs)
	}

	return nil
}
