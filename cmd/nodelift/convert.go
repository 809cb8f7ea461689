package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nodelift/internal/config"
	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/pipeline"
)

type convertOptions struct {
	DocumentPath     string
	ThemePath        string
	OutputPath       string
	Verbose          bool
	NoVariables      bool
	NoFallback       bool
	CollectionPrefix string
	MultiMode        bool
	JSONStats        bool
}

var convertCmdRunner = runConvert

func newConvertCmd(root *rootFlags) *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a widget document into a node graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConvertOptions(opts); err != nil {
				return err
			}

			return convertCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the widget document")
	cmd.Flags().StringVarP(&opts.ThemePath, "theme", "t", "", "Path to a standalone theme file (overrides the inline theme)")
	cmd.Flags().StringVarP(&opts.OutputPath, "out", "o", "", "Write the node graph to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.NoVariables, "no-variables", false, "Emit direct style values without variable bindings")
	cmd.Flags().BoolVar(&opts.NoFallback, "no-fallback", false, "Treat unresolved theme references as errors")
	cmd.Flags().StringVar(&opts.CollectionPrefix, "collection-prefix", "", "Prefix for generated variable collections")
	cmd.Flags().BoolVar(&opts.MultiMode, "multi-mode", false, "Emit light and dark modes for color variables")
	cmd.Flags().BoolVar(&opts.JSONStats, "json-stats", false, "Print the conversion statistics as JSON")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runConvert(cmd *cobra.Command, opts convertOptions) error {
	doc, err := config.ParseDocument(opts.DocumentPath)
	if err != nil {
		return err
	}

	themeModel := doc.Theme
	if opts.ThemePath != "" {
		themeModel, err = config.ParseTheme(opts.ThemePath)
		if err != nil {
			return err
		}
	}

	cfg := doc.Mapping.ToConfig()
	if opts.NoVariables {
		cfg.UseVariables = false
	}
	if opts.NoFallback {
		cfg.FallbackToDirectValues = false
	}
	if opts.CollectionPrefix != "" {
		cfg.CollectionPrefix = opts.CollectionPrefix
	}
	if opts.MultiMode {
		cfg.PreferMultiMode = true
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	svc := pipeline.NewService(log)
	result, err := svc.Convert(pipeline.Request{
		Root:        doc.Root,
		Definitions: doc.Definitions,
		Theme:       themeModel,
		Config:      cfg,
	})
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	payload = append(payload, '\n')

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		if _, err := cmd.OutOrStdout().Write(payload); err != nil {
			return err
		}
	}

	if opts.JSONStats {
		return renderStatsJSON(cmd, result)
	}

	renderConvertSummary(cmd, doc.Name, result)
	return nil
}

func renderStatsJSON(cmd *cobra.Command, result *pipeline.Result) error {
	encoder := json.NewEncoder(cmd.ErrOrStderr())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Stats)
}

func renderConvertSummary(cmd *cobra.Command, name string, result *pipeline.Result) {
	out := cmd.ErrOrStderr()

	fmt.Fprintf(out, "Converted %q: %d node(s), %d component(s), %d variant(s), %d variable binding(s)\n",
		name, result.Stats.Nodes, result.Stats.Components, result.Stats.Variants, result.Stats.Bindings)

	for _, warning := range result.Stats.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	for _, msg := range result.Stats.Errors {
		fmt.Fprintf(out, "error: %s\n", msg)
	}
}
