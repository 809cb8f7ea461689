package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nodelift/internal/config"
	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/pipeline"
)

var (
	categoryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	groupStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	subGroupStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	componentStyle  = lipgloss.NewStyle()
	complexityStyle = lipgloss.NewStyle().Faint(true)
)

type inspectOptions struct {
	DocumentPath string
	Verbose      bool
}

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the component library a document would produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateInputFile(opts.DocumentPath, "config"); err != nil {
				return err
			}

			return runInspect(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the widget document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	result, doc, err := convertDocument(opts.DocumentPath, opts.Verbose)
	if err != nil {
		return err
	}

	styled := isTerminal(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), renderLibrary(doc.Name, result.Library, styled))
	return nil
}

func convertDocument(path string, verbose bool) (*pipeline.Result, *config.Document, error) {
	doc, err := config.ParseDocument(path)
	if err != nil {
		return nil, nil, err
	}

	log := logger.Discard()
	if verbose {
		log, err = logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return nil, nil, err
		}
	}

	result, err := pipeline.NewService(log).Convert(pipeline.Request{
		Root:        doc.Root,
		Definitions: doc.Definitions,
		Theme:       doc.Theme,
		Config:      doc.Mapping.ToConfig(),
	})
	if err != nil {
		return nil, nil, err
	}

	return result, doc, nil
}

func renderLibrary(name string, lib nodespec.LibraryStructure, styled bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — %d component(s)\n", name, lib.ComponentCount())

	for _, category := range lib.Categories {
		fmt.Fprintf(&b, "%s\n", applyStyle(categoryStyle, category.Name, styled))
		for _, group := range category.Groups {
			fmt.Fprintf(&b, "  %s\n", applyStyle(groupStyle, group.Name, styled))
			for _, sub := range group.SubGroups {
				fmt.Fprintf(&b, "    %s\n", applyStyle(subGroupStyle, sub.Name, styled))
				for _, ref := range sub.Components {
					badge := fmt.Sprintf("[%s]", ref.Complexity)
					if ref.VariantCount > 1 {
						badge = fmt.Sprintf("[%s, %d variants]", ref.Complexity, ref.VariantCount)
					}
					fmt.Fprintf(&b, "      %s %s\n",
						applyStyle(componentStyle, ref.Name, styled),
						applyStyle(complexityStyle, badge, styled))
				}
			}
		}
	}

	if len(lib.Pages) > 0 {
		fmt.Fprintln(&b, "Pages:")
		for _, page := range lib.Pages {
			fmt.Fprintf(&b, "  %s (%s)\n", page.Name, strings.Join(page.Categories, ", "))
		}
	}

	return b.String()
}

func applyStyle(style lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
