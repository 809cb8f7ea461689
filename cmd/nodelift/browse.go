package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nodelift/internal/tui"
)

type browseOptions struct {
	DocumentPath string
	Verbose      bool
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the generated component library interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateInputFile(opts.DocumentPath, "config"); err != nil {
				return err
			}

			return runBrowse(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.DocumentPath, "config", "c", "", "Path to the widget document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runBrowse(opts browseOptions) error {
	result, doc, err := convertDocument(opts.DocumentPath, opts.Verbose)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(doc.Name, result.Library), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
