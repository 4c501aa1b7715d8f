package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/excel"
)

func newExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the vocabulary to CSV or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := format
			if name == "" {
				name = strings.TrimPrefix(strings.ToLower(filepath.Ext(args[0])), ".")
			}

			exporter, err := app.Exports.Get(name)
			if err != nil {
				return fmt.Errorf("%v (known formats: %s)", err, strings.Join(app.Exports.Formats(), ", "))
			}

			vocab := app.Vocab.All()
			if err := exporter.Export(vocab, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(vocab), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "export format, inferred from the file extension when empty")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a CSV or XLSX file",
		Long:  "Reads words from the given file and merges them into the vocabulary. Existing words are overwritten.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := excel.Import(app.Storage.Vocabulary, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words (%d rows skipped)\n", result.Imported, result.Skipped)
			return nil
		},
	}
}
