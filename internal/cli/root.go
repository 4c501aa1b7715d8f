// Package cli defines the command tree. Every command runs against the
// storage layer opened once per invocation by the root command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/config"
	"github.com/example/engmemory/internal/export"
	"github.com/example/engmemory/internal/storage"
	"github.com/example/engmemory/internal/vocabulary"
)

// App holds the dependencies shared by all commands. It is populated by
// the root command's PersistentPreRunE before any subcommand runs.
type App struct {
	Config  config.Config
	Storage *storage.Hybrid
	Vocab   *vocabulary.Controller
	Exports *export.Registry
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "engmemory",
		Short:         "English vocabulary trainer",
		Long:          "engmemory manages a personal English-Spanish vocabulary and tracks practice results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.Config = config.Load()
			h, err := storage.Open(app.Config)
			if err != nil {
				return err
			}
			app.Storage = h
			app.Vocab = vocabulary.NewController(h.Vocabulary)
			app.Exports = export.NewRegistry()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.Storage == nil {
				return nil
			}
			return app.Storage.Close()
		},
	}

	root.AddCommand(newAddCmd(app))
	root.AddCommand(newListCmd(app))
	root.AddCommand(newSearchCmd(app))
	root.AddCommand(newShowCmd(app))
	root.AddCommand(newEditCmd(app))
	root.AddCommand(newRemoveCmd(app))
	root.AddCommand(newPracticeCmd(app))
	root.AddCommand(newStatsCmd(app))
	root.AddCommand(newDifficultCmd(app))
	root.AddCommand(newCategoryCmd(app))
	root.AddCommand(newBackupCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newImportCmd(app))
	root.AddCommand(newTranslateCmd(app))
	root.AddCommand(newDefineCmd(app))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
