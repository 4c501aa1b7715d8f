package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage vocabulary backups",
	}
	cmd.AddCommand(newBackupCreateCmd(app))
	cmd.AddCommand(newBackupListCmd(app))
	cmd.AddCommand(newBackupRestoreCmd(app))
	return cmd
}

func newBackupCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Snapshot the vocabulary now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Storage.BackupNow()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func newBackupListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Storage.GetRecentBackups(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No backups recorded yet.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Created", "Kind", "Size", "Path"})
			for _, r := range records {
				t.AppendRow(table.Row{r.CreatedAt.Format("2006-01-02 15:04:05"), r.Kind, r.SizeBytes, r.Path})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of entries to show")
	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Replace the vocabulary with a backup",
		Long:  "Copies a backup file over the live vocabulary document. The current document is snapshotted first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Snapshot what is about to be overwritten.
			if _, err := app.Storage.BackupNow(); err != nil {
				return fmt.Errorf("failed to snapshot current vocabulary: %v", err)
			}

			target := app.Storage.Vocabulary.Path()
			if err := app.Storage.Backups.Restore(args[0], target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", filepath.Base(target), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "Restart any running sessions to pick up the restored data.")
			return nil
		},
	}
}
