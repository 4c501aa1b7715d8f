package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show vocabulary and practice statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			vocab := app.Vocab.GetStatistics()
			fmt.Fprintf(out, "Words: %d total, %d with pronunciation, %d with notes\n",
				vocab.Total, vocab.WithPronunciation, vocab.WithNotes)

			streak, err := app.Storage.GetStudyStreak()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Active days in the last 30: %d\n", streak)

			stats, err := app.Storage.GetPeriodStats(days)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				fmt.Fprintf(out, "No practice in the last %d days.\n", days)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Date", "Attempts", "Correct", "Accuracy"})
			for _, day := range stats {
				accuracy := 0.0
				if day.TotalAttempts > 0 {
					accuracy = float64(day.CorrectAttempts) / float64(day.TotalAttempts) * 100
				}
				t.AppendRow(table.Row{day.Date, day.TotalAttempts, day.CorrectAttempts, fmt.Sprintf("%.0f%%", accuracy)})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "period length in days")
	return cmd
}
