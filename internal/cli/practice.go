package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/practice"
	"github.com/example/engmemory/internal/scheduler"
	"github.com/example/engmemory/internal/speech"
	"github.com/example/engmemory/pkg/models"
)

func newPracticeCmd(app *App) *cobra.Command {
	var mode string
	var count int
	var speak bool

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive quiz session",
		Long:  "Poses random questions from the vocabulary. Type an answer, or 'q' to stop early.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The last explicitly chosen mode becomes the default for the
			// next session.
			if !cmd.Flags().Changed("mode") {
				if saved, err := app.Storage.GetSetting("practice_mode", mode); err == nil {
					mode = saved
				}
			}

			session := practice.NewController(app.Storage)
			switch mode {
			case "en-es":
				session.SetMode(models.EnglishToSpanish)
			case "es-en":
				session.SetMode(models.SpanishToEnglish)
			default:
				return fmt.Errorf("unknown mode %q, want en-es or es-en", mode)
			}
			if err := app.Storage.SetSetting("practice_mode", mode); err != nil {
				return err
			}

			// Long-running session, so the periodic backup job runs too.
			backups := scheduler.New(app.Storage, app.Config.BackupInterval)
			backups.Start()
			defer backups.Stop()

			var engine speech.Engine
			if speak {
				engine = speech.NewEngine()
				if !engine.Available() {
					fmt.Fprintln(cmd.OutOrStdout(), "No text-to-speech command found, continuing silently.")
					engine = nil
				}
			}

			return runSession(cmd, session, engine, count)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "en-es", "question direction: en-es or es-en")
	cmd.Flags().IntVarP(&count, "count", "c", 10, "number of questions")
	cmd.Flags().BoolVar(&speak, "speak", false, "pronounce the English word for each question")
	return cmd
}

func runSession(cmd *cobra.Command, session *practice.Controller, engine speech.Engine, count int) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	correct := 0
	asked := 0
	for i := 0; i < count; i++ {
		q, err := session.NextQuestion()
		if err != nil {
			if errors.Is(err, practice.ErrEmptyVocabulary) {
				fmt.Fprintln(out, "The vocabulary is empty. Add some words first.")
				return nil
			}
			return err
		}

		fmt.Fprintf(out, "\n[%d/%d] Translate: %s\n", i+1, count, q.Prompt)
		if q.Pronunciation != "" && q.Mode == models.EnglishToSpanish {
			fmt.Fprintf(out, "        (%s)\n", q.Pronunciation)
		}
		if engine != nil {
			engine.Pronounce(q.Word)
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "q" || answer == "quit" {
			break
		}

		result, err := session.SubmitAnswer(answer)
		if err != nil {
			return err
		}
		asked++
		if result.Correct {
			correct++
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. The answer is %q.\n", result.Expected)
		}
		if q.Notes != "" {
			fmt.Fprintf(out, "Note: %s\n", q.Notes)
		}
	}

	if asked > 0 {
		fmt.Fprintf(out, "\nSession over: %d/%d correct.\n", correct, asked)
	}
	return scanner.Err()
}

func newDifficultCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "difficult",
		Short: "Show the hardest words by success rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := app.Storage.GetDifficultWords(limit)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Not enough practice data yet.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Word", "Shown", "Correct", "Success"})
			for _, w := range words {
				t.AppendRow(table.Row{w.Word, w.TimesShown, w.TimesCorrect, fmt.Sprintf("%.0f%%", w.SuccessRate*100)})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of words to show")
	return cmd
}
