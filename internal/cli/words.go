package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/vocabulary"
	"github.com/example/engmemory/pkg/models"
)

func newAddCmd(app *App) *cobra.Command {
	var pronunciation, notes string

	cmd := &cobra.Command{
		Use:   "add <word> <translation>",
		Short: "Add a word to the vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Vocab.Add(args[0], args[1], pronunciation, notes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&pronunciation, "pronunciation", "p", "", "pronunciation hint")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "free-form notes")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderVocabulary(cmd, app.Vocab.All())
			return nil
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search words and translations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := app.Vocab.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
				return nil
			}
			renderVocabulary(cmd, matches)
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "Show one word with its practice history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := app.Vocab.Get(args[0])
			if !ok {
				return fmt.Errorf("word not found: %s", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Word:          %s\n", args[0])
			fmt.Fprintf(out, "Translation:   %s\n", entry.Translation)
			if entry.Pronunciation != "" {
				fmt.Fprintf(out, "Pronunciation: %s\n", entry.Pronunciation)
			}
			if entry.Notes != "" {
				fmt.Fprintf(out, "Notes:         %s\n", entry.Notes)
			}

			categories, err := app.Storage.GetWordCategories(vocabulary.Normalize(args[0]))
			if err != nil {
				return err
			}
			if len(categories) > 0 {
				names := make([]string, len(categories))
				for i, c := range categories {
					names[i] = c.Name
				}
				fmt.Fprintf(out, "Categories:    %s\n", strings.Join(names, ", "))
			}

			progress, err := app.Storage.GetWordProgress(args[0])
			if err != nil {
				return err
			}
			if progress == nil {
				fmt.Fprintln(out, "Never practiced.")
				return nil
			}
			fmt.Fprintf(out, "Practiced:     %d times, %d correct (%.0f%%)\n",
				progress.TimesShown, progress.TimesCorrect, progress.SuccessRate()*100)

			attempts, err := app.Storage.GetAttemptHistory(args[0], 5)
			if err != nil {
				return err
			}
			for _, a := range attempts {
				mark := "✗"
				if a.Correct {
					mark = "✓"
				}
				answer := ""
				if a.UserAnswer.Valid {
					answer = a.UserAnswer.String
				}
				fmt.Fprintf(out, "  %s %s  %q\n", a.CreatedAt.Format("2006-01-02 15:04"), mark, answer)
			}
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var newWord, translation, pronunciation, notes string

	cmd := &cobra.Command{
		Use:   "edit <word>",
		Short: "Edit a word, optionally renaming it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := app.Vocab.Get(args[0])
			if !ok {
				return fmt.Errorf("word not found: %s", args[0])
			}

			// Unset flags keep the current value.
			if newWord == "" {
				newWord = args[0]
			}
			if !cmd.Flags().Changed("translation") {
				translation = entry.Translation
			}
			if !cmd.Flags().Changed("pronunciation") {
				pronunciation = entry.Pronunciation
			}
			if !cmd.Flags().Changed("notes") {
				notes = entry.Notes
			}

			if err := app.Vocab.Edit(args[0], newWord, translation, pronunciation, notes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q\n", newWord)
			return nil
		},
	}

	cmd.Flags().StringVarP(&newWord, "word", "w", "", "rename the word")
	cmd.Flags().StringVarP(&translation, "translation", "t", "", "new translation")
	cmd.Flags().StringVarP(&pronunciation, "pronunciation", "p", "", "new pronunciation")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "new notes")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Vocab.Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("word not found: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
			return nil
		},
	}
}

// renderVocabulary prints entries as a table sorted by word.
func renderVocabulary(cmd *cobra.Command, vocab models.Vocabulary) {
	words := make([]string, 0, len(vocab))
	for word := range vocab {
		words = append(words, word)
	}
	sort.Strings(words)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Word", "Translation", "Pronunciation", "Notes"})
	for _, word := range words {
		entry := vocab[word]
		t.AppendRow(table.Row{word, entry.Translation, entry.Pronunciation, entry.Notes})
	}
	t.Render()
}
