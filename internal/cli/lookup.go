package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/dictionary"
	"github.com/example/engmemory/internal/translator"
)

func newTranslateCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "translate <text>...",
		Short: "Translate text through the online translation service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			translated, err := translator.New().Translate(text, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), translated)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "en", "source language code")
	cmd.Flags().StringVar(&to, "to", "es", "target language code")
	return cmd
}

func newDefineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "define <word>",
		Short: "Look up an English word in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := dictionary.New().Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s", entry.Word)
			if entry.Phonetic != "" {
				fmt.Fprintf(out, "  %s", entry.Phonetic)
			}
			fmt.Fprintln(out)

			for _, meaning := range entry.Meanings {
				fmt.Fprintf(out, "\n%s:\n", meaning.PartOfSpeech)
				for i, def := range meaning.Definitions {
					fmt.Fprintf(out, "  %d. %s\n", i+1, def.Definition)
					if def.Example != "" {
						fmt.Fprintf(out, "     e.g. %s\n", def.Example)
					}
				}
			}

			if synonyms := entry.Synonyms(); len(synonyms) > 0 {
				if len(synonyms) > 8 {
					synonyms = synonyms[:8]
				}
				fmt.Fprintf(out, "\nSynonyms: %s\n", strings.Join(synonyms, ", "))
			}
			return nil
		},
	}
}
