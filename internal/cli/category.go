package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/example/engmemory/internal/vocabulary"
	"github.com/example/engmemory/pkg/models"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Group words into categories",
	}
	cmd.AddCommand(newCategoryCreateCmd(app))
	cmd.AddCommand(newCategoryListCmd(app))
	cmd.AddCommand(newCategoryAssignCmd(app))
	return cmd
}

func newCategoryCreateCmd(app *App) *cobra.Command {
	var description, color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := &models.Category{
				Name:        strings.TrimSpace(args[0]),
				Description: description,
				Color:       color,
			}
			if category.Name == "" {
				return fmt.Errorf("category name cannot be empty")
			}
			if err := app.Storage.CreateCategory(category); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %q (#%d)\n", category.Name, category.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Storage.GetCategories()
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories yet.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Description"})
			for _, c := range categories {
				t.AppendRow(table.Row{c.ID, c.Name, c.Description})
			}
			t.Render()
			return nil
		},
	}
}

func newCategoryAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <word> <category-name>",
		Short: "Assign a word to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := vocabulary.Normalize(args[0])
			if _, ok := app.Vocab.Get(word); !ok {
				return fmt.Errorf("word not found: %s", word)
			}

			categories, err := app.Storage.GetCategories()
			if err != nil {
				return err
			}
			var target *models.Category
			for i := range categories {
				if strings.EqualFold(categories[i].Name, args[1]) {
					target = &categories[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("category not found: %s", args[1])
			}

			if err := app.Storage.AssignCategory(word, target.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %q to %q\n", word, target.Name)
			return nil
		},
	}
}
