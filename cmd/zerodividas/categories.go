package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List, add, update, and delete the categories transactions are grouped by.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			categories := s.Categories()
			fmt.Println(cli.TitleStyle.Render("Categorias"))
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  (vazio)"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tTIPO")
			for _, cat := range categories {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("■")
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", cat.ID, swatch, cat.Name, cat.Type)
			}
			_ = w.Flush()
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var name, color, typeFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			cat := model.Category{
				ID:    uuid.NewString(),
				Name:  name,
				Color: color,
				Type:  model.CategoryType(typeFlag),
			}
			s.AddCategory(cat)

			fmt.Println(cli.Success(fmt.Sprintf("Categoria %s adicionada.", cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name")
	cmd.Flags().StringVar(&color, "color", "#39D2C0", "display color")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(model.CategoryTypeExpense), "income or expense")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var name, color, typeFlag string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			var patch store.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("type") {
				typ := model.CategoryType(typeFlag)
				patch.Type = &typ
			}

			s.UpdateCategory(args[0], patch)
			fmt.Println(cli.Success("Categoria atualizada."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "income or expense")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Transactions keep their category id; the interface
shows them under the fallback "Outros" label from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			s.DeleteCategory(args[0])
			fmt.Println(cli.Success("Categoria removida."))
			return nil
		},
	}
}
