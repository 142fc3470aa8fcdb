package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryMaxFlag int

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"game"},
	Short:   "Look up categories",
}

var categorySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search categories by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategorySearch,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categorySearchCmd)

	categorySearchCmd.Flags().IntVarP(&categoryMaxFlag, "max", "n", 10, "Maximum number of results (1-100)")
}

func runCategorySearch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	categories, err := s.client.SearchCategories(cmd.Context(), args[0], categoryMaxFlag)
	if err != nil {
		return fmt.Errorf("failed to search categories: %w", err)
	}
	return s.renderer.RenderCategories(s.out, categories)
}
