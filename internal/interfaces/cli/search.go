package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command
func NewSearchCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search sidebar tabs and panels",
		Long: `Search the viewport sidebar catalog with a case-insensitive substring query.

Without a query the tab list is shown. Arguments are joined with single spaces
and are not trimmed. At most 20 results are listed.

Examples:
  tabsearch search ed
  tabsearch search "3d cursor"
  tabsearch --mode SCULPT search dyn`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := container.Container.Switcher.View(strings.Join(args, " "))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderView(view, -1))
			return err
		},
	}
}

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List sidebar tabs available in the current context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := container.Container.Switcher.View("")
			if len(view.Items) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), hintStyle.Render("No tabs in the current context"))
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range view.Items {
				if _, err := fmt.Fprintln(out, item.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
