package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSwitchCommand creates the switch command
func NewSwitchCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <category>",
		Short: "Switch the sidebar to a tab",
		Long: `Reveal the viewport sidebar and make <category> its active tab.

A tab that is hidden or empty in the current context is reported but does not
fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container.Container
			notice := c.Switcher.Select(cmd.Context(), args[0])

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, renderNotice(notice)); err != nil {
				return err
			}
			if region, ok := c.Host.Region(); ok && notice.OK() {
				_, err := fmt.Fprintf(out, "Active tab: %s\n", region.ActiveCategory())
				return err
			}
			return nil
		},
	}
}
