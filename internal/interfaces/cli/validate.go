package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabsearch.dev/cli/internal/core/catalog"
	"tabsearch.dev/cli/internal/core/panel"
	"tabsearch.dev/cli/internal/infrastructure/inventory"
	"tabsearch.dev/cli/internal/interfaces/di"
)

// NewValidateCommand creates the validate command
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and panel inventory",
		Long: `Validate the tabsearch configuration and the panel inventory.

This command will:
- Check configuration file validity
- Parse the inventory and report validation errors
- Summarize the catalog for the configured context`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container)
		},
	}
}

// runValidate handles the validation process
func runValidate(cmd *cobra.Command, container *CLIContainer) error {
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "Checking configuration... ")
	cfg, err := di.LoadConfig(container.Options)
	if err != nil {
		fmt.Fprintln(out, "failed")
		return err
	}
	fmt.Fprintln(out, "ok")

	source := "built-in"
	descriptors := inventory.Default()
	if cfg.Inventory.Path != "" {
		source = cfg.Inventory.Path
		fmt.Fprintf(out, "Checking inventory %s... ", source)
		descriptors, err = inventory.LoadFile(source)
		if err != nil {
			fmt.Fprintln(out, "failed")
			return err
		}
		fmt.Fprintln(out, "ok")
	}

	ctx := panel.Context{
		Mode:       cfg.Context.Mode,
		ObjectType: cfg.Context.ObjectType,
		Addons:     cfg.Context.Addons,
	}
	entries := catalog.Build(descriptors, ctx)

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Inventory Summary:")
	fmt.Fprintln(out, "──────────────────")
	fmt.Fprintf(out, "Source: %s\n", source)
	fmt.Fprintf(out, "Panels: %d\n", len(descriptors))
	fmt.Fprintf(out, "Context: mode=%s object=%s addons=%v\n", ctx.Mode, ctx.ObjectType, ctx.Addons)
	fmt.Fprintf(out, "Tabs: %d\n", len(catalog.Primaries(entries)))
	fmt.Fprintf(out, "Catalog entries: %d\n", len(entries))

	return nil
}
