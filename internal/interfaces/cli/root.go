package cli

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"tabsearch.dev/cli/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

const (
	// annotationStandalone marks commands that do not need the container
	annotationStandalone = "standalone"
	// annotationInteractive marks commands that own the terminal
	annotationInteractive = "interactive"
)

// CLIContainer holds all the dependencies for CLI commands. The container is
// built once flags are parsed.
type CLIContainer struct {
	Options   di.Options
	Container *di.Container

	// NewContainer builds the container; tests replace it
	NewContainer func(ctx context.Context, opts di.Options) (*di.Container, error)
}

// NewCLIContainer creates a CLIContainer backed by di.NewContainer
func NewCLIContainer() *CLIContainer {
	return &CLIContainer{NewContainer: di.NewContainer}
}

// NewRootCommand creates the tabsearch root command
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabsearch",
		Short: "Search and switch 3D viewport sidebar tabs",
		Long: `tabsearch lists the tabs of the 3D viewport sidebar and the panels inside
them, filters them with a typed query and switches the sidebar to the chosen tab.

The panel inventory is read from a YAML file (or the built-in stock inventory)
and evaluated against the current editor context.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := collectOptions(cmd, container); err != nil {
				return err
			}
			if cmd.Annotations[annotationStandalone] == "true" {
				return nil
			}

			c, err := container.NewContainer(cmd.Context(), container.Options)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			container.Container = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if container.Container == nil {
				return nil
			}
			return container.Container.Shutdown()
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file path (default is $XDG_CONFIG_HOME/tabsearch/config.toml)")
	flags.String("inventory", "", "Panel inventory YAML file (default is the built-in stock inventory)")
	flags.String("mode", "", "Editor mode, e.g. OBJECT, EDIT_MESH, SCULPT")
	flags.String("object-type", "", "Active object type, e.g. MESH, ARMATURE")
	flags.StringSlice("addon", nil, "Enabled add-on module (repeatable)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewSearchCommand(container))
	rootCmd.AddCommand(NewCategoriesCommand(container))
	rootCmd.AddCommand(NewSwitchCommand(container))
	rootCmd.AddCommand(NewPopoverCommand(container))
	rootCmd.AddCommand(NewValidateCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// collectOptions copies persistent flags into the container options
func collectOptions(cmd *cobra.Command, container *CLIContainer) error {
	flags := cmd.Flags()
	opts := &container.Options

	var err error
	if opts.ConfigPath, err = flags.GetString("config"); err != nil {
		return err
	}
	if opts.Inventory, err = flags.GetString("inventory"); err != nil {
		return err
	}
	if opts.Mode, err = flags.GetString("mode"); err != nil {
		return err
	}
	if opts.ObjectType, err = flags.GetString("object-type"); err != nil {
		return err
	}
	if opts.Debug, err = flags.GetBool("debug"); err != nil {
		return err
	}
	if opts.LogLevel, err = flags.GetString("log-level"); err != nil {
		return err
	}

	// Only apply the add-on list if the flag was explicitly set
	if flags.Changed("addon") {
		if opts.Addons, err = flags.GetStringSlice("addon"); err != nil {
			return err
		}
		opts.AddonsSet = true
	}

	// Local to the popover command
	if flags.Lookup("watch") != nil {
		if opts.Watch, err = flags.GetBool("watch"); err != nil {
			return err
		}
	}
	opts.Interactive = cmd.Annotations[annotationInteractive] == "true"

	return nil
}

// Execute runs the root command with ctx
func Execute(ctx context.Context, container *CLIContainer) error {
	return NewRootCommand(container).ExecuteContext(ctx)
}
