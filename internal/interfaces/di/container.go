package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/application/ports"
	"tabsearch.dev/cli/internal/application/services"
	"tabsearch.dev/cli/internal/core/panel"
	"tabsearch.dev/cli/internal/infrastructure/config"
	"tabsearch.dev/cli/internal/infrastructure/inventory"
	"tabsearch.dev/cli/internal/infrastructure/logging"
	"tabsearch.dev/cli/internal/infrastructure/sidebar"
)

// Options carries command-line overrides applied on top of the config file
// and environment
type Options struct {
	ConfigPath string
	Inventory  string
	Mode       string
	ObjectType string
	Addons     []string
	// AddonsSet distinguishes an explicit empty --addon list from no flag
	AddonsSet bool
	LogLevel  string
	Debug     bool
	// Interactive keeps log output off the terminal
	Interactive bool
	// Watch forces inventory watching on
	Watch bool
}

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Context ports.ContextSource

	Registry     panel.Registry
	FileRegistry *inventory.FileRegistry
	Watcher      *inventory.Watcher

	Host       *sidebar.MemoryHost
	Controller *sidebar.Controller
	Switcher   *services.SwitcherService
}

// NewContainer creates and configures the dependency injection container
func NewContainer(ctx context.Context, opts Options) (*Container, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Debug:   opts.Debug,
		Discard: opts.Interactive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		Context: ports.StaticContext(panel.Context{
			Mode:       cfg.Context.Mode,
			ObjectType: cfg.Context.ObjectType,
			Addons:     cfg.Context.Addons,
		}),
	}

	if err := c.initializeComponents(ctx); err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return c, nil
}

// initializeComponents wires registry, host, controller and service
func (c *Container) initializeComponents(ctx context.Context) error {
	// 1. Panel registry
	if c.Config.Inventory.Path == "" {
		c.Registry = panel.StaticRegistry(inventory.Default())
		c.Logger.Debug("Using built-in inventory")
	} else {
		reg, err := inventory.NewFileRegistry(c.Config.Inventory.Path, c.Logger.Named("inventory"))
		if err != nil {
			return err
		}
		c.FileRegistry = reg
		c.Registry = reg
	}

	// 2. Optional live reload
	if c.Config.Inventory.Watch && c.FileRegistry != nil {
		w, err := inventory.NewWatcher(c.FileRegistry, inventory.DefaultDebounce, c.Logger.Named("watcher"))
		if err != nil {
			return fmt.Errorf("failed to create inventory watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			_ = w.Close()
			return fmt.Errorf("failed to watch inventory: %w", err)
		}
		c.Watcher = w
	}

	// 3. Host sidebar and activation
	c.Host = sidebar.NewMemoryHost(c.Registry, c.Context.Current, !c.Config.Sidebar.StartHidden)
	c.Controller = sidebar.NewController(sidebar.ControllerConfig{
		Host:     c.Host,
		Registry: c.Registry,
		Context:  c.Context.Current,
		Retries:  c.Config.Sidebar.Retries,
		Logger:   c.Logger.Named("sidebar"),
	})

	// 4. Application service
	c.Switcher = services.NewSwitcherService(c.Registry, c.Context, c.Controller, c.Logger)

	c.Logger.Debug("Container initialized",
		zap.String("mode", c.Config.Context.Mode),
		zap.String("object_type", c.Config.Context.ObjectType),
		zap.Int("panels", len(c.Registry.Descriptors())))
	return nil
}

// Reloads returns the inventory reload signal, or nil when not watching
func (c *Container) Reloads() <-chan struct{} {
	if c.Watcher == nil {
		return nil
	}
	return c.Watcher.Events()
}

// Shutdown stops the watcher and flushes the logger
func (c *Container) Shutdown() error {
	var err error
	if c.Watcher != nil {
		if closeErr := c.Watcher.Close(); closeErr != nil {
			err = fmt.Errorf("failed to stop inventory watcher: %w", closeErr)
		}
	}
	_ = c.Logger.Sync()
	return err
}

// LoadConfig resolves the configuration from file, environment and flags
func LoadConfig(opts Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.NewEnvLoader().Apply(cfg); err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyOverrides applies command-line flags, which take precedence over the
// environment and the config file
func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Inventory != "" {
		cfg.Inventory.Path = opts.Inventory
	}
	if opts.Mode != "" {
		cfg.Context.Mode = opts.Mode
	}
	if opts.ObjectType != "" {
		cfg.Context.ObjectType = opts.ObjectType
	}
	if opts.AddonsSet {
		cfg.Context.Addons = opts.Addons
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Watch {
		cfg.Inventory.Watch = true
	}
}
