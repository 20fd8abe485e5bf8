package sidebar

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/core/activation"
	"tabsearch.dev/cli/internal/core/catalog"
	"tabsearch.dev/cli/internal/core/panel"
)

// DefaultRetries is how many extra assignments are attempted when the
// first one does not stick
const DefaultRetries = 1

// ControllerConfig configures a Controller
type ControllerConfig struct {
	Host     Host
	Registry panel.Registry
	Context  func() panel.Context
	Retries  int
	Logger   *zap.Logger
}

// Controller switches the sidebar's active tab on the host
type Controller struct {
	host     Host
	registry panel.Registry
	context  func() panel.Context
	retries  int
	builder  *catalog.Builder
	logger   *zap.Logger
}

// NewController creates a Controller. A negative Retries is treated as zero.
func NewController(cfg ControllerConfig) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	return &Controller{
		host:     cfg.Host,
		registry: cfg.Registry,
		context:  cfg.Context,
		retries:  retries,
		builder:  catalog.NewBuilder(logger),
		logger:   logger,
	}
}

// Activate reveals the sidebar and makes category its active tab
func (c *Controller) Activate(ctx context.Context, category string) error {
	if err := ctx.Err(); err != nil {
		return activation.NewError(category, activation.ReasonRejected, err)
	}

	if !c.host.SidebarVisible() {
		c.logger.Debug("Revealing hidden sidebar")
		c.host.ShowSidebar()
	}

	region, ok := c.host.Region()
	if !ok {
		return activation.NewError(category, activation.ReasonSidebarNotFound, nil)
	}

	available := c.builder.AvailableCategories(c.registry.Descriptors(), c.context())
	if !contains(available, category) {
		return activation.NewError(category, activation.ReasonCategoryHidden, nil)
	}

	if err := region.SetActiveCategory(category); err != nil {
		if strings.Contains(err.Error(), "not found in") {
			return activation.NewError(category, activation.ReasonCategoryEmpty, err)
		}
		return activation.NewError(category, activation.ReasonRejected, err)
	}

	for attempt := 1; attempt <= c.retries && region.ActiveCategory() != category; attempt++ {
		c.logger.Debug("Active tab did not stick, retrying",
			zap.String("category", category),
			zap.Int("attempt", attempt))
		if err := region.SetActiveCategory(category); err != nil {
			c.logger.Debug("Retry failed", zap.String("category", category), zap.Error(err))
		}
	}

	region.TagRedraw()

	if err := region.ScrollToTop(); err != nil {
		c.logger.Debug("Scroll to top failed", zap.Error(err))
	}

	if region.ActiveCategory() != category {
		c.logger.Warn("Active tab still differs after retries",
			zap.String("category", category),
			zap.String("active", region.ActiveCategory()))
	}

	return nil
}

var _ activation.Activator = (*Controller)(nil)
