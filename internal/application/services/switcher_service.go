package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/application/ports"
	"tabsearch.dev/cli/internal/core/activation"
	"tabsearch.dev/cli/internal/core/catalog"
	"tabsearch.dev/cli/internal/core/matching"
	"tabsearch.dev/cli/internal/core/panel"
)

const (
	// HintBrowse is shown above the category list when the query is empty
	HintBrowse = "Type to search..."
	// HintNoResults is shown when a non-empty query matched nothing
	HintNoResults = "No results"
)

// ViewMode selects how the popover renders its list
type ViewMode int

const (
	ModeBrowse ViewMode = iota
	ModeResults
	ModeNoResults
)

func (m ViewMode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeResults:
		return "results"
	case ModeNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// ItemKind distinguishes category rows from panel rows
type ItemKind int

const (
	KindCategory ItemKind = iota
	KindPanel
)

// Item is one selectable row of the view
type Item struct {
	Text     string
	Category string
	Kind     ItemKind
}

// View is what the presentation layer renders for one query cycle
type View struct {
	Query     string
	Mode      ViewMode
	Items     []Item
	Truncated bool
	Hint      string
}

// NoticeLevel is the severity of a user-facing notice
type NoticeLevel int

const (
	LevelNone NoticeLevel = iota
	LevelInfo
	LevelWarning
)

// Notice is the non-blocking message shown after a selection
type Notice struct {
	Level   NoticeLevel
	Message string
}

// OK reports whether the selection succeeded
func (n Notice) OK() bool {
	return n.Level == LevelNone
}

// SwitcherService runs the catalog, search and selection pipeline
type SwitcherService struct {
	registry  panel.Registry
	context   ports.ContextSource
	activator activation.Activator
	builder   *catalog.Builder
	logger    *zap.Logger
}

// NewSwitcherService creates a new switcher service
func NewSwitcherService(registry panel.Registry, contextSource ports.ContextSource, activator activation.Activator, logger *zap.Logger) *SwitcherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwitcherService{
		registry:  registry,
		context:   contextSource,
		activator: activator,
		builder:   catalog.NewBuilder(logger.Named("catalog")),
		logger:    logger,
	}
}

// Catalog rebuilds the catalog from the current registry snapshot
func (s *SwitcherService) Catalog() []catalog.Entry {
	return s.builder.Build(s.registry.Descriptors(), s.context.Current())
}

// View runs one full query cycle. Nothing is cached between calls.
func (s *SwitcherService) View(query string) View {
	result := matching.Search(s.Catalog(), query)
	return newView(result)
}

// Select activates the category of a chosen row. Failures are turned into
// notices; the caller stays usable whatever happens.
func (s *SwitcherService) Select(ctx context.Context, category string) Notice {
	err := s.activator.Activate(ctx, category)
	if err == nil {
		s.logger.Info("Switched sidebar tab", zap.String("category", category))
		return Notice{Level: LevelNone, Message: fmt.Sprintf("Switched to '%s'", category)}
	}

	var actErr *activation.Error
	if errors.As(err, &actErr) {
		level := LevelWarning
		if actErr.Severity() == activation.SeverityInfo {
			level = LevelInfo
		}
		s.logger.Info("Sidebar tab switch failed",
			zap.String("category", category),
			zap.String("reason", string(actErr.Reason)),
			zap.Error(err))
		return Notice{Level: level, Message: actErr.Error()}
	}

	s.logger.Warn("Sidebar tab switch failed", zap.String("category", category), zap.Error(err))
	return Notice{Level: LevelWarning, Message: fmt.Sprintf("Warning: %v", err)}
}

func newView(result matching.Result) View {
	view := View{
		Query:     result.Query,
		Items:     make([]Item, 0, len(result.Entries)),
		Truncated: result.Truncated,
	}

	switch {
	case result.Browsing():
		view.Mode = ModeBrowse
		view.Hint = HintBrowse
	case result.Empty():
		view.Mode = ModeNoResults
		view.Hint = HintNoResults
	default:
		view.Mode = ModeResults
	}

	for _, e := range result.Entries {
		kind := KindPanel
		if e.IsPrimary {
			kind = KindCategory
		}
		view.Items = append(view.Items, Item{Text: e.DisplayText, Category: e.Category, Kind: kind})
	}

	return view
}
