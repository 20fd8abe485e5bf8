package ports

import (
	"tabsearch.dev/cli/internal/core/panel"
)

// ContextSource supplies the host context panels are polled against
type ContextSource interface {
	Current() panel.Context
}

// StaticContext is a ContextSource returning a fixed context
type StaticContext panel.Context

// Current returns the fixed context
func (c StaticContext) Current() panel.Context {
	return panel.Context(c)
}

// ContextSourceFunc adapts a function to the ContextSource interface
type ContextSourceFunc func() panel.Context

// Current calls f()
func (f ContextSourceFunc) Current() panel.Context {
	return f()
}
