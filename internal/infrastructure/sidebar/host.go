// Package sidebar drives the host's viewport sidebar when a tab is chosen.
package sidebar

import (
	"fmt"
	"sync"

	"tabsearch.dev/cli/internal/core/catalog"
	"tabsearch.dev/cli/internal/core/panel"
)

// Host is the part of the host application the controller mutates
type Host interface {
	// ShowSidebar makes the viewport sidebar visible
	ShowSidebar()
	SidebarVisible() bool
	// Region returns the sidebar region of the active area
	Region() (Region, bool)
}

// Region is the sidebar region whose active tab can be switched
type Region interface {
	SetActiveCategory(category string) error
	ActiveCategory() string
	TagRedraw()
	ScrollToTop() error
}

// MemoryHost is an in-memory Host whose region accepts the categories that
// currently have visible panels
type MemoryHost struct {
	mu      sync.Mutex
	visible bool
	region  *MemoryRegion
}

// NewMemoryHost creates a host with a sidebar region. The region's tabs are
// computed from registry and context on every assignment.
func NewMemoryHost(registry panel.Registry, context func() panel.Context, visible bool) *MemoryHost {
	return &MemoryHost{
		visible: visible,
		region: &MemoryRegion{
			registry: registry,
			context:  context,
		},
	}
}

// NewMemoryHostWithoutRegion creates a host that has no sidebar region
func NewMemoryHostWithoutRegion() *MemoryHost {
	return &MemoryHost{}
}

func (h *MemoryHost) ShowSidebar() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = true
}

func (h *MemoryHost) SidebarVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

func (h *MemoryHost) Region() (Region, bool) {
	if h.region == nil {
		return nil, false
	}
	return h.region, true
}

// MemoryRegion is the sidebar region of a MemoryHost
type MemoryRegion struct {
	registry panel.Registry
	context  func() panel.Context

	mu      sync.Mutex
	active  string
	scroll  int
	redraws int
	// ignoreNext drops this many assignments without error, which is how
	// the host behaves the first time the sidebar opens
	ignoreNext int
	scrollErr  error
}

// IgnoreAssignments makes the next n assignments silently not stick
func (r *MemoryRegion) IgnoreAssignments(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ignoreNext = n
}

// FailScroll makes ScrollToTop return err
func (r *MemoryRegion) FailScroll(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scrollErr = err
}

// SetScroll sets the scroll offset
func (r *MemoryRegion) SetScroll(offset int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scroll = offset
}

// Scroll returns the scroll offset
func (r *MemoryRegion) Scroll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scroll
}

// Redraws returns how many redraws were requested
func (r *MemoryRegion) Redraws() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redraws
}

// Tabs returns the categories the region currently shows
func (r *MemoryRegion) Tabs() []string {
	return catalog.AvailableCategories(r.registry.Descriptors(), r.context())
}

// SetActiveCategory assigns the active tab. Categories without visible
// panels are rejected the way the host rejects unknown enum items.
func (r *MemoryRegion) SetActiveCategory(category string) error {
	tabs := r.Tabs()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !contains(tabs, category) {
		return fmt.Errorf("bpy_struct: item.attr = val: enum %q not found in %q", category, tabs)
	}
	if r.ignoreNext > 0 {
		r.ignoreNext--
		return nil
	}
	r.active = category
	return nil
}

func (r *MemoryRegion) ActiveCategory() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *MemoryRegion) TagRedraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraws++
}

func (r *MemoryRegion) ScrollToTop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scrollErr != nil {
		return r.scrollErr
	}
	r.scroll = 0
	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
