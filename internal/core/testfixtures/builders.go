package testfixtures

import (
	"errors"
	"fmt"
	"math/rand"

	"tabsearch.dev/cli/internal/core/panel"
)

// DescriptorBuilder provides a builder pattern for creating test panel descriptors
type DescriptorBuilder struct {
	id       string
	category string
	label    string
	space    panel.SpaceKind
	region   panel.RegionKind
	options  panel.Option
	poll     panel.Predicate
}

// NewDescriptorBuilder creates a new DescriptorBuilder for a viewport sidebar panel
func NewDescriptorBuilder(category string) *DescriptorBuilder {
	return &DescriptorBuilder{
		category: category,
		label:    category,
		space:    panel.SpaceView3D,
		region:   panel.RegionUI,
	}
}

// WithID sets a specific panel ID
func (b *DescriptorBuilder) WithID(id string) *DescriptorBuilder {
	b.id = id
	return b
}

// WithLabel sets the panel label
func (b *DescriptorBuilder) WithLabel(label string) *DescriptorBuilder {
	b.label = label
	return b
}

// WithSpace sets the editor space
func (b *DescriptorBuilder) WithSpace(space panel.SpaceKind) *DescriptorBuilder {
	b.space = space
	return b
}

// WithRegion sets the region
func (b *DescriptorBuilder) WithRegion(region panel.RegionKind) *DescriptorBuilder {
	b.region = region
	return b
}

// WithHiddenHeader sets the HIDE_HEADER option
func (b *DescriptorBuilder) WithHiddenHeader() *DescriptorBuilder {
	b.options |= panel.OptionHideHeader
	return b
}

// WithPoll sets the eligibility predicate
func (b *DescriptorBuilder) WithPoll(poll panel.Predicate) *DescriptorBuilder {
	b.poll = poll
	return b
}

// NeverEligible makes the panel poll false
func (b *DescriptorBuilder) NeverEligible() *DescriptorBuilder {
	return b.WithPoll(panel.PredicateFunc(func(panel.Context) (bool, error) {
		return false, nil
	}))
}

// FailingPoll makes the panel poll return an error
func (b *DescriptorBuilder) FailingPoll() *DescriptorBuilder {
	return b.WithPoll(panel.PredicateFunc(func(panel.Context) (bool, error) {
		return false, errors.New("poll failed")
	}))
}

// PanickingPoll makes the panel poll panic
func (b *DescriptorBuilder) PanickingPoll() *DescriptorBuilder {
	return b.WithPoll(panel.PredicateFunc(func(panel.Context) (bool, error) {
		panic("object has no attribute 'data'")
	}))
}

// InMode restricts the panel to the given host mode
func (b *DescriptorBuilder) InMode(mode string) *DescriptorBuilder {
	return b.WithPoll(panel.PredicateFunc(func(ctx panel.Context) (bool, error) {
		return ctx.Mode == mode, nil
	}))
}

// Build creates the descriptor
func (b *DescriptorBuilder) Build() panel.Descriptor {
	id := b.id
	if id == "" {
		id = fmt.Sprintf("VIEW3D_PT_%s_%d", b.category, rand.Intn(1_000_000))
	}
	return panel.Descriptor{
		ID:       id,
		Category: b.category,
		Label:    b.label,
		Space:    b.space,
		Region:   b.region,
		Options:  b.options,
		Poll:     b.poll,
	}
}

// Panel is shorthand for an always-eligible sidebar panel
func Panel(category, label string) panel.Descriptor {
	return NewDescriptorBuilder(category).WithLabel(label).Build()
}

// StockSidebar returns a small realistic sidebar inventory
func StockSidebar() []panel.Descriptor {
	return []panel.Descriptor{
		Panel("Item", "Transform"),
		Panel("Item", "Properties"),
		Panel("Tool", "Active Tool"),
		Panel("Tool", "Options"),
		Panel("View", "View"),
		Panel("View", "3D Cursor"),
		Panel("View", "Collections"),
		NewDescriptorBuilder("Edit").WithLabel("Auto Mirror").InMode("EDIT_MESH").Build(),
		NewDescriptorBuilder("Sculpt").WithLabel("Feed").InMode("SCULPT").Build(),
		NewDescriptorBuilder(panel.ReservedCategory).WithLabel("Search Tabs").Build(),
		NewDescriptorBuilder("Tool").WithLabel("Workspace").WithHiddenHeader().Build(),
	}
}
