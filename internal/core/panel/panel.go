package panel

import (
	"fmt"
	"strings"
)

// ReservedCategory is the sidebar tab owned by the search tool itself.
// The leading space keeps it sorted first in the host's tab strip.
const ReservedCategory = " Search"

// SpaceKind identifies the editor a panel is registered for
type SpaceKind string

const (
	SpaceView3D           SpaceKind = "VIEW_3D"
	SpacePropertiesEditor SpaceKind = "PROPERTIES"
	SpaceNodeEditor       SpaceKind = "NODE_EDITOR"
	SpaceImageEditor      SpaceKind = "IMAGE_EDITOR"
)

// NewSpaceKind creates a SpaceKind with validation
func NewSpaceKind(value string) (SpaceKind, error) {
	switch SpaceKind(value) {
	case SpaceView3D, SpacePropertiesEditor, SpaceNodeEditor, SpaceImageEditor:
		return SpaceKind(value), nil
	default:
		return "", fmt.Errorf("invalid space kind: %s", value)
	}
}

// RegionKind identifies the region of an editor a panel is drawn in
type RegionKind string

const (
	RegionUI     RegionKind = "UI"
	RegionHeader RegionKind = "HEADER"
	RegionTools  RegionKind = "TOOLS"
	RegionWindow RegionKind = "WINDOW"
)

// NewRegionKind creates a RegionKind with validation
func NewRegionKind(value string) (RegionKind, error) {
	switch RegionKind(value) {
	case RegionUI, RegionHeader, RegionTools, RegionWindow:
		return RegionKind(value), nil
	default:
		return "", fmt.Errorf("invalid region kind: %s", value)
	}
}

// Option is a panel option flag
type Option uint8

const (
	// OptionHideHeader marks a panel that suppresses its own header
	OptionHideHeader Option = 1 << iota
	// OptionDefaultClosed marks a panel that starts collapsed
	OptionDefaultClosed
)

var optionNames = map[string]Option{
	"HIDE_HEADER":    OptionHideHeader,
	"DEFAULT_CLOSED": OptionDefaultClosed,
}

// ParseOption converts a host option name into an Option
func ParseOption(name string) (Option, error) {
	opt, ok := optionNames[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unknown panel option: %s", name)
	}
	return opt, nil
}

// Has reports whether all bits of flag are set
func (o Option) Has(flag Option) bool {
	return o&flag == flag
}

// Context is the host state panels are polled against
type Context struct {
	Mode       string
	ObjectType string
	Addons     []string
}

// HasObject reports whether there is an active object
func (c Context) HasObject() bool {
	return c.ObjectType != ""
}

// AddonEnabled reports whether the named add-on is enabled
func (c Context) AddonEnabled(name string) bool {
	for _, a := range c.Addons {
		if a == name {
			return true
		}
	}
	return false
}

// Predicate decides whether a panel applies to the given context
type Predicate interface {
	Applies(ctx Context) (bool, error)
}

// PredicateFunc adapts a function to the Predicate interface
type PredicateFunc func(ctx Context) (bool, error)

// Applies calls f(ctx)
func (f PredicateFunc) Applies(ctx Context) (bool, error) {
	return f(ctx)
}

// Descriptor describes one panel registered with the host
type Descriptor struct {
	ID       string
	Category string
	Label    string
	Space    SpaceKind
	Region   RegionKind
	Options  Option
	Poll     Predicate
}

// Hidden reports whether the panel suppresses its own header
func (d Descriptor) Hidden() bool {
	return d.Options.Has(OptionHideHeader)
}

// InViewportSidebar reports whether the panel lives in the 3D viewport sidebar
func (d Descriptor) InViewportSidebar() bool {
	return d.Space == SpaceView3D && d.Region == RegionUI && d.Category != ""
}

// Registry is a read-only source of panel descriptors
type Registry interface {
	Descriptors() []Descriptor
}

// StaticRegistry is a Registry over a fixed slice
type StaticRegistry []Descriptor

// Descriptors returns a copy of the slice
func (r StaticRegistry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r))
	copy(out, r)
	return out
}
