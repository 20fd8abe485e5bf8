// Package inventory loads the host's panel descriptors from YAML.
package inventory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tabsearch.dev/cli/internal/core/panel"
)

//go:embed default_inventory.yaml
var defaultInventory []byte

// ErrInvalidInventory is returned for inventories that fail validation
var ErrInvalidInventory = errors.New("invalid inventory")

// File is the on-disk inventory document
type File struct {
	Panels []PanelSpec `yaml:"panels"`
}

// PanelSpec is one panel as written in the inventory
type PanelSpec struct {
	ID       string    `yaml:"id"`
	Category string    `yaml:"category"`
	Label    string    `yaml:"label"`
	Space    string    `yaml:"space"`
	Region   string    `yaml:"region"`
	Options  []string  `yaml:"options"`
	Poll     *PollSpec `yaml:"poll"`
}

// PollSpec is the declarative form of a panel's eligibility predicate
type PollSpec struct {
	Modes          []string `yaml:"modes"`
	ObjectTypes    []string `yaml:"object_types"`
	RequiresObject bool     `yaml:"requires_object"`
	Addons         []string `yaml:"addons"`
	Error          string   `yaml:"error"`
}

// Applies implements panel.Predicate
func (p *PollSpec) Applies(ctx panel.Context) (bool, error) {
	if p.Error != "" {
		return false, errors.New(p.Error)
	}
	if p.RequiresObject && !ctx.HasObject() {
		return false, nil
	}
	if len(p.Modes) > 0 && !containsFold(p.Modes, ctx.Mode) {
		return false, nil
	}
	if len(p.ObjectTypes) > 0 && !containsFold(p.ObjectTypes, ctx.ObjectType) {
		return false, nil
	}
	for _, addon := range p.Addons {
		if !ctx.AddonEnabled(addon) {
			return false, nil
		}
	}
	return true, nil
}

// Parse decodes and validates an inventory document
func Parse(data []byte) ([]panel.Descriptor, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return file.Descriptors()
}

// LoadFile reads and parses an inventory file
func LoadFile(path string) ([]panel.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}
	descriptors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptors, nil
}

// Default returns the built-in inventory of the stock viewport sidebar
func Default() []panel.Descriptor {
	descriptors, err := Parse(defaultInventory)
	if err != nil {
		panic(fmt.Sprintf("embedded inventory is invalid: %v", err))
	}
	return descriptors
}

// Descriptors converts the document into panel descriptors
func (f File) Descriptors() ([]panel.Descriptor, error) {
	var problems []string
	seen := make(map[string]struct{}, len(f.Panels))
	descriptors := make([]panel.Descriptor, 0, len(f.Panels))

	for i, spec := range f.Panels {
		d, err := spec.descriptor()
		if err != nil {
			problems = append(problems, fmt.Sprintf("panel %d: %v", i, err))
			continue
		}
		if _, dup := seen[d.ID]; dup {
			problems = append(problems, fmt.Sprintf("panel %d: duplicate id %q", i, d.ID))
			continue
		}
		seen[d.ID] = struct{}{}
		descriptors = append(descriptors, d)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInventory, strings.Join(problems, "; "))
	}
	return descriptors, nil
}

func (s PanelSpec) descriptor() (panel.Descriptor, error) {
	if s.ID == "" {
		return panel.Descriptor{}, errors.New("id is required")
	}
	if s.Category == "" {
		return panel.Descriptor{}, fmt.Errorf("%s: category is required", s.ID)
	}

	space := panel.SpaceView3D
	if s.Space != "" {
		parsed, err := panel.NewSpaceKind(s.Space)
		if err != nil {
			return panel.Descriptor{}, fmt.Errorf("%s: %w", s.ID, err)
		}
		space = parsed
	}

	region := panel.RegionUI
	if s.Region != "" {
		parsed, err := panel.NewRegionKind(s.Region)
		if err != nil {
			return panel.Descriptor{}, fmt.Errorf("%s: %w", s.ID, err)
		}
		region = parsed
	}

	var options panel.Option
	for _, name := range s.Options {
		opt, err := panel.ParseOption(name)
		if err != nil {
			return panel.Descriptor{}, fmt.Errorf("%s: %w", s.ID, err)
		}
		options |= opt
	}

	d := panel.Descriptor{
		ID:       s.ID,
		Category: s.Category,
		Label:    s.Label,
		Space:    space,
		Region:   region,
		Options:  options,
	}
	if s.Poll != nil {
		d.Poll = s.Poll
	}
	return d, nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
