// Package catalog turns the host's panel descriptors into the list of
// searchable sidebar entries.
//
// The catalog is rebuilt from scratch on every query cycle. Entries are
// plain values with no identity across rebuilds.
package catalog

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/core/panel"
)

// Entry is one searchable row of the catalog
type Entry struct {
	SearchKey   string
	DisplayText string
	Category    string
	IsPrimary   bool
}

// Builder builds catalogs and reports swallowed probe failures to its logger
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a Builder. A nil logger discards records.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Build builds a catalog without logging
func Build(descriptors []panel.Descriptor, ctx panel.Context) []Entry {
	return NewBuilder(nil).Build(descriptors, ctx)
}

// Build produces the catalog for the given descriptors and context.
//
// One primary entry is emitted per eligible category and one secondary
// entry per panel whose label differs from its category. The result is
// stable-sorted by DisplayText using Go's byte-wise string ordering, so
// uppercase sorts before lowercase and ties keep discovery order.
func (b *Builder) Build(descriptors []panel.Descriptor, ctx panel.Context) []Entry {
	entries := make([]Entry, 0, len(descriptors))
	seen := make(map[string]struct{})

	for _, d := range descriptors {
		if !b.eligible(d, ctx) {
			continue
		}
		if d.Category == panel.ReservedCategory {
			continue
		}

		if _, ok := seen[d.Category]; !ok {
			seen[d.Category] = struct{}{}
			entries = append(entries, primaryEntry(d.Category))
		}

		if d.Label != "" && d.Label != d.Category {
			entries = append(entries, secondaryEntry(d.Label, d.Category))
		}
	}

	SortByDisplayText(entries)
	return entries
}

// AvailableCategories returns the distinct eligible categories in discovery
// order. Unlike Build it keeps the reserved category, matching what the
// host itself would accept as an active tab.
func (b *Builder) AvailableCategories(descriptors []panel.Descriptor, ctx panel.Context) []string {
	var categories []string
	seen := make(map[string]struct{})

	for _, d := range descriptors {
		if !b.eligible(d, ctx) {
			continue
		}
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		categories = append(categories, d.Category)
	}

	return categories
}

// AvailableCategories returns the eligible categories without logging
func AvailableCategories(descriptors []panel.Descriptor, ctx panel.Context) []string {
	return NewBuilder(nil).AvailableCategories(descriptors, ctx)
}

// eligible applies the sidebar, poll and header rules shared by Build and
// AvailableCategories
func (b *Builder) eligible(d panel.Descriptor, ctx panel.Context) bool {
	if !d.InViewportSidebar() {
		return false
	}

	ok, err := panel.Probe(d, ctx)
	if err != nil {
		b.logger.Debug("Excluding panel after failed poll",
			zap.String("panel", d.ID),
			zap.String("category", d.Category),
			zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	return !d.Hidden()
}

// Primaries returns the primary entries in their existing order
func Primaries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsPrimary {
			out = append(out, e)
		}
	}
	return out
}

// SortByDisplayText stable-sorts entries by DisplayText ascending
func SortByDisplayText(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DisplayText < entries[j].DisplayText
	})
}

func primaryEntry(category string) Entry {
	return Entry{
		SearchKey:   strings.ToLower(category),
		DisplayText: category,
		Category:    category,
		IsPrimary:   true,
	}
}

func secondaryEntry(label, category string) Entry {
	return Entry{
		SearchKey:   strings.ToLower(label + " " + category),
		DisplayText: label + " (" + category + ")",
		Category:    category,
		IsPrimary:   false,
	}
}
