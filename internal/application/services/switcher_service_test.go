package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/application/ports"
	"tabsearch.dev/cli/internal/core/activation"
	"tabsearch.dev/cli/internal/core/matching"
	"tabsearch.dev/cli/internal/core/panel"
	"tabsearch.dev/cli/internal/core/testfixtures"
)

// recordingActivator records activations and returns a canned error
type recordingActivator struct {
	calls []string
	err   error
}

func (a *recordingActivator) Activate(_ context.Context, category string) error {
	a.calls = append(a.calls, category)
	return a.err
}

func newTestService(descriptors []panel.Descriptor, mode string, activator activation.Activator) *SwitcherService {
	return NewSwitcherService(
		panel.StaticRegistry(descriptors),
		ports.StaticContext{Mode: mode},
		activator,
		zap.NewNop(),
	)
}

func TestSwitcherService_View_Modes(t *testing.T) {
	svc := newTestService(testfixtures.StockSidebar(), "EDIT_MESH", &recordingActivator{})

	tests := []struct {
		name      string
		query     string
		wantMode  ViewMode
		wantHint  string
		wantItems []string
	}{
		{
			name:      "EmptyQuery_BrowsesCategories",
			query:     "",
			wantMode:  ModeBrowse,
			wantHint:  HintBrowse,
			wantItems: []string{"Edit", "Item", "Tool", "View"},
		},
		{
			name:      "Match_ListsResults",
			query:     "mirror",
			wantMode:  ModeResults,
			wantItems: []string{"Auto Mirror (Edit)"},
		},
		{
			name:      "NoMatch_NoResults",
			query:     "sculpt",
			wantMode:  ModeNoResults,
			wantHint:  HintNoResults,
			wantItems: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := svc.View(tt.query)

			assert.Equal(t, tt.query, view.Query)
			assert.Equal(t, tt.wantMode, view.Mode)
			assert.Equal(t, tt.wantHint, view.Hint)
			assert.Equal(t, tt.wantItems, itemTexts(view))
		})
	}
}

func TestSwitcherService_View_ItemKinds(t *testing.T) {
	svc := newTestService([]panel.Descriptor{testfixtures.Panel("Item", "Transform")}, "OBJECT", &recordingActivator{})

	view := svc.View("item")

	require.Len(t, view.Items, 2)
	assert.Equal(t, Item{Text: "Item", Category: "Item", Kind: KindCategory}, view.Items[0])
	assert.Equal(t, Item{Text: "Transform (Item)", Category: "Item", Kind: KindPanel}, view.Items[1])
}

func TestSwitcherService_View_EmptyCatalog(t *testing.T) {
	svc := newTestService(nil, "OBJECT", &recordingActivator{})

	view := svc.View("")

	assert.Equal(t, ModeBrowse, view.Mode)
	assert.Equal(t, HintBrowse, view.Hint)
	assert.Empty(t, view.Items)
}

func TestSwitcherService_View_Truncated(t *testing.T) {
	var descriptors []panel.Descriptor
	for i := 0; i < 25; i++ {
		descriptors = append(descriptors, testfixtures.Panel(fmt.Sprintf("Addon %02d", i), ""))
	}
	svc := newTestService(descriptors, "OBJECT", &recordingActivator{})

	view := svc.View("addon")

	assert.Len(t, view.Items, matching.MaxResults)
	assert.True(t, view.Truncated)
}

func TestSwitcherService_View_RebuildsFromRegistryEachCycle(t *testing.T) {
	mode := "OBJECT"
	svc := NewSwitcherService(
		panel.StaticRegistry(testfixtures.StockSidebar()),
		ports.ContextSourceFunc(func() panel.Context { return panel.Context{Mode: mode} }),
		&recordingActivator{},
		nil,
	)

	assert.NotContains(t, itemTexts(svc.View("")), "Sculpt")

	mode = "SCULPT"
	assert.Contains(t, itemTexts(svc.View("")), "Sculpt")
}

func TestSwitcherService_Select(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantLevel   NoticeLevel
		wantMessage string
	}{
		{
			name:        "Success_NoNotice",
			wantLevel:   LevelNone,
			wantMessage: "Switched to 'Tool'",
		},
		{
			name:        "Hidden_Info",
			err:         activation.NewError("Tool", activation.ReasonCategoryHidden, nil),
			wantLevel:   LevelInfo,
			wantMessage: "Tab 'Tool' currently hidden",
		},
		{
			name:        "SidebarMissing_Warning",
			err:         activation.NewError("Tool", activation.ReasonSidebarNotFound, nil),
			wantLevel:   LevelWarning,
			wantMessage: "Sidebar not found.",
		},
		{
			name:        "WrappedActivationError_Classified",
			err:         fmt.Errorf("host: %w", activation.NewError("Tool", activation.ReasonCategoryEmpty, nil)),
			wantLevel:   LevelInfo,
			wantMessage: "Tab 'Tool' is empty or unavailable",
		},
		{
			name:        "UnknownError_Warning",
			err:         errors.New("region locked"),
			wantLevel:   LevelWarning,
			wantMessage: "Warning: region locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activator := &recordingActivator{err: tt.err}
			svc := newTestService(testfixtures.StockSidebar(), "OBJECT", activator)

			notice := svc.Select(context.Background(), "Tool")

			assert.Equal(t, []string{"Tool"}, activator.calls)
			assert.Equal(t, tt.wantLevel, notice.Level)
			assert.Equal(t, tt.wantMessage, notice.Message)
			assert.Equal(t, tt.err == nil, notice.OK())
		})
	}
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "browse", ModeBrowse.String())
	assert.Equal(t, "results", ModeResults.String())
	assert.Equal(t, "no_results", ModeNoResults.String())
	assert.Equal(t, "unknown", ViewMode(42).String())
}

func itemTexts(v View) []string {
	out := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		out = append(out, it.Text)
	}
	return out
}
