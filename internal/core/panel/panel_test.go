package panel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_NilPredicate_Applies(t *testing.T) {
	ok, err := Probe(Descriptor{ID: "p"}, Context{})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProbe_PredicateResults(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		poll      Predicate
		wantOK    bool
		wantError bool
	}{
		{
			name:   "PredicateTrue_Applies",
			poll:   PredicateFunc(func(Context) (bool, error) { return true, nil }),
			wantOK: true,
		},
		{
			name:   "PredicateFalse_DoesNotApply",
			poll:   PredicateFunc(func(Context) (bool, error) { return false, nil }),
			wantOK: false,
		},
		{
			name:      "PredicateError_ReturnsProbeError",
			poll:      PredicateFunc(func(Context) (bool, error) { return true, boom }),
			wantOK:    false,
			wantError: true,
		},
		{
			name:      "PredicatePanics_ReturnsProbeError",
			poll:      PredicateFunc(func(Context) (bool, error) { panic("nil object") }),
			wantOK:    false,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Probe(Descriptor{ID: "VIEW3D_PT_test", Poll: tt.poll}, Context{Mode: "OBJECT"})

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var probeErr *EligibilityProbeError
			require.ErrorAs(t, err, &probeErr)
			assert.Equal(t, "VIEW3D_PT_test", probeErr.PanelID)
		})
	}
}

func TestProbe_PredicateError_Unwraps(t *testing.T) {
	boom := errors.New("boom")
	_, err := Probe(Descriptor{ID: "p", Poll: PredicateFunc(func(Context) (bool, error) { return false, boom })}, Context{})

	assert.ErrorIs(t, err, boom)
}

func TestDescriptor_Hidden(t *testing.T) {
	assert.True(t, Descriptor{Options: OptionHideHeader | OptionDefaultClosed}.Hidden())
	assert.False(t, Descriptor{Options: OptionDefaultClosed}.Hidden())
	assert.False(t, Descriptor{}.Hidden())
}

func TestDescriptor_InViewportSidebar(t *testing.T) {
	assert.True(t, Descriptor{Space: SpaceView3D, Region: RegionUI, Category: "Item"}.InViewportSidebar())
	assert.False(t, Descriptor{Space: SpaceView3D, Region: RegionHeader, Category: "Item"}.InViewportSidebar())
	assert.False(t, Descriptor{Space: SpaceNodeEditor, Region: RegionUI, Category: "Item"}.InViewportSidebar())
	assert.False(t, Descriptor{Space: SpaceView3D, Region: RegionUI}.InViewportSidebar())
}

func TestParseOption(t *testing.T) {
	opt, err := ParseOption("hide_header")
	require.NoError(t, err)
	assert.Equal(t, OptionHideHeader, opt)

	_, err = ParseOption("INSTANCED")
	assert.Error(t, err)
}

func TestNewSpaceAndRegionKind(t *testing.T) {
	space, err := NewSpaceKind("VIEW_3D")
	require.NoError(t, err)
	assert.Equal(t, SpaceView3D, space)

	_, err = NewSpaceKind("SEQUENCE_EDITOR")
	assert.Error(t, err)

	region, err := NewRegionKind("UI")
	require.NoError(t, err)
	assert.Equal(t, RegionUI, region)

	_, err = NewRegionKind("FOOTER")
	assert.Error(t, err)
}

func TestContext_Helpers(t *testing.T) {
	ctx := Context{Mode: "SCULPT", ObjectType: "MESH", Addons: []string{"node_wrangler"}}

	assert.True(t, ctx.HasObject())
	assert.True(t, ctx.AddonEnabled("node_wrangler"))
	assert.False(t, ctx.AddonEnabled("looptools"))
	assert.False(t, Context{}.HasObject())
}

func TestStaticRegistry_ReturnsCopy(t *testing.T) {
	reg := StaticRegistry{{ID: "a", Category: "Item"}}

	snap := reg.Descriptors()
	snap[0].Category = "Changed"

	assert.Equal(t, "Item", reg.Descriptors()[0].Category)
}
