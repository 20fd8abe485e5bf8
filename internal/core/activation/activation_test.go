package activation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessagesAndSeverity(t *testing.T) {
	cause := errors.New("enum \"Foo\" not found in ('Item', 'Tool')")

	tests := []struct {
		name         string
		err          *Error
		wantMessage  string
		wantSeverity Severity
		wantSentinel error
	}{
		{
			name:         "SidebarNotFound_Warning",
			err:          NewError("Item", ReasonSidebarNotFound, nil),
			wantMessage:  "Sidebar not found.",
			wantSeverity: SeverityWarning,
			wantSentinel: ErrSidebarNotFound,
		},
		{
			name:         "CategoryHidden_Info",
			err:          NewError("Edit", ReasonCategoryHidden, nil),
			wantMessage:  "Tab 'Edit' currently hidden",
			wantSeverity: SeverityInfo,
			wantSentinel: ErrCategoryHidden,
		},
		{
			name:         "CategoryEmpty_Info",
			err:          NewError("Foo", ReasonCategoryEmpty, cause),
			wantMessage:  "Tab 'Foo' is empty or unavailable",
			wantSeverity: SeverityInfo,
			wantSentinel: ErrCategoryEmpty,
		},
		{
			name:         "Rejected_WarningWithCause",
			err:          NewError("Foo", ReasonRejected, errors.New("region is read-only")),
			wantMessage:  "Warning: region is read-only",
			wantSeverity: SeverityWarning,
			wantSentinel: ErrRejected,
		},
		{
			name:         "Rejected_WarningWithoutCause",
			err:          NewError("Foo", ReasonRejected, nil),
			wantMessage:  "Warning: could not switch to tab 'Foo'",
			wantSeverity: SeverityWarning,
			wantSentinel: ErrRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.err.Error())
			assert.Equal(t, tt.wantSeverity, tt.err.Severity())
			assert.ErrorIs(t, tt.err, tt.wantSentinel)
		})
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := error(NewError("Item", ReasonRejected, cause))

	assert.ErrorIs(t, err, cause)

	var actErr *Error
	require.ErrorAs(t, err, &actErr)
	assert.Equal(t, "Item", actErr.Category)
}

func TestActivatorFunc(t *testing.T) {
	var got string
	f := ActivatorFunc(func(_ context.Context, category string) error {
		got = category
		return nil
	})

	require.NoError(t, f.Activate(context.Background(), "Tool"))
	assert.Equal(t, "Tool", got)
}
