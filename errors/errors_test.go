package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrDuplicateResource, "registering %q", "WellPlate96")

	assert.Contains(t, wrapped.Error(), "WellPlate96")
	assert.True(t, Is(wrapped, ErrDuplicateResource))
	assert.True(t, IsDuplicateResource(wrapped))
	assert.False(t, IsUnknownResource(wrapped))
}

func TestHints(t *testing.T) {
	err := WithHint(New("boom"), "try --templates ./templates")
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try --templates ./templates", hints[0])
}

func TestSentinelCheckersNil(t *testing.T) {
	assert.False(t, IsDuplicateResource(nil))
	assert.False(t, IsUnknownResource(nil))
}
