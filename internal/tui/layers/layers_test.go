package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateCenteredLayer_EmptyContent ensures empty content produces no layer.
func TestCreateCenteredLayer_EmptyContent(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

// TestCreateCenteredLayer_NotNil ensures content produces a layer.
// Edge case: content wider than the screen is pinned to the origin instead of going negative.
func TestCreateCenteredLayer_NotNil(t *testing.T) {
	require.NotNil(t, CreateCenteredLayer("hello", 80, 24))
	require.NotNil(t, CreateCenteredLayer("a much longer line than the screen", 10, 1))
}

func TestOverlayWidth(t *testing.T) {
	tests := []struct {
		name   string
		screen int
		want   int
	}{
		{"narrow screen uses the minimum", 60, OverlayMinWidth},
		{"wide screen caps at maximum", 200, OverlayMaxWidth},
		{"half of a medium screen", 100, 50},
		{"never wider than the screen", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlayWidth(tt.screen))
		})
	}
}

// TestCompose_NoOverlays ensures the base is returned untouched when nothing is stacked.
func TestCompose_NoOverlays(t *testing.T) {
	assert.Equal(t, "base", Compose("base"))
	assert.Equal(t, "base", Compose("base", nil))
}
