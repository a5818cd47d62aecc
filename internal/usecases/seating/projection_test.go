package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/gesture"
)

func layoutFixture() *domain.SeatingLayout {
	return buildLayout("e1", tablesFixture(), guestsFixture())
}

func TestProject(t *testing.T) {
	layout := layoutFixture()
	viewport := gesture.Viewport{Scale: 2, OffsetX: 10, OffsetY: 20}
	screen := gesture.Rect{Width: 300, Height: 300}

	projected := Project(layout, viewport, screen)
	require.Len(t, projected, 2)

	assert.Equal(t, 10.0, projected[0].ScreenX)
	assert.Equal(t, 20.0, projected[0].ScreenY)
	assert.Equal(t, 200.0, projected[0].ScreenWidth)
	assert.True(t, projected[0].Visible)
	assert.Equal(t, 1, projected[0].Occupied)
	assert.Equal(t, 1, projected[0].Available)

	// Mesa 2 começa em x=410 na tela, fora da área visível
	assert.Equal(t, 410.0, projected[1].ScreenX)
	assert.False(t, projected[1].Visible)
	assert.Equal(t, 0, projected[1].Available)

	assert.Empty(t, Project(nil, viewport, screen))
}

func TestTableAt(t *testing.T) {
	layout := layoutFixture()
	viewport := gesture.NewViewport()

	tests := []struct {
		name   string
		point  gesture.Point
		wantID string
	}{
		{name: "centro da mesa redonda", point: gesture.Point{X: 50, Y: 50}, wantID: "t1"},
		{name: "canto fora do círculo", point: gesture.Point{X: 2, Y: 2}},
		{name: "mesa retangular", point: gesture.Point{X: 205, Y: 45}, wantID: "t2"},
		{name: "espaço vazio", point: gesture.Point{X: 150, Y: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := TableAt(layout, viewport, tt.point)
			if tt.wantID == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, table.ID)
		})
	}

	t.Run("com zoom e deslocamento", func(t *testing.T) {
		zoomed := gesture.Viewport{Scale: 0.5, OffsetX: 100, OffsetY: 0}
		table, ok := TableAt(layout, zoomed, gesture.Point{X: 225, Y: 10})
		require.True(t, ok)
		assert.Equal(t, "t2", table.ID)
	})
}

func TestBounds(t *testing.T) {
	assert.Equal(t, gesture.Rect{X: 0, Y: 0, Width: 300, Height: 100}, Bounds(layoutFixture()))
	assert.Equal(t, gesture.Rect{}, Bounds(&domain.SeatingLayout{}))
}
